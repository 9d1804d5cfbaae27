package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"triviatui/internal/trivia"
	"triviatui/internal/ui/textutil"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	categoryPaneWidth  = 24
	allCategoriesLabel = "All categories"
)

// QuestionListView lists one page of questions next to the category filter.
//
// It owns the view state: current page, total count for the active filter,
// loaded categories and the selected category (nil = all). Every change is
// followed by a refetch; failed requests open an AlertModal and leave the
// state as it was.
type QuestionListView struct {
	backend Backend
	log     logrus.FieldLogger
	keys    KeyMap

	questions       []trivia.Question
	page            int
	totalQuestions  int
	categories      trivia.Categories
	currentCategory *trivia.CategoryID

	Overlays OverlayStack

	focus     *FocusManager
	catCursor int // 0 is "all categories"
	qCursor   int
	revealed  map[int]bool

	status        string
	statusIsError bool

	spinner  spinner.Model
	inflight int
	help     help.Model
	width    int
	height   int
}

// Ensure QuestionListView implements View.
var _ View = (*QuestionListView)(nil)

// NewQuestionListView creates the view. Nothing is fetched until Init.
func NewQuestionListView(b Backend, log logrus.FieldLogger) *QuestionListView {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &QuestionListView{
		backend:    b,
		log:        log,
		keys:       DefaultKeyMap(),
		questions:  []trivia.Question{},
		page:       1,
		categories: trivia.Categories{},
		focus:      NewFocusManager(PaneQuestions, PaneCategories),
		revealed:   map[int]bool{},
		spinner:    s,
		help:       newHelpModel(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Questions returns the questions on the current page.
func (v *QuestionListView) Questions() []trivia.Question { return v.questions }

// Page returns the current 1-based page.
func (v *QuestionListView) Page() int { return v.page }

// TotalQuestions returns the backend count for the current filter.
func (v *QuestionListView) TotalQuestions() int { return v.totalQuestions }

// Categories returns the loaded categories.
func (v *QuestionListView) Categories() trivia.Categories { return v.categories }

// CurrentCategory returns the selected category, or nil for all.
func (v *QuestionListView) CurrentCategory() *trivia.CategoryID { return v.currentCategory }

// Status returns the status line text and whether it reports an error.
func (v *QuestionListView) Status() (string, bool) { return v.status, v.statusIsError }

// Init implements View. Categories and the first page load concurrently.
func (v *QuestionListView) Init() tea.Cmd {
	return tea.Batch(v.fetchCategories(), v.fetchQuestions())
}

// SelectPage moves to page n and fetches it. Callers only pass pages from
// Pagination.
func (v *QuestionListView) SelectPage(n int) tea.Cmd {
	v.page = n
	v.log.WithField("page", n).Debug("select page")
	return v.fetchQuestions()
}

// SelectCategory filters by id (nil = all categories), resets to page 1 and
// fetches.
func (v *QuestionListView) SelectCategory(id *trivia.CategoryID) tea.Cmd {
	v.currentCategory = copyCategory(id)
	v.page = 1
	v.qCursor = 0
	v.syncCategoryCursor()
	v.log.WithField("category", categoryField(id)).Debug("select category")
	return v.fetchQuestions()
}

// Pagination returns the selectable page numbers 1..ceil(total/10).
func (v *QuestionListView) Pagination() []int {
	return trivia.Pages(v.totalQuestions)
}

// SubmitSearch posts term. On success the server's questions, total and
// current category replace the view's.
func (v *QuestionListView) SubmitSearch(term string) tea.Cmd {
	v.log.WithField("term", term).Debug("submit search")
	return v.request(searchCmd(v.backend, term))
}

// QuestionAction returns the action handler for question id. DELETE asks
// for confirmation first; TOGGLE_ANSWER shows or hides the answer. Other
// actions are ignored.
func (v *QuestionListView) QuestionAction(id int) func(Action) tea.Cmd {
	return func(action Action) tea.Cmd {
		switch action {
		case ActionDelete:
			q, ok := v.questionByID(id)
			if !ok {
				return nil
			}
			modal := NewDeleteQuestionConfirmModal(q)
			v.Overlays.Push(Overlay{View: modal})
			return modal.Init()
		case ActionToggleAnswer:
			v.revealed[id] = !v.revealed[id]
		}
		return nil
	}
}

func (v *QuestionListView) fetchCategories() tea.Cmd {
	return v.request(fetchCategoriesCmd(v.backend))
}

func (v *QuestionListView) fetchQuestions() tea.Cmd {
	return v.request(fetchQuestionsCmd(v.backend, v.page, copyCategory(v.currentCategory)))
}

// request counts cmd as in flight and starts the spinner when it is the
// only one.
func (v *QuestionListView) request(cmd tea.Cmd) tea.Cmd {
	v.inflight++
	if v.inflight == 1 {
		return tea.Batch(cmd, v.spinner.Tick)
	}
	return cmd
}

func (v *QuestionListView) done() {
	if v.inflight > 0 {
		v.inflight--
	}
}

// alert reports a failed request. View state is left untouched.
func (v *QuestionListView) alert(action string, err error) tea.Cmd {
	v.status = fmt.Sprintf("Unable to %s", action)
	v.statusIsError = true
	modal := NewAlertModal(action, err)
	v.Overlays.Push(Overlay{View: modal})
	return modal.Init()
}

func (v *QuestionListView) setStatus(format string, args ...interface{}) {
	v.status = fmt.Sprintf(format, args...)
	v.statusIsError = false
}

// Update implements View.
func (v *QuestionListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.help.Width = msg.Width
		return v, nil

	case spinner.TickMsg:
		if v.inflight == 0 {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case CategoriesLoadedMsg:
		v.done()
		if msg.Err != nil {
			return v, v.alert("load categories", msg.Err)
		}
		v.categories = msg.Categories
		if v.categories == nil {
			v.categories = trivia.Categories{}
		}
		v.syncCategoryCursor()
		return v, nil

	case QuestionsLoadedMsg:
		v.done()
		if msg.Err != nil {
			return v, v.alert("load questions", msg.Err)
		}
		v.applyQuestions(msg.Result.Questions, msg.Result.Total)
		// Keep page within range if the total shrank under us.
		if page := trivia.ClampPage(v.page, v.totalQuestions); page != v.page {
			return v, v.SelectPage(page)
		}
		return v, nil

	case SearchResultMsg:
		v.done()
		if msg.Err != nil {
			return v, v.alert("search questions", msg.Err)
		}
		// Search results always start at the first page.
		v.page = 1
		v.qCursor = 0
		v.applyQuestions(msg.Result.Questions, msg.Result.Total)
		v.currentCategory = copyCategory(msg.Result.CurrentCategory)
		v.syncCategoryCursor()
		v.setStatus("%d result(s) for %q", msg.Result.Total, msg.Term)
		return v, nil

	case QuestionDeletedMsg:
		v.done()
		if msg.Err != nil {
			return v, v.alert("delete question", msg.Err)
		}
		delete(v.revealed, msg.ID)
		v.setStatus("Deleted question #%d", msg.ID)
		return v, v.fetchQuestions()

	case QuestionCreatedMsg:
		v.done()
		if msg.Err != nil {
			return v, v.alert("add question", msg.Err)
		}
		v.setStatus("Created question #%d", msg.ID)
		return v, v.fetchQuestions()

	case DismissModalMsg:
		v.Overlays.Remove(msg.From)
		return v, nil

	case SubmitSearchMsg:
		if !v.Overlays.Remove(msg.From) {
			return v, nil
		}
		return v, v.SubmitSearch(msg.Term)

	case ConfirmDeleteMsg:
		if !v.Overlays.Remove(msg.From) {
			return v, nil
		}
		v.log.WithField("question_id", msg.ID).Info("delete question")
		return v, v.request(deleteQuestionCmd(v.backend, msg.ID))

	case SubmitQuestionMsg:
		if !v.Overlays.Remove(msg.From) {
			return v, nil
		}
		return v, v.request(createQuestionCmd(v.backend, msg.Question))

	case RequestQuizQuestionMsg:
		if !v.Overlays.Contains(msg.From) {
			return v, nil
		}
		return v, v.request(quizQuestionCmd(v.backend, msg.From, msg.Previous, msg.Category))

	case QuizQuestionMsg:
		v.done()
		if msg.Err != nil {
			msg.Quiz.fetchFailed()
			return v, v.alert("load quiz question", msg.Err)
		}
		if !v.Overlays.Contains(msg.Quiz) {
			return v, nil
		}
		return v, msg.Quiz.SetQuestion(msg.Question)

	case QuestionActionMsg:
		return v, v.QuestionAction(msg.ID)(msg.Action)

	case tea.KeyMsg:
		if v.Overlays.Len() > 0 {
			cmd, _ := v.Overlays.UpdateTop(msg)
			return v, cmd
		}
		return v, v.handleKey(msg)
	}

	// Cursor blinks and the like belong to the open modal.
	if v.Overlays.Len() > 0 {
		cmd, _ := v.Overlays.UpdateTop(msg)
		return v, cmd
	}
	return v, nil
}

func (v *QuestionListView) applyQuestions(qs []trivia.Question, total int) {
	if qs == nil {
		qs = []trivia.Question{}
	}
	v.questions = qs
	v.totalQuestions = total
	if v.qCursor >= len(v.questions) {
		v.qCursor = max(len(v.questions)-1, 0)
	}
}

func (v *QuestionListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Focus):
		v.focus.Next()
	case key.Matches(msg, v.keys.Up):
		v.moveCursor(-1)
	case key.Matches(msg, v.keys.Down):
		v.moveCursor(1)
	case key.Matches(msg, v.keys.AllCategory):
		return v.SelectCategory(nil)
	case key.Matches(msg, v.keys.PrevPage):
		if v.page > 1 {
			return v.SelectPage(v.page - 1)
		}
	case key.Matches(msg, v.keys.NextPage):
		if v.page < trivia.PageCount(v.totalQuestions) {
			return v.SelectPage(v.page + 1)
		}
	case key.Matches(msg, v.keys.Search):
		box := NewSearchBox()
		v.Overlays.Push(Overlay{View: box})
		return box.Init()
	case key.Matches(msg, v.keys.Add):
		modal := NewAddQuestionModal(v.categories)
		v.Overlays.Push(Overlay{View: modal})
		return modal.Init()
	case key.Matches(msg, v.keys.Play):
		quiz := NewQuizModal(v.categories)
		v.Overlays.Push(Overlay{View: quiz})
		return quiz.Init()
	case key.Matches(msg, v.keys.Reload):
		return tea.Batch(v.fetchCategories(), v.fetchQuestions())
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	case key.Matches(msg, v.keys.Select) && v.focus.Is(PaneCategories):
		return v.SelectCategory(v.categoryAt(v.catCursor))
	default:
		if card, ok := v.selectedCard(); ok {
			return card.HandleKey(msg, v.keys)
		}
	}
	return nil
}

func (v *QuestionListView) moveCursor(delta int) {
	if v.focus.Is(PaneCategories) {
		n := len(v.categories) + 1
		v.catCursor = min(max(v.catCursor+delta, 0), n-1)
		return
	}
	if len(v.questions) == 0 {
		return
	}
	v.qCursor = min(max(v.qCursor+delta, 0), len(v.questions)-1)
}

// categoryAt maps a category pane row to an id; row 0 is all categories.
func (v *QuestionListView) categoryAt(row int) *trivia.CategoryID {
	ids := v.categories.IDs()
	if row <= 0 || row > len(ids) {
		return nil
	}
	id := ids[row-1]
	return &id
}

func (v *QuestionListView) syncCategoryCursor() {
	v.catCursor = 0
	if v.currentCategory == nil {
		return
	}
	for i, id := range v.categories.IDs() {
		if id == *v.currentCategory {
			v.catCursor = i + 1
			return
		}
	}
}

func (v *QuestionListView) selectedCard() (QuestionCard, bool) {
	if !v.focus.Is(PaneQuestions) || v.qCursor >= len(v.questions) {
		return QuestionCard{}, false
	}
	return v.card(v.qCursor), true
}

func (v *QuestionListView) card(i int) QuestionCard {
	q := v.questions[i]
	return QuestionCard{
		Question:     q,
		CategoryName: v.categories.Name(q.Category),
		Revealed:     v.revealed[q.ID],
		Selected:     i == v.qCursor && v.focus.Is(PaneQuestions),
	}
}

func (v *QuestionListView) questionByID(id int) (trivia.Question, bool) {
	for _, q := range v.questions {
		if q.ID == id {
			return q, true
		}
	}
	return trivia.Question{}, false
}

// View implements View.
func (v *QuestionListView) View() string {
	if top, ok := v.Overlays.Peek(); ok {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	title := Styles.Title.Render("Trivia")
	if v.inflight > 0 {
		title += " " + v.spinner.View()
	}
	filter := allCategoriesLabel
	if v.currentCategory != nil {
		filter = v.categoryName(*v.currentCategory)
	}
	header := title + "  " + Styles.Muted.Render(filter)

	body := lipgloss.JoinHorizontal(lipgloss.Top, v.renderCategories(), v.renderQuestions())

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(body + "\n")
	if v.status != "" {
		style := Styles.Status
		if v.statusIsError {
			style = Styles.Error
		}
		b.WriteString(style.Render(v.status) + "\n")
	}
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

func (v *QuestionListView) categoryName(id trivia.CategoryID) string {
	if name := v.categories.Name(id); name != "" {
		return name
	}
	return fmt.Sprintf("Category %d", id)
}

func (v *QuestionListView) renderCategories() string {
	inner := categoryPaneWidth - 4
	ids := v.categories.IDs()

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Categories"))
	for row := 0; row <= len(ids); row++ {
		name, current := allCategoriesLabel, v.currentCategory == nil
		if row > 0 {
			id := ids[row-1]
			name = v.categories.Name(id)
			current = v.currentCategory != nil && *v.currentCategory == id
		}
		marker := "  "
		if row == v.catCursor && v.focus.Is(PaneCategories) {
			marker = "> "
		}
		line := marker + textutil.PadRightVisual(name, inner-2)
		if current {
			line = Styles.Selected.Render(line)
		} else {
			line = Styles.Normal.Render(line)
		}
		b.WriteString("\n" + line)
	}

	style := Styles.Pane
	if v.focus.Is(PaneCategories) {
		style = Styles.PaneActive
	}
	return style.Width(categoryPaneWidth).Render(b.String())
}

func (v *QuestionListView) renderQuestions() string {
	width := max(v.width-categoryPaneWidth-4, 30)
	inner := width - 4

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Questions (%d)", v.totalQuestions)) + "\n")
	if len(v.questions) == 0 {
		b.WriteString(Styles.Empty.Render("No questions") + "\n")
	}
	for i := range v.questions {
		b.WriteString(v.card(i).View(inner) + "\n")
	}
	b.WriteString(v.renderPagination())

	style := Styles.Pane
	if v.focus.Is(PaneQuestions) {
		style = Styles.PaneActive
	}
	return style.Width(width).Render(b.String())
}

func (v *QuestionListView) renderPagination() string {
	pages := v.Pagination()
	parts := make([]string, len(pages))
	for i, p := range pages {
		style := Styles.PageNum
		if p == v.page {
			style = Styles.PageActive
		}
		parts[i] = style.Render(fmt.Sprintf("%d", p))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func copyCategory(id *trivia.CategoryID) *trivia.CategoryID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func categoryField(id *trivia.CategoryID) string {
	if id == nil {
		return "all"
	}
	return id.String()
}
