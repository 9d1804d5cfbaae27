// Package ui is the Bubble Tea front end of triviatui.
//
// The root component is QuestionListView, which owns the view state (current
// page, category filter, loaded questions and categories) and turns key
// presses into backend requests. Modals are Views pushed onto an
// OverlayStack; while one is open it receives all key input:
//   - SearchBox: search term entry
//   - ConfirmModal: delete confirmation
//   - AlertModal: failed request report
//   - AddQuestionModal: new question form
//   - QuizModal: a round of random questions to answer
//
// AppModel adapts the root view to tea.Model and handles quitting.
package ui
