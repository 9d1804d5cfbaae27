package trivia

// PageCount returns ceil(total/PageSize). Zero or negative totals have no pages.
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Pages returns the page numbers 1..PageCount(total) with no gaps.
func Pages(total int) []int {
	n := PageCount(total)
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// ClampPage keeps page inside [1, PageCount(total)]. When there are no pages
// it returns 1.
func ClampPage(page, total int) int {
	last := PageCount(total)
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}
