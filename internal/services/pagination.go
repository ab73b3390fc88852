package services

const QuestionsPerPage = 10

// Paginate returns the 1-indexed page of items holding size elements.
// Pages before the first or past the last are empty.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
