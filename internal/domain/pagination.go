package domain

import (
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// ParsePage parses the raw ?page query value. An absent value means page 1.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, NewInvalidPageError(raw)
	}
	return page, nil
}

// Paginate returns items[(page-1)*10 : page*10], clipped to the bounds of items.
// An empty result is not an error; callers decide whether that means NOT_FOUND.
// The returned slice shares no backing array with items.
func Paginate(page int, items []Question) ([]Question, error) {
	if page < 1 {
		return nil, NewInvalidPageError(strconv.Itoa(page))
	}

	// compare page counts rather than offsets so huge page numbers cannot overflow
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page > pages {
		return []Question{}, nil
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))

	out := make([]Question, end-start)
	copy(out, items[start:end])
	return out, nil
}
