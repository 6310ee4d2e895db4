package listing

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// PageSize is the number of rows on every paginated listing.
const PageSize = 10

// ParsePage reads a page number from a query parameter. Anything that is not
// a positive integer yields the first page.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page is one page of an ordered listing. A number past the last page has no items.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Number  int   `json:"page"`
	Size    int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// paginate counts the rows matched by q, then loads page number in the given
// order. Preloads are attached after counting.
func paginate[T any](q *gorm.DB, number int, order string, preloads ...string) (*Page[T], error) {
	if number < 1 {
		number = 1
	}
	page := &Page[T]{Items: []T{}, Number: number, Size: PageSize}

	if err := q.Session(&gorm.Session{}).Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count listing rows: %w", err)
	}
	page.Pages = int((page.Total + PageSize - 1) / PageSize)
	page.HasPrev = number > 1
	page.HasNext = number < page.Pages

	if page.Total == 0 || number > page.Pages {
		return page, nil
	}

	find := q.Session(&gorm.Session{}).Order(order).Limit(PageSize).Offset((number - 1) * PageSize)
	for _, p := range preloads {
		find = find.Preload(p)
	}
	if err := find.Find(&page.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to load listing page %d: %w", number, err)
	}
	return page, nil
}
