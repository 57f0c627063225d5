package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var pageSizes = []int{10, 25, 50, 100}

type pageQuery struct {
	Page     int
	PageSize int
	Search   string
}

// parsePageQuery reads page, pageSize and search. page is at least 1 and
// pageSize is kept within 1..100.
func parsePageQuery(c *fiber.Ctx) pageQuery {
	q := pageQuery{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", defaultPageSize),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

type pager struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevLink   string
	NextLink   string
}

// newPager clamps the requested page to the last page holding rows.
func newPager(path string, q pageQuery, total int64) pager {
	pages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	if pages < 1 {
		pages = 1
	}
	page := q.Page
	if page > pages {
		page = pages
	}

	p := pager{
		Page:       page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if p.HasPrev {
		p.PrevLink = pageLink(path, page-1, q)
	}
	if p.HasNext {
		p.NextLink = pageLink(path, page+1, q)
	}
	return p
}

func pageLink(path string, page int, q pageQuery) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	return path + "?" + params.Encode()
}

func pageSizeOptions(current int) []option {
	opts := make([]option, len(pageSizes))
	for i, n := range pageSizes {
		s := strconv.Itoa(n)
		opts[i] = option{Value: s, Label: s, Selected: n == current}
	}
	return opts
}

func urlQueryEscape(s string) string {
	return url.QueryEscape(s)
}
