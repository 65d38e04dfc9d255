package upstream

import (
	"net/url"
	"strconv"
)

// ListQuery carries the server-side sort/limit/page parameters every list
// endpoint accepts. Zero values are omitted from the query string.
type ListQuery struct {
	Sort    string
	SortDir string
	Limit   int
	Page    int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.SortDir != "" {
		v.Set("sort_dir", q.SortDir)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}
