package kitsu

import (
	"strconv"
	"strings"
)

// Search accumulates filter, sort and pagination parameters for the
// search endpoints.
//
// Every call appends exactly one key=value pair; Encode renders the
// pairs in call order with no deduplication and no escaping, so callers
// are responsible for supplying URL-safe values.
type Search struct {
	params []searchParam
}

type searchParam struct {
	key   string
	value string
}

// NewSearch constructs an empty Search.
func NewSearch() *Search {
	return &Search{}
}

// Filter restricts results by a key and value.
//
// In addition to each resource's own fields, anime accepts the "season",
// "streamers" and "text" filters, manga accepts "text" and users accept
// "name" and "query".
func (s *Search) Filter(key, value string) *Search {
	s.params = append(s.params, searchParam{"filter[" + key + "]", value})
	return s
}

// Limit caps the number of results that can be returned.
//
// This is used for pagination, in conjunction with Offset.
func (s *Search) Limit(limit int) *Search {
	s.params = append(s.params, searchParam{"page[limit]", strconv.Itoa(limit)})
	return s
}

// Offset skips the given number of results.
//
// This is used for pagination, in conjunction with Limit.
func (s *Search) Offset(offset int) *Search {
	s.params = append(s.params, searchParam{"page[offset]", strconv.Itoa(offset)})
	return s
}

// Sort sets a sorting order by specifying fields.
//
// "id" will sort ascending, while "-id" will sort descending. Multiple
// sorters can be provided by joining with a comma.
func (s *Search) Sort(sort string) *Search {
	s.params = append(s.params, searchParam{"sort", sort})
	return s
}

// Encode renders the accumulated pairs into a query string, ready to be
// appended after "?" on a collection path.
func (s *Search) Encode() string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	for i, p := range s.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
