// Package listing turns raw listing query parameters into a normalized,
// allow-listed parameter set and builds the page and total-count queries for
// article and comment listings.
//
// Normalization never fails on sort/order/limit/page: invalid values fall back
// to fixed defaults. Only a malformed numeric filter (e.g. article_id=abc) is
// rejected, because it cannot be compared against an integer column.
package listing

import (
	"net/url"
	"strconv"

	"github.com/tbourn/go-news-api/internal/apperr"
	"github.com/tbourn/go-news-api/internal/utils"
)

const (
	// DefaultSortBy is used when sort_by is absent or not allow-listed.
	DefaultSortBy = "created_at"
	// DefaultLimit is used when limit is absent, non-numeric or negative.
	DefaultLimit = 10
	// DefaultPage is used when p is absent, non-numeric or below 1.
	DefaultPage = 1

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Query parameter names.
const (
	ParamSortBy = "sort_by"
	ParamOrder  = "order"
	ParamLimit  = "limit"
	ParamPage   = "p"
)

// column is a table-qualified column reference. An empty table refers to a
// select-list alias.
type column struct {
	table string
	name  string
}

// Filter is an optional equality predicate bound to a query parameter.
type Filter struct {
	Name    string // query parameter name
	Table   string
	Column  string
	Numeric bool // value must parse as an integer
}

// Resource describes what a listing may sort and filter on.
type Resource struct {
	Name     string
	sorts    map[string]column
	tiebreak string
	Filters  []Filter
}

// Sortable reports whether key is on the resource's sort allow-list.
func (r Resource) Sortable(key string) bool {
	_, ok := r.sorts[key]
	return ok
}

// Articles is the article listing resource.
var Articles = Resource{
	Name: "articles",
	sorts: map[string]column{
		"author":        {"articles", "author"},
		"title":         {"articles", "title"},
		"article_id":    {"articles", "article_id"},
		"body":          {"articles", "body"},
		"topic":         {"articles", "topic"},
		"created_at":    {"articles", "created_at"},
		"votes":         {"articles", "votes"},
		"comment_count": {"", "comment_count"},
	},
	tiebreak: "article_id",
	Filters: []Filter{
		{Name: "author", Table: "articles", Column: "author"},
		{Name: "topic", Table: "articles", Column: "topic"},
		{Name: "article_id", Table: "articles", Column: "article_id", Numeric: true},
	},
}

// Comments is the comment listing resource.
var Comments = Resource{
	Name: "comments",
	sorts: map[string]column{
		"comment_id": {"comments", "comment_id"},
		"votes":      {"comments", "votes"},
		"created_at": {"comments", "created_at"},
		"author":     {"comments", "author"},
		"body":       {"comments", "body"},
	},
	tiebreak: "comment_id",
	Filters: []Filter{
		{Name: "article_id", Table: "comments", Column: "article_id", Numeric: true},
	},
}

// Params is a normalized listing request.
type Params struct {
	SortBy string
	Order  string
	Limit  int
	Page   int

	// Filters holds only present filters, keyed by filter name. Values are
	// string, or int64 for numeric filters.
	Filters map[string]any
}

// Desc reports whether the order is descending.
func (p Params) Desc() bool { return p.Order != OrderAsc }

// Offset returns (Page-1)*Limit, never negative.
func (p Params) Offset() int {
	if p.Page < 1 || p.Limit < 0 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// With returns a copy of p with the named filter set to v.
func (p Params) With(name string, v any) Params {
	out := p
	out.Filters = make(map[string]any, len(p.Filters)+1)
	for k, val := range p.Filters {
		out.Filters[k] = val
	}
	out.Filters[name] = v
	return out
}

// Defaults returns the parameters of a request that set nothing.
func Defaults() Params {
	return Params{
		SortBy:  DefaultSortBy,
		Order:   OrderDesc,
		Limit:   DefaultLimit,
		Page:    DefaultPage,
		Filters: map[string]any{},
	}
}

// Normalize validates and defaults raw query parameters for res:
//   - sort_by outside the allow-list → created_at
//   - order other than asc/desc → desc
//   - limit truncated toward zero; missing, non-numeric or negative → 10
//   - p truncated toward zero; missing, non-numeric or < 1 → 1
//   - a filter is present when its key was provided with a non-empty value
//
// The only error is a BadRequest for a numeric filter that is not an integer.
func Normalize(res Resource, q url.Values) (Params, error) {
	p := Defaults()

	if s := q.Get(ParamSortBy); res.Sortable(s) {
		p.SortBy = s
	}
	if o := q.Get(ParamOrder); o == OrderAsc || o == OrderDesc {
		p.Order = o
	}
	// the sign is checked before truncating so "-0.5" is negative, not 0
	if f, ok := utils.ParseNumber(q.Get(ParamLimit)); ok && f >= 0 {
		p.Limit = utils.Trunc(f)
	}
	if n, ok := utils.TruncNumber(q.Get(ParamPage)); ok && n >= 1 {
		p.Page = n
	}

	for _, f := range res.Filters {
		v := q.Get(f.Name)
		if v == "" {
			continue
		}
		if !f.Numeric {
			p.Filters[f.Name] = v
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, apperr.BadRequest("Invalid Request. " + f.Name + " must be numeric")
		}
		p.Filters[f.Name] = id
	}
	return p, nil
}
