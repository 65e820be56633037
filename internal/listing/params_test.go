package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-news-api/internal/apperr"
)

func TestNormalize_EmptyQueryGivesDefaults(t *testing.T) {
	p, err := Normalize(Articles, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
	assert.True(t, p.Desc())
	assert.Equal(t, 0, p.Offset())
}

func TestNormalize_SortAndOrder(t *testing.T) {
	cases := []struct {
		name      string
		res       Resource
		q         string
		wantSort  string
		wantOrder string
	}{
		{"allow-listed article key", Articles, "sort_by=votes&order=asc", "votes", OrderAsc},
		{"comment_count is sortable", Articles, "sort_by=comment_count", "comment_count", OrderDesc},
		{"unknown key falls back", Articles, "sort_by=password&order=desc", DefaultSortBy, OrderDesc},
		{"injection attempt falls back", Articles, "sort_by=votes%3BDROP%20TABLE%20articles", DefaultSortBy, OrderDesc},
		{"comments key on articles falls back", Articles, "sort_by=comment_id", DefaultSortBy, OrderDesc},
		{"comment key", Comments, "sort_by=comment_id&order=asc", "comment_id", OrderAsc},
		{"article-only key on comments falls back", Comments, "sort_by=title", DefaultSortBy, OrderDesc},
		{"order is case sensitive", Articles, "order=ASC", DefaultSortBy, OrderDesc},
		{"garbage order", Articles, "order=sideways", DefaultSortBy, OrderDesc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.q)
			require.NoError(t, err)
			p, err := Normalize(tc.res, q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSort, p.SortBy)
			assert.Equal(t, tc.wantOrder, p.Order)
		})
	}
}

func TestNormalize_LimitAndPage(t *testing.T) {
	cases := []struct {
		q          string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"limit=5&p=2", 5, 2, 5},
		{"limit=5.9&p=2.7", 5, 2, 5},
		{"limit=0", 0, 1, 0},
		{"limit=-3", DefaultLimit, 1, 0},
		{"limit=-0.5", DefaultLimit, 1, 0},
		{"limit=-0", 0, 1, 0},
		{"limit=0.5", 0, 1, 0},
		{"limit=abc&p=xyz", DefaultLimit, DefaultPage, 0},
		{"limit=&p=", DefaultLimit, DefaultPage, 0},
		{"limit=NaN&p=Inf", DefaultLimit, DefaultPage, 0},
		{"p=0", DefaultLimit, DefaultPage, 0},
		{"p=0.9", DefaultLimit, DefaultPage, 0},
		{"p=-4", DefaultLimit, DefaultPage, 0},
		{"limit=3&p=4", 3, 4, 9},
	}
	for _, tc := range cases {
		t.Run(tc.q, func(t *testing.T) {
			q, err := url.ParseQuery(tc.q)
			require.NoError(t, err)
			p, err := Normalize(Articles, q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantOffset, p.Offset())
		})
	}
}

func TestNormalize_Filters(t *testing.T) {
	q := url.Values{
		"author":     {"icellusedkars"},
		"topic":      {""},
		"article_id": {"3"},
		"unknown":    {"x"},
	}
	p, err := Normalize(Articles, q)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"author": "icellusedkars", "article_id": int64(3)}, p.Filters)
}

func TestNormalize_ZeroLikeFilterIsPresent(t *testing.T) {
	p, err := Normalize(Articles, url.Values{"topic": {"0"}})
	require.NoError(t, err)
	assert.Equal(t, "0", p.Filters["topic"])
}

func TestNormalize_NonNumericIDFilterIsBadRequest(t *testing.T) {
	_, err := Normalize(Comments, url.Values{"article_id": {"abc"}})
	require.Error(t, err)
	ae := apperr.Classify(err)
	assert.Equal(t, apperr.KindBadRequest, ae.Kind)
	assert.Equal(t, "Invalid Request. article_id must be numeric", ae.Msg)
}

func TestNormalize_IsDeterministic(t *testing.T) {
	q := url.Values{"sort_by": {"votes"}, "order": {"asc"}, "limit": {"7"}, "p": {"3"}, "author": {"rogersop"}}
	a, err := Normalize(Articles, q)
	require.NoError(t, err)
	b, err := Normalize(Articles, q)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParams_WithCopiesFilters(t *testing.T) {
	base := Defaults()
	base.Filters["author"] = "a"

	next := base.With("topic", "cats")
	assert.Equal(t, map[string]any{"author": "a"}, base.Filters)
	assert.Equal(t, map[string]any{"author": "a", "topic": "cats"}, next.Filters)
}

func TestResource_Sortable(t *testing.T) {
	assert.True(t, Articles.Sortable("comment_count"))
	assert.False(t, Comments.Sortable("comment_count"))
	assert.False(t, Articles.Sortable(""))
}
