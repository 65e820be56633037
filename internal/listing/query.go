package listing

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-api/internal/domain"
)

// Plan is a pair of queries built from the same filters: Page returns the
// sorted, paginated rows and Count returns the unpaginated total.
type Plan struct {
	Page  *gorm.DB
	Count *gorm.DB
}

// articleColumns is the select list of the article page query. comment_count
// is aggregated over the left-joined comments in the same statement.
const articleColumns = "articles.article_id, articles.author, articles.title, articles.body, " +
	"articles.topic, articles.created_at, articles.votes, " +
	"COUNT(comments.comment_id) AS comment_count"

const commentColumns = "comments.comment_id, comments.article_id, comments.author, " +
	"comments.body, comments.created_at, comments.votes"

// ArticlePlan builds the article listing queries for p.
//
//	SELECT articles.*, COUNT(comments.comment_id) AS comment_count
//	FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id
//	WHERE <present filters, AND-ed>
//	GROUP BY articles.article_id
//	ORDER BY <allow-listed column> <dir>, articles.article_id <dir>
//	LIMIT ? OFFSET ?
func ArticlePlan(db *gorm.DB, p Params) Plan {
	page := db.Model(&domain.Article{}).
		Select(articleColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
	page = paginate(order(where(page, Articles, p), Articles, p), p)

	count := where(db.Model(&domain.Article{}), Articles, p)
	return Plan{Page: page, Count: count}
}

// CommentPlan builds the comment listing queries for p.
func CommentPlan(db *gorm.DB, p Params) Plan {
	page := db.Model(&domain.Comment{}).Select(commentColumns)
	page = paginate(order(where(page, Comments, p), Comments, p), p)

	count := where(db.Model(&domain.Comment{}), Comments, p)
	return Plan{Page: page, Count: count}
}

// where applies every present filter of res as an equality predicate.
func where(q *gorm.DB, res Resource, p Params) *gorm.DB {
	for _, f := range res.Filters {
		v, ok := p.Filters[f.Name]
		if !ok {
			continue
		}
		q = q.Where(clause.Eq{
			Column: clause.Column{Table: f.Table, Name: f.Column},
			Value:  v,
		})
	}
	return q
}

// order resolves p.SortBy through the allow-list and appends the resource's
// primary key as a tiebreaker so pages are stable.
func order(q *gorm.DB, res Resource, p Params) *gorm.DB {
	key := p.SortBy
	col, ok := res.sorts[key]
	if !ok {
		key = DefaultSortBy
		col = res.sorts[key]
	}
	desc := p.Desc()
	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Table: col.table, Name: col.name},
		Desc:   desc,
	})
	if key != res.tiebreak {
		tb := res.sorts[res.tiebreak]
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Table: tb.table, Name: tb.name},
			Desc:   desc,
		})
	}
	return q
}

func paginate(q *gorm.DB, p Params) *gorm.DB {
	limit := p.Limit
	if limit < 0 {
		limit = DefaultLimit
	}
	return q.Offset(p.Offset()).Limit(limit)
}
