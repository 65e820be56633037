// Package seed loads development and test fixtures into the database.
//
// Fixtures are YAML documents shaped the way the data was originally
// authored: timestamps are Unix milliseconds, comments name their article by
// title (belongs_to) and their author as created_by. Seed normalises them
// into the storage shape before inserting.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/domain"
)

//go:embed data.yaml
var defaultData []byte

// TopicFixture is a topic as authored in the fixture file.
type TopicFixture struct {
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

// UserFixture is a user as authored in the fixture file.
type UserFixture struct {
	Username  string  `yaml:"username"`
	Name      string  `yaml:"name"`
	AvatarURL *string `yaml:"avatar_url"`
}

// ArticleFixture is an article as authored; CreatedAt is in Unix ms.
type ArticleFixture struct {
	Title     string `yaml:"title"`
	Topic     string `yaml:"topic"`
	Author    string `yaml:"author"`
	Body      string `yaml:"body"`
	CreatedAt int64  `yaml:"created_at"`
	Votes     int    `yaml:"votes"`
}

// CommentFixture is a comment as authored: BelongsTo is an article title and
// CreatedBy a username.
type CommentFixture struct {
	Body      string `yaml:"body"`
	BelongsTo string `yaml:"belongs_to"`
	CreatedBy string `yaml:"created_by"`
	Votes     int    `yaml:"votes"`
	CreatedAt int64  `yaml:"created_at"`
}

// Fixtures is a complete data set.
type Fixtures struct {
	Topics   []TopicFixture   `yaml:"topics"`
	Users    []UserFixture    `yaml:"users"`
	Articles []ArticleFixture `yaml:"articles"`
	Comments []CommentFixture `yaml:"comments"`
}

// Default returns the embedded development data set.
func Default() (*Fixtures, error) {
	return Parse(defaultData)
}

// Parse decodes a YAML fixture document.
func Parse(b []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

// Load decodes fixtures from r.
func Load(r io.Reader) (*Fixtures, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(b)
}

// LoadFile decodes fixtures from the file at path.
func LoadFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// MillisToTime converts a Unix millisecond timestamp to UTC.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// TitleIDs pairs every article title with its generated id.
func TitleIDs(articles []domain.Article) map[string]int64 {
	out := make(map[string]int64, len(articles))
	for _, a := range articles {
		out[a.Title] = a.ArticleID
	}
	return out
}

// Articles converts article fixtures to rows ready for insert.
func Articles(in []ArticleFixture) []domain.Article {
	out := make([]domain.Article, 0, len(in))
	for _, a := range in {
		out = append(out, domain.Article{
			Author:    a.Author,
			Title:     a.Title,
			Body:      a.Body,
			Topic:     a.Topic,
			CreatedAt: MillisToTime(a.CreatedAt),
			Votes:     a.Votes,
		})
	}
	return out
}

// Comments converts comment fixtures to rows, resolving belongs_to through
// titles and renaming created_by to author. An unknown title is an error.
func Comments(in []CommentFixture, titles map[string]int64) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0, len(in))
	for i, c := range in {
		id, ok := titles[c.BelongsTo]
		if !ok {
			return nil, fmt.Errorf("comment %d: no article titled %q", i, c.BelongsTo)
		}
		out = append(out, domain.Comment{
			ArticleID: id,
			Author:    c.CreatedBy,
			Body:      c.Body,
			CreatedAt: MillisToTime(c.CreatedAt),
			Votes:     c.Votes,
		})
	}
	return out, nil
}

// Seed replaces the contents of the news tables with fx inside a single
// transaction. Generated ids restart at 1, so fixture order decides ids.
func Seed(ctx context.Context, db *gorm.DB, fx *Fixtures) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := truncate(tx); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}

		topics := make([]domain.Topic, 0, len(fx.Topics))
		for _, t := range fx.Topics {
			topics = append(topics, domain.Topic{Slug: t.Slug, Description: t.Description})
		}
		if len(topics) > 0 {
			if err := tx.Create(&topics).Error; err != nil {
				return fmt.Errorf("insert topics: %w", err)
			}
		}

		users := make([]domain.User, 0, len(fx.Users))
		for _, u := range fx.Users {
			users = append(users, domain.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL})
		}
		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}

		// one row at a time so ids follow fixture order on every driver
		articles := Articles(fx.Articles)
		for i := range articles {
			if err := tx.Create(&articles[i]).Error; err != nil {
				return fmt.Errorf("insert article %q: %w", articles[i].Title, err)
			}
		}

		comments, err := Comments(fx.Comments, TitleIDs(articles))
		if err != nil {
			return err
		}
		if len(comments) > 0 {
			if err := tx.CreateInBatches(&comments, 100).Error; err != nil {
				return fmt.Errorf("insert comments: %w", err)
			}
		}
		return nil
	})
}

func truncate(tx *gorm.DB) error {
	if tx.Dialector.Name() == "postgres" {
		return tx.Exec(`TRUNCATE comments, articles, users, topics, idempotency RESTART IDENTITY CASCADE`).Error
	}
	for _, tbl := range []string{"comments", "articles", "users", "topics", "idempotency"} {
		if err := tx.Exec("DELETE FROM " + tbl).Error; err != nil {
			return err
		}
	}
	return tx.Exec(`DELETE FROM sqlite_sequence WHERE name IN ('articles', 'comments')`).Error
}
