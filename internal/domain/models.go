// Package domain defines the persistence models for topics, users, articles
// and comments. These types are mapped with GORM and form the core data layer
// of the news API. The schema itself is owned by the SQL migrations in the
// repo package; the GORM tags here describe the mapping, not the DDL.
package domain

import "time"

// Topic is a subject area articles are filed under.
//
// Fields:
//   - Slug: primary key (topics_pkey), unique short name such as "cooking".
//   - Description: free text, required.
type Topic struct {
	Slug        string `json:"slug"        gorm:"column:slug;primaryKey"`
	Description string `json:"description" gorm:"column:description;not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments.
//
// Fields:
//   - Username: primary key (users_pkey).
//   - Name: display name, required.
//   - AvatarURL: optional avatar location; null when unset.
type User struct {
	Username  string  `json:"username"   gorm:"column:username;primaryKey"`
	Name      string  `json:"name"       gorm:"column:name;not null"`
	AvatarURL *string `json:"avatar_url" gorm:"column:avatar_url"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a news item posted by a user under a topic.
//
// Fields:
//   - ArticleID: generated primary key.
//   - Author: FK to users.username (articles_author_foreign).
//   - Topic: FK to topics.slug (articles_topic_foreign).
//   - CreatedAt: defaults to the insert time.
//   - Votes: running vote total, mutated only through atomic increments.
//   - CommentCount: derived at read time from the comments table; never
//     written and never migrated.
type Article struct {
	ArticleID    int64     `json:"article_id"    gorm:"column:article_id;primaryKey;autoIncrement"`
	Author       string    `json:"author"        gorm:"column:author;not null"`
	Title        string    `json:"title"         gorm:"column:title;not null"`
	Body         string    `json:"body"          gorm:"column:body;not null"`
	Topic        string    `json:"topic"         gorm:"column:topic;not null"`
	CreatedAt    time.Time `json:"created_at"    gorm:"column:created_at"`
	Votes        int       `json:"votes"         gorm:"column:votes;not null;default:0"`
	CommentCount int64     `json:"comment_count" gorm:"column:comment_count;->;-:migration"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a user's reply to an article. Comments are removed with their
// article (comments_article_id_foreign is ON DELETE CASCADE).
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id;not null;index"`
	Author    string    `json:"author"     gorm:"column:author;not null"`
	Body      string    `json:"body"       gorm:"column:body;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	Votes     int       `json:"votes"      gorm:"column:votes;not null;default:0"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
