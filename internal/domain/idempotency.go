package domain

import "time"

// Idempotency records the outcome of a create request that carried an
// Idempotency-Key, keyed by (scope, key). A replay inside the TTL returns the
// recorded resource instead of creating a second one.
//
// Scope identifies the collection the key applies to, for example
// "articles/3/comments", so the same key may be reused across articles.
type Idempotency struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Scope      string    `gorm:"column:scope;not null;uniqueIndex:ux_idempotency_scope_key,priority:1"`
	Key        string    `gorm:"column:key;not null;uniqueIndex:ux_idempotency_scope_key,priority:2"`
	ResourceID int64     `gorm:"column:resource_id;not null"`
	Status     int       `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
