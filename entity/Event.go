package entity

import (
	"time"
)

// イベント種別
const (
	EventTypeSearch       = "search"
	EventTypeDetailView   = "detail_view"
	EventTypeReviewCreate = "review_create"
)

// ユーザー行動の追記専用ログ。ランキング・キーワード集計の唯一の入力。
type Event struct {
	ID            uint      `gorm:"primaryKey"`
	EventType     string    `gorm:"not null;index"`
	Keyword       *string
	PhoneNumberID *uint     `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
}
