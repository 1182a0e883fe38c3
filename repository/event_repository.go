package repository

import (
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(event *entity.Event) error {
	return r.DB.Create(event).Error
}

// 指定期間以降の、電話番号IDを持つイベントを取得（ランキング集計用）
func (r *EventRepository) FindWithPhoneIDSince(eventTypes []string, since time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.
		Where("event_type IN ?", eventTypes).
		Where("created_at >= ?", since).
		Where("phone_number_id IS NOT NULL").
		Find(&events).Error
	return events, err
}

// キーワード付きの検索イベントを全件取得（人気キーワード集計用）
func (r *EventRepository) FindSearchKeywordEvents() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.
		Where("event_type = ?", entity.EventTypeSearch).
		Where("keyword IS NOT NULL").
		Find(&events).Error
	return events, err
}

// キーワード付きの検索イベントを新しい順に取得
func (r *EventRepository) FindLatestSearchKeywordEvents(limit int) ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.
		Where("event_type = ?", entity.EventTypeSearch).
		Where("keyword IS NOT NULL").
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
