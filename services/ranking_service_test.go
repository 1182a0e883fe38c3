package services

import (
	"testing"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRankingService(db *gorm.DB) *RankingService {
	return NewRankingService(
		repository.NewEventRepository(db),
		repository.NewPhoneRepository(db),
		repository.NewBusinessRepository(db),
	)
}

func seedEvent(t *testing.T, db *gorm.DB, eventType string, phoneNumberID *uint, keyword *string, createdAt time.Time) {
	t.Helper()
	event := entity.Event{
		EventType:     eventType,
		Keyword:       keyword,
		PhoneNumberID: phoneNumberID,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&event).Error)
}

func TestWeeklyAccessRanking(t *testing.T) {
	db := setupTestDB(t)
	s := newRankingService(db)

	phoneA := seedPhone(t, db, "0312345678", nil)
	phoneB := seedPhone(t, db, "0120984472", nil)
	seedBusiness(t, db, phoneB.ID, "株式会社グリーン・シップ", "調査", "東京都")

	now := time.Now()
	// phoneA: 3件（detail_view 2 + search 1）
	seedEvent(t, db, entity.EventTypeDetailView, &phoneA.ID, nil, now.Add(-time.Hour))
	seedEvent(t, db, entity.EventTypeDetailView, &phoneA.ID, nil, now.AddDate(0, 0, -6))
	seedEvent(t, db, entity.EventTypeSearch, &phoneA.ID, nil, now.Add(-2*time.Hour))
	// phoneB: 2件
	seedEvent(t, db, entity.EventTypeDetailView, &phoneB.ID, nil, now.Add(-time.Hour))
	seedEvent(t, db, entity.EventTypeSearch, &phoneB.ID, nil, now.Add(-time.Hour))
	// 窓の外（8日前）はカウントされない
	seedEvent(t, db, entity.EventTypeDetailView, &phoneA.ID, nil, now.AddDate(0, 0, -8))
	// review_create はアクセスランキングの対象外
	seedEvent(t, db, entity.EventTypeReviewCreate, &phoneB.ID, nil, now.Add(-time.Hour))

	ranking := s.WeeklyAccessRanking(10)
	require.Len(t, ranking, 2)

	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, 3, ranking[0].Count)
	assert.Equal(t, "0312345678", ranking[0].Name) // 事業者未登録は生番号で表示
	require.NotNil(t, ranking[0].PhoneNumber)
	assert.Equal(t, "0312345678", *ranking[0].PhoneNumber)

	assert.Equal(t, 2, ranking[1].Rank)
	assert.Equal(t, 2, ranking[1].Count)
	assert.Equal(t, "株式会社グリーン・シップ", ranking[1].Name) // 事業者名を優先
}

func TestWeeklyAccessRankingTieBreakAndLimit(t *testing.T) {
	db := setupTestDB(t)
	s := newRankingService(db)

	phoneA := seedPhone(t, db, "0311111111", nil)
	phoneB := seedPhone(t, db, "0322222222", nil)
	phoneC := seedPhone(t, db, "0333333333", nil)

	now := time.Now()
	for _, id := range []uint{phoneC.ID, phoneB.ID, phoneA.ID} {
		id := id
		seedEvent(t, db, entity.EventTypeDetailView, &id, nil, now.Add(-time.Hour))
	}

	// 同数のときは番号ID昇順
	ranking := s.WeeklyAccessRanking(10)
	require.Len(t, ranking, 3)
	assert.Equal(t, "0311111111", *ranking[0].PhoneNumber)
	assert.Equal(t, "0322222222", *ranking[1].PhoneNumber)
	assert.Equal(t, "0333333333", *ranking[2].PhoneNumber)

	// limit で切り詰められる
	assert.Len(t, s.WeeklyAccessRanking(2), 2)
}

func TestWeeklyReviewRanking(t *testing.T) {
	db := setupTestDB(t)
	s := newRankingService(db)

	phoneA := seedPhone(t, db, "0312345678", nil)
	phoneB := seedPhone(t, db, "0120984472", nil)

	now := time.Now()
	seedEvent(t, db, entity.EventTypeReviewCreate, &phoneA.ID, nil, now.Add(-time.Hour))
	seedEvent(t, db, entity.EventTypeReviewCreate, &phoneA.ID, nil, now.AddDate(0, 0, -6))
	seedEvent(t, db, entity.EventTypeReviewCreate, &phoneB.ID, nil, now.Add(-time.Hour))
	// アクセス系イベントは対象外
	seedEvent(t, db, entity.EventTypeDetailView, &phoneB.ID, nil, now.Add(-time.Hour))
	seedEvent(t, db, entity.EventTypeSearch, &phoneB.ID, nil, now.Add(-time.Hour))
	// 窓の外
	seedEvent(t, db, entity.EventTypeReviewCreate, &phoneB.ID, nil, now.AddDate(0, 0, -8))

	ranking := s.WeeklyReviewRanking(10)
	require.Len(t, ranking, 2)
	assert.Equal(t, 2, ranking[0].Count)
	assert.Equal(t, "0312345678", ranking[0].Name)
	assert.Equal(t, 1, ranking[1].Count)
}

func TestWeeklyRankingEmptyEvents(t *testing.T) {
	db := setupTestDB(t)
	s := newRankingService(db)

	assert.Empty(t, s.WeeklyAccessRanking(10))
	assert.Empty(t, s.WeeklyReviewRanking(10))
	assert.Empty(t, s.WeeklyAccessRanking(0))
}
