package services

import (
	"testing"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPhoneService(db *gorm.DB) *PhoneService {
	return NewPhoneService(
		repository.NewPhoneRepository(db),
		repository.NewBusinessRepository(db),
		repository.NewReviewRepository(db),
		repository.NewEventRepository(db),
	)
}

func countEvents(t *testing.T, db *gorm.DB, eventType string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.Event{}).
		Where("event_type = ?", eventType).
		Count(&count).Error)
	return count
}

func TestDetailIncrementsAccessCount(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)
	phone := seedPhone(t, db, "0312345678", nil)
	seedBusiness(t, db, phone.ID, "グリーン薬局", "薬局", "東京都")

	detail, err := s.Detail("03-1234-5678", "")
	require.NoError(t, err)
	assert.Equal(t, phone.ID, detail.Phone.ID)
	require.NotNil(t, detail.Business)
	assert.Equal(t, "グリーン薬局", *detail.Business.Name)

	_, err = s.Detail("0312345678", "")
	require.NoError(t, err)

	var updated entity.PhoneNumber
	require.NoError(t, db.First(&updated, phone.ID).Error)
	assert.Equal(t, 2, updated.TotalAccessCount)
	assert.NotNil(t, updated.LastAccessAt)

	// 通常遷移は detail_view イベント
	assert.EqualValues(t, 2, countEvents(t, db, entity.EventTypeDetailView))
}

func TestDetailFromSearchRecordsSearchEvent(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)
	phone := seedPhone(t, db, "0312345678", nil)

	_, err := s.Detail("0312345678", "グリーン")
	require.NoError(t, err)

	var event entity.Event
	require.NoError(t, db.Where("event_type = ?", entity.EventTypeSearch).First(&event).Error)
	require.NotNil(t, event.Keyword)
	assert.Equal(t, "グリーン", *event.Keyword)
	require.NotNil(t, event.PhoneNumberID)
	assert.Equal(t, phone.ID, *event.PhoneNumberID)
	assert.EqualValues(t, 0, countEvents(t, db, entity.EventTypeDetailView))
}

func TestDetailUnknownNumber(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)

	// キーワードなしはイベントを残さず NotFound
	_, err := s.Detail("0999999999", "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualValues(t, 0, countEvents(t, db, entity.EventTypeSearch))

	// 検索経由なら番号IDなしの search イベントだけ残る
	_, err = s.Detail("0999999999", "0999999999")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	var event entity.Event
	require.NoError(t, db.Where("event_type = ?", entity.EventTypeSearch).First(&event).Error)
	assert.Nil(t, event.PhoneNumberID)
}

func TestDetailCarriesNumberMetadata(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)

	phone := entity.PhoneNumber{
		Number:      "0312345678",
		CountryCode: strPtr("+81"),
		AreaCode:    strPtr("03"),
		NumberType:  strPtr("fixed"),
		CarrierName: strPtr("NTT東日本"),
		Region:      strPtr("東京"),
	}
	require.NoError(t, db.Create(&phone).Error)

	detail, err := s.Detail("0312345678", "")
	require.NoError(t, err)
	require.NotNil(t, detail.Phone.AreaCode)
	assert.Equal(t, "03", *detail.Phone.AreaCode)
	require.NotNil(t, detail.Phone.NumberType)
	assert.Equal(t, "fixed", *detail.Phone.NumberType)
	require.NotNil(t, detail.Phone.CarrierName)
	assert.Equal(t, "NTT東日本", *detail.Phone.CarrierName)
	require.NotNil(t, detail.Phone.Region)
	assert.Equal(t, "東京", *detail.Phone.Region)
}

func TestDetailBackfillsDisplayNumber(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)
	seedPhone(t, db, "0312345678", nil)
	seedPhone(t, db, "08012345678", strPtr("080(1234)5678"))

	// 未設定ならハイフン整形で補完される
	detail, err := s.Detail("0312345678", "")
	require.NoError(t, err)
	require.NotNil(t, detail.Phone.DisplayNumber)
	assert.Equal(t, "03-1234-5678", *detail.Phone.DisplayNumber)

	// 登録済みの表示番号は上書きしない
	detail, err = s.Detail("08012345678", "")
	require.NoError(t, err)
	require.NotNil(t, detail.Phone.DisplayNumber)
	assert.Equal(t, "080(1234)5678", *detail.Phone.DisplayNumber)

	for _, p := range s.Recent(6) {
		assert.NotNil(t, p.DisplayNumber)
	}
}

func TestRecentOrdersByUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	s := newPhoneService(db)

	older := entity.PhoneNumber{Number: "0311111111", UpdatedAt: time.Now().Add(-time.Hour)}
	newer := entity.PhoneNumber{Number: "0322222222", UpdatedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	phones := s.Recent(6)
	require.Len(t, phones, 2)
	assert.Equal(t, "0322222222", phones[0].Number)

	assert.Len(t, s.Recent(1), 1)
}
