package services

import (
	"fmt"
	"testing"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テストごとに独立した in-memory DB を用意する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "DB接続失敗")

	err = db.AutoMigrate(
		&entity.PhoneNumber{},
		&entity.Business{},
		&entity.Review{},
		&entity.Event{},
		&entity.BusinessUpdateRequest{},
		&entity.Admin{},
	)
	require.NoError(t, err, "マイグレーション失敗")
	return db
}

func seedPhone(t *testing.T, db *gorm.DB, number string, displayNumber *string) entity.PhoneNumber {
	t.Helper()
	phone := entity.PhoneNumber{Number: number, DisplayNumber: displayNumber}
	require.NoError(t, db.Create(&phone).Error)
	return phone
}

func seedBusiness(t *testing.T, db *gorm.DB, phoneNumberID uint, name, industry, address string) entity.Business {
	t.Helper()
	business := entity.Business{
		PhoneNumberID: phoneNumberID,
		Name:          strPtr(name),
		Industry:      strPtr(industry),
		Address:       strPtr(address),
	}
	require.NoError(t, db.Create(&business).Error)
	return business
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(n int) *int { return &n }
