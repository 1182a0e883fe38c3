package entity

import (
	"time"
)

// 口コミ。物理削除はせず is_deleted で論理削除する。
type Review struct {
	ID            uint `gorm:"primaryKey"`
	PhoneNumberID uint `gorm:"not null;index"`
	CallSource    *string
	CallPurpose   *string
	Body          *string
	Rating        *int // 1-5、未評価は null
	IsDeleted     bool `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	PhoneNumber PhoneNumber `gorm:"foreignKey:PhoneNumberID"`
}
