package entity

import (
	"time"
)

// 事業者情報。1つの電話番号につき最大1件。未登録は「登録なし」扱い。
type Business struct {
	ID             uint `gorm:"primaryKey"`
	PhoneNumberID  uint `gorm:"not null;uniqueIndex"`
	Name           *string
	Industry       *string
	PostalCode     *string
	Address        *string
	ContactTel     *string
	NearestStation *string
	AccessInfo     *string
	WebsiteURL     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
