package entity

import (
	"time"
)

// 更新リクエストのステータス
const (
	UpdateRequestStatusPending  = "pending"
	UpdateRequestStatusApproved = "approved"
	UpdateRequestStatusRejected = "rejected"
)

// 事業者情報の更新リクエスト。管理者が承認すると businesses に反映される。
type BusinessUpdateRequest struct {
	ID             uint `gorm:"primaryKey"`
	BusinessID     uint `gorm:"not null;index"`
	Name           *string
	Industry       *string
	PostalCode     *string
	Address        *string
	ContactTel     *string
	NearestStation *string
	AccessInfo     *string
	WebsiteURL     *string
	RequestedBy    *string
	Status         string `gorm:"not null;default:pending;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Business Business `gorm:"foreignKey:BusinessID"`
}
