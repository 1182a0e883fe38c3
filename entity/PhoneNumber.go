package entity

import (
	"time"
)

// 電話番号マスタ。集計列（アクセス数・口コミ数・平均評価）は
// サービス層が更新する非正規化キャッシュ。
type PhoneNumber struct {
	ID               uint   `gorm:"primaryKey"`
	Number           string `gorm:"not null;uniqueIndex"`
	CountryCode      *string
	AreaCode         *string
	ExchangeCode     *string
	SubscriberNumber *string
	NumberType       *string // fixed / mobile / toll_free / ip
	CarrierName      *string
	Region           *string
	DisplayNumber    *string
	TotalAccessCount int `gorm:"not null;default:0"`
	TotalReviewCount int `gorm:"not null;default:0"`
	AverageRating    *float64
	LastAccessAt     *time.Time
	LastReviewAt     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Business *Business `gorm:"foreignKey:PhoneNumberID"`
	Reviews  []Review  `gorm:"foreignKey:PhoneNumberID"`
}
