package repository

import (
	"strings"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/gorm"
)

type PhoneRepository struct {
	DB *gorm.DB
}

func NewPhoneRepository(db *gorm.DB) *PhoneRepository {
	return &PhoneRepository{DB: db}
}

func (r *PhoneRepository) FindByID(id uint) (*entity.PhoneNumber, error) {
	var phone entity.PhoneNumber
	if err := r.DB.First(&phone, id).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

// ハイフンなしの生番号で検索
func (r *PhoneRepository) FindByNumber(number string) (*entity.PhoneNumber, error) {
	var phone entity.PhoneNumber
	if err := r.DB.Where("number = ?", number).First(&phone).Error; err != nil {
		return nil, err
	}
	return &phone, nil
}

func (r *PhoneRepository) FindByIDs(ids []uint) ([]entity.PhoneNumber, error) {
	var phones []entity.PhoneNumber
	if len(ids) == 0 {
		return phones, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&phones).Error
	return phones, err
}

// number / display_number の部分一致検索（大文字小文字は区別しない）
func (r *PhoneRepository) SearchByNumber(digits, keyword string) ([]entity.PhoneNumber, error) {
	var phones []entity.PhoneNumber
	err := r.DB.
		Where("number LIKE ? ESCAPE '\\' OR LOWER(display_number) LIKE ? ESCAPE '\\'",
			"%"+escapeLike(digits)+"%", "%"+escapeLike(strings.ToLower(keyword))+"%").
		Find(&phones).Error
	return phones, err
}

func (r *PhoneRepository) FindRecent(limit int) ([]entity.PhoneNumber, error) {
	var phones []entity.PhoneNumber
	err := r.DB.Order("updated_at DESC").Limit(limit).Find(&phones).Error
	return phones, err
}

// アクセス数をストア側でアトミックにインクリメントする
func (r *PhoneRepository) IncrementAccessCount(id uint, now time.Time) error {
	return r.DB.Model(&entity.PhoneNumber{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_access_count": gorm.Expr("total_access_count + ?", 1),
			"last_access_at":     now,
		}).Error
}

// 口コミ集計値を更新する。lastReviewAt が nil のときは last_review_at を変更しない。
func (r *PhoneRepository) UpdateReviewAggregates(tx *gorm.DB, id uint, reviewCount int, averageRating *float64, lastReviewAt *time.Time) error {
	updates := map[string]any{
		"total_review_count": reviewCount,
		"average_rating":     averageRating,
	}
	if lastReviewAt != nil {
		updates["last_review_at"] = *lastReviewAt
	}
	return tx.Model(&entity.PhoneNumber{}).
		Where("id = ?", id).
		Updates(updates).Error
}
