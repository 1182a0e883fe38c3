package repository

import (
	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, review *entity.Review) error {
	return tx.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// 論理削除されていない口コミを新しい順に取得
func (r *ReviewRepository) FindActiveByPhoneID(tx *gorm.DB, phoneNumberID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := tx.
		Where("phone_number_id = ? AND is_deleted = ?", phoneNumberID, false).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// 検索結果ページ用：番号IDごとの有効口コミ数
func (r *ReviewRepository) CountActiveByPhoneIDs(phoneNumberIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(phoneNumberIDs) == 0 {
		return counts, nil
	}

	type row struct {
		PhoneNumberID uint
		Cnt           int64
	}
	var rows []row
	err := r.DB.Model(&entity.Review{}).
		Select("phone_number_id, COUNT(*) AS cnt").
		Where("phone_number_id IN ? AND is_deleted = ?", phoneNumberIDs, false).
		Group("phone_number_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.PhoneNumberID] = r.Cnt
	}
	return counts, nil
}

func (r *ReviewRepository) MarkDeleted(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Review{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
