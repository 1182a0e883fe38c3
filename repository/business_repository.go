package repository

import (
	"errors"
	"strings"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/gorm"
)

type BusinessRepository struct {
	DB *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{DB: db}
}

// 電話番号IDに紐づく事業者を取得。未登録なら nil を返す（エラーにしない）
func (r *BusinessRepository) FindByPhoneID(phoneNumberID uint) (*entity.Business, error) {
	var business entity.Business
	err := r.DB.Where("phone_number_id = ?", phoneNumberID).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) FindByID(id uint) (*entity.Business, error) {
	var business entity.Business
	if err := r.DB.First(&business, id).Error; err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepository) FindByPhoneIDs(phoneNumberIDs []uint) ([]entity.Business, error) {
	var businesses []entity.Business
	if len(phoneNumberIDs) == 0 {
		return businesses, nil
	}
	err := r.DB.Where("phone_number_id IN ?", phoneNumberIDs).Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) SearchByName(keyword string) ([]entity.Business, error) {
	return r.searchByColumn("name", keyword)
}

func (r *BusinessRepository) SearchByAddress(keyword string) ([]entity.Business, error) {
	return r.searchByColumn("address", keyword)
}

func (r *BusinessRepository) SearchByIndustry(keyword string) ([]entity.Business, error) {
	return r.searchByColumn("industry", keyword)
}

// 大文字小文字を区別しない部分一致（Supabase の ilike 相当）
func (r *BusinessRepository) searchByColumn(column, keyword string) ([]entity.Business, error) {
	var businesses []entity.Business
	err := r.DB.
		Where("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(keyword))+"%").
		Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) Update(tx *gorm.DB, business *entity.Business) error {
	return tx.Save(business).Error
}
