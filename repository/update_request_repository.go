package repository

import (
	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"gorm.io/gorm"
)

type UpdateRequestRepository struct {
	DB *gorm.DB
}

func NewUpdateRequestRepository(db *gorm.DB) *UpdateRequestRepository {
	return &UpdateRequestRepository{DB: db}
}

func (r *UpdateRequestRepository) Create(request *entity.BusinessUpdateRequest) error {
	return r.DB.Create(request).Error
}

func (r *UpdateRequestRepository) FindByID(id uint) (*entity.BusinessUpdateRequest, error) {
	var request entity.BusinessUpdateRequest
	if err := r.DB.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// status 指定がなければ全件を新しい順に返す
func (r *UpdateRequestRepository) FindByStatus(status string) ([]entity.BusinessUpdateRequest, error) {
	var requests []entity.BusinessUpdateRequest
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&requests).Error
	return requests, err
}

func (r *UpdateRequestRepository) UpdateStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.BusinessUpdateRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}
