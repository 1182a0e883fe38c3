package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"gorm.io/gorm"
)

// 更新リクエストの入力値
type UpdateRequestInput struct {
	Name           string
	Industry       string
	PostalCode     string
	Address        string
	ContactTel     string
	NearestStation string
	AccessInfo     string
	WebsiteURL     string
	RequestedBy    string
}

// 事業者情報と更新リクエストのワークフローを担うサービス
type BusinessService struct {
	db           *gorm.DB
	businessRepo *repository.BusinessRepository
	requestRepo  *repository.UpdateRequestRepository
}

func NewBusinessService(db *gorm.DB, businessRepo *repository.BusinessRepository, requestRepo *repository.UpdateRequestRepository) *BusinessService {
	return &BusinessService{
		db:           db,
		businessRepo: businessRepo,
		requestRepo:  requestRepo,
	}
}

func (s *BusinessService) GetByPhoneID(phoneNumberID uint) (*entity.Business, error) {
	return s.businessRepo.FindByPhoneID(phoneNumberID)
}

// SubmitUpdateRequest は事業者情報の更新リクエストを pending で登録する。
// 既存の事業者情報がある番号に対してのみ受け付ける（元のフォームと同じ制約）。
func (s *BusinessService) SubmitUpdateRequest(phoneNumberID uint, input UpdateRequestInput) (*entity.BusinessUpdateRequest, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}

	business, err := s.businessRepo.FindByPhoneID(phoneNumberID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("%w: no business registered for phone number %d", apperr.ErrNotFound, phoneNumberID)
	}

	request := &entity.BusinessUpdateRequest{
		BusinessID:     business.ID,
		Name:           trimmedOrNil(input.Name),
		Industry:       trimmedOrNil(input.Industry),
		PostalCode:     trimmedOrNil(input.PostalCode),
		Address:        trimmedOrNil(input.Address),
		ContactTel:     trimmedOrNil(input.ContactTel),
		NearestStation: trimmedOrNil(input.NearestStation),
		AccessInfo:     trimmedOrNil(input.AccessInfo),
		WebsiteURL:     trimmedOrNil(input.WebsiteURL),
		RequestedBy:    trimmedOrNil(input.RequestedBy),
		Status:         entity.UpdateRequestStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *BusinessService) ListUpdateRequests(status string) ([]entity.BusinessUpdateRequest, error) {
	return s.requestRepo.FindByStatus(status)
}

// ApproveUpdateRequest はリクエストの内容を事業者情報へ反映し、承認済みにする。
// 反映とステータス更新は同一トランザクションで行う。
func (s *BusinessService) ApproveUpdateRequest(id uint) error {
	request, err := s.findPendingRequest(id)
	if err != nil {
		return err
	}

	business, err := s.businessRepo.FindByID(request.BusinessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: business %d", apperr.ErrNotFound, request.BusinessID)
		}
		return err
	}

	// 値が入っている項目だけ上書きする
	applyField(&business.Name, request.Name)
	applyField(&business.Industry, request.Industry)
	applyField(&business.PostalCode, request.PostalCode)
	applyField(&business.Address, request.Address)
	applyField(&business.ContactTel, request.ContactTel)
	applyField(&business.NearestStation, request.NearestStation)
	applyField(&business.AccessInfo, request.AccessInfo)
	applyField(&business.WebsiteURL, request.WebsiteURL)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.businessRepo.Update(tx, business); err != nil {
			return err
		}
		return s.requestRepo.UpdateStatus(tx, request.ID, entity.UpdateRequestStatusApproved)
	})
}

func (s *BusinessService) RejectUpdateRequest(id uint) error {
	request, err := s.findPendingRequest(id)
	if err != nil {
		return err
	}
	return s.requestRepo.UpdateStatus(s.db, request.ID, entity.UpdateRequestStatusRejected)
}

func (s *BusinessService) findPendingRequest(id uint) (*entity.BusinessUpdateRequest, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: update request %d", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	if request.Status != entity.UpdateRequestStatusPending {
		return nil, fmt.Errorf("%w: update request %d is already %s", apperr.ErrValidation, id, request.Status)
	}
	return request, nil
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func applyField(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}
