package services

import (
	"testing"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBusinessService(db *gorm.DB) *BusinessService {
	return NewBusinessService(
		db,
		repository.NewBusinessRepository(db),
		repository.NewUpdateRequestRepository(db),
	)
}

func TestSubmitUpdateRequest(t *testing.T) {
	db := setupTestDB(t)
	s := newBusinessService(db)
	phone := seedPhone(t, db, "0312345678", nil)
	business := seedBusiness(t, db, phone.ID, "旧店名", "飲食", "東京都")

	request, err := s.SubmitUpdateRequest(phone.ID, UpdateRequestInput{
		Name:    "新店名",
		Address: " 東京都渋谷区 ",
	})
	require.NoError(t, err)
	assert.Equal(t, business.ID, request.BusinessID)
	assert.Equal(t, entity.UpdateRequestStatusPending, request.Status)
	require.NotNil(t, request.Address)
	assert.Equal(t, "東京都渋谷区", *request.Address) // trim される
	assert.Nil(t, request.Industry)
}

func TestSubmitUpdateRequestValidation(t *testing.T) {
	db := setupTestDB(t)
	s := newBusinessService(db)
	phone := seedPhone(t, db, "0312345678", nil)
	seedBusiness(t, db, phone.ID, "旧店名", "", "")

	// 事業者名は必須
	_, err := s.SubmitUpdateRequest(phone.ID, UpdateRequestInput{Name: "  "})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// 事業者未登録の番号には受け付けない
	orphan := seedPhone(t, db, "0120984472", nil)
	_, err = s.SubmitUpdateRequest(orphan.ID, UpdateRequestInput{Name: "新店名"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestApproveUpdateRequest(t *testing.T) {
	db := setupTestDB(t)
	s := newBusinessService(db)
	phone := seedPhone(t, db, "0312345678", nil)
	seedBusiness(t, db, phone.ID, "旧店名", "飲食", "東京都")

	request, err := s.SubmitUpdateRequest(phone.ID, UpdateRequestInput{
		Name:       "新店名",
		PostalCode: "150-0001",
	})
	require.NoError(t, err)

	require.NoError(t, s.ApproveUpdateRequest(request.ID))

	// 値のある項目だけ上書きされる
	updated, err := s.GetByPhoneID(phone.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "新店名", *updated.Name)
	assert.Equal(t, "150-0001", *updated.PostalCode)
	assert.Equal(t, "飲食", *updated.Industry) // 未指定の項目は保持

	// 承認済みになり、二重承認はエラー
	requests, err := s.ListUpdateRequests(entity.UpdateRequestStatusApproved)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.ErrorIs(t, s.ApproveUpdateRequest(request.ID), apperr.ErrValidation)
}

func TestRejectUpdateRequest(t *testing.T) {
	db := setupTestDB(t)
	s := newBusinessService(db)
	phone := seedPhone(t, db, "0312345678", nil)
	seedBusiness(t, db, phone.ID, "旧店名", "", "")

	request, err := s.SubmitUpdateRequest(phone.ID, UpdateRequestInput{Name: "新店名"})
	require.NoError(t, err)

	require.NoError(t, s.RejectUpdateRequest(request.ID))

	// 却下しても事業者情報は変わらない
	business, err := s.GetByPhoneID(phone.ID)
	require.NoError(t, err)
	assert.Equal(t, "旧店名", *business.Name)

	pending, err := s.ListUpdateRequests(entity.UpdateRequestStatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, s.RejectUpdateRequest(999), apperr.ErrNotFound)
}
