package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"gorm.io/gorm"
)

// 口コミの投稿・一覧・集計値の再計算を担うサービス
type ReviewService struct {
	db         *gorm.DB
	reviewRepo *repository.ReviewRepository
	phoneRepo  *repository.PhoneRepository
	eventRepo  *repository.EventRepository
}

func NewReviewService(db *gorm.DB, reviewRepo *repository.ReviewRepository, phoneRepo *repository.PhoneRepository, eventRepo *repository.EventRepository) *ReviewService {
	return &ReviewService{
		db:         db,
		reviewRepo: reviewRepo,
		phoneRepo:  phoneRepo,
		eventRepo:  eventRepo,
	}
}

// Create は口コミを登録し、対象番号の total_review_count / average_rating を再計算する。
// 口コミ登録と再計算は同一トランザクションで行う。review_create イベントの追記は
// ベストエフォートで、失敗してもエラーにしない。
func (s *ReviewService) Create(phoneNumberID uint, callSource, callPurpose, body *string, rating *int) (*entity.Review, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrValidation)
	}

	// 投稿前に番号の存在を確認する
	if _, err := s.phoneRepo.FindByID(phoneNumberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: phone number %d", apperr.ErrNotFound, phoneNumberID)
		}
		return nil, err
	}

	review := &entity.Review{
		PhoneNumberID: phoneNumberID,
		CallSource:    callSource,
		CallPurpose:   callPurpose,
		Body:          body,
		Rating:        rating,
		IsDeleted:     false,
	}

	now := time.Now()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.recomputeAggregates(tx, phoneNumberID, &now)
	})
	if err != nil {
		return nil, err
	}

	// イベントログは分析用のため、失敗はログに残すのみ
	event := &entity.Event{
		EventType:     entity.EventTypeReviewCreate,
		PhoneNumberID: &phoneNumberID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		log.Printf("review: event append failed: %v", err)
	}

	return review, nil
}

// ListByPhoneID は論理削除されていない口コミを新しい順に返す
func (s *ReviewService) ListByPhoneID(phoneNumberID uint) ([]entity.Review, error) {
	return s.reviewRepo.FindActiveByPhoneID(s.db, phoneNumberID)
}

// CountByPhoneIDs は検索結果ページ用の有効口コミ数を返す
func (s *ReviewService) CountByPhoneIDs(phoneNumberIDs []uint) (map[uint]int64, error) {
	return s.reviewRepo.CountActiveByPhoneIDs(phoneNumberIDs)
}

// SoftDelete は口コミを論理削除し、集計値を再計算する（管理者用）。
// last_review_at は削除では更新しない。
func (s *ReviewService) SoftDelete(id uint) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review %d", apperr.ErrNotFound, id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.MarkDeleted(tx, review.ID); err != nil {
			return err
		}
		return s.recomputeAggregates(tx, review.PhoneNumberID, nil)
	})
}

// recomputeAggregates は有効口コミのうち評価付きのものから集計値を計算し直す。
// total_review_count は評価付き口コミの件数（評価なし投稿は数えない）。
func (s *ReviewService) recomputeAggregates(tx *gorm.DB, phoneNumberID uint, lastReviewAt *time.Time) error {
	reviews, err := s.reviewRepo.FindActiveByPhoneID(tx, phoneNumberID)
	if err != nil {
		return err
	}

	sum, ratedCount := 0, 0
	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		sum += *r.Rating
		ratedCount++
	}

	var averageRating *float64
	if ratedCount > 0 {
		avg := roundRating(float64(sum) / float64(ratedCount))
		averageRating = &avg
	}

	return s.phoneRepo.UpdateReviewAggregates(tx, phoneNumberID, ratedCount, averageRating, lastReviewAt)
}

// 小数第1位へ四捨五入（0.05 は切り上げ）
func roundRating(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
