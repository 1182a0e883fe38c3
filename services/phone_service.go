package services

import (
	"fmt"
	"log"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
	"github.com/sho11hei12-1998/Phone-Navi-App/utils"
)

// 番号詳細ページ1件分
type PhoneDetail struct {
	Phone    entity.PhoneNumber `json:"phone"`
	Business *entity.Business   `json:"business"`
	Reviews  []entity.Review    `json:"reviews"`
}

// 電話番号の参照系とアクセスカウントを担うサービス
type PhoneService struct {
	phoneRepo    *repository.PhoneRepository
	businessRepo *repository.BusinessRepository
	reviewRepo   *repository.ReviewRepository
	eventRepo    *repository.EventRepository
}

func NewPhoneService(phoneRepo *repository.PhoneRepository, businessRepo *repository.BusinessRepository, reviewRepo *repository.ReviewRepository, eventRepo *repository.EventRepository) *PhoneService {
	return &PhoneService{
		phoneRepo:    phoneRepo,
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		eventRepo:    eventRepo,
	}
}

// Detail は番号詳細を返し、アクセス数のインクリメントとイベント追記を行う。
// searchKeyword があれば検索経由の遷移として search イベントを記録する。
// 番号が未登録でも、検索キーワードがあれば search イベント（番号IDなし）だけは残す。
func (s *PhoneService) Detail(number, searchKeyword string) (*PhoneDetail, error) {
	cleanNumber := utils.NormalizeNumber(number)

	phone, err := s.phoneRepo.FindByNumber(cleanNumber)
	if err != nil {
		if searchKeyword != "" {
			s.appendEvent(entity.EventTypeSearch, &searchKeyword, nil)
		}
		return nil, fmt.Errorf("%w: phone number %s", apperr.ErrNotFound, cleanNumber)
	}

	if err := s.phoneRepo.IncrementAccessCount(phone.ID, time.Now()); err != nil {
		log.Printf("phone: access increment failed: %v", err)
	}

	if searchKeyword != "" {
		s.appendEvent(entity.EventTypeSearch, &searchKeyword, &phone.ID)
	} else {
		s.appendEvent(entity.EventTypeDetailView, nil, &phone.ID)
	}

	business, err := s.businessRepo.FindByPhoneID(phone.ID)
	if err != nil {
		log.Printf("phone: business fetch failed: %v", err)
	}

	reviews, err := s.reviewRepo.FindActiveByPhoneID(s.phoneRepo.DB, phone.ID)
	if err != nil {
		log.Printf("phone: review fetch failed: %v", err)
		reviews = []entity.Review{}
	}

	fillDisplayNumber(phone)
	return &PhoneDetail{Phone: *phone, Business: business, Reviews: reviews}, nil
}

// Recent は最近更新された番号を返す
func (s *PhoneService) Recent(limit int) []entity.PhoneNumber {
	if limit < 1 {
		limit = 6
	}
	phones, err := s.phoneRepo.FindRecent(limit)
	if err != nil {
		log.Printf("phone: recent fetch failed: %v", err)
		return []entity.PhoneNumber{}
	}
	for i := range phones {
		fillDisplayNumber(&phones[i])
	}
	return phones
}

// RecordSearchEvent は検索実行を記録する（検索結果ページから呼ばれる）
func (s *PhoneService) RecordSearchEvent(keyword string) {
	if keyword == "" {
		return
	}
	s.appendEvent(entity.EventTypeSearch, &keyword, nil)
}

// 表示用番号が未設定の行はハイフン整形で補完する（保存はしない）
func fillDisplayNumber(p *entity.PhoneNumber) {
	if p.DisplayNumber == nil {
		formatted := utils.FormatNumber(p.Number)
		p.DisplayNumber = &formatted
	}
}

func (s *PhoneService) appendEvent(eventType string, keyword *string, phoneNumberID *uint) {
	event := &entity.Event{
		EventType:     eventType,
		Keyword:       keyword,
		PhoneNumberID: phoneNumberID,
	}
	if err := s.eventRepo.Create(event); err != nil {
		log.Printf("phone: event append failed: %v", err)
	}
}
