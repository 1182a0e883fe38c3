package services

import (
	"log"
	"sort"
	"time"

	"github.com/sho11hei12-1998/Phone-Navi-App/entity"
	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
)

// ランキング1件分
type RankingItem struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Count       int     `json:"count"`
	PhoneNumber *string `json:"phoneNumber"`
}

// イベントログから週間ランキングを集計するサービス
type RankingService struct {
	eventRepo    *repository.EventRepository
	phoneRepo    *repository.PhoneRepository
	businessRepo *repository.BusinessRepository
}

func NewRankingService(eventRepo *repository.EventRepository, phoneRepo *repository.PhoneRepository, businessRepo *repository.BusinessRepository) *RankingService {
	return &RankingService{
		eventRepo:    eventRepo,
		phoneRepo:    phoneRepo,
		businessRepo: businessRepo,
	}
}

// 週間アクセスランキング。直近7日間の detail_view / search イベントを番号IDごとに集計する。
func (s *RankingService) WeeklyAccessRanking(limit int) []RankingItem {
	return s.weeklyRanking([]string{entity.EventTypeDetailView, entity.EventTypeSearch}, limit)
}

// 週間口コミランキング。直近7日間の review_create イベントを番号IDごとに集計する。
func (s *RankingService) WeeklyReviewRanking(limit int) []RankingItem {
	return s.weeklyRanking([]string{entity.EventTypeReviewCreate}, limit)
}

func (s *RankingService) weeklyRanking(eventTypes []string, limit int) []RankingItem {
	if limit < 1 {
		return []RankingItem{}
	}

	since := time.Now().AddDate(0, 0, -7)
	events, err := s.eventRepo.FindWithPhoneIDSince(eventTypes, since)
	if err != nil {
		// 読み取り系はエラー時に空のランキングへフォールバック
		log.Printf("ranking: event fetch failed: %v", err)
		return []RankingItem{}
	}

	// 番号IDごとにカウント
	countMap := make(map[uint]int)
	for _, e := range events {
		if e.PhoneNumberID != nil {
			countMap[*e.PhoneNumberID]++
		}
	}
	if len(countMap) == 0 {
		return []RankingItem{}
	}

	type counted struct {
		phoneNumberID uint
		count         int
	}
	sorted := make([]counted, 0, len(countMap))
	for id, count := range countMap {
		sorted = append(sorted, counted{phoneNumberID: id, count: count})
	}
	// カウント降順、同数なら番号ID昇順（結果を再現可能にするため）
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].phoneNumberID < sorted[j].phoneNumberID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ids := make([]uint, 0, len(sorted))
	for _, c := range sorted {
		ids = append(ids, c.phoneNumberID)
	}

	phones, err := s.phoneRepo.FindByIDs(ids)
	if err != nil {
		log.Printf("ranking: phone fetch failed: %v", err)
		return []RankingItem{}
	}
	phoneMap := make(map[uint]entity.PhoneNumber, len(phones))
	for _, p := range phones {
		phoneMap[p.ID] = p
	}

	businesses, err := s.businessRepo.FindByPhoneIDs(ids)
	if err != nil {
		log.Printf("ranking: business fetch failed: %v", err)
		businesses = nil
	}
	businessNameMap := make(map[uint]string)
	for _, b := range businesses {
		if b.Name != nil {
			businessNameMap[b.PhoneNumberID] = *b.Name
		}
	}

	// 表示名は 事業者名 > 生番号 > 不明 の順で決める
	ranking := make([]RankingItem, 0, len(sorted))
	for i, c := range sorted {
		item := RankingItem{Rank: i + 1, Count: c.count, Name: "不明"}
		if p, ok := phoneMap[c.phoneNumberID]; ok {
			number := p.Number
			item.PhoneNumber = &number
			item.Name = number
		}
		if name, ok := businessNameMap[c.phoneNumberID]; ok && name != "" {
			item.Name = name
		}
		ranking = append(ranking, item)
	}
	return ranking
}
