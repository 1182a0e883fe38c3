package services

import (
	"log"
	"sort"
	"strings"

	"github.com/sho11hei12-1998/Phone-Navi-App/repository"
)

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// 検索イベントのキーワードを集計するサービス
type KeywordService struct {
	eventRepo *repository.EventRepository
	search    *SearchService
}

func NewKeywordService(eventRepo *repository.EventRepository, search *SearchService) *KeywordService {
	return &KeywordService{eventRepo: eventRepo, search: search}
}

// 人気キーワード。全期間の search イベントをキーワード（trim後の完全一致）ごとに集計する。
func (s *KeywordService) PopularKeywords(limit int) []KeywordCount {
	if limit < 1 {
		return []KeywordCount{}
	}

	events, err := s.eventRepo.FindSearchKeywordEvents()
	if err != nil {
		log.Printf("keyword: event fetch failed: %v", err)
		return []KeywordCount{}
	}

	countMap := make(map[string]int)
	for _, e := range events {
		if e.Keyword == nil {
			continue
		}
		keyword := strings.TrimSpace(*e.Keyword)
		if keyword == "" {
			continue
		}
		countMap[keyword]++
	}

	sorted := make([]KeywordCount, 0, len(countMap))
	for keyword, count := range countMap {
		sorted = append(sorted, KeywordCount{Keyword: keyword, Count: count})
	}
	// カウント降順、同数ならキーワード昇順
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Keyword < sorted[j].Keyword
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// 人気キーワードのうち、現在も検索結果が1件以上あるものだけを返す。
// 候補ごとに検索を実行する N+1 のフィルタリングなので fetchLimit は控えめにすること。
func (s *KeywordService) PopularKeywordsWithResults(fetchLimit, displayLimit int) []KeywordCount {
	if displayLimit < 1 {
		return []KeywordCount{}
	}

	candidates := s.PopularKeywords(fetchLimit)
	filtered := make([]KeywordCount, 0, displayLimit)
	for _, candidate := range candidates {
		results := s.search.Search(candidate.Keyword)
		if len(results) == 0 {
			continue
		}
		filtered = append(filtered, candidate)
		if len(filtered) >= displayLimit {
			break
		}
	}
	return filtered
}

// 最新のキーワード。新しい順に重複を除外して limit 件返す。
// 重複除外で件数が減る分、3倍に多めに取得する。
func (s *KeywordService) LatestUniqueKeywords(limit int) []string {
	if limit < 1 {
		return []string{}
	}

	events, err := s.eventRepo.FindLatestSearchKeywordEvents(limit * 3)
	if err != nil {
		log.Printf("keyword: event fetch failed: %v", err)
		return []string{}
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, limit)
	for _, e := range events {
		if e.Keyword == nil {
			continue
		}
		keyword := strings.TrimSpace(*e.Keyword)
		if keyword == "" || seen[keyword] {
			continue
		}
		seen[keyword] = true
		unique = append(unique, keyword)
		if len(unique) >= limit {
			break
		}
	}
	return unique
}
