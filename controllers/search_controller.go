package controllers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/resp"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
)

type SearchController struct {
	searchService *services.SearchService
	reviewService *services.ReviewService
	phoneService  *services.PhoneService
}

func NewSearchController(searchService *services.SearchService, reviewService *services.ReviewService, phoneService *services.PhoneService) *SearchController {
	return &SearchController{
		searchService: searchService,
		reviewService: reviewService,
		phoneService:  phoneService,
	}
}

type searchResultItem struct {
	services.SearchResult
	ReviewCount int64 `json:"reviewCount"`
}

// GET /api/search?q=
// 検索を実行し、search イベントを記録する
func (sc *SearchController) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))
	if keyword == "" {
		resp.BadRequest(c, "query parameter q is required")
		return
	}

	results := sc.searchService.Search(keyword)
	sc.phoneService.RecordSearchEvent(keyword)

	// 各結果に有効口コミ数を付与する
	phoneIDs := make([]uint, 0, len(results))
	for _, r := range results {
		phoneIDs = append(phoneIDs, r.Phone.ID)
	}
	counts, err := sc.reviewService.CountByPhoneIDs(phoneIDs)
	if err != nil {
		log.Printf("search: review count failed: %v", err)
		counts = map[uint]int64{}
	}

	items := make([]searchResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, searchResultItem{SearchResult: r, ReviewCount: counts[r.Phone.ID]})
	}
	resp.OK(c, gin.H{"keyword": keyword, "total": len(items), "items": items})
}
