package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/resp"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
)

type KeywordController struct {
	keywordService *services.KeywordService
}

func NewKeywordController(keywordService *services.KeywordService) *KeywordController {
	return &KeywordController{keywordService: keywordService}
}

// GET /api/keywords/popular?limit=
func (kc *KeywordController) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	resp.OK(c, kc.keywordService.PopularKeywords(limit))
}

// GET /api/keywords/popular-with-results
// 検索結果が残っているキーワードだけを返す（候補30件から最大16件）
func (kc *KeywordController) PopularWithResults(c *gin.Context) {
	resp.OK(c, kc.keywordService.PopularKeywordsWithResults(30, 16))
}

// GET /api/keywords/latest?limit=
func (kc *KeywordController) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	resp.OK(c, kc.keywordService.LatestUniqueKeywords(limit))
}
