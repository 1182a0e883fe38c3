package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/resp"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
)

type RankingController struct {
	rankingService *services.RankingService
}

func NewRankingController(rankingService *services.RankingService) *RankingController {
	return &RankingController{rankingService: rankingService}
}

// GET /api/rankings/access?limit=
func (rc *RankingController) Access(c *gin.Context) {
	resp.OK(c, rc.rankingService.WeeklyAccessRanking(rankingLimit(c)))
}

// GET /api/rankings/reviews?limit=
func (rc *RankingController) Reviews(c *gin.Context) {
	resp.OK(c, rc.rankingService.WeeklyReviewRanking(rankingLimit(c)))
}

func rankingLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return limit
}
