package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/resp"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
)

type PhoneController struct {
	phoneService *services.PhoneService
}

func NewPhoneController(phoneService *services.PhoneService) *PhoneController {
	return &PhoneController{phoneService: phoneService}
}

// GET /api/phones/recent?limit=
func (pc *PhoneController) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit <= 0 || limit > 50 {
		limit = 6
	}
	resp.OK(c, pc.phoneService.Recent(limit))
}

// GET /api/phones/:number?q=
// 詳細閲覧としてアクセス数のインクリメントとイベント記録を行う
func (pc *PhoneController) Detail(c *gin.Context) {
	number := c.Param("number")
	searchKeyword := c.Query("q")

	detail, err := pc.phoneService.Detail(number, searchKeyword)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			resp.NotFound(c, "phone number not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}
