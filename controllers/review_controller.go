package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/apperr"
	"github.com/sho11hei12-1998/Phone-Navi-App/pkg/resp"
	"github.com/sho11hei12-1998/Phone-Navi-App/services"
	"github.com/sho11hei12-1998/Phone-Navi-App/utils"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ===== DTO =====

type CreateReviewReq struct {
	PhoneNumberID uint    `json:"phoneNumberId" binding:"required"`
	CallSource    *string `json:"callSource"`
	CallPurpose   *string `json:"callPurpose"`
	Body          *string `json:"body"`
	Rating        *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ===== Handlers =====

// POST /api/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.reviewService.Create(req.PhoneNumberID, req.CallSource, req.CallPurpose, req.Body, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			resp.NotFound(c, "phone number not found")
		case errors.Is(err, apperr.ErrValidation):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, review)
}

// DELETE /admin/reviews/:id（論理削除）
func (rc *ReviewController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid review id")
		return
	}

	if err := rc.reviewService.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			resp.NotFound(c, "review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	// 監査ログ
	log.Printf("review %d soft-deleted by admin %d", id, utils.CurrentAdminID(c))
	resp.OK(c, gin.H{"deleted": id})
}
