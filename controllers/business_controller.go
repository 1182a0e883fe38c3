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

type BusinessController struct {
	businessService *services.BusinessService
}

func NewBusinessController(businessService *services.BusinessService) *BusinessController {
	return &BusinessController{businessService: businessService}
}

// ===== DTO =====

type SubmitUpdateRequestReq struct {
	PhoneNumberID  uint   `json:"phoneNumberId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Industry       string `json:"industry"`
	PostalCode     string `json:"postalCode"`
	Address        string `json:"address"`
	ContactTel     string `json:"contactTel"`
	NearestStation string `json:"nearestStation"`
	AccessInfo     string `json:"accessInfo"`
	WebsiteURL     string `json:"websiteUrl"`
	RequestedBy    string `json:"requestedBy"`
}

// ===== Handlers =====

// POST /api/business-update-requests
func (bc *BusinessController) SubmitUpdateRequest(c *gin.Context) {
	var req SubmitUpdateRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	request, err := bc.businessService.SubmitUpdateRequest(req.PhoneNumberID, services.UpdateRequestInput{
		Name:           req.Name,
		Industry:       req.Industry,
		PostalCode:     req.PostalCode,
		Address:        req.Address,
		ContactTel:     req.ContactTel,
		NearestStation: req.NearestStation,
		AccessInfo:     req.AccessInfo,
		WebsiteURL:     req.WebsiteURL,
		RequestedBy:    req.RequestedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			resp.NotFound(c, "business not registered for this phone number")
		case errors.Is(err, apperr.ErrValidation):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, request)
}

// GET /admin/business-update-requests?status=pending
func (bc *BusinessController) ListUpdateRequests(c *gin.Context) {
	requests, err := bc.businessService.ListUpdateRequests(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, requests)
}

// PATCH /admin/business-update-requests/:id/approve
func (bc *BusinessController) ApproveUpdateRequest(c *gin.Context) {
	bc.resolveUpdateRequest(c, "approved", bc.businessService.ApproveUpdateRequest)
}

// PATCH /admin/business-update-requests/:id/reject
func (bc *BusinessController) RejectUpdateRequest(c *gin.Context) {
	bc.resolveUpdateRequest(c, "rejected", bc.businessService.RejectUpdateRequest)
}

func (bc *BusinessController) resolveUpdateRequest(c *gin.Context, verb string, action func(uint) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid request id")
		return
	}

	if err := action(uint(id)); err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			resp.NotFound(c, "update request not found")
		case errors.Is(err, apperr.ErrValidation):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	// 監査ログ
	log.Printf("update request %d %s by admin %d", id, verb, utils.CurrentAdminID(c))
	resp.OK(c, gin.H{"id": id})
}
