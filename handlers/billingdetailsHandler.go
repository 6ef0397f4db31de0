package handlers

import (
	"MediRecords/dto"
	"MediRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BillingdetailsHandler struct {
	service services.BillingdetailsService
}

func NewBillingdetailsHandler(service services.BillingdetailsService) *BillingdetailsHandler {
	return &BillingdetailsHandler{service: service}
}

func (h *BillingdetailsHandler) CreateBillingdetails(c *gin.Context) {
	var billingdetails dto.BillingdetailsDto
	if err := c.ShouldBindJSON(&billingdetails); err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	created, err := h.service.CreateBillingdetails(c.Request.Context(), billingdetails)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *BillingdetailsHandler) GetBillingdetailsByID(c *gin.Context) {
	billingdetails, err := h.service.GetBillingdetailsByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, billingdetails)
}

func (h *BillingdetailsHandler) GetAllBillingdetails(c *gin.Context) {
	page, size, ok := pagingParams(c)
	if !ok {
		return
	}
	billingdetailsList, err := h.service.GetAllBillingdetails(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, billingdetailsList)
}

func (h *BillingdetailsHandler) SearchBillingdetails(c *gin.Context) {
	billingdetailsList, err := h.service.SearchBillingdetails(c.Request.Context(), searchParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, billingdetailsList)
}

// UpdateBillingdetails serves both PUT and the legacy GET searchUpdate route.
func (h *BillingdetailsHandler) UpdateBillingdetails(c *gin.Context) {
	var billingdetails dto.BillingdetailsDto
	if err := c.ShouldBindJSON(&billingdetails); err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	updated, err := h.service.UpdateBillingdetails(c.Request.Context(), billingdetails)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BillingdetailsHandler) DeleteBillingdetails(c *gin.Context) {
	message, err := h.service.DeleteBillingdetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, message)
}
