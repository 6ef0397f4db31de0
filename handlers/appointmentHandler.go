package handlers

import (
	"MediRecords/dto"
	"MediRecords/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service services.AppointmentService
}

func NewAppointmentHandler(service services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment dto.AppointmentDto
	if err := c.ShouldBindJSON(&appointment); err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	created, err := h.service.CreateAppointment(c.Request.Context(), appointment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.service.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) GetAllAppointment(c *gin.Context) {
	page, size, ok := pagingParams(c)
	if !ok {
		return
	}
	appointments, err := h.service.GetAllAppointment(c.Request.Context(), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) SearchAppointment(c *gin.Context) {
	appointments, err := h.service.SearchAppointment(c.Request.Context(), searchParams(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointment serves both PUT and the legacy GET searchUpdate route.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var appointment dto.AppointmentDto
	if err := c.ShouldBindJSON(&appointment); err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	updated, err := h.service.UpdateAppointment(c.Request.Context(), appointment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	message, err := h.service.DeleteAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, message)
}
