package controllers

import (
	"MediRecords/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPatientDetailsRoutes registers the appointment and billing routes under /patientdetails.
func SetupPatientDetailsRoutes(router *gin.Engine, appointmentHandler *handlers.AppointmentHandler, billingdetailsHandler *handlers.BillingdetailsHandler) {
	group := router.Group("/patientdetails")

	group.POST("/appointment", appointmentHandler.CreateAppointment)
	group.GET("/appointment", appointmentHandler.GetAllAppointment)
	group.GET("/appointment/search", appointmentHandler.SearchAppointment)
	group.GET("/appointment/searchUpdate", appointmentHandler.UpdateAppointment)
	group.GET("/appointment/:id", appointmentHandler.GetAppointmentByID)
	group.PUT("/appointment", appointmentHandler.UpdateAppointment)
	group.DELETE("/appointment/:id", appointmentHandler.DeleteAppointment)

	group.POST("/billingdetails", billingdetailsHandler.CreateBillingdetails)
	group.GET("/billingdetails", billingdetailsHandler.GetAllBillingdetails)
	group.GET("/billingdetails/search", billingdetailsHandler.SearchBillingdetails)
	group.GET("/billingdetails/searchUpdate", billingdetailsHandler.UpdateBillingdetails)
	group.GET("/billingdetails/:id", billingdetailsHandler.GetBillingdetailsByID)
	group.PUT("/billingdetails", billingdetailsHandler.UpdateBillingdetails)
	group.DELETE("/billingdetails/:id", billingdetailsHandler.DeleteBillingdetails)
}
