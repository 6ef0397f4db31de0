package utils

import (
	"MediRecords/dto"
	"MediRecords/models"
)

// AppointmentToEntity copies an appointment DTO into its gorm model.
func AppointmentToEntity(d dto.AppointmentDto) models.Appointment {
	return models.Appointment{
		ID:            d.ID,
		AppointmentID: d.AppointmentID,
		PatientID:     d.PatientID,
		DoctorName:    d.DoctorName,
	}
}

// AppointmentToDto copies an appointment model into its DTO.
func AppointmentToDto(m models.Appointment) dto.AppointmentDto {
	return dto.AppointmentDto{
		ID:            m.ID,
		AppointmentID: m.AppointmentID,
		PatientID:     m.PatientID,
		DoctorName:    m.DoctorName,
	}
}

// BillingdetailsToEntity copies a billing DTO into its gorm model.
func BillingdetailsToEntity(d dto.BillingdetailsDto) models.Billingdetails {
	return models.Billingdetails{
		ID:            d.ID,
		BillingID:     d.BillingID,
		PatientID:     d.PatientID,
		Amount:        d.Amount,
		PaymentStatus: d.PaymentStatus,
	}
}

// BillingdetailsToDto copies a billing model into its DTO.
func BillingdetailsToDto(m models.Billingdetails) dto.BillingdetailsDto {
	return dto.BillingdetailsDto{
		ID:            m.ID,
		BillingID:     m.BillingID,
		PatientID:     m.PatientID,
		Amount:        m.Amount,
		PaymentStatus: m.PaymentStatus,
	}
}
