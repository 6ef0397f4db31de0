package models

// Appointment model
type Appointment struct {
	ID            string `gorm:"primaryKey;column:id" json:"id"`
	AppointmentID int    `gorm:"column:appointment_id;index" json:"appointmentid"`
	PatientID     int    `gorm:"column:patient_id;index" json:"patientid"`
	DoctorName    string `gorm:"column:doctor_name;index" json:"doctorname"`
}

func (Appointment) TableName() string {
	return "appointment"
}
