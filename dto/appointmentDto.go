package dto

// AppointmentDto is the transport shape of an appointment.
type AppointmentDto struct {
	ID            string `json:"id"`
	AppointmentID int    `json:"appointmentid"`
	PatientID     int    `json:"patientid"`
	DoctorName    string `json:"doctorname"`
}
