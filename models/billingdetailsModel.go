package models

import "github.com/shopspring/decimal"

// Billingdetails model
type Billingdetails struct {
	ID            string          `gorm:"primaryKey;column:id" json:"id"`
	BillingID     int             `gorm:"column:billing_id;index" json:"billingid"`
	PatientID     int             `gorm:"column:patient_id;index" json:"patientid"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)" json:"amount"`
	PaymentStatus string          `gorm:"column:payment_status" json:"paymentstatus"`
}

func (Billingdetails) TableName() string {
	return "billingdetails"
}
