package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// maxAmount is the first value that no longer fits numeric(12,2).
var maxAmount = decimal.New(1, 10)

func init() {
	// Amounts are written as JSON numbers, like every other scalar.
	decimal.MarshalJSONWithoutQuotes = true
}

// BillingdetailsDto is the transport shape of a billing record.
type BillingdetailsDto struct {
	ID            string          `json:"id"`
	BillingID     int             `json:"billingid"`
	PatientID     int             `json:"patientid"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"paymentstatus"`
}

// Validate checks that the amount is stored without rounding.
func (b BillingdetailsDto) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Amount, validation.By(amountFits)),
	)
}

func amountFits(value interface{}) error {
	amount, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_amount_type", "must be a decimal")
	}
	if !amount.Equal(amount.Round(2)) {
		return validation.NewError("validation_amount_scale", "must have at most 2 decimal places")
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return validation.NewError("validation_amount_range", "must be less than 10000000000")
	}
	return nil
}
