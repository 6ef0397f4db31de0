package utils

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	errUnknownSearchField   = validation.NewError("validation_unknown_search_field", "is not a searchable field")
	errDuplicateSearchField = validation.NewError("validation_duplicate_search_field", "is given more than once")
)

// AppointmentFilter holds the optional equality filters for appointment search.
// A nil field is not filtered on.
type AppointmentFilter struct {
	ID            *string
	AppointmentID *int
	PatientID     *int
	DoctorName    *string
}

// BillingdetailsFilter holds the optional equality filters for billing search.
type BillingdetailsFilter struct {
	ID            *string
	BillingID     *int
	PatientID     *int
	Amount        *decimal.Decimal
	PaymentStatus *string
}

// ParseAppointmentFilter builds an AppointmentFilter from query parameters keyed
// by DTO field name. Keys are matched case-insensitively, so two keys that
// differ only in case are rejected.
func ParseAppointmentFilter(params map[string]string) (AppointmentFilter, error) {
	var f AppointmentFilter
	errs := validation.Errors{}
	seen := make(map[string]bool, len(params))
	for key, value := range params {
		field := strings.ToLower(key)
		if seen[field] {
			errs[key] = errDuplicateSearchField
			continue
		}
		seen[field] = true
		switch field {
		case "id":
			f.ID = stringParam(value)
		case "appointmentid":
			f.AppointmentID, errs[key] = intParam(value)
		case "patientid":
			f.PatientID, errs[key] = intParam(value)
		case "doctorname":
			f.DoctorName = stringParam(value)
		default:
			errs[key] = errUnknownSearchField
		}
	}
	if err := errs.Filter(); err != nil {
		return AppointmentFilter{}, err
	}
	return f, nil
}

// ParseBillingdetailsFilter builds a BillingdetailsFilter from query parameters
// keyed by DTO field name.
func ParseBillingdetailsFilter(params map[string]string) (BillingdetailsFilter, error) {
	var f BillingdetailsFilter
	errs := validation.Errors{}
	seen := make(map[string]bool, len(params))
	for key, value := range params {
		field := strings.ToLower(key)
		if seen[field] {
			errs[key] = errDuplicateSearchField
			continue
		}
		seen[field] = true
		switch field {
		case "id":
			f.ID = stringParam(value)
		case "billingid":
			f.BillingID, errs[key] = intParam(value)
		case "patientid":
			f.PatientID, errs[key] = intParam(value)
		case "amount":
			f.Amount, errs[key] = decimalParam(value)
		case "paymentstatus":
			f.PaymentStatus = stringParam(value)
		default:
			errs[key] = errUnknownSearchField
		}
	}
	if err := errs.Filter(); err != nil {
		return BillingdetailsFilter{}, err
	}
	return f, nil
}

// Scope ANDs one equality clause per set field.
func (f AppointmentFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ID != nil {
			db = db.Where("id = ?", *f.ID)
		}
		if f.AppointmentID != nil {
			db = db.Where("appointment_id = ?", *f.AppointmentID)
		}
		if f.PatientID != nil {
			db = db.Where("patient_id = ?", *f.PatientID)
		}
		if f.DoctorName != nil {
			db = db.Where("doctor_name = ?", *f.DoctorName)
		}
		return db
	}
}

// Scope ANDs one equality clause per set field.
func (f BillingdetailsFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ID != nil {
			db = db.Where("id = ?", *f.ID)
		}
		if f.BillingID != nil {
			db = db.Where("billing_id = ?", *f.BillingID)
		}
		if f.PatientID != nil {
			db = db.Where("patient_id = ?", *f.PatientID)
		}
		if f.Amount != nil {
			db = db.Where("amount = ?", *f.Amount)
		}
		if f.PaymentStatus != nil {
			db = db.Where("payment_status = ?", *f.PaymentStatus)
		}
		return db
	}
}

func stringParam(value string) *string {
	return &value
}

func intParam(value string) (*int, error) {
	if err := validation.Validate(value, validation.Required, is.Int); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, validation.NewError("validation_out_of_range", "is out of range")
	}
	return &n, nil
}

func decimalParam(value string) (*decimal.Decimal, error) {
	if err := validation.Validate(value, validation.Required, is.Float); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
