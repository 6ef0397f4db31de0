package utils

import (
	"MediRecords/models"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB renders SQL without ever opening a connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestParseAppointmentFilter(t *testing.T) {
	f, err := ParseAppointmentFilter(map[string]string{
		"doctorName":    "Dr. Smith",
		"PATIENTID":     "201",
		"appointmentid": "101",
		"id":            "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.DoctorName == nil || *f.DoctorName != "Dr. Smith" {
		t.Errorf("doctor name not parsed: %+v", f.DoctorName)
	}
	if f.PatientID == nil || *f.PatientID != 201 {
		t.Errorf("patient id not parsed: %+v", f.PatientID)
	}
	if f.AppointmentID == nil || *f.AppointmentID != 101 {
		t.Errorf("appointment id not parsed: %+v", f.AppointmentID)
	}
	if f.ID == nil || *f.ID != "1" {
		t.Errorf("id not parsed: %+v", f.ID)
	}
}

func TestParseAppointmentFilter_Empty(t *testing.T) {
	f, err := ParseAppointmentFilter(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != (AppointmentFilter{}) {
		t.Errorf("expected empty filter, got %+v", f)
	}
}

func TestParseAppointmentFilter_Errors(t *testing.T) {
	_, err := ParseAppointmentFilter(map[string]string{
		"patientid":  "two hundred",
		"ward":       "B",
		"doctorname": "Dr. Who",
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(verrs) != 2 {
		t.Errorf("expected 2 field errors, got %v", verrs)
	}
	if _, ok := verrs["patientid"]; !ok {
		t.Errorf("expected patientid error, got %v", verrs)
	}
	if _, ok := verrs["ward"]; !ok {
		t.Errorf("expected ward error, got %v", verrs)
	}
}

func TestParseFilters_RejectCaseFoldedDuplicates(t *testing.T) {
	params := map[string]string{"doctorName": "A", "doctorname": "B"}
	for i := 0; i < 50; i++ {
		_, err := ParseAppointmentFilter(params)
		var verrs validation.Errors
		if !errors.As(err, &verrs) || len(verrs) != 1 {
			t.Fatalf("run %d: expected one duplicate field error, got %v", i, err)
		}
	}

	_, err := ParseBillingdetailsFilter(map[string]string{"PaymentStatus": "PAID", "paymentstatus": "PENDING"})
	if err == nil {
		t.Error("expected duplicate billing field to be rejected")
	}
}

func TestParseBillingdetailsFilter(t *testing.T) {
	f, err := ParseBillingdetailsFilter(map[string]string{
		"billingid":     "501",
		"amount":        "150.75",
		"paymentStatus": "PAID",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BillingID == nil || *f.BillingID != 501 {
		t.Errorf("billing id not parsed: %+v", f.BillingID)
	}
	if f.Amount == nil || f.Amount.String() != "150.75" {
		t.Errorf("amount not parsed: %+v", f.Amount)
	}
	if f.PaymentStatus == nil || *f.PaymentStatus != "PAID" {
		t.Errorf("payment status not parsed: %+v", f.PaymentStatus)
	}
	if f.PatientID != nil || f.ID != nil {
		t.Errorf("unexpected fields set: %+v", f)
	}

	if _, err := ParseBillingdetailsFilter(map[string]string{"amount": "12,50"}); err == nil {
		t.Error("expected error for malformed amount")
	}
}

func TestAppointmentFilter_Scope(t *testing.T) {
	db := dryRunDB(t)
	f, err := ParseAppointmentFilter(map[string]string{"doctorname": "Dr. Smith", "patientid": "201"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []models.Appointment
		return tx.Scopes(f.Scope()).Find(&out)
	})

	for _, want := range []string{`FROM "appointment"`, "patient_id = 201", "doctor_name = 'Dr. Smith'", " AND "} {
		if !strings.Contains(sql, want) {
			t.Errorf("expected %q in %s", want, sql)
		}
	}
}

func TestAppointmentFilter_EmptyScopeMatchesAll(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []models.Appointment
		return tx.Scopes(AppointmentFilter{}.Scope()).Find(&out)
	})

	if strings.Contains(sql, "WHERE") {
		t.Errorf("expected no WHERE clause, got %s", sql)
	}
}

func TestBillingdetailsFilter_Scope(t *testing.T) {
	db := dryRunDB(t)
	f, err := ParseBillingdetailsFilter(map[string]string{"billingid": "501", "paymentstatus": "PAID"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []models.Billingdetails
		return tx.Scopes(f.Scope()).Find(&out)
	})

	for _, want := range []string{`FROM "billingdetails"`, "billing_id = 501", "payment_status = 'PAID'"} {
		if !strings.Contains(sql, want) {
			t.Errorf("expected %q in %s", want, sql)
		}
	}
}
