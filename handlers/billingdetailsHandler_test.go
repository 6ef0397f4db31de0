package handlers

import (
	"MediRecords/dto"
	"MediRecords/services"
	"MediRecords/utils"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockBillingdetailsService struct {
	store map[string]dto.BillingdetailsDto
}

func (m *mockBillingdetailsService) CreateBillingdetails(_ context.Context, b dto.BillingdetailsDto) (dto.BillingdetailsDto, error) {
	if err := b.Validate(); err != nil {
		return dto.BillingdetailsDto{}, err
	}
	m.store[b.ID] = b
	return b, nil
}

func (m *mockBillingdetailsService) GetBillingdetailsByID(_ context.Context, id string) (dto.BillingdetailsDto, error) {
	b, ok := m.store[id]
	if !ok {
		return dto.BillingdetailsDto{}, &services.EntityNotFoundError{ID: id, Message: "Data not found for ID: " + id}
	}
	return b, nil
}

func (m *mockBillingdetailsService) GetAllBillingdetails(_ context.Context, page, size int) (utils.Page[dto.BillingdetailsDto], error) {
	req, err := utils.NewPageRequest(page, size)
	if err != nil {
		return utils.Page[dto.BillingdetailsDto]{}, err
	}
	return utils.NewPage[dto.BillingdetailsDto](nil, req, 0), nil
}

func (m *mockBillingdetailsService) SearchBillingdetails(_ context.Context, params map[string]string) ([]dto.BillingdetailsDto, error) {
	if _, err := utils.ParseBillingdetailsFilter(params); err != nil {
		return nil, err
	}
	return []dto.BillingdetailsDto{}, nil
}

func (m *mockBillingdetailsService) UpdateBillingdetails(_ context.Context, b dto.BillingdetailsDto) (dto.BillingdetailsDto, error) {
	if _, ok := m.store[b.ID]; !ok {
		return dto.BillingdetailsDto{}, &services.EntityNotFoundError{ID: b.ID, Message: "Data not found for update with ID: " + b.ID}
	}
	m.store[b.ID] = b
	return b, nil
}

func (m *mockBillingdetailsService) DeleteBillingdetails(_ context.Context, id string) (string, error) {
	if _, ok := m.store[id]; !ok {
		return "", &services.EntityNotFoundError{ID: id, Message: "No billingdetails found with ID: " + id + ". Unable to delete."}
	}
	delete(m.store, id)
	return "Billingdetails deleted successfully", nil
}

func newBillingdetailsRouter(svc services.BillingdetailsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBillingdetailsHandler(svc)
	group := router.Group("/patientdetails")
	group.POST("/billingdetails", h.CreateBillingdetails)
	group.GET("/billingdetails", h.GetAllBillingdetails)
	group.GET("/billingdetails/search", h.SearchBillingdetails)
	group.GET("/billingdetails/:id", h.GetBillingdetailsByID)
	group.PUT("/billingdetails", h.UpdateBillingdetails)
	group.DELETE("/billingdetails/:id", h.DeleteBillingdetails)
	return router
}

func TestBillingdetailsHandler_Lifecycle(t *testing.T) {
	svc := &mockBillingdetailsService{store: map[string]dto.BillingdetailsDto{}}
	router := newBillingdetailsRouter(svc)

	w := perform(router, http.MethodPost, "/patientdetails/billingdetails",
		`{"id":"b1","billingid":501,"patientid":201,"amount":150.75,"paymentstatus":"PAID"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := svc.store["b1"].Amount.String(); got != "150.75" {
		t.Errorf("amount not bound: %s", got)
	}

	w = perform(router, http.MethodGet, "/patientdetails/billingdetails/b1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var got dto.BillingdetailsDto
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.BillingID != 501 || got.PaymentStatus != "PAID" {
		t.Errorf("unexpected body: %+v", got)
	}

	w = perform(router, http.MethodDelete, "/patientdetails/billingdetails/b1", "")
	if w.Code != http.StatusOK || w.Body.String() != "Billingdetails deleted successfully" {
		t.Errorf("delete: got %d %q", w.Code, w.Body.String())
	}

	w = perform(router, http.MethodGet, "/patientdetails/billingdetails/b1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestBillingdetailsHandler_AmountRoundTrip(t *testing.T) {
	svc := &mockBillingdetailsService{store: map[string]dto.BillingdetailsDto{}}
	router := newBillingdetailsRouter(svc)

	w := perform(router, http.MethodPost, "/patientdetails/billingdetails", `{"id":"b1","amount":10.555}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unrepresentable amount, got %d", w.Code)
	}
	if len(svc.store) != 0 {
		t.Errorf("invalid amount was stored")
	}

	w = perform(router, http.MethodPost, "/patientdetails/billingdetails", `{"id":"b1","amount":10.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"amount":10.5`) {
		t.Errorf("expected numeric amount, got %s", w.Body.String())
	}
}

func TestBillingdetailsHandler_EmptyPage(t *testing.T) {
	router := newBillingdetailsRouter(&mockBillingdetailsService{store: map[string]dto.BillingdetailsDto{}})

	w := perform(router, http.MethodGet, "/patientdetails/billingdetails", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var page utils.Page[dto.BillingdetailsDto]
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !page.Empty || page.Content == nil || page.Size != utils.DefaultPageSize {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestBillingdetailsHandler_SearchBadAmount(t *testing.T) {
	router := newBillingdetailsRouter(&mockBillingdetailsService{store: map[string]dto.BillingdetailsDto{}})

	w := perform(router, http.MethodGet, "/patientdetails/billingdetails/search?amount=lots", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w = perform(router, http.MethodGet, "/patientdetails/billingdetails/search?paymentstatus=PAID", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Errorf("expected empty array, got %d %q", w.Code, w.Body.String())
	}
}
