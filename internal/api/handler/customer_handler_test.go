package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

type stubCustomerService struct {
	saveFn   func(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error)
	findFn   func(ctx context.Context, id string) (*domain.Customer, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCustomerService) Save(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	return s.saveFn(ctx, input)
}

func (s *stubCustomerService) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.findFn(ctx, id)
}

func (s *stubCustomerService) Update(ctx context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubCustomerService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func sampleCustomer() *domain.Customer {
	return &domain.Customer{
		ID:           "customer_1",
		FirstName:    "Henrique",
		LastName:     "Pedro",
		CPF:          "573.310.710-33",
		Email:        "simba@simba.com",
		PasswordHash: "$2a$10$secrethash",
		Address:      domain.Address{ZipCode: "88302500", Street: "Rua da Selva"},
		Income:       1000.0,
		CreatedAt:    time.Now(),
	}
}

func TestCustomerHandler_Create_Returns201(t *testing.T) {
	e := newEcho()
	stub := &stubCustomerService{
		saveFn: func(_ context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
			if input.CPF != "573.310.710-33" || input.Password != "123123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleCustomer(), nil
		},
	}
	handler := NewCustomerHandler(stub)

	body := `{"firstName":"Henrique","lastName":"Pedro","cpf":"573.310.710-33","email":"simba@simba.com","password":"123123","zipCode":"88302500","street":"Rua da Selva","income":1000.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "customer_1" || resp["email"] != "simba@simba.com" {
		t.Errorf("unexpected body: %v", resp)
	}
	if resp["zipCode"] != "88302500" || resp["street"] != "Rua da Selva" {
		t.Errorf("address fields missing: %v", resp)
	}
}

func TestCustomerHandler_Create_NeverExposesPassword(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{
		saveFn: func(_ context.Context, _ ports.CreateCustomerInput) (*domain.Customer, error) {
			return sampleCustomer(), nil
		},
	})

	body := `{"firstName":"Henrique","lastName":"Pedro","cpf":"573.310.710-33","email":"simba@simba.com","password":"123123","zipCode":"88302500","street":"Rua da Selva","income":1000.0}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	lower := strings.ToLower(rec.Body.String())
	if strings.Contains(lower, "password") || strings.Contains(lower, "secrethash") {
		t.Errorf("response leaks credentials: %s", rec.Body.String())
	}
}

func TestCustomerHandler_Create_ValidationFailurePropagates(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{
		saveFn: func(_ context.Context, _ ports.CreateCustomerInput) (*domain.Customer, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	})

	body := `{"firstName":"Henrique","cpf":"57331071033","email":"not-an-email","income":-5}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	var ve *domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
}

func TestCustomerHandler_Get_Found(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{
		findFn: func(_ context.Context, id string) (*domain.Customer, error) {
			if id != "customer_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return sampleCustomer(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/customer_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customerId")
	c.SetParamValues("customer_1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{
		findFn: func(_ context.Context, id string) (*domain.Customer, error) {
			return nil, &domain.NotFoundError{ID: id}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/customer_404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customerId")
	c.SetParamValues("customer_404")

	err := handler.Get(c)

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Error() != "Id customer_404 not found" {
		t.Errorf("unexpected message: %q", nf.Error())
	}
}

func TestCustomerHandler_Update_MissingCustomerID(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{})

	body := `{"firstName":"HenriqueUpdated","lastName":"PedroUpdated","income":5000.0,"zipCode":"45656","street":"Rua Updated"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Update(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCustomerHandler_Update_Success(t *testing.T) {
	e := newEcho()
	handler := NewCustomerHandler(&stubCustomerService{
		updateFn: func(_ context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
			if id != "customer_1" || input.FirstName != "HenriqueUpdated" || input.Income != 5000.0 {
				t.Fatalf("unexpected update: id=%s input=%+v", id, input)
			}
			updated := sampleCustomer()
			updated.FirstName = input.FirstName
			updated.Income = input.Income
			return updated, nil
		},
	})

	body := `{"firstName":"HenriqueUpdated","lastName":"PedroUpdated","income":5000.0,"zipCode":"45656","street":"Rua Updated"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/customers?customerId=customer_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["firstName"] != "HenriqueUpdated" || resp["income"] != 5000.0 {
		t.Errorf("updated fields not reflected: %v", resp)
	}
}

func TestCustomerHandler_Delete_Returns204(t *testing.T) {
	e := newEcho()
	deleted := ""
	handler := NewCustomerHandler(&stubCustomerService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/customer_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customerId")
	c.SetParamValues("customer_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "customer_1" {
		t.Errorf("expected delete of customer_1, got %q", deleted)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %s", rec.Body.String())
	}
}
