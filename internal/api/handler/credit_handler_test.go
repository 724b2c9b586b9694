package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

type stubCreditService struct {
	saveFn    func(ctx context.Context, input ports.CreateCreditInput) (*domain.Credit, error)
	findAllFn func(ctx context.Context, customerID string) ([]*domain.Credit, error)
	findFn    func(ctx context.Context, customerID, creditCode string) (*domain.Credit, error)
}

func (s *stubCreditService) Save(ctx context.Context, input ports.CreateCreditInput) (*domain.Credit, error) {
	return s.saveFn(ctx, input)
}

func (s *stubCreditService) FindAllByCustomer(ctx context.Context, customerID string) ([]*domain.Credit, error) {
	return s.findAllFn(ctx, customerID)
}

func (s *stubCreditService) FindByCreditCode(ctx context.Context, customerID, creditCode string) (*domain.Credit, error) {
	return s.findFn(ctx, customerID, creditCode)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func income(f float64) *float64 { return &f }

func TestCreditHandler_Create_Returns201WithView(t *testing.T) {
	e := newEcho()
	day := time.Now().AddDate(0, 1, 0)

	stub := &stubCreditService{
		saveFn: func(_ context.Context, input ports.CreateCreditInput) (*domain.Credit, error) {
			if input.CreditValue != 1500.0 || input.NumberOfInstallments != 6 || input.CustomerID != "customer_1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Credit{
				CreditCode:           "14160cff-1c90-424d-a532-c2df6f02d25c",
				CreditValue:          input.CreditValue,
				DayFirstInstallment:  input.DayFirstInstallment,
				NumberOfInstallments: input.NumberOfInstallments,
				Status:               domain.StatusInProgress,
				CustomerID:           input.CustomerID,
				CustomerEmail:        "simba@simba.com",
				CustomerIncome:       income(1000.0),
			}, nil
		},
	}
	handler := NewCreditHandler(stub)

	body := fmt.Sprintf(`{"creditValue":1500.0,"dayFirstOfInstallment":%q,"numberOfInstallments":6,"customerId":"customer_1"}`,
		day.Format(time.DateOnly))
	req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(body))
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
	if resp["creditValue"] != 1500.0 {
		t.Errorf("expected creditValue 1500.0, got %v", resp["creditValue"])
	}
	if resp["dayFirstOfInstallment"] != day.Format(time.DateOnly) {
		t.Errorf("expected dayFirstOfInstallment %q, got %v", day.Format(time.DateOnly), resp["dayFirstOfInstallment"])
	}
	if resp["numberOfInstallments"] != float64(6) {
		t.Errorf("expected numberOfInstallments 6, got %v", resp["numberOfInstallments"])
	}
	if resp["status"] != "IN_PROGRESS" {
		t.Errorf("expected status IN_PROGRESS, got %v", resp["status"])
	}
	if resp["emailCustomer"] != "simba@simba.com" || resp["incomeCustomer"] != 1000.0 {
		t.Errorf("customer fields missing from view: %v", resp)
	}
	if resp["creditCode"] == "" || resp["creditCode"] == nil {
		t.Error("creditCode must be present")
	}
}

func TestCreditHandler_Create_ValidationFailurePropagates(t *testing.T) {
	e := newEcho()
	handler := NewCreditHandler(&stubCreditService{
		saveFn: func(_ context.Context, _ ports.CreateCreditInput) (*domain.Credit, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	})

	body := `{"creditValue":1500.0,"dayFirstOfInstallment":"2020-01-01","numberOfInstallments":49,"customerId":"customer_1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/credits", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)

	var ve *domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve.Violations) < 2 {
		t.Errorf("expected violations for date and installments, got %v", ve.Violations)
	}
}

func TestCreditHandler_List_ReturnsEntriesInOrder(t *testing.T) {
	e := newEcho()
	stub := &stubCreditService{
		findAllFn: func(_ context.Context, customerID string) ([]*domain.Credit, error) {
			if customerID != "customer_1" {
				t.Fatalf("unexpected customer id: %s", customerID)
			}
			return []*domain.Credit{
				{CreditCode: "code-1", CreditValue: 1500.0, NumberOfInstallments: 6},
				{CreditCode: "code-2", CreditValue: 2800.0, NumberOfInstallments: 12},
			}, nil
		},
	}
	handler := NewCreditHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=customer_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}
	if resp[0]["creditValue"] != 1500.0 || resp[0]["numberOfInstallments"] != float64(6) {
		t.Errorf("first entry mismatch: %v", resp[0])
	}
	if resp[1]["creditValue"] != 2800.0 || resp[1]["numberOfInstallments"] != float64(12) {
		t.Errorf("second entry mismatch: %v", resp[1])
	}
}

func TestCreditHandler_List_EmptyIsNotAnError(t *testing.T) {
	e := newEcho()
	handler := NewCreditHandler(&stubCreditService{
		findAllFn: func(_ context.Context, _ string) ([]*domain.Credit, error) {
			return []*domain.Credit{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/credits?customerId=customer_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestCreditHandler_List_MissingCustomerID(t *testing.T) {
	e := newEcho()
	handler := NewCreditHandler(&stubCreditService{})

	req := httptest.NewRequest(http.MethodGet, "/api/credits", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestCreditHandler_GetByCode_ErrorsPropagate(t *testing.T) {
	e := newEcho()
	handler := NewCreditHandler(&stubCreditService{
		findFn: func(_ context.Context, _, creditCode string) (*domain.Credit, error) {
			return nil, &domain.BusinessError{Message: "Creditcode " + creditCode + " not found"}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/credits/code-404?customerId=customer_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("creditCode")
	c.SetParamValues("code-404")

	err := handler.GetByCode(c)

	var be *domain.BusinessError
	if !errors.As(err, &be) {
		t.Fatalf("expected BusinessError, got %v", err)
	}
	if be.Message != "Creditcode code-404 not found" {
		t.Errorf("unexpected message: %q", be.Message)
	}
}
