package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credibank/credit-system/internal/api/metrics"
	"github.com/credibank/credit-system/internal/core/ports"
)

// CreditHandler handles HTTP requests for credit operations.
type CreditHandler struct {
	service ports.CreditService
}

func NewCreditHandler(service ports.CreditService) *CreditHandler {
	return &CreditHandler{service: service}
}

// Create handles POST /api/credits.
//
// @Summary      Apply for a credit
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        body  body      createCreditRequest  true  "Credit application"
// @Success      201   {object}  creditResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/credits [post]
func (h *CreditHandler) Create(c echo.Context) error {
	var req createCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	credit, err := h.service.Save(c.Request().Context(), toCreateCreditInput(req))
	if err != nil {
		return err
	}

	metrics.CreditsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCreditResponse(credit))
}

// List handles GET /api/credits?customerId=.
//
// @Summary      List all credits owned by a customer
// @Tags         credits
// @Produce      json
// @Param        customerId  query     string  true  "Customer id"
// @Success      200         {array}   creditListItemResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/credits [get]
func (h *CreditHandler) List(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customerId is required")
	}

	credits, err := h.service.FindAllByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCreditListResponse(credits))
}

// GetByCode handles GET /api/credits/:creditCode?customerId=.
//
// @Summary      Get a single credit by code, scoped to its owner
// @Tags         credits
// @Produce      json
// @Param        creditCode  path      string  true  "Credit code"
// @Param        customerId  query     string  true  "Customer id"
// @Success      200         {object}  creditResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/credits/{creditCode} [get]
func (h *CreditHandler) GetByCode(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customerId is required")
	}

	credit, err := h.service.FindByCreditCode(c.Request().Context(), customerID, c.Param("creditCode"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCreditResponse(credit))
}
