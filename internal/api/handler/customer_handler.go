package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/credibank/credit-system/internal/api/metrics"
	"github.com/credibank/credit-system/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /api/customers.
//
// @Summary      Register a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  customerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Save(c.Request().Context(), toCreateCustomerInput(req))
	if err != nil {
		return err
	}

	metrics.CustomersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// Get handles GET /api/customers/:customerId.
//
// @Summary      Get a customer by id
// @Tags         customers
// @Produce      json
// @Param        customerId  path      string  true  "Customer id"
// @Success      200         {object}  customerResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/customers/{customerId} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.service.FindByID(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update handles PATCH /api/customers?customerId=.
//
// @Summary      Update a customer's profile fields
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId  query     string                 true  "Customer id"
// @Param        body        body      updateCustomerRequest  true  "Fields to update"
// @Success      200         {object}  customerResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/customers [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customerId is required")
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer, err := h.service.Update(c.Request().Context(), customerID, toUpdateCustomerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Delete handles DELETE /api/customers/:customerId.
//
// @Summary      Delete a customer and all its credits
// @Tags         customers
// @Param        customerId  path  string  true  "Customer id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/customers/{customerId} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("customerId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
