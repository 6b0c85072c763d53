package api

import (
	"net/http"

	domcustomer "car-rental/internal/domain/customer"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customers usecase.CustomerUseCase
}

func NewCustomerHandler(customers usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// @Summary Create customer
// @Description Register a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	cust := req.ToDomain(uuid.Nil)
	if err := h.customers.Create(c.Request.Context(), cust); err != nil {
		httperr.AbortWithKind(c, err, "Create customer failed")
		return
	}

	c.Header("Location", "/api/customers/"+cust.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCustomer(cust))
}

// @Summary List customers
// @Description List all customers, optionally filtered by one of surname, name or phone number
// @Tags customers
// @Produce json
// @Param surname query string false "Surname"
// @Param name query string false "Name"
// @Param phone_number query string false "Phone number"
// @Success 200 {array} resdto.CustomerResponse
// @Router /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result []*domcustomer.Customer
		err    error
	)
	switch {
	case c.Query("surname") != "":
		result, err = h.customers.FindBySurname(ctx, c.Query("surname"))
	case c.Query("name") != "":
		result, err = h.customers.FindByName(ctx, c.Query("name"))
	case c.Query("phone_number") != "":
		result, err = h.customers.FindByPhoneNumber(ctx, c.Query("phone_number"))
	default:
		result, err = h.customers.FindAll(ctx)
	}
	if err != nil {
		httperr.AbortWithKind(c, err, "List customers failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomers(result))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cust, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Get customer failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomer(cust))
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	cust := req.ToDomain(id)
	if err := h.customers.Update(c.Request.Context(), cust); err != nil {
		httperr.AbortWithKind(c, err, "Update customer failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomer(cust))
}

// @Summary Delete customer
// @Description Delete a customer that no rent references
// @Tags customers
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err, "Delete customer failed")
		return
	}

	c.Status(http.StatusNoContent)
}
