package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	domrent "car-rental/internal/domain/rent"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentHandler struct {
	rents     usecase.RentUseCase
	cars      usecase.CarLookup
	customers usecase.CustomerLookup
}

func NewRentHandler(rents usecase.RentUseCase, cars usecase.CarLookup, customers usecase.CustomerLookup) *RentHandler {
	return &RentHandler{
		rents:     rents,
		cars:      cars,
		customers: customers,
	}
}

// @Summary Create rent
// @Description Rent a car to a customer. The car must be free for the whole interval
// @Tags rents
// @Accept json
// @Produce json
// @Param request body reqdto.RentRequest true "Rent"
// @Success 201 {object} resdto.RentResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rents [post]
func (h *RentHandler) Create(c *gin.Context) {
	var req reqdto.RentRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.fromRequest(c.Request.Context(), uuid.Nil, &req)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create rent failed")
		return
	}
	if err := h.rents.Create(c.Request.Context(), r); err != nil {
		httperr.AbortWithKind(c, err, "Create rent failed")
		return
	}

	c.Header("Location", "/api/rents/"+r.ID.String())
	c.JSON(http.StatusCreated, resdto.FromRent(r))
}

// @Summary List rents
// @Tags rents
// @Produce json
// @Success 200 {array} resdto.RentResponse
// @Router /api/rents [get]
func (h *RentHandler) List(c *gin.Context) {
	rents, err := h.rents.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err, "List rents failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRents(rents))
}

// @Summary Get rent
// @Tags rents
// @Produce json
// @Param id path string true "Rent ID"
// @Success 200 {object} resdto.RentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rents/{id} [get]
func (h *RentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.rents.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Get rent failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRent(r))
}

// @Summary Update rent
// @Description Overwrite every field of a rent. Availability is checked excluding the rent itself
// @Tags rents
// @Accept json
// @Produce json
// @Param id path string true "Rent ID"
// @Param request body reqdto.RentRequest true "Rent"
// @Success 200 {object} resdto.RentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rents/{id} [put]
func (h *RentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RentRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.fromRequest(c.Request.Context(), id, &req)
	if err != nil {
		httperr.AbortWithKind(c, err, "Update rent failed")
		return
	}
	if err := h.rents.Update(c.Request.Context(), r); err != nil {
		httperr.AbortWithKind(c, err, "Update rent failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRent(r))
}

// @Summary Delete rent
// @Tags rents
// @Param id path string true "Rent ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/rents/{id} [delete]
func (h *RentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.rents.Delete(c.Request.Context(), &domrent.Rent{ID: id}); err != nil {
		httperr.AbortWithKind(c, err, "Delete rent failed")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Return car
// @Description Close an open rent. The return date defaults to today
// @Tags rents
// @Accept json
// @Produce json
// @Param id path string true "Rent ID"
// @Param request body reqdto.ReturnCarRequest false "Return date"
// @Success 200 {object} resdto.RentResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rents/{id}/return [post]
func (h *RentHandler) ReturnCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ReturnCarRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	r, err := h.rents.ReturnCar(c.Request.Context(), id, req.Date)
	if err != nil {
		httperr.AbortWithKind(c, err, "Return car failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRent(r))
}

// @Summary List rents of a car
// @Tags rents
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {array} resdto.RentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id}/rents [get]
func (h *RentHandler) ListForCar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	car, err := h.cars.GetByID(ctx, id)
	if err != nil {
		httperr.AbortWithKind(c, err, "List rents failed")
		return
	}
	rents, err := h.rents.FindForCar(ctx, car)
	if err != nil {
		httperr.AbortWithKind(c, err, "List rents failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRents(rents))
}

// @Summary List rents of a customer
// @Tags rents
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.RentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id}/rents [get]
func (h *RentHandler) ListForCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	cust, err := h.customers.GetByID(ctx, id)
	if err != nil {
		httperr.AbortWithKind(c, err, "List rents failed")
		return
	}
	rents, err := h.rents.FindForCustomer(ctx, cust)
	if err != nil {
		httperr.AbortWithKind(c, err, "List rents failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRents(rents))
}

// fromRequest resolves the referenced car and customer. A reference to a
// missing entity makes the rent itself invalid.
func (h *RentHandler) fromRequest(ctx context.Context, id uuid.UUID, req *reqdto.RentRequest) (*domrent.Rent, error) {
	cust, err := h.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, referenceError(err, "customer", req.CustomerID)
	}
	car, err := h.cars.GetByID(ctx, req.CarID)
	if err != nil {
		return nil, referenceError(err, "car", req.CarID)
	}
	return req.ToDomain(id, cust, car), nil
}

func referenceError(err error, entity string, id uuid.UUID) error {
	if errs.IsKind(err, errs.KindNotFound) {
		return errs.InvalidEntity("%s %s does not exist", entity, id)
	}
	return err
}
