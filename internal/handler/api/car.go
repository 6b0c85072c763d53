package api

import (
	"net/http"

	domcar "car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	cars usecase.CarUseCase
}

func NewCarHandler(cars usecase.CarUseCase) *CarHandler {
	return &CarHandler{cars: cars}
}

// @Summary Create car
// @Description Register a new car; the registration number must be unique
// @Tags cars
// @Accept json
// @Produce json
// @Param request body reqdto.CarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req reqdto.CarRequest
	if !bindJSON(c, &req) {
		return
	}

	car := req.ToDomain(uuid.Nil)
	if err := h.cars.Create(c.Request.Context(), car); err != nil {
		httperr.AbortWithKind(c, err, "Create car failed")
		return
	}

	c.Header("Location", "/api/cars/"+car.ID.String())
	c.JSON(http.StatusCreated, resdto.FromCar(car))
}

// @Summary List cars
// @Description List all cars, optionally filtered by brand
// @Tags cars
// @Produce json
// @Param brand query string false "Brand"
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result []*domcar.Car
		err    error
	)
	if brand := c.Query("brand"); brand != "" {
		result, err = h.cars.FindByBrand(ctx, brand)
	} else {
		result, err = h.cars.FindAll(ctx)
	}
	if err != nil {
		httperr.AbortWithKind(c, err, "List cars failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCars(result))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	car, err := h.cars.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Get car failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCar(car))
}

// @Summary Update car
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body reqdto.CarRequest true "Car"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CarRequest
	if !bindJSON(c, &req) {
		return
	}

	car := req.ToDomain(id)
	if err := h.cars.Update(c.Request.Context(), car); err != nil {
		httperr.AbortWithKind(c, err, "Update car failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCar(car))
}

// @Summary Delete car
// @Description Delete a car that no rent references
// @Tags cars
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cars.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err, "Delete car failed")
		return
	}

	c.Status(http.StatusNoContent)
}
