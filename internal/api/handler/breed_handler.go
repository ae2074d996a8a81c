package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/api/metrics"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// BreedHandler handles HTTP requests for breed reference data.
// Mutating routes are mounted behind the admin role requirement.
type BreedHandler struct {
	service ports.BreedService
}

func NewBreedHandler(service ports.BreedService) *BreedHandler {
	return &BreedHandler{service: service}
}

// Create handles POST /breeds (admin).
//
// @Summary      Create a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBreedRequest  true  "Breed details"
// @Success      201   {object}  domain.Breed
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /breeds [post]
func (h *BreedHandler) Create(c echo.Context) error {
	var req createBreedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	breed, err := h.service.Create(c.Request().Context(), ports.CreateBreedInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("breed", "create").Inc()
	return c.JSON(http.StatusCreated, breed)
}

// List handles GET /breeds.
//
// @Summary      List breeds
// @Tags         breeds
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  breedListResponse
// @Router       /breeds [get]
func (h *BreedHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	breeds, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breedListResponse{
		Data:       breeds,
		Pagination: newPagination(total, page, limit),
	})
}

// Get handles GET /breeds/:id.
//
// @Summary      Get a breed by ID
// @Tags         breeds
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Breed ID"
// @Success      200  {object}  domain.Breed
// @Failure      404  {object}  errorResponse
// @Router       /breeds/{id} [get]
func (h *BreedHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	breed, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, breed)
}

// Update handles PATCH /breeds/:id (admin).
//
// @Summary      Update a breed
// @Tags         breeds
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Breed ID"
// @Param        body  body      updateBreedRequest  true  "Fields to update"
// @Success      200   {object}  domain.Breed
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /breeds/{id} [patch]
func (h *BreedHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateBreedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	breed, err := h.service.Update(c.Request().Context(), ports.UpdateBreedInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("breed", "update").Inc()
	return c.JSON(http.StatusOK, breed)
}

// Delete handles DELETE /breeds/:id (admin) — a soft delete.
//
// @Summary      Delete a breed
// @Tags         breeds
// @Security     BearerAuth
// @Param        id  path  int  true  "Breed ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /breeds/{id} [delete]
func (h *BreedHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("breed", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
