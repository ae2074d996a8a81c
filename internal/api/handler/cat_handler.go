package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/api/metrics"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// CatHandler handles HTTP requests for cat operations.
type CatHandler struct {
	service ports.CatService
}

func NewCatHandler(service ports.CatService) *CatHandler {
	return &CatHandler{service: service}
}

// Create handles POST /cats. The cat is owned by the acting principal.
//
// @Summary      Register a new cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCatRequest  true  "Cat details"
// @Success      201   {object}  domain.Cat
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /cats [post]
func (h *CatHandler) Create(c echo.Context) error {
	var req createCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	cat, err := h.service.Create(c.Request().Context(), ports.CreateCatInput{
		Principal: p,
		Name:      req.Name,
		Age:       req.Age,
		Sex:       req.Sex,
		BreedID:   req.BreedID,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("cat", "create").Inc()
	return c.JSON(http.StatusCreated, cat)
}

// List handles GET /cats. Soft-deleted cats are never included.
//
// @Summary      List cats
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  catListResponse
// @Router       /cats [get]
func (h *CatHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	cats, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, catListResponse{
		Data:       cats,
		Pagination: newPagination(total, page, limit),
	})
}

// Get handles GET /cats/:id.
//
// @Summary      Get a cat by ID
// @Tags         cats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Cat ID"
// @Success      200  {object}  domain.Cat
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [get]
func (h *CatHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cat, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cat)
}

// Update handles PATCH /cats/:id. Only the owner or an admin may update.
//
// @Summary      Update a cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Cat ID"
// @Param        body  body      updateCatRequest  true  "Fields to update"
// @Success      200   {object}  domain.Cat
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats/{id} [patch]
func (h *CatHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	cat, err := h.service.Update(c.Request().Context(), ports.UpdateCatInput{
		ID:        id,
		Principal: p,
		Name:      req.Name,
		Age:       req.Age,
		Sex:       req.Sex,
		BreedID:   req.BreedID,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("cat", "update").Inc()
	return c.JSON(http.StatusOK, cat)
}

// Delete handles DELETE /cats/:id — a soft delete; the row is marked,
// never removed.
//
// @Summary      Delete a cat
// @Tags         cats
// @Security     BearerAuth
// @Param        id  path  int  true  "Cat ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [delete]
func (h *CatHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, p); err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("cat", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
