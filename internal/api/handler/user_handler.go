package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/api/metrics"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account administration.
// List and Get are mounted behind the admin role requirement; Update and
// Delete rely on the ownership policy (self or admin).
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users (admin).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  userListResponse
// @Failure      403    {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	users, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Data:       users,
		Pagination: newPagination(total, page, limit),
	})
}

// Get handles GET /users/:id (admin). With ?include_deleted=true the
// soft-delete filter is skipped, so deleted accounts stay auditable.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      int     true   "User ID"
// @Param        include_deleted  query     bool    false  "Include soft-deleted users"
// @Success      200              {object}  domain.User
// @Failure      403              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	includeDeleted := c.QueryParam("include_deleted") == "true"

	user, err := h.service.Get(c.Request().Context(), id, includeDeleted)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Update handles PATCH /users/:id (self or admin).
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
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

	user, err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:        id,
		Principal: p,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id (self or admin) — a soft delete.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
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

	metrics.ResourceMutationsTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
