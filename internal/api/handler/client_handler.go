package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/api/metrics"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /clients. The record is owned by the acting principal.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      422   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
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

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Principal: p,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusCreated, client)
}

// List handles GET /clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  clientListResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	clients, total, err := h.service.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clientListResponse{
		Data:       clients,
		Pagination: newPagination(total, page, limit),
	})
}

// Get handles GET /clients/:id.
//
// @Summary      Get a client by ID
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, client)
}

// Update handles PATCH /clients/:id. Only the owner or an admin may update.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Client ID"
// @Param        body  body      updateClientRequest  true  "Fields to update"
// @Success      200   {object}  domain.Client
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
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

	client, err := h.service.Update(c.Request().Context(), ports.UpdateClientInput{
		ID:        id,
		Principal: p,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("client", "update").Inc()
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /clients/:id — a soft delete.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  int  true  "Client ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
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

	metrics.ResourceMutationsTotal.WithLabelValues("client", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
