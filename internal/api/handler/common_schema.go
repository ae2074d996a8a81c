package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// paginationResponse is the envelope metadata for all list endpoints.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newPagination(total int64, page, limit int) paginationResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return paginationResponse{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// pageParams reads ?page= and ?limit= with zero values for absent/garbage
// input; the service layer applies defaults and caps.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
