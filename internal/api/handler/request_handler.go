package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wastemap/collection-api/internal/api/metrics"
	"github.com/wastemap/collection-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for pickup request operations.
// Domain errors bubble up to the central error handler.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create handles POST /api/v1/requests.
//
// @Summary      Create a pickup request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  requestResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/v1/requests [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Create(c.Request().Context(), p, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.RequestsCreatedTotal.WithLabelValues(rec.WasteType).Inc()
	return c.JSON(http.StatusCreated, toRequestResponse(rec))
}

// Get handles GET /api/v1/requests/:id.
//
// @Summary      Get a pickup request by id
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  requestResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/v1/requests/{id} [get]
func (h *RequestHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponse(rec))
}

// List handles GET /api/v1/requests. Admins receive every record; other
// principals receive only their own, newest first.
//
// @Summary      List pickup requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listRequestsResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/v1/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(records))
}

// Update handles PUT /api/v1/requests/:id as a partial merge over the
// mutable fields. Status is not accepted here.
//
// @Summary      Update a pickup request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request id"
// @Param        body  body      updateRequestRequest  true  "Fields to change"
// @Success      200   {object}  requestResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/v1/requests/{id} [put]
func (h *RequestHandler) Update(c echo.Context) error {
	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Update(c.Request().Context(), p, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponse(rec))
}

// TransitionStatus handles PATCH /api/v1/requests/:id/status. Admin only;
// the RBAC middleware rejects other roles before this runs.
//
// @Summary      Change a request's status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Request id"
// @Param        body  body      transitionStatusRequest  true  "New status"
// @Success      200   {object}  requestResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/v1/requests/{id}/status [patch]
func (h *RequestHandler) TransitionStatus(c echo.Context) error {
	var req transitionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rec, err := h.service.TransitionStatus(c.Request().Context(), p, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(rec.Status).Inc()
	return c.JSON(http.StatusOK, toRequestResponse(rec))
}

// Delete handles DELETE /api/v1/requests/:id.
//
// @Summary      Delete a pickup request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/v1/requests/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}

	metrics.RequestsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "request deleted"})
}

// Stats handles GET /api/v1/requests/stats. Admin only.
//
// @Summary      Global request statistics
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/v1/requests/stats [get]
func (h *RequestHandler) Stats(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
	})
}
