package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Lalithkumar18-lk/Ai/internal/ai"
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
	"github.com/Lalithkumar18-lk/Ai/internal/service"
)

const (
	defaultStreamCount = 3
	maxStreamCount     = 50
)

// Pinger reports archive health. *db.Store implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Desk      *service.Desk
	Store     Pinger
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "schema": h.Desk.Schema().Name, "cases": h.Desk.Registry.Len()})
}

// @Summary Active schema and catalog
// @Tags schema
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/schema [get]
func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schema": h.Desk.Schema(), "catalog": h.Desk.Catalog})
}

// @Summary List cases
// @Tags cases
// @Produce json
// @Param priority query string false "exact priority"
// @Param status query string false "exact status"
// @Param category query string false "category substring"
// @Param platform query string false "platform substring"
// @Param title query string false "title substring"
// @Param assigned_to query string false "assignee substring"
// @Success 200 {object} map[string]any
// @Router /api/cases [get]
func (h *Handler) CasesList(c *gin.Context) {
	f := registry.Filter{
		Priority:   c.Query("priority"),
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Platform:   c.Query("platform"),
		Title:      c.Query("title"),
		AssignedTo: c.Query("assigned_to"),
	}
	items := h.Desk.Filter(f)
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

type CreateCaseRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Platform      string `json:"platform"`
	Priority      string `json:"priority" validate:"required"`
	ReportedBy    string `json:"reported_by"`
	AffectedGroup string `json:"affected_group"`
}

// @Summary Create case
// @Tags cases
// @Accept json
// @Produce json
// @Param body body CreateCaseRequest true "case"
// @Success 201 {object} models.Case
// @Failure 400 {object} map[string]any
// @Router /api/cases [post]
func (h *Handler) CaseCreate(c *gin.Context) {
	var req CreateCaseRequest
	if !h.bind(c, &req) {
		return
	}
	created, err := h.Desk.Create(c.Request.Context(), registry.NewCase{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Platform:      req.Platform,
		Priority:      req.Priority,
		ReportedBy:    req.ReportedBy,
		AffectedGroup: req.AffectedGroup,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) CaseDetails(c *gin.Context) {
	found, err := h.Desk.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// @Summary Update case status
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body StatusRequest true "status"
// @Success 200 {object} models.Case
// @Failure 404 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /api/cases/{id}/status [post]
func (h *Handler) CaseStatus(c *gin.Context) {
	var req StatusRequest
	if !h.bind(c, &req) {
		return
	}
	updated, err := h.Desk.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type AssignRequest struct {
	AssignedTo string `json:"assigned_to"`
}

func (h *Handler) CaseAssign(c *gin.Context) {
	var req AssignRequest
	if !h.bind(c, &req) {
		return
	}
	updated, err := h.Desk.Assign(c.Request.Context(), c.Param("id"), req.AssignedTo)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Auto-assign case
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} service.AssignmentResult
// @Router /api/cases/{id}/auto-assign [post]
func (h *Handler) CaseAutoAssign(c *gin.Context) {
	res, err := h.Desk.AutoAssign(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type ResolutionRequest struct {
	Resolution string `json:"resolution"`
}

func (h *Handler) CaseResolution(c *gin.Context) {
	var req ResolutionRequest
	if !h.bind(c, &req) {
		return
	}
	updated, err := h.Desk.RecordResolution(c.Request.Context(), c.Param("id"), req.Resolution)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type ActionRequest struct {
	Type   string `json:"type" validate:"required"`
	Action string `json:"action" validate:"required"`
	Status string `json:"status"`
}

func (h *Handler) CaseAction(c *gin.Context) {
	var req ActionRequest
	if !h.bind(c, &req) {
		return
	}
	updated, err := h.Desk.AppendAction(c.Request.Context(), c.Param("id"), registry.ActionEntry{
		Type:   req.Type,
		Action: req.Action,
		Status: req.Status,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}

func (h *Handler) CaseChatHistory(c *gin.Context) {
	found, err := h.Desk.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"case_id": found.ID, "items": found.ChatHistory})
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// @Summary Chat about a case
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body ChatRequest true "message"
// @Success 200 {object} service.ChatExchange
// @Failure 429 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/cases/{id}/chat [post]
func (h *Handler) CaseChat(c *gin.Context) {
	var req ChatRequest
	if !h.bind(c, &req) {
		return
	}
	ex, err := h.Desk.Chat(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

func (h *Handler) CaseProgress(c *gin.Context) {
	p, err := h.Desk.Progress(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Analytics summary
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Analytics
// @Router /api/analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	a, err := h.Desk.Analytics()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) AnalyticsMetric(c *gin.Context) {
	agg, err := h.Desk.Aggregate(registry.Metric(c.Param("metric")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// @Summary Generate a test case
// @Tags admin
// @Produce json
// @Success 201 {object} models.Case
// @Router /api/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	created, err := h.Desk.GenerateTestCase(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Simulate a live case stream
// @Tags admin
// @Produce json
// @Param count query int false "cases to stream (1-50, default 3)"
// @Success 200 {object} service.StreamSummary
// @Failure 504 {object} map[string]any
// @Router /api/stream [post]
func (h *Handler) Stream(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultStreamCount)))
	if err != nil || count < 1 || count > maxStreamCount {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "count must be between 1 and 50", c.Query("count"))
		return
	}
	summary, err := h.Desk.SimulateStream(c.Request.Context(), count)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if summary.Cancelled {
		writeError(c, http.StatusGatewayTimeout, "TIMEOUT", "Stream stopped before completion", summary)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return false
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return false
	}
	return true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var (
		notFound   *registry.NotFoundError
		invalid    *registry.InvalidFieldError
		transition *registry.InvalidTransitionError
		rateLimit  ai.RateLimitError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Case not found", gin.H{"id": notFound.ID})
	case errors.As(err, &invalid):
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), gin.H{
			"field":   invalid.Field,
			"value":   invalid.Value,
			"allowed": invalid.Allowed,
		})
	case errors.As(err, &transition):
		writeError(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error(), gin.H{
			"id":      transition.ID,
			"from":    transition.From,
			"to":      transition.To,
			"allowed": transition.Allowed,
		})
	case errors.As(err, &rateLimit):
		if rateLimit.RetryAfter > 0 {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(rateLimit.RetryAfter.Seconds()))))
		}
		writeError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Assistant rate limited", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out", err.Error())
	default:
		h.Logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		writeError(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream failure", err.Error())
	}
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
