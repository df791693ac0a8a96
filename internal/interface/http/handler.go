package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/jyotish/internal/domain/chart"
	apperrors "github.com/yanqian/jyotish/pkg/errors"
)

// Handler wires the HTTP transport to the chart service.
type Handler struct {
	chartSvc chart.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chartSvc chart.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chartSvc: chartSvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// Calculate returns the sidereal chart for the submitted birth details.
func (h *Handler) Calculate(c *gin.Context) {
	var req chart.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.chartSvc.Calculate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, classify(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// classify maps domain failures to exactly one of the two client outcomes.
// Client errors carry their fixed message; everything else exposes the raw
// error text.
func classify(err error) *HTTPError {
	switch code := apperrors.CodeOf(err); code {
	case chart.CodeInvalidInput, chart.CodeLocationNotFound:
		return NewHTTPError(http.StatusBadRequest, code, apperrors.MessageOf(err), err)
	case "":
		return NewHTTPError(http.StatusInternalServerError, "internal_error", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, code, errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
