package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	portssvc "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/dto"
	"github.com/muhammadanas3/currency-exchange-api/internal/middleware"
)

// exchangeRateHandler exposes the cached exchange rates for inspection.
type exchangeRateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newExchangeRateHandler(rs portssvc.RateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newExchangeRateHandler(rateService)
	rg.GET("/exchange-rates/:base/:target", h.getExchangeRate)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the rate for a currency pair, refreshing the cache when stale
// @Tags exchange rates
// @Produce json
// @Param base path string true "Base currency code (3 letters)"
// @Param target path string true "Target currency code (3 letters)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid currency code format"
// @Failure 502 {object} ErrorResponse "Exchange rate unavailable"
// @Security BearerAuth
// @Router /exchange-rates/{base}/{target} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Param("base")
	target := c.Param("target")

	logger = logger.With(slog.String("base", base), slog.String("target", target))

	record, err := h.rateService.GetRateRecord(c.Request.Context(), base, target)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error getting exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			logger.Error("Exchange rate unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Exchange rate unavailable"})
		default:
			logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(record))
}
