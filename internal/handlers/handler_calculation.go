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

// calculationHandler handles order pricing requests.
type calculationHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newCalculationHandler(ps portssvc.PricingSvcFacade) *calculationHandler {
	return &calculationHandler{pricingService: ps}
}

// registerCalculationRoutes registers the pricing route.
func registerCalculationRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newCalculationHandler(pricingService)
	rg.POST("/calculate", h.calculate)
}

// calculate godoc
// @Summary Price an order
// @Description Sums the item prices, applies the best discount for the caller, and converts the net amount into the target currency
// @Tags calculation
// @Accept json
// @Produce json
// @Param order body dto.CalculationRequest true "Order details"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Exchange rate unavailable"
// @Security BearerAuth
// @Router /calculate [post]
func (h *calculationHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for calculate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := req.ToOrder()
	if err != nil {
		logger.Warn("Invalid order", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Info("Received pricing request",
		slog.Int("items", len(order.Items)),
		slog.String("source_currency", order.SourceCurrency),
		slog.String("target_currency", order.TargetCurrency),
	)

	result, err := h.pricingService.Price(c.Request.Context(), order, principal)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error pricing order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			logger.Error("Exchange rate unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Exchange rate unavailable"})
		default:
			logger.Error("Failed to price order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to price order"})
		}
		return
	}

	logger.Info("Order priced",
		slog.String("discount_type", result.DiscountType),
		slog.String("discount_amount", result.DiscountAmount.String()),
	)
	c.JSON(http.StatusOK, dto.ToCalculationResponse(result))
}
