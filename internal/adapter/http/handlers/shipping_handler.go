package handlers

import (
	"errors"
	"log"
	"net/http"

	request "distrimed/internal/adapter/http/dto/request"
	response "distrimed/internal/adapter/http/dto/response"
	"distrimed/internal/usecase"
	"distrimed/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidShippingPayload = pkg.NewDomainErrorSimple("INVALID_SHIPPING_INPUT", "Invalid shipping payload", http.StatusBadRequest)
)

// ShippingHandler handles HTTP requests for shipping quotes, the current
// selection, and the regional band admin table.

type ShippingHandler struct {
	resolver usecase.IShippingResolverUseCase
	bands    usecase.IShippingBandUseCase
}

func NewShippingHandler(resolver usecase.IShippingResolverUseCase, bands usecase.IShippingBandUseCase) *ShippingHandler {
	return &ShippingHandler{resolver: resolver, bands: bands}
}

// QuoteRates resolves shipping options for a destination. A degraded
// (fallback) result is still a 200: the caller cannot tell the difference and
// should not have to.
func (h *ShippingHandler) QuoteRates(c *gin.Context) {
	var payload request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShippingPayload.HTTPStatus, errInvalidShippingPayload.ToHTTPError())
		return
	}

	rates, err := h.resolver.QuoteToDestination(c.Request.Context(), payload.DestinationZipCode, payload.Parcel())
	if err != nil {
		log.Printf("[shipping][handler] quote failed destination=%s err=%v", payload.DestinationZipCode, err)
		appErr := mapShippingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingRates(rates))
}

func (h *ShippingHandler) SelectRate(c *gin.Context) {
	var payload request.SelectRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShippingPayload.HTTPStatus, errInvalidShippingPayload.ToHTTPError())
		return
	}

	h.resolver.SelectRate(payload.ToEntity())
	selected, fee, deliveryDate := h.resolver.Selection()
	c.JSON(http.StatusOK, response.FromShippingSelection(selected, fee, deliveryDate))
}

func (h *ShippingHandler) GetSelection(c *gin.Context) {
	selected, fee, deliveryDate := h.resolver.Selection()
	c.JSON(http.StatusOK, response.FromShippingSelection(selected, fee, deliveryDate))
}

func (h *ShippingHandler) ResetSelection(c *gin.Context) {
	h.resolver.Reset()
	c.Status(http.StatusNoContent)
}

func (h *ShippingHandler) ListBands(c *gin.Context) {
	bands, err := h.bands.List(c.Request.Context())
	if err != nil {
		log.Printf("[shipping][handler] band list failed err=%v", err)
		appErr := mapShippingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegionalBands(bands))
}

func (h *ShippingHandler) PutBand(c *gin.Context) {
	var payload request.RegionalBandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShippingPayload.HTTPStatus, errInvalidShippingPayload.ToHTTPError())
		return
	}

	band, err := h.bands.Put(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[shipping][handler] band put failed region=%s err=%v", payload.Region, err)
		appErr := mapShippingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegionalBand(band))
}

func mapShippingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidZipCode):
		return pkg.NewDomainErrorSimple("INVALID_ZIP_CODE", "Destination zip code must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRegionalBand):
		return pkg.NewDomainErrorSimple("INVALID_REGIONAL_BAND", "Invalid regional band", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
