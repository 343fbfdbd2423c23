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
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations, including the
// conversion endpoint that turns an accepted quotation into an order.

type QuotationHandler struct {
	usecase   usecase.IQuotationUseCase
	converter usecase.IOrderConverterUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, converter usecase.IOrderConverterUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc, converter: converter}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), q)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(created))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id := c.Param("id")

	q, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// ConvertQuotation runs the quotation-to-order pipeline. Best-effort stage
// failures inside the converter never reach this handler; only guard,
// customer, order-insert and final status-update failures do.
func (h *QuotationHandler) ConvertQuotation(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[quotation][handler] convert start quotation_id=%s", id)

	order, err := h.converter.ConvertToOrder(c.Request.Context(), id)
	if err != nil {
		log.Printf("[quotation][handler] convert failed quotation_id=%s err=%v", id, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] convert success quotation_id=%s order_id=%s", id, order.ID)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidQuotationItems),
		errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTATION_ALREADY_CONVERTED", "This quotation was already converted to an order", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotResolved):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_RESOLVED", "Customer not found for this quotation", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
