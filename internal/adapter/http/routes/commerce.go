package routes

import (
	"distrimed/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathShipping   = "/shipping"
	PathQuotations = "/quotations"
	PathOrders     = "/orders"
)

func addCommerceRoutes(rg *gin.RouterGroup, shippingHandler *handlers.ShippingHandler, quotationHandler *handlers.QuotationHandler, orderHandler *handlers.OrderHandler) {
	shipping := rg.Group(PathShipping)
	{
		shipping.POST("/quotes", shippingHandler.QuoteRates)
		shipping.GET("/selection", shippingHandler.GetSelection)
		shipping.PUT("/selection", shippingHandler.SelectRate)
		shipping.DELETE("/selection", shippingHandler.ResetSelection)
		shipping.GET("/bands", shippingHandler.ListBands)
		shipping.PUT("/bands", shippingHandler.PutBand)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/status", quotationHandler.UpdateQuotationStatus)
		quotations.POST("/:id/convert", quotationHandler.ConvertQuotation)
		quotations.GET("/:id/order", orderHandler.GetOrderByQuotation)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", orderHandler.GetOrder)
	}
}
