package routes

import (
	"lavaja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments       = "/payments"
	PathOrchestrations = "/orchestrations"
	PathMachines       = "/machines"
)

func addBillingRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, orchestrationHandler *handlers.OrchestrationHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Authorize)
		payments.POST("/confirm", paymentHandler.Confirm)
		payments.GET("/:payment_id", paymentHandler.GetByID)
	}

	orchestrations := rg.Group(PathOrchestrations)
	{
		orchestrations.POST("", orchestrationHandler.Issue)
	}

	machines := rg.Group(PathMachines)
	{
		machines.GET("/:machine_id/quote", orchestrationHandler.Quote)
	}
}
