package routes

import (
	"lavaja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathKits = "/kits"

func addKitRoutes(rg *gin.RouterGroup, kitHandler *handlers.KitHandler) {
	kits := rg.Group(PathKits)
	{
		kits.POST("/reconcile", kitHandler.Reconcile)
		kits.POST("/transfer", kitHandler.Transfer)
	}
}
