package routes

import (
	"lavaja/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathDevice = "/device"

func addDeviceRoutes(rg *gin.RouterGroup, deviceHandler *handlers.DeviceHandler, auth gin.HandlerFunc) {
	device := rg.Group(PathDevice)
	device.Use(auth)
	{
		device.POST("/poll", deviceHandler.Poll)
		device.POST("/ack", deviceHandler.Ack)
		device.POST("/evento", deviceHandler.Event)
	}
}
