package routes

import (
	"tsmit_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStatuses = "/statuses"
	PathOrders   = "/orders"
)

func addWorkflowRoutes(rg *gin.RouterGroup, statusHandler *handlers.StatusHandler, orderHandler *handlers.ServiceOrderHandler) {
	statuses := rg.Group(PathStatuses)
	{
		statuses.GET("", statusHandler.ListStatuses)
		statuses.GET("/:id", statusHandler.GetStatus)
		statuses.POST("", statusHandler.CreateStatus)
		statuses.PUT("/:id", statusHandler.UpdateStatus)
		statuses.DELETE("/:id", statusHandler.DeleteStatus)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.DELETE("/:id", orderHandler.DeleteServiceOrder)
		orders.GET("/:id/transitions", orderHandler.ListTransitions)
		orders.PATCH("/:id/status", orderHandler.UpdateServiceOrderStatus)
		orders.PATCH("/:id/details", orderHandler.UpdateServiceOrderDetails)
	}
}
