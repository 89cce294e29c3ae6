package routes

import (
	"tsmit_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathServices = "/services"
)

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, serviceHandler *handlers.ProvidedServiceHandler) {
	clients := rg.Group(PathClients)
	{
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.POST("", clientHandler.CreateClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.POST("", serviceHandler.CreateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.POST("/:id/assign", serviceHandler.AssignService)
	}
}
