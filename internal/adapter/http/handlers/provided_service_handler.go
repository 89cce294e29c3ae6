package handlers

import (
	"errors"
	"net/http"

	request "tsmit_os/internal/adapter/http/dto/request"
	response "tsmit_os/internal/adapter/http/dto/response"
	"tsmit_os/internal/usecase"
	"tsmit_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ProvidedServiceHandler handles HTTP requests for the service catalog.

type ProvidedServiceHandler struct {
	usecase usecase.IProvidedServiceUseCase
}

func NewProvidedServiceHandler(uc usecase.IProvidedServiceUseCase) *ProvidedServiceHandler {
	return &ProvidedServiceHandler{usecase: uc}
}

func (h *ProvidedServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProvidedServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProvidedServices(services))
}

func (h *ProvidedServiceHandler) CreateService(c *gin.Context) {
	var payload request.ProvidedServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProvidedServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProvidedService(service))
}

func (h *ProvidedServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProvidedServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignService adds the service to each listed client's contracted set.
func (h *ProvidedServiceHandler) AssignService(c *gin.Context) {
	var payload request.AssignServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	if err := h.usecase.AssignToClients(c.Request.Context(), c.Param("id"), payload.ClientIDs); err != nil {
		appErr := mapProvidedServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProvidedServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrNoClientsSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
