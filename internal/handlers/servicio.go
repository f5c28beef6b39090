// internal/handlers/servicio.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/miaucode/licencias-backend/internal/services"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type ServicioHandler struct {
	servicioService *services.ServicioService
}

func NewServicioHandler(servicioService *services.ServicioService) *ServicioHandler {
	return &ServicioHandler{
		servicioService: servicioService,
	}
}

// POST /servicios
func (h *ServicioHandler) Create(c *gin.Context) {
	var req services.CreateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	servicio, err := h.servicioService.Create(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"servicio": servicio})
}

// PUT /servicios/:id
func (h *ServicioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	servicio, err := h.servicioService.Update(id, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"servicio": servicio})
}

// DELETE /servicios/:id
func (h *ServicioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.servicioService.Delete(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GET /servicios/:id
func (h *ServicioHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	servicio, err := h.servicioService.Get(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"servicio": servicio})
}

// GET /servicios
func (h *ServicioHandler) List(c *gin.Context) {
	servicios, err := h.servicioService.List(parseStatusQuery(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"servicios": servicios})
}
