// internal/handlers/licencia.go
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/services"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type LicenciaHandler struct {
	licenciaService *services.LicenciaService
}

func NewLicenciaHandler(licenciaService *services.LicenciaService) *LicenciaHandler {
	return &LicenciaHandler{
		licenciaService: licenciaService,
	}
}

// POST /licencias
func (h *LicenciaHandler) Create(c *gin.Context) {
	var req services.CreateLicenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	licencia, err := h.licenciaService.Create(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"licencia": licencia})
}

// POST /licencias/:id/renovar
func (h *LicenciaHandler) Renew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	licencia, err := h.licenciaService.Renew(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencia": licencia})
}

// PUT /licencias/:id
func (h *LicenciaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateLicenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	licencia, err := h.licenciaService.Update(id, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencia": licencia})
}

// DELETE /licencias/:id
func (h *LicenciaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.licenciaService.Delete(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GET /licencias/:id
func (h *LicenciaHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	licencia, err := h.licenciaService.Get(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencia": licencia})
}

// GET /licencias
func (h *LicenciaHandler) List(c *gin.Context) {
	licencias, err := h.licenciaService.List(parseStatusQuery(c), time.Now())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencias": licencias})
}

// GET /licencias/vencen-hoy
func (h *LicenciaHandler) ListVencenHoy(c *gin.Context) {
	licencias, err := h.licenciaService.ListVencenHoy(time.Now())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencias": licencias})
}

// GET /licencias/vencen-manana
func (h *LicenciaHandler) ListVencenManana(c *gin.Context) {
	licencias, err := h.licenciaService.ListVencenManana(time.Now())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"licencias": licencias})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequestResponse(c, "id inválido", nil)
		return 0, false
	}
	return uint(id), true
}

func parseStatusQuery(c *gin.Context) *models.Status {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || (value != 0 && value != 1) {
		return nil
	}
	status := models.Status(value)
	return &status
}
