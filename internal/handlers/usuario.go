// internal/handlers/usuario.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/miaucode/licencias-backend/internal/services"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// POST /usuarios
func (h *UsuarioHandler) Create(c *gin.Context) {
	var req services.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	usuario, err := h.usuarioService.Create(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"usuario": usuario})
}

// PUT /usuarios/:id
func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	usuario, err := h.usuarioService.Update(id, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"usuario": usuario})
}

// DELETE /usuarios/:id
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.usuarioService.Delete(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GET /usuarios/:id
func (h *UsuarioHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.Get(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"usuario": usuario})
}

// GET /usuarios
func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.List(parseStatusQuery(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"usuarios": usuarios})
}
