// internal/handlers/ledger.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/miaucode/licencias-backend/internal/services"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type LedgerHandler struct {
	ledgerService *services.LedgerService
}

func NewLedgerHandler(ledgerService *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// POST /ingresos
func (h *LedgerHandler) CreateIngreso(c *gin.Context) {
	var req services.CreateIngresoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	ingreso, err := h.ledgerService.CreateIngreso(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"ingreso": ingreso})
}

// GET /ingresos
func (h *LedgerHandler) ListIngresos(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	ingresos, total, err := h.ledgerService.ListIngresos(params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(ingresos, total, params))
}

// POST /egresos
func (h *LedgerHandler) CreateEgreso(c *gin.Context) {
	var req services.CreateEgresoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	egreso, err := h.ledgerService.CreateEgreso(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"egreso": egreso})
}

// GET /egresos
func (h *LedgerHandler) ListEgresos(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	egresos, total, err := h.ledgerService.ListEgresos(params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(egresos, total, params))
}
