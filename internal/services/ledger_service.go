// internal/services/ledger_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/apperrors"
	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/utils"
)

// LedgerService owns the ingreso/egreso rows created outside the licencia
// lifecycle (manual entries and provider payments). Lifecycle-driven ingresos
// are emitted by LicenciaService inside its own transactions.
type LedgerService struct {
	db *gorm.DB
}

type CreateIngresoRequest struct {
	LicenciaID   uint    `json:"licencia_id" validate:"required"`
	Detalles     string  `json:"detalles" validate:"required"`
	MontoIngreso float64 `json:"monto_ingreso" validate:"required,gt=0"`
}

type CreateEgresoRequest struct {
	ServicioID  uint    `json:"servicio_id" validate:"required"`
	Detalles    string  `json:"detalles"`
	MontoEgreso float64 `json:"monto_egreso" validate:"required,gt=0"`
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

func (s *LedgerService) CreateIngreso(req *CreateIngresoRequest) (*models.Ingreso, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	var licencia models.Licencia
	if err := s.db.First(&licencia, req.LicenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("licencia")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	ingreso := &models.Ingreso{
		LicenciaID:   req.LicenciaID,
		Detalles:     req.Detalles,
		MontoIngreso: req.MontoIngreso,
		FechaIngreso: time.Now(),
	}

	if err := s.db.Create(ingreso).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingreso: %w", err)
	}

	return ingreso, nil
}

func (s *LedgerService) CreateEgreso(req *CreateEgresoRequest) (*models.Egreso, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	var servicio models.Servicio
	if err := s.db.First(&servicio, req.ServicioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("servicio")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	detalles := req.Detalles
	if detalles == "" {
		detalles = models.DetallesPagoRealizado
	}

	egreso := &models.Egreso{
		ServicioID:  req.ServicioID,
		Detalles:    detalles,
		MontoEgreso: req.MontoEgreso,
		FechaEgreso: time.Now(),
	}

	if err := s.db.Create(egreso).Error; err != nil {
		return nil, fmt.Errorf("failed to create egreso: %w", err)
	}

	return egreso, nil
}

// ListIngresos returns one page of the income ledger with the licencia, its
// usuario and servicio preloaded, the shape the ingresos table and its detail
// modal use.
func (s *LedgerService) ListIngresos(params utils.PaginationParams) ([]models.Ingreso, int64, error) {
	var total int64
	if err := s.db.Model(&models.Ingreso{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ingresos: %w", err)
	}

	query := s.db.
		Preload("Licencia").
		Preload("Licencia.Usuario").
		Preload("Licencia.Servicio")
	query = utils.ApplySort(query, params, []string{"fecha_ingreso", "monto_ingreso"})

	var ingresos []models.Ingreso
	if err := utils.ApplyPagination(query, params).Find(&ingresos).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch ingresos: %w", err)
	}

	return ingresos, total, nil
}

func (s *LedgerService) ListEgresos(params utils.PaginationParams) ([]models.Egreso, int64, error) {
	var total int64
	if err := s.db.Model(&models.Egreso{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count egresos: %w", err)
	}

	query := s.db.Preload("Servicio")
	query = utils.ApplySort(query, params, []string{"fecha_egreso", "monto_egreso"})

	var egresos []models.Egreso
	if err := utils.ApplyPagination(query, params).Find(&egresos).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch egresos: %w", err)
	}

	return egresos, total, nil
}
