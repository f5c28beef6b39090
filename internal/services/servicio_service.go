// internal/services/servicio_service.go
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

type ServicioService struct {
	db *gorm.DB
}

type CreateServicioRequest struct {
	Plataforma       string        `json:"plataforma" validate:"required"`
	Status           models.Status `json:"status" validate:"oneof=0 1"`
	PrecioVender     float64       `json:"precio_vender" validate:"gte=0"`
	PrecioComprar    float64       `json:"precio_comprar" validate:"gte=0"`
	NumProveedor     string        `json:"num_proveedor"`
	EmpresaProveedor string        `json:"empresa_proveedor"`
	FechaInicio      time.Time     `json:"fecha_inicio" validate:"required"`
	FechaFin         time.Time     `json:"fecha_fin" validate:"required"`
}

type UpdateServicioRequest struct {
	Plataforma       *string        `json:"plataforma,omitempty"`
	Status           *models.Status `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
	PrecioVender     *float64       `json:"precio_vender,omitempty" validate:"omitempty,gte=0"`
	PrecioComprar    *float64       `json:"precio_comprar,omitempty" validate:"omitempty,gte=0"`
	NumProveedor     *string        `json:"num_proveedor,omitempty"`
	EmpresaProveedor *string        `json:"empresa_proveedor,omitempty"`
	FechaInicio      *time.Time     `json:"fecha_inicio,omitempty"`
	FechaFin         *time.Time     `json:"fecha_fin,omitempty"`
}

func NewServicioService(db *gorm.DB) *ServicioService {
	return &ServicioService{db: db}
}

func (s *ServicioService) Create(req *CreateServicioRequest) (*models.Servicio, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}
	if !req.FechaFin.After(req.FechaInicio) {
		return nil, apperrors.Validation("fecha_fin debe ser posterior a fecha_inicio")
	}

	servicio := &models.Servicio{
		Plataforma:       req.Plataforma,
		Status:           req.Status,
		PrecioVender:     req.PrecioVender,
		PrecioComprar:    req.PrecioComprar,
		NumProveedor:     req.NumProveedor,
		EmpresaProveedor: req.EmpresaProveedor,
		FechaInicio:      req.FechaInicio,
		FechaFin:         req.FechaFin,
	}

	if err := s.db.Create(servicio).Error; err != nil {
		return nil, fmt.Errorf("failed to create servicio: %w", err)
	}

	return servicio, nil
}

func (s *ServicioService) Update(id uint, req *UpdateServicioRequest) (*models.Servicio, error) {
	if id == 0 {
		return nil, apperrors.Validation("id es requerido")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	var servicio models.Servicio
	if err := s.db.First(&servicio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("servicio")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Plataforma != nil {
		servicio.Plataforma = *req.Plataforma
	}
	if req.Status != nil {
		servicio.Status = *req.Status
	}
	if req.PrecioVender != nil {
		servicio.PrecioVender = *req.PrecioVender
	}
	if req.PrecioComprar != nil {
		servicio.PrecioComprar = *req.PrecioComprar
	}
	if req.NumProveedor != nil {
		servicio.NumProveedor = *req.NumProveedor
	}
	if req.EmpresaProveedor != nil {
		servicio.EmpresaProveedor = *req.EmpresaProveedor
	}
	if req.FechaInicio != nil {
		servicio.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		servicio.FechaFin = *req.FechaFin
	}

	if !servicio.FechaFin.After(servicio.FechaInicio) {
		return nil, apperrors.Validation("fecha_fin debe ser posterior a fecha_inicio")
	}

	if err := s.db.Save(&servicio).Error; err != nil {
		return nil, fmt.Errorf("failed to update servicio: %w", err)
	}

	return &servicio, nil
}

func (s *ServicioService) Delete(id uint) error {
	var servicio models.Servicio
	if err := s.db.First(&servicio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("servicio")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&servicio).Error; err != nil {
		return fmt.Errorf("failed to delete servicio: %w", err)
	}

	return nil
}

func (s *ServicioService) Get(id uint) (*models.Servicio, error) {
	var servicio models.Servicio
	if err := s.db.First(&servicio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("servicio")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &servicio, nil
}

// List returns servicios, optionally filtered by status. The creation dialog
// for licencias only offers the active subset.
func (s *ServicioService) List(status *models.Status) ([]models.Servicio, error) {
	query := s.db.Order("plataforma asc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var servicios []models.Servicio
	if err := query.Find(&servicios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch servicios: %w", err)
	}

	return servicios, nil
}
