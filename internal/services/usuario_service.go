// internal/services/usuario_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/apperrors"
	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type UsuarioService struct {
	db *gorm.DB
}

type CreateUsuarioRequest struct {
	Telefono    string        `json:"telefono" validate:"required,telefono"`
	Status      models.Status `json:"status" validate:"oneof=0 1"`
	Observacion string        `json:"observacion" validate:"required"`
}

type UpdateUsuarioRequest struct {
	Telefono    *string        `json:"telefono,omitempty" validate:"omitempty,telefono"`
	Status      *models.Status `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
	Observacion *string        `json:"observacion,omitempty"`
}

func NewUsuarioService(db *gorm.DB) *UsuarioService {
	return &UsuarioService{db: db}
}

func (s *UsuarioService) Create(req *CreateUsuarioRequest) (*models.Usuario, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	usuario := &models.Usuario{
		Telefono:    req.Telefono,
		Status:      req.Status,
		Observacion: req.Observacion,
	}

	if err := s.db.Create(usuario).Error; err != nil {
		return nil, fmt.Errorf("failed to create usuario: %w", err)
	}

	return usuario, nil
}

func (s *UsuarioService) Update(id uint, req *UpdateUsuarioRequest) (*models.Usuario, error) {
	if id == 0 {
		return nil, apperrors.Validation("id es requerido")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("usuario")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Telefono != nil {
		usuario.Telefono = *req.Telefono
	}
	if req.Status != nil {
		usuario.Status = *req.Status
	}
	if req.Observacion != nil {
		usuario.Observacion = *req.Observacion
	}

	if err := s.db.Save(&usuario).Error; err != nil {
		return nil, fmt.Errorf("failed to update usuario: %w", err)
	}

	return &usuario, nil
}

func (s *UsuarioService) Delete(id uint) error {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("usuario")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&usuario).Error; err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}

	return nil
}

func (s *UsuarioService) Get(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.db.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("usuario")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &usuario, nil
}

// List returns usuarios, optionally filtered by status.
func (s *UsuarioService) List(status *models.Status) ([]models.Usuario, error) {
	query := s.db.Order("observacion asc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var usuarios []models.Usuario
	if err := query.Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch usuarios: %w", err)
	}

	return usuarios, nil
}
