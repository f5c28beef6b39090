// internal/services/licencia_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/apperrors"
	"github.com/miaucode/licencias-backend/internal/config"
	"github.com/miaucode/licencias-backend/internal/expiry"
	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/utils"
)

type LicenciaService struct {
	db       *gorm.DB
	business config.BusinessConfig
}

type CreateLicenciaRequest struct {
	UserID     uint      `json:"user_id" validate:"required"`
	ServicioID uint      `json:"servicio_id" validate:"required"`
	Correo     string    `json:"correo" validate:"required,email"`
	Contrasena string    `json:"contrasena" validate:"required"`
	Inicio     time.Time `json:"inicio" validate:"required"`
	Fin        time.Time `json:"fin" validate:"required"`
}

type UpdateLicenciaRequest struct {
	UserID     *uint          `json:"user_id,omitempty"`
	ServicioID *uint          `json:"servicio_id,omitempty"`
	Status     *models.Status `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
	Correo     *string        `json:"correo,omitempty" validate:"omitempty,email"`
	Contrasena *string        `json:"contrasena,omitempty"`
	Inicio     time.Time      `json:"inicio" validate:"required"`
	Fin        time.Time      `json:"fin" validate:"required"`
}

// LicenciaView is a licencia annotated with its expiration classification,
// the shape the admin tables render.
type LicenciaView struct {
	models.Licencia
	VenceHoy      bool `json:"vence_hoy"`
	VenceManana   bool `json:"vence_manana"`
	DiasRestantes int  `json:"dias_restantes"`
}

func NewLicenciaService(db *gorm.DB, business config.BusinessConfig) *LicenciaService {
	return &LicenciaService{
		db:       db,
		business: business,
	}
}

// Create persists a new licencia with status active and, in the same
// transaction, the creation ingreso billed at the servicio's sale price.
// Either both rows commit or neither does.
func (s *LicenciaService) Create(req *CreateLicenciaRequest) (*models.Licencia, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}

	if !req.Fin.After(req.Inicio) {
		return nil, apperrors.Validation("fin debe ser posterior a inicio")
	}

	if err := s.checkCorreo(req.Correo); err != nil {
		return nil, err
	}

	var usuario models.Usuario
	if err := s.db.First(&usuario, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("usuario")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if usuario.Status != models.StatusActivo {
		return nil, apperrors.Validation("el usuario %d está inactivo", usuario.ID)
	}

	var servicio models.Servicio
	if err := s.db.First(&servicio, req.ServicioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("servicio")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if servicio.Status != models.StatusActivo {
		return nil, apperrors.Validation("el servicio %d está inactivo", servicio.ID)
	}

	licencia := &models.Licencia{
		UserID:     req.UserID,
		ServicioID: req.ServicioID,
		Status:     models.StatusActivo,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		Inicio:     req.Inicio,
		Fin:        req.Fin,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(licencia).Error; err != nil {
			return fmt.Errorf("failed to create licencia: %w", err)
		}

		ingreso := &models.Ingreso{
			LicenciaID:   licencia.ID,
			Detalles:     models.DetallesCreacionLicencia,
			MontoIngreso: servicio.PrecioVender,
			FechaIngreso: time.Now(),
		}
		if err := tx.Create(ingreso).Error; err != nil {
			return fmt.Errorf("failed to create ingreso: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Load relationships
	if err := s.db.Preload("Usuario").Preload("Servicio").First(licencia, licencia.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload licencia: %w", err)
	}

	return licencia, nil
}

// Renew advances inicio and fin by one calendar month (stdlib AddDate
// normalisation applies to day overflow) and appends a renewal ingreso billed
// at the servicio's current sale price. The date update is guarded by the
// licencia's version counter so two concurrent renewals cannot both extend
// the window and double-bill; the loser gets a RenewalError.
func (s *LicenciaService) Renew(id uint) (*models.Licencia, error) {
	var licencia models.Licencia
	if err := s.db.First(&licencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("licencia")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	servicioQuery := s.db.Where("id = ?", licencia.ServicioID)
	if !s.business.RenewWithInactiveService {
		servicioQuery = servicioQuery.Where("status = ?", models.StatusActivo)
	}

	var servicio models.Servicio
	if err := servicioQuery.First(&servicio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("servicio")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.applyRenewal(&licencia, &servicio); err != nil {
		return nil, err
	}

	if err := s.db.Preload("Usuario").Preload("Servicio").First(&licencia, licencia.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload licencia: %w", err)
	}

	return &licencia, nil
}

// applyRenewal commits the date advance and the renewal ingreso atomically.
// The version guard makes the loser of a concurrent renewal fail instead of
// double-extending and double-billing.
func (s *LicenciaService) applyRenewal(licencia *models.Licencia, servicio *models.Servicio) error {
	nuevoInicio := licencia.Inicio.AddDate(0, 1, 0)
	nuevoFin := licencia.Fin.AddDate(0, 1, 0)

	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Licencia{}).
			Where("id = ? AND version = ?", licencia.ID, licencia.Version).
			Updates(map[string]interface{}{
				"inicio":  nuevoInicio,
				"fin":     nuevoFin,
				"version": licencia.Version + 1,
			})
		if result.Error != nil {
			return apperrors.Renewal("no se pudo actualizar la licencia", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.Renewal("la licencia fue renovada por otra operación", nil)
		}

		ingreso := &models.Ingreso{
			LicenciaID:   licencia.ID,
			Detalles:     models.DetallesRenovacionLicencia,
			MontoIngreso: servicio.PrecioVender,
			FechaIngreso: time.Now(),
		}
		if err := tx.Create(ingreso).Error; err != nil {
			return fmt.Errorf("failed to create ingreso: %w", err)
		}

		return nil
	})
}

func (s *LicenciaService) Update(id uint, req *UpdateLicenciaRequest) (*models.Licencia, error) {
	if id == 0 {
		return nil, apperrors.Validation("id es requerido")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("datos inválidos: %v", err)
	}
	if !req.Fin.After(req.Inicio) {
		return nil, apperrors.Validation("fin debe ser posterior a inicio")
	}

	var licencia models.Licencia
	if err := s.db.First(&licencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("licencia")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.UserID != nil {
		var usuario models.Usuario
		if err := s.db.First(&usuario, *req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("usuario")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		licencia.UserID = *req.UserID
	}

	if req.ServicioID != nil {
		var servicio models.Servicio
		if err := s.db.First(&servicio, *req.ServicioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("servicio")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		licencia.ServicioID = *req.ServicioID
	}

	if req.Correo != nil {
		if err := s.checkCorreo(*req.Correo); err != nil {
			return nil, err
		}
		licencia.Correo = *req.Correo
	}

	if req.Contrasena != nil {
		licencia.Contrasena = *req.Contrasena
	}

	if req.Status != nil {
		licencia.Status = *req.Status
	}

	licencia.Inicio = req.Inicio
	licencia.Fin = req.Fin
	licencia.Version++

	if err := s.db.Save(&licencia).Error; err != nil {
		return nil, fmt.Errorf("failed to update licencia: %w", err)
	}

	if err := s.db.Preload("Usuario").Preload("Servicio").First(&licencia, licencia.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload licencia: %w", err)
	}

	return &licencia, nil
}

// Delete removes the licencia and its ingresos in one transaction.
func (s *LicenciaService) Delete(id uint) error {
	var licencia models.Licencia
	if err := s.db.First(&licencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("licencia")
		}
		return fmt.Errorf("database error: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("licencia_id = ?", id).Delete(&models.Ingreso{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingresos: %w", err)
		}
		if err := tx.Delete(&licencia).Error; err != nil {
			return fmt.Errorf("failed to delete licencia: %w", err)
		}
		return nil
	})
}

func (s *LicenciaService) Get(id uint) (*models.Licencia, error) {
	var licencia models.Licencia
	if err := s.db.Preload("Usuario").Preload("Servicio").First(&licencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("licencia")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &licencia, nil
}

// List returns licencias annotated with their expiration classification at
// the given instant. status filters when non-nil; inactive licencias still
// appear in the unfiltered listing.
func (s *LicenciaService) List(status *models.Status, now time.Time) ([]LicenciaView, error) {
	query := s.db.Preload("Usuario").Preload("Servicio").Order("fin asc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var licencias []models.Licencia
	if err := query.Find(&licencias).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch licencias: %w", err)
	}

	views := make([]LicenciaView, 0, len(licencias))
	for _, l := range licencias {
		views = append(views, LicenciaView{
			Licencia:      l,
			VenceHoy:      expiry.VenceHoy(l.Fin, now),
			VenceManana:   expiry.VenceManana(l.Fin, now),
			DiasRestantes: expiry.DiasRestantes(l.Fin, now),
		})
	}

	return views, nil
}

// ListVencenHoy returns the active licencias whose fin falls on now's
// calendar date in the business timezone.
func (s *LicenciaService) ListVencenHoy(now time.Time) ([]LicenciaView, error) {
	return s.listExpiring(now, expiry.VenceHoy)
}

// ListVencenManana returns the active licencias expiring the day after now.
func (s *LicenciaService) ListVencenManana(now time.Time) ([]LicenciaView, error) {
	return s.listExpiring(now, expiry.VenceManana)
}

func (s *LicenciaService) listExpiring(now time.Time, matches func(fin, now time.Time) bool) ([]LicenciaView, error) {
	activo := models.StatusActivo
	views, err := s.List(&activo, now)
	if err != nil {
		return nil, err
	}

	filtered := make([]LicenciaView, 0, len(views))
	for _, v := range views {
		if matches(v.Fin, now) {
			filtered = append(filtered, v)
		}
	}

	return filtered, nil
}

func (s *LicenciaService) checkCorreo(correo string) error {
	if !strings.HasSuffix(strings.ToLower(correo), strings.ToLower(s.business.CorporateEmailDomain)) {
		return apperrors.Validation("el correo debe pertenecer al dominio %s", s.business.CorporateEmailDomain)
	}
	return nil
}
