// internal/services/export_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/apperrors"
	"github.com/miaucode/licencias-backend/internal/models"
)

// ExportService renders the admin list views as Excel workbooks. Contrasena
// never appears in an export even though the API returns it.
type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

const fechaFormat = "02/01/2006"

// Build returns a workbook for the named resource: licencias, servicios,
// usuarios, ingresos or egresos.
func (s *ExportService) Build(recurso string) (*excelize.File, error) {
	switch recurso {
	case "licencias":
		return s.buildLicencias()
	case "servicios":
		return s.buildServicios()
	case "usuarios":
		return s.buildUsuarios()
	case "ingresos":
		return s.buildIngresos()
	case "egresos":
		return s.buildEgresos()
	default:
		return nil, apperrors.Validation("recurso de exportación desconocido: %s", recurso)
	}
}

func newSheet(name string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if t, ok := v.(time.Time); ok {
			v = t.Format(fechaFormat)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func (s *ExportService) buildLicencias() (*excelize.File, error) {
	var licencias []models.Licencia
	if err := s.db.Preload("Usuario").Preload("Servicio").Order("fin asc").Find(&licencias).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch licencias: %w", err)
	}

	const sheet = "Licencias"
	f, err := newSheet(sheet, []string{"ID", "Usuario", "Plataforma", "Correo", "Inicio", "Fin", "Status"})
	if err != nil {
		return nil, err
	}

	for i, l := range licencias {
		row := []interface{}{
			l.ID, l.Usuario.Observacion, l.Servicio.Plataforma,
			l.Correo, l.Inicio, l.Fin, statusLabel(l.Status),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (s *ExportService) buildServicios() (*excelize.File, error) {
	var servicios []models.Servicio
	if err := s.db.Order("plataforma asc").Find(&servicios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch servicios: %w", err)
	}

	const sheet = "Servicios"
	f, err := newSheet(sheet, []string{
		"ID", "Plataforma", "Precio Vender", "Precio Comprar",
		"Num Proveedor", "Empresa Proveedor", "Fecha Inicio", "Fecha Fin", "Status",
	})
	if err != nil {
		return nil, err
	}

	for i, sv := range servicios {
		row := []interface{}{
			sv.ID, sv.Plataforma, sv.PrecioVender, sv.PrecioComprar,
			sv.NumProveedor, sv.EmpresaProveedor, sv.FechaInicio, sv.FechaFin, statusLabel(sv.Status),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (s *ExportService) buildUsuarios() (*excelize.File, error) {
	var usuarios []models.Usuario
	if err := s.db.Order("observacion asc").Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch usuarios: %w", err)
	}

	const sheet = "Usuarios"
	f, err := newSheet(sheet, []string{"ID", "Observacion", "Telefono", "Status"})
	if err != nil {
		return nil, err
	}

	for i, u := range usuarios {
		row := []interface{}{u.ID, u.Observacion, u.Telefono, statusLabel(u.Status)}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (s *ExportService) buildIngresos() (*excelize.File, error) {
	var ingresos []models.Ingreso
	err := s.db.Preload("Licencia").Preload("Licencia.Usuario").Preload("Licencia.Servicio").
		Order("fecha_ingreso desc").Find(&ingresos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ingresos: %w", err)
	}

	const sheet = "Ingresos"
	f, err := newSheet(sheet, []string{"ID", "Licencia", "Usuario", "Plataforma", "Detalles", "Monto", "Fecha"})
	if err != nil {
		return nil, err
	}

	for i, in := range ingresos {
		row := []interface{}{
			in.ID, in.LicenciaID, in.Licencia.Usuario.Observacion,
			in.Licencia.Servicio.Plataforma, in.Detalles, in.MontoIngreso, in.FechaIngreso,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (s *ExportService) buildEgresos() (*excelize.File, error) {
	var egresos []models.Egreso
	if err := s.db.Preload("Servicio").Order("fecha_egreso desc").Find(&egresos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch egresos: %w", err)
	}

	const sheet = "Egresos"
	f, err := newSheet(sheet, []string{"ID", "Servicio", "Detalles", "Monto", "Fecha"})
	if err != nil {
		return nil, err
	}

	for i, e := range egresos {
		row := []interface{}{e.ID, e.Servicio.Plataforma, e.Detalles, e.MontoEgreso, e.FechaEgreso}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func statusLabel(s models.Status) string {
	if s == models.StatusActivo {
		return "Activo"
	}
	return "Inactivo"
}
