// internal/services/dashboard_service.go
package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/miaucode/licencias-backend/internal/expiry"
	"github.com/miaucode/licencias-backend/internal/models"
)

// DashboardService aggregates the sums and counts behind the dashboard cards
// and charts. All reads, no mutation.
type DashboardService struct {
	db *gorm.DB
}

type DashboardStats struct {
	LicenciasActivas   int64          `json:"licencias_activas"`
	LicenciasInactivas int64          `json:"licencias_inactivas"`
	VencenHoy          int            `json:"vencen_hoy"`
	VencenManana       int            `json:"vencen_manana"`
	UsuariosActivos    int64          `json:"usuarios_activos"`
	ServiciosActivos   int64          `json:"servicios_activos"`
	TotalIngresos      float64        `json:"total_ingresos"`
	TotalEgresos       float64        `json:"total_egresos"`
	Balance            float64        `json:"balance"`
	SerieMensual       []MonthlyTotal `json:"serie_mensual"`
}

// MonthlyTotal is one bar of the income/expense chart, keyed "2006-01".
type MonthlyTotal struct {
	Mes      string  `json:"mes"`
	Ingresos float64 `json:"ingresos"`
	Egresos  float64 `json:"egresos"`
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Stats(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Licencia{}).
		Where("status = ?", models.StatusActivo).
		Count(&stats.LicenciasActivas).Error; err != nil {
		return nil, fmt.Errorf("failed to count licencias: %w", err)
	}

	if err := s.db.Model(&models.Licencia{}).
		Where("status = ?", models.StatusInactivo).
		Count(&stats.LicenciasInactivas).Error; err != nil {
		return nil, fmt.Errorf("failed to count licencias: %w", err)
	}

	if err := s.db.Model(&models.Usuario{}).
		Where("status = ?", models.StatusActivo).
		Count(&stats.UsuariosActivos).Error; err != nil {
		return nil, fmt.Errorf("failed to count usuarios: %w", err)
	}

	if err := s.db.Model(&models.Servicio{}).
		Where("status = ?", models.StatusActivo).
		Count(&stats.ServiciosActivos).Error; err != nil {
		return nil, fmt.Errorf("failed to count servicios: %w", err)
	}

	if err := s.db.Model(&models.Ingreso{}).
		Select("COALESCE(SUM(monto_ingreso), 0)").
		Scan(&stats.TotalIngresos).Error; err != nil {
		return nil, fmt.Errorf("failed to sum ingresos: %w", err)
	}

	if err := s.db.Model(&models.Egreso{}).
		Select("COALESCE(SUM(monto_egreso), 0)").
		Scan(&stats.TotalEgresos).Error; err != nil {
		return nil, fmt.Errorf("failed to sum egresos: %w", err)
	}

	stats.Balance = stats.TotalIngresos - stats.TotalEgresos

	// Only active licencias count toward the expiring-soon cards.
	var activas []models.Licencia
	if err := s.db.Where("status = ?", models.StatusActivo).Find(&activas).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch licencias: %w", err)
	}
	for _, l := range activas {
		if expiry.VenceHoy(l.Fin, now) {
			stats.VencenHoy++
		}
		if expiry.VenceManana(l.Fin, now) {
			stats.VencenManana++
		}
	}

	serie, err := s.monthlySeries(now, 6)
	if err != nil {
		return nil, err
	}
	stats.SerieMensual = serie

	return stats, nil
}

// monthlySeries buckets ledger rows of the last months in Go rather than SQL
// so the grouping works identically on postgres and the sqlite test database.
func (s *DashboardService) monthlySeries(now time.Time, months int) ([]MonthlyTotal, error) {
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	buckets := make(map[string]*MonthlyTotal)
	for i := 0; i < months; i++ {
		mes := cutoff.AddDate(0, i, 0).Format("2006-01")
		buckets[mes] = &MonthlyTotal{Mes: mes}
	}

	var ingresos []models.Ingreso
	if err := s.db.Where("fecha_ingreso >= ?", cutoff).Find(&ingresos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ingresos: %w", err)
	}
	for _, i := range ingresos {
		if b, ok := buckets[i.FechaIngreso.Format("2006-01")]; ok {
			b.Ingresos += i.MontoIngreso
		}
	}

	var egresos []models.Egreso
	if err := s.db.Where("fecha_egreso >= ?", cutoff).Find(&egresos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch egresos: %w", err)
	}
	for _, e := range egresos {
		if b, ok := buckets[e.FechaEgreso.Format("2006-01")]; ok {
			b.Egresos += e.MontoEgreso
		}
	}

	serie := make([]MonthlyTotal, 0, len(buckets))
	for _, b := range buckets {
		serie = append(serie, *b)
	}
	sort.Slice(serie, func(i, j int) bool { return serie[i].Mes < serie[j].Mes })

	return serie, nil
}
