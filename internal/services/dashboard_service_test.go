// internal/services/dashboard_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/testutil"
)

func TestDashboardStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewDashboardService(db)
	licSvc := NewLicenciaService(db, defaultBusiness())
	ledger := NewLedgerService(db)

	usuario := seedUsuario(t, db, models.StatusActivo)
	seedUsuario(t, db, models.StatusInactivo)
	servicio := seedServicio(t, db, 50, models.StatusActivo)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// Expires today, expires tomorrow, and one further out
	hoy := createLicencia(t, licSvc, usuario.ID, servicio.ID,
		now.AddDate(0, -1, 0), time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC))
	createLicencia(t, licSvc, usuario.ID, servicio.ID,
		now.AddDate(0, -1, 0), time.Date(2024, 3, 16, 18, 0, 0, 0, time.UTC))
	createLicencia(t, licSvc, usuario.ID, servicio.ID,
		now.AddDate(0, -1, 0), time.Date(2024, 4, 15, 18, 0, 0, 0, time.UTC))

	inactivo := models.StatusInactivo
	_, err := licSvc.Update(hoy.ID, &UpdateLicenciaRequest{
		Status: &inactivo,
		Inicio: hoy.Inicio,
		Fin:    hoy.Fin,
	})
	require.NoError(t, err)

	_, err = ledger.CreateEgreso(&CreateEgresoRequest{
		ServicioID:  servicio.ID,
		MontoEgreso: 30,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(now)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.LicenciasActivas)
	assert.Equal(t, int64(1), stats.LicenciasInactivas)
	assert.Equal(t, int64(1), stats.UsuariosActivos)
	assert.Equal(t, int64(1), stats.ServiciosActivos)

	// Three creation ingresos at 50 each
	assert.Equal(t, 150.0, stats.TotalIngresos)
	assert.Equal(t, 30.0, stats.TotalEgresos)
	assert.Equal(t, 120.0, stats.Balance)

	// The licencia expiring today was deactivated, so it no longer counts
	assert.Equal(t, 0, stats.VencenHoy)
	assert.Equal(t, 1, stats.VencenManana)
}

func TestDashboardMonthlySeries(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewDashboardService(db)
	servicio := seedServicio(t, db, 50, models.StatusActivo)
	usuario := seedUsuario(t, db, models.StatusActivo)

	licencia := models.Licencia{
		UserID:     usuario.ID,
		ServicioID: servicio.ID,
		Status:     models.StatusActivo,
		Correo:     "cliente@miaucode.digital",
		Contrasena: "secreto123",
		Inicio:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Fin:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&licencia).Error)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	rows := []models.Ingreso{
		{LicenciaID: licencia.ID, Detalles: "a", MontoIngreso: 10, FechaIngreso: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
		{LicenciaID: licencia.ID, Detalles: "b", MontoIngreso: 15, FechaIngreso: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
		{LicenciaID: licencia.ID, Detalles: "c", MontoIngreso: 7, FechaIngreso: time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)},
		// Older than the six month window, must not appear
		{LicenciaID: licencia.ID, Detalles: "d", MontoIngreso: 99, FechaIngreso: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
	require.NoError(t, db.Create(&models.Egreso{
		ServicioID: servicio.ID, Detalles: "pago", MontoEgreso: 5,
		FechaEgreso: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	}).Error)

	stats, err := svc.Stats(now)
	require.NoError(t, err)

	serie := stats.SerieMensual
	require.Len(t, serie, 6)
	assert.Equal(t, "2024-01", serie[0].Mes)
	assert.Equal(t, "2024-06", serie[5].Mes)

	byMes := make(map[string]MonthlyTotal, len(serie))
	for _, m := range serie {
		byMes[m.Mes] = m
	}
	assert.Equal(t, 25.0, byMes["2024-06"].Ingresos)
	assert.Equal(t, 7.0, byMes["2024-04"].Ingresos)
	assert.Equal(t, 5.0, byMes["2024-05"].Egresos)
	assert.Zero(t, byMes["2024-02"].Ingresos)
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewDashboardService(db)

	stats, err := svc.Stats(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, stats.LicenciasActivas)
	assert.Zero(t, stats.TotalIngresos)
	assert.Zero(t, stats.TotalEgresos)
	assert.Zero(t, stats.Balance)
	assert.Len(t, stats.SerieMensual, 6)
}
