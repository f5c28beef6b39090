// internal/services/ledger_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miaucode/licencias-backend/internal/apperrors"
	"github.com/miaucode/licencias-backend/internal/models"
	"github.com/miaucode/licencias-backend/internal/testutil"
	"github.com/miaucode/licencias-backend/internal/utils"
)

func TestCreateIngresoManualEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)
	licSvc := NewLicenciaService(db, defaultBusiness())
	usuario := seedUsuario(t, db, models.StatusActivo)
	servicio := seedServicio(t, db, 50, models.StatusActivo)
	licencia := createLicencia(t, licSvc, usuario.ID, servicio.ID,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	ingreso, err := svc.CreateIngreso(&CreateIngresoRequest{
		LicenciaID:   licencia.ID,
		Detalles:     "Ajuste manual",
		MontoIngreso: 12.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ajuste manual", ingreso.Detalles)
	assert.Equal(t, 12.5, ingreso.MontoIngreso)
	assert.False(t, ingreso.FechaIngreso.IsZero())
}

func TestCreateIngresoMissingLicencia(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)

	_, err := svc.CreateIngreso(&CreateIngresoRequest{
		LicenciaID:   999,
		Detalles:     "Ajuste manual",
		MontoIngreso: 12.5,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateEgresoDefaultsDetalles(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)
	servicio := seedServicio(t, db, 50, models.StatusActivo)

	egreso, err := svc.CreateEgreso(&CreateEgresoRequest{
		ServicioID:  servicio.ID,
		MontoEgreso: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DetallesPagoRealizado, egreso.Detalles)
	assert.Equal(t, 25.0, egreso.MontoEgreso)
}

func TestCreateEgresoMissingMontoPersistsNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)
	servicio := seedServicio(t, db, 50, models.StatusActivo)

	_, err := svc.CreateEgreso(&CreateEgresoRequest{
		ServicioID: servicio.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	var count int64
	require.NoError(t, db.Model(&models.Egreso{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateEgresoMissingServicio(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)

	_, err := svc.CreateEgreso(&CreateEgresoRequest{
		ServicioID:  999,
		MontoEgreso: 25,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListIngresosPreloadsRelationships(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)
	licSvc := NewLicenciaService(db, defaultBusiness())
	usuario := seedUsuario(t, db, models.StatusActivo)
	servicio := seedServicio(t, db, 50, models.StatusActivo)
	licencia := createLicencia(t, licSvc, usuario.ID, servicio.ID,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	ingresos, total, err := svc.ListIngresos(utils.PaginationParams{Page: 1, Limit: 20, Order: "desc"})
	require.NoError(t, err)
	require.Len(t, ingresos, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, licencia.ID, ingresos[0].Licencia.ID)
	assert.Equal(t, usuario.ID, ingresos[0].Licencia.Usuario.ID)
	assert.Equal(t, servicio.Plataforma, ingresos[0].Licencia.Servicio.Plataforma)
}

func TestListEgresosPreloadsServicio(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLedgerService(db)
	servicio := seedServicio(t, db, 50, models.StatusActivo)

	_, err := svc.CreateEgreso(&CreateEgresoRequest{
		ServicioID:  servicio.ID,
		Detalles:    "Pago proveedor marzo",
		MontoEgreso: 30,
	})
	require.NoError(t, err)

	egresos, total, err := svc.ListEgresos(utils.PaginationParams{Page: 1, Limit: 20, Order: "desc"})
	require.NoError(t, err)
	require.Len(t, egresos, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, servicio.Plataforma, egresos[0].Servicio.Plataforma)
}
