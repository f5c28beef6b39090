// internal/models/common.go
package models

// Status is the active/inactive flag shared by usuarios, servicios and
// licencias. It is independent from deletion: rows are only ever hard-deleted.
type Status int

const (
	StatusInactivo Status = 0
	StatusActivo   Status = 1
)

// Ledger row descriptions. Creation and renewal of a licencia each append an
// ingreso tagged with one of these; egresos default to DetallesPagoRealizado.
const (
	DetallesCreacionLicencia   = "CREACIÓN LICENCIA"
	DetallesRenovacionLicencia = "RENOVACIÓN LICENCIA"
	DetallesPagoRealizado      = "PAGO REALIZADO"
)
