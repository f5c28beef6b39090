// internal/models/ingreso.go
package models

import "time"

// Ingreso is an income ledger row tied to a licencia event (creation or
// renewal). FechaIngreso is assigned by the server on creation.
type Ingreso struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	LicenciaID   uint      `json:"licencia_id" gorm:"not null;index"`
	Detalles     string    `json:"detalles" gorm:"size:255;not null"`
	MontoIngreso float64   `json:"monto_ingreso" gorm:"type:decimal(10,2);not null"`
	FechaIngreso time.Time `json:"fecha_ingreso"`

	Licencia Licencia `json:"licencia,omitempty" gorm:"foreignKey:LicenciaID"`
}
