// internal/models/egreso.go
package models

import "time"

// Egreso is an expense ledger row tied to a servicio, typically the payment
// made to the upstream provider. FechaEgreso is assigned by the server.
type Egreso struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ServicioID  uint      `json:"servicio_id" gorm:"not null;index"`
	Detalles    string    `json:"detalles" gorm:"size:255;not null"`
	MontoEgreso float64   `json:"monto_egreso" gorm:"type:decimal(10,2);not null"`
	FechaEgreso time.Time `json:"fecha_egreso"`

	Servicio Servicio `json:"servicio,omitempty" gorm:"foreignKey:ServicioID"`
}
