// internal/models/licencia.go
package models

import "time"

// Licencia binds a usuario to a servicio for a validity window, together with
// the login credentials of the underlying platform account.
//
// Contrasena is intentionally stored and returned in cleartext: staff hand the
// platform credentials to the customer. It must never be written to logs, and
// it is excluded from Excel exports.
type Licencia struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	ServicioID uint      `json:"servicio_id" gorm:"not null;index"`
	Status     Status    `json:"status" gorm:"index"`
	Correo     string    `json:"correo" gorm:"size:255;not null"`
	Contrasena string    `json:"contrasena" gorm:"size:255;not null"`
	Inicio     time.Time `json:"inicio"`
	Fin        time.Time `json:"fin" gorm:"index"`
	Version    uint      `json:"-" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Usuario  Usuario   `json:"usuario,omitempty" gorm:"foreignKey:UserID"`
	Servicio Servicio  `json:"servicio,omitempty" gorm:"foreignKey:ServicioID"`
	Ingresos []Ingreso `json:"ingresos,omitempty" gorm:"foreignKey:LicenciaID;constraint:OnDelete:CASCADE"`
}
