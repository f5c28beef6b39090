// internal/models/servicio.go
package models

import "time"

// Servicio is a vendor platform offering with a buy/sell price and the
// reference of the upstream provider. NumProveedor is stored as a string so
// provider references keep leading zeros.
type Servicio struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Plataforma       string    `json:"plataforma" gorm:"size:100;not null"`
	Status           Status    `json:"status" gorm:"index"`
	PrecioVender     float64   `json:"precio_vender" gorm:"type:decimal(10,2);not null"`
	PrecioComprar    float64   `json:"precio_comprar" gorm:"type:decimal(10,2);not null"`
	NumProveedor     string    `json:"num_proveedor" gorm:"size:50"`
	EmpresaProveedor string    `json:"empresa_proveedor" gorm:"size:100"`
	FechaInicio      time.Time `json:"fecha_inicio"`
	FechaFin         time.Time `json:"fecha_fin"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Licencias []Licencia `json:"licencias,omitempty" gorm:"foreignKey:ServicioID"`
	Egresos   []Egreso   `json:"egresos,omitempty" gorm:"foreignKey:ServicioID"`
}
