// internal/models/usuario.go
package models

import "time"

type Usuario struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Telefono    string    `json:"telefono" gorm:"size:30;not null"`
	Status      Status    `json:"status" gorm:"index"`
	Observacion string    `json:"observacion" gorm:"size:255;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Licencias []Licencia `json:"licencias,omitempty" gorm:"foreignKey:UserID"`
}
