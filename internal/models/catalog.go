// internal/models/catalog.go
package models

import "github.com/google/uuid"

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Price       float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int        `json:"stock" gorm:"not null;default:0"`
	CategoryID  *uuid.UUID `json:"category_id" gorm:"type:uuid;index"`
	Image       string     `json:"image" gorm:"size:512"`
	Rating      float64    `json:"rating" gorm:"type:decimal(3,2);default:0"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
