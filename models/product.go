package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry. Quantity is optional: products created before
// stock tracking existed have no quantity, so a nil Quantity means "unknown"
// and the analytics low-stock check falls back to a sales-based estimate.
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null;index"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category    string    `json:"category" gorm:"not null;index"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url"`
	Quantity    *int      `json:"quantity,omitempty" gorm:"check:quantity >= 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Title       string  `json:"title" binding:"required" example:"Sample Product"`
	Description string  `json:"description" binding:"required" example:"This is a sample product"`
	Price       float64 `json:"price" binding:"required,min=0" example:"99.99"`
	Category    string  `json:"category" binding:"required" example:"fashion"`
	ImageURL    string  `json:"imageUrl"`
	Quantity    *int    `json:"quantity" binding:"omitempty,min=0" example:"100"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=0"`
}
