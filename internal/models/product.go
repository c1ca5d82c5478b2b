// internal/models/product.go
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Title       string         `json:"title" gorm:"size:255;uniqueIndex;not null"`
	Slug        string         `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Description string         `json:"description" gorm:"type:text"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	OwnerID     uuid.UUID      `json:"owner_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Owner  User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Images []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductImage rows have no lifecycle of their own; they are created and
// deleted only through their owning product.
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	ProductID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
}

// BeforeSave derives the slug from the title when absent and normalizes it
// on both insert and update: lower-cased, spaces to underscores,
// apostrophes stripped.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = normalizeSlug(p.Slug)
	return nil
}

func normalizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}
