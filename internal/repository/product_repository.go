// internal/repository/product_repository.go
package repository

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/catalog-backend/internal/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx rebinds the repository to a transaction handle so multi-step
// mutations run on the same connection.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id ASC")
}

// Create persists the product together with its image rows as one unit.
// Storage errors (unique violations included) surface untranslated.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Images", orderedImages).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByTerm resolves either by id or by slug/title depending on the shape
// of the term. The slug/title path is a single OR-combined query; when a
// slug match and an unrelated title match exist on different rows, the row
// the store yields first wins.
func (r *ProductRepository) FindByTerm(raw string) (*models.Product, error) {
	term := ParseTerm(raw)
	if term.Kind == TermID {
		return r.FindByID(term.ID)
	}

	var product models.Product
	if err := r.db.Preload("Images", orderedImages).
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(raw), strings.ToLower(raw)).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Images", orderedImages).
		Order("created_at ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save persists the merged product; image rows freshly attached in memory
// are inserted along with it.
func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// DeleteImages removes every image row owned by the product.
func (r *ProductRepository) DeleteImages(productID uuid.UUID) error {
	return r.db.Where("product_id = ?", productID).
		Delete(&models.ProductImage{}).Error
}

func (r *ProductRepository) Delete(product *models.Product) error {
	return r.db.Select(clause.Associations).Delete(product).Error
}

func (r *ProductRepository) DeleteAll() (int64, error) {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ProductImage{}).Error; err != nil {
		return 0, err
	}

	result := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Product{})
	return result.RowsAffected, result.Error
}
