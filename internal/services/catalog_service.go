// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
	"github.com/javajoker/catalog-backend/internal/utils"
)

// CatalogService orchestrates product mutations and lookups. Multi-step
// mutations run inside a single database transaction; storage failures are
// translated into the service error taxonomy at this boundary.
type CatalogService struct {
	db     *gorm.DB
	repo   *repository.ProductRepository
	logger logrus.FieldLogger
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Slug        string   `json:"slug,omitempty" validate:"omitempty,max=255"`
	Price       float64  `json:"price" validate:"min=0"`
	Description string   `json:"description,omitempty"`
	Stock       int      `json:"stock,omitempty" validate:"min=0"`
	Tags        []string `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// UpdateProductRequest carries pointer fields so an absent field leaves the
// stored value untouched. Images is special: nil means "leave the image set
// alone", an empty slice replaces the set with nothing.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Slug        *string  `json:"slug,omitempty" validate:"omitempty,max=255"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Tags        []string `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// PlainProduct is the externally returned shape of a product: the image
// collection reduced to bare URL strings, independent of the storage
// representation.
type PlainProduct struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Tags        []string  `json:"tags"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Images      []string  `json:"images"`
}

func NewCatalogService(db *gorm.DB, repo *repository.ProductRepository, logger logrus.FieldLogger) *CatalogService {
	return &CatalogService{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

func flattenProduct(product *models.Product) *PlainProduct {
	images := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, image.URL)
	}

	return &PlainProduct{
		ID:          product.ID,
		Title:       product.Title,
		Slug:        product.Slug,
		Price:       product.Price,
		Description: product.Description,
		Stock:       product.Stock,
		Tags:        product.Tags,
		OwnerID:     product.OwnerID,
		Images:      images,
	}
}

func buildImages(urls []string) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, models.ProductImage{URL: url})
	}
	return images
}

// Create builds a new product owned by the caller, attaches image rows in
// the order the URLs were supplied and persists everything as one unit.
func (s *CatalogService) Create(req *CreateProductRequest, owner *models.User) (*PlainProduct, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Title:       req.Title,
		Slug:        req.Slug,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
		Tags:        req.Tags,
		OwnerID:     owner.ID,
		Images:      buildImages(req.Images),
	}

	if err := s.repo.Create(product); err != nil {
		return nil, translateStorageError(s.logger, err)
	}

	return flattenProduct(product), nil
}

func (s *CatalogService) FindAllPlain(limit, offset int) ([]*PlainProduct, error) {
	products, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, translateStorageError(s.logger, err)
	}

	plain := make([]*PlainProduct, 0, len(products))
	for i := range products {
		plain = append(plain, flattenProduct(&products[i]))
	}
	return plain, nil
}

func (s *CatalogService) FindOnePlain(term string) (*PlainProduct, error) {
	product, err := s.findOne(term)
	if err != nil {
		return nil, err
	}
	return flattenProduct(product), nil
}

// Update merges the supplied fields onto the stored product and persists
// the result atomically. The image-set replacement, the unconditional owner
// reassignment and the field merge either all commit or all roll back; the
// transaction handle is released on every exit path.
func (s *CatalogService) Update(id uuid.UUID, req *UpdateProductRequest, owner *models.User) (*PlainProduct, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Existence check happens before the transaction opens.
	product, err := s.findOne(id.String())
	if err != nil {
		return nil, err
	}

	// Merge the supplied fields; images are handled inside the transaction.
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, translateStorageError(s.logger, tx.Error)
	}

	committed := false
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if !committed {
			tx.Rollback()
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if req.Images != nil {
		if err := txRepo.DeleteImages(product.ID); err != nil {
			return nil, translateStorageError(s.logger, err)
		}
		product.Images = buildImages(req.Images)
	} else {
		// Leave the stored image rows alone.
		product.Images = nil
	}

	// Every update reassigns ownership to the caller performing it.
	product.OwnerID = owner.ID

	if err := txRepo.Save(product); err != nil {
		return nil, translateStorageError(s.logger, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, translateStorageError(s.logger, err)
	}
	committed = true

	// Fresh read so the returned projection reflects the committed state.
	return s.FindOnePlain(id.String())
}

// Remove deletes the product and, with it, every image row it owns.
func (s *CatalogService) Remove(id uuid.UUID) (*PlainProduct, error) {
	product, err := s.findOne(id.String())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(product); err != nil {
		return nil, translateStorageError(s.logger, err)
	}

	return flattenProduct(product), nil
}

// RemoveAll wipes every product. It is not transactionally joined with
// concurrent creates; only the seed loader and administrative resets call
// it.
func (s *CatalogService) RemoveAll() (int64, error) {
	count, err := s.repo.DeleteAll()
	if err != nil {
		return 0, translateStorageError(s.logger, err)
	}
	return count, nil
}

func (s *CatalogService) findOne(term string) (*models.Product, error) {
	product, err := s.repo.FindByTerm(term)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("term %q: %w", term, ErrNotFound)
		}
		return nil, translateStorageError(s.logger, err)
	}
	return product, nil
}
