// internal/services/seed_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/catalog-backend/internal/models"
)

// SeedService rebuilds the fixed demo dataset. Products go through the
// catalog service's public surface only, so seeding exercises the same
// paths as regular callers.
type SeedService struct {
	db      *gorm.DB
	catalog *CatalogService
	logger  logrus.FieldLogger
}

func NewSeedService(db *gorm.DB, catalog *CatalogService, logger logrus.FieldLogger) *SeedService {
	return &SeedService{
		db:      db,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *SeedService) Run() (string, error) {
	if err := s.deleteTables(); err != nil {
		return "", err
	}

	owner, err := s.insertUsers()
	if err != nil {
		return "", err
	}

	if err := s.insertProducts(owner); err != nil {
		return "", err
	}

	s.logger.WithField("products", len(seedProducts)).Info("Seed data loaded")
	return "SEED EXECUTED", nil
}

func (s *SeedService) deleteTables() error {
	if _, err := s.catalog.RemoveAll(); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.User{}).Error; err != nil {
		return translateStorageError(s.logger, err)
	}

	return nil
}

// insertUsers loads the seed users and returns the first one; every seed
// product is created under that account.
func (s *SeedService) insertUsers() (*models.User, error) {
	users := make([]*models.User, 0, len(seedUsers))
	for _, seed := range seedUsers {
		user := &models.User{
			Email:    seed.Email,
			FullName: seed.FullName,
			IsActive: true,
			Roles:    seed.Roles,
		}
		if err := user.SetPassword(seed.Password); err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		if err := s.db.Create(user).Error; err != nil {
			return nil, translateStorageError(s.logger, err)
		}
	}

	return users[0], nil
}

func (s *SeedService) insertProducts(owner *models.User) error {
	for i := range seedProducts {
		if _, err := s.catalog.Create(&seedProducts[i], owner); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", seedProducts[i].Title, err)
		}
	}
	return nil
}
