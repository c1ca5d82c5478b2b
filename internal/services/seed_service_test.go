// internal/services/seed_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
)

type SeedServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	catalog *CatalogService
	seed    *SeedService
}

func (suite *SeedServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.catalog = NewCatalogService(
		suite.db,
		repository.NewProductRepository(suite.db),
		newTestLogger(),
	)
	suite.seed = NewSeedService(suite.db, suite.catalog, newTestLogger())
}

func (suite *SeedServiceTestSuite) TestRun() {
	message, err := suite.seed.Run()
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "SEED EXECUTED", message)

	var userCount int64
	suite.db.Model(&models.User{}).Count(&userCount)
	assert.Equal(suite.T(), int64(len(seedUsers)), userCount)

	products, err := suite.catalog.FindAllPlain(100, 0)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), products, len(seedProducts))

	// Every seed product belongs to the first seed user and carries its
	// images in order.
	var owner models.User
	require.NoError(suite.T(), suite.db.
		Where("email = ?", seedUsers[0].Email).First(&owner).Error)
	for _, product := range products {
		assert.Equal(suite.T(), owner.ID, product.OwnerID)
		assert.NotEmpty(suite.T(), product.Images)
	}
}

func (suite *SeedServiceTestSuite) TestRunWipesExistingData() {
	// Pre-existing rows must not survive a seed run.
	stale := &models.User{Email: "stale@example.com", FullName: "Stale", IsActive: true}
	require.NoError(suite.T(), stale.SetPassword("Stale123"))
	require.NoError(suite.T(), suite.db.Create(stale).Error)

	_, err := suite.catalog.Create(&CreateProductRequest{
		Title:  "Stale Product",
		Price:  1,
		Images: []string{"stale.jpg"},
	}, stale)
	require.NoError(suite.T(), err)

	_, err = suite.seed.Run()
	require.NoError(suite.T(), err)

	var staleCount int64
	suite.db.Model(&models.User{}).Where("email = ?", stale.Email).Count(&staleCount)
	assert.Zero(suite.T(), staleCount)

	_, err = suite.catalog.FindOnePlain("stale_product")
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *SeedServiceTestSuite) TestRunIsRepeatable() {
	_, err := suite.seed.Run()
	require.NoError(suite.T(), err)

	// A second run must not trip over the unique indexes.
	_, err = suite.seed.Run()
	require.NoError(suite.T(), err)

	products, err := suite.catalog.FindAllPlain(100, 0)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), products, len(seedProducts))
}

func TestSeedServiceSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}
