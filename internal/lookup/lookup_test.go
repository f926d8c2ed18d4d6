package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leasing-service/internal/model"
	"leasing-service/internal/repository"
)

func setupService(t *testing.T) (*gorm.DB, *Service) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Lessee{},
		&model.PropertyType{},
		&model.Property{},
		&model.Contract{},
		&model.Owner{},
	)
	require.NoError(t, err)

	svc := NewService(repository.NewLesseeRepository(db), repository.NewPropertyTypeRepository(db))
	return db, svc
}

func addLessee(t *testing.T, db *gorm.DB, firstName, lastName, document string) {
	user := model.User{
		Email:     firstName + "." + lastName + "@example.com",
		Document:  document,
		FirstName: firstName,
		LastName:  lastName,
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Lessee{UserID: user.ID}).Error)
}

func TestPropertyTypeOptionsSentinelAlwaysFirst(t *testing.T) {
	db, svc := setupService(t)

	// Even with no types at all the list is never empty.
	options, err := svc.PropertyTypeOptions()
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "(Select a property type...)", options[0].Label)
	assert.Equal(t, "0", options[0].Value)

	require.NoError(t, db.Create(&model.PropertyType{Name: "House"}).Error)
	require.NoError(t, db.Create(&model.PropertyType{Name: "Apartment"}).Error)

	options, err = svc.PropertyTypeOptions()
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "0", options[0].Value)
	assert.Equal(t, "Apartment", options[1].Label)
	assert.Equal(t, "House", options[2].Label)
}

func TestLesseeOptionsSortedByLabel(t *testing.T) {
	db, svc := setupService(t)

	addLessee(t, db, "Carlos", "Ruiz", "300")
	addLessee(t, db, "Ana", "Gomez", "100")
	addLessee(t, db, "Beatriz", "Lopez", "200")

	options, err := svc.LesseeOptions()
	require.NoError(t, err)
	require.Len(t, options, 4)

	assert.Equal(t, "(Select a lessee...)", options[0].Label)
	assert.Equal(t, "Ana Gomez (100)", options[1].Label)
	assert.Equal(t, "Beatriz Lopez (200)", options[2].Label)
	assert.Equal(t, "Carlos Ruiz (300)", options[3].Label)
}

func TestLesseeOptionsTiesKeepInsertionOrder(t *testing.T) {
	db, svc := setupService(t)

	// Same full name, different documents: labels differ only at the end,
	// but equal prefixes still sort stably.
	addLessee(t, db, "Ana", "Gomez", "200")
	addLessee(t, db, "Ana", "Gomez", "100")

	options, err := svc.LesseeOptions()
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Ana Gomez (100)", options[1].Label)
	assert.Equal(t, "Ana Gomez (200)", options[2].Label)
}

func TestLesseeOptionsValueIsLesseeID(t *testing.T) {
	db, svc := setupService(t)

	addLessee(t, db, "Ana", "Gomez", "100")

	var lessee model.Lessee
	require.NoError(t, db.First(&lessee).Error)

	options, err := svc.LesseeOptions()
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.NotEqual(t, "0", options[1].Value)
}
