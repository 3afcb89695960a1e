package service

import (
	"testing"

	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"

	"github.com/stretchr/testify/assert"
)

func createStore(t *testing.T, name, address string) *model.Store {
	t.Helper()
	store := &model.Store{Name: name, Email: "store@example.com", Address: address}
	if err := database.GetDB().Create(store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func TestSearchStoresFilters(t *testing.T) {
	setup(t)

	service := StoreService{}
	user := userByEmail(t, "user@example.com")

	createStore(t, "Alpha Coffee", "12 Harbor Road")
	createStore(t, "Beta Books", "99 Harbor Lane")
	createStore(t, "Gamma Grocery", "5 Hill St")

	// No filters: every store, ordered by name. "Sample Store" is seeded.
	all, err := service.SearchStores(user.Id, "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Alpha Coffee", all[0].Name)
	assert.Equal(t, "Beta Books", all[1].Name)
	assert.Equal(t, "Gamma Grocery", all[2].Name)
	assert.Equal(t, "Sample Store", all[3].Name)

	// Name filter is a case-insensitive substring match.
	byName, err := service.SearchStores(user.Id, "COFFEE", "")
	assert.NoError(t, err)
	assert.Len(t, byName, 1)
	assert.Equal(t, "Alpha Coffee", byName[0].Name)

	byAddress, err := service.SearchStores(user.Id, "", "harbor")
	assert.NoError(t, err)
	assert.Len(t, byAddress, 2)
	assert.Equal(t, "Alpha Coffee", byAddress[0].Name)
	assert.Equal(t, "Beta Books", byAddress[1].Name)

	// Both filters must match at once.
	both, err := service.SearchStores(user.Id, "books", "harbor")
	assert.NoError(t, err)
	assert.Len(t, both, 1)
	assert.Equal(t, "Beta Books", both[0].Name)

	none, err := service.SearchStores(user.Id, "books", "hill")
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}

func TestSearchStoresAggregates(t *testing.T) {
	setup(t)

	service := StoreService{}
	user := userByEmail(t, "user@example.com")
	admin := userByEmail(t, "admin@example.com")

	// The seeded store carries one 4.5 rating by the seeded test user.
	results, err := service.SearchStores(user.Id, "sample", "")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.InDelta(t, 4.5, results[0].AverageRating, 0.001)
	if assert.NotNil(t, results[0].UserRating) {
		assert.InDelta(t, 4.5, *results[0].UserRating, 0.001)
	}

	// A different user sees the same average but no rating of their own.
	results, err = service.SearchStores(admin.Id, "sample", "")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.InDelta(t, 4.5, results[0].AverageRating, 0.001)
	assert.Nil(t, results[0].UserRating)

	// A store with no ratings reports an average of zero, not null.
	createStore(t, "Quiet Corner", "7 Silent Way")
	results, err = service.SearchStores(user.Id, "quiet", "")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Zero(t, results[0].AverageRating)
	assert.Nil(t, results[0].UserRating)
}

func TestSubmitRatingUpsert(t *testing.T) {
	setup(t)

	service := StoreService{}
	user := userByEmail(t, "admin@example.com")
	store := createStore(t, "Delta Deli", "3 Dock St")

	overview, err := service.SubmitRating(user.Id, store.Id, 4, "solid")
	assert.NoError(t, err)
	assert.InDelta(t, 4, overview.AverageRating, 0.001)
	if assert.NotNil(t, overview.UserRating) {
		assert.InDelta(t, 4, *overview.UserRating, 0.001)
	}

	// Rating again replaces the previous value instead of adding a row.
	overview, err = service.SubmitRating(user.Id, store.Id, 2, "changed my mind")
	assert.NoError(t, err)
	assert.InDelta(t, 2, overview.AverageRating, 0.001)

	var count int64
	err = database.GetDB().Model(&model.Rating{}).
		Where("user_id = ? AND store_id = ?", user.Id, store.Id).Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)

	row := &model.Rating{}
	err = database.GetDB().
		Where("user_id = ? AND store_id = ?", user.Id, store.Id).First(row).Error
	assert.NoError(t, err)
	assert.InDelta(t, 2, row.Rating, 0.001)
	assert.Equal(t, "changed my mind", row.Comment)
}

func TestSubmitRatingMissingStore(t *testing.T) {
	setup(t)

	service := StoreService{}
	user := userByEmail(t, "user@example.com")

	_, err := service.SubmitRating(user.Id, 99999, 3, "")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
