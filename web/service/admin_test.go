package service

import (
	"testing"

	"github.com/ashishaher15/eduplus-challange/database/model"

	"github.com/stretchr/testify/assert"
)

func TestListUsers(t *testing.T) {
	setup(t)

	service := AdminService{}

	users, err := service.ListUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "Admin User", users[0].Name)
	assert.Equal(t, "Store Owner", users[1].Name)
	assert.Equal(t, "Test User", users[2].Name)

	// The seeded owner is joined with their store and its aggregate.
	owner := users[1]
	if assert.NotNil(t, owner.StoreId) {
		assert.InDelta(t, 4.5, owner.StoreAverageRating, 0.001)
		assert.EqualValues(t, 1, owner.RatingsCount)
	}
	assert.Nil(t, users[2].StoreId)
	assert.Zero(t, users[2].StoreAverageRating)
}

func TestListStores(t *testing.T) {
	setup(t)

	service := AdminService{}

	stores, err := service.ListStores()
	assert.NoError(t, err)
	assert.Len(t, stores, 1)
	assert.Equal(t, "Sample Store", stores[0].Name)
	assert.InDelta(t, 4.5, stores[0].AverageRating, 0.001)
	assert.EqualValues(t, 1, stores[0].RatingsCount)

	// An unrated store reports a zero average and zero count.
	createStore(t, "Empty Shelf", "4 Bare St")
	stores, err = service.ListStores()
	assert.NoError(t, err)
	assert.Len(t, stores, 2)
	assert.Equal(t, "Empty Shelf", stores[0].Name)
	assert.Zero(t, stores[0].AverageRating)
	assert.Zero(t, stores[0].RatingsCount)
}

func TestCreateStoreOwnerRules(t *testing.T) {
	setup(t)

	service := AdminService{}
	user := userByEmail(t, "user@example.com")
	seededOwner := userByEmail(t, "owner@example.com")

	// Owner must exist and hold the store_owner role.
	_, err := service.CreateStore("New Store", "new@example.com", "1 New St", user.Id)
	assert.ErrorIs(t, err, ErrInvalidOwner)
	_, err = service.CreateStore("New Store", "new@example.com", "1 New St", 99999)
	assert.ErrorIs(t, err, ErrInvalidOwner)

	// The seeded owner already owns the sample store.
	_, err = service.CreateStore("Second Store", "new@example.com", "1 New St", seededOwner.Id)
	assert.ErrorIs(t, err, ErrOwnerHasStore)

	newOwner, err := service.CreateUser("Fresh Owner", "fresh@example.com", "8 Pier Rd", "longenough", model.RoleStoreOwner)
	assert.NoError(t, err)

	store, err := service.CreateStore("Fresh Store", "freshstore@example.com", "8 Pier Rd", newOwner.Id)
	assert.NoError(t, err)
	if assert.NotNil(t, store.OwnerUserId) {
		assert.Equal(t, newOwner.Id, *store.OwnerUserId)
	}
}

func TestStoreByOwner(t *testing.T) {
	setup(t)

	service := AdminService{}
	owner := userByEmail(t, "owner@example.com")

	store, err := service.StoreByOwner(owner.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Sample Store", store.Name)
	assert.InDelta(t, 4.5, store.AverageRating, 0.001)
	assert.EqualValues(t, 1, store.RatingsCount)

	_, err = service.StoreByOwner(99999)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestRatingUsers(t *testing.T) {
	setup(t)

	service := AdminService{}
	storeService := StoreService{}
	owner := userByEmail(t, "owner@example.com")
	admin := userByEmail(t, "admin@example.com")

	store, err := service.StoreByOwner(owner.Id)
	assert.NoError(t, err)

	raters, err := service.RatingUsers(store.Id)
	assert.NoError(t, err)
	assert.Len(t, raters, 1)
	assert.Equal(t, "Test User", raters[0].Name)
	assert.InDelta(t, 4.5, raters[0].Rating, 0.001)

	// A second rating shows up newest first.
	_, err = storeService.SubmitRating(admin.Id, store.Id, 3, "")
	assert.NoError(t, err)

	raters, err = service.RatingUsers(store.Id)
	assert.NoError(t, err)
	assert.Len(t, raters, 2)
	assert.Equal(t, "Admin User", raters[0].Name)
	assert.InDelta(t, 3, raters[0].Rating, 0.001)

	_, err = service.RatingUsers(99999)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
