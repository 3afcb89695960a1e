package service

import (
	"errors"

	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/web/entity"
)

var (
	ErrInvalidOwner  = errors.New("invalid store owner ID or user is not a store owner")
	ErrOwnerHasStore = errors.New("owner already has a store")
)

// AdminService backs the administrator endpoints: listings with rating
// aggregates and user/store creation.
type AdminService struct {
	authService AuthService
}

// ListUsers returns all users ordered by name, each joined with their owned
// store (if any) and that store's rating aggregate.
func (s *AdminService) ListUsers() ([]entity.UserListItem, error) {
	db := database.GetDB()

	query := `
		SELECT u.id, u.name, u.email, u.address, u.role, u.created_at,
			s.id AS store_id,
			COALESCE(AVG(r.rating), 0) AS store_average_rating,
			COUNT(r.id) AS ratings_count
		FROM users u
		LEFT JOIN stores s ON s.owner_user_id = u.id
		LEFT JOIN ratings r ON r.store_id = s.id
		GROUP BY u.id, u.name, u.email, u.address, u.role, u.created_at, s.id
		ORDER BY u.name ASC
	`

	users := make([]entity.UserListItem, 0)
	if err := db.Raw(query).Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListStores returns all stores ordered by name with their rating aggregates.
func (s *AdminService) ListStores() ([]entity.StoreStats, error) {
	db := database.GetDB()

	query := `
		SELECT s.id, s.name, s.email, s.address,
			COALESCE(AVG(r.rating), 0) AS average_rating,
			COUNT(r.id) AS ratings_count
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		GROUP BY s.id, s.name, s.email, s.address
		ORDER BY s.name ASC
	`

	stores := make([]entity.StoreStats, 0)
	if err := db.Raw(query).Scan(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// CreateUser is the admin variant of registration.
func (s *AdminService) CreateUser(name, email, address, password string, role model.Role) (*model.User, error) {
	return s.authService.Register(name, email, address, password, role)
}

// CreateStore creates a store for an owner who must hold the store_owner
// role and must not own a store yet.
func (s *AdminService) CreateStore(name, email, address string, ownerUserId int) (*model.Store, error) {
	db := database.GetDB()

	owner := &model.User{}
	err := db.Where("id = ? AND role = ?", ownerUserId, model.RoleStoreOwner).First(owner).Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidOwner
	} else if err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&model.Store{}).Where("owner_user_id = ?", ownerUserId).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrOwnerHasStore
	}

	store := &model.Store{
		Name:        name,
		Email:       email,
		Address:     address,
		OwnerUserId: &ownerUserId,
	}
	if err := db.Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

// StoreByOwner returns the store owned by ownerId with its aggregate, or
// ErrStoreNotFound.
func (s *AdminService) StoreByOwner(ownerId int) (*entity.StoreStats, error) {
	db := database.GetDB()

	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_user_id, s.created_at,
			COALESCE(AVG(r.rating), 0) AS average_rating,
			COUNT(r.id) AS ratings_count
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.owner_user_id = ?
		GROUP BY s.id, s.name, s.email, s.address, s.owner_user_id, s.created_at
	`

	var stores []entity.StoreStats
	if err := db.Raw(query, ownerId).Scan(&stores).Error; err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, ErrStoreNotFound
	}
	return &stores[0], nil
}

// RatingUsers lists the users who rated a store, newest rating first.
func (s *AdminService) RatingUsers(storeId int) ([]entity.RatingUser, error) {
	db := database.GetDB()

	err := db.Where("id = ?", storeId).First(&model.Store{}).Error
	if database.IsNotFound(err) {
		return nil, ErrStoreNotFound
	} else if err != nil {
		return nil, err
	}

	query := `
		SELECT u.id, u.name, u.email, r.rating, r.created_at AS rating_date
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = ?
		ORDER BY r.created_at DESC
	`

	users := make([]entity.RatingUser, 0)
	if err := db.Raw(query, storeId).Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
