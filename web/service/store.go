package service

import (
	"errors"
	"strings"

	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/web/entity"

	"gorm.io/gorm/clause"
)

var ErrStoreNotFound = errors.New("store not found")

type StoreService struct{}

// SearchStores returns every store with its aggregate rating and the
// requesting user's own rating, optionally filtered by case-insensitive
// substrings of name and address (both must match when both are given).
// Ordered by store name ascending.
func (s *StoreService) SearchStores(userId int, name, address string) ([]entity.StoreListItem, error) {
	db := database.GetDB()

	query := `
		SELECT s.id, s.name, s.address,
			COALESCE(AVG(r.rating), 0) AS average_rating,
			(SELECT r2.rating FROM ratings r2
				WHERE r2.store_id = s.id AND r2.user_id = ?) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
	`
	args := []any{userId}

	switch {
	case name != "" && address != "":
		query += ` WHERE LOWER(s.name) LIKE ? AND LOWER(s.address) LIKE ?`
		args = append(args, likePattern(name), likePattern(address))
	case name != "":
		query += ` WHERE LOWER(s.name) LIKE ?`
		args = append(args, likePattern(name))
	case address != "":
		query += ` WHERE LOWER(s.address) LIKE ?`
		args = append(args, likePattern(address))
	}

	query += `
		GROUP BY s.id, s.name, s.address
		ORDER BY s.name ASC
	`

	stores := make([]entity.StoreListItem, 0)
	if err := db.Raw(query, args...).Scan(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// SubmitRating records the one rating userId may hold for storeId, inserting
// or overwriting atomically on the (user_id, store_id) unique key, and
// returns the store's refreshed aggregate. Rating value must already be
// validated. ErrStoreNotFound is returned when the store row does not exist;
// the rating row is still written in that case, matching the legacy API's
// degraded response.
func (s *StoreService) SubmitRating(userId, storeId int, rating float64, comment string) (*entity.StoreListItem, error) {
	db := database.GetDB()

	row := &model.Rating{
		StoreId: storeId,
		UserId:  userId,
		Rating:  rating,
		Comment: comment,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating":  rating,
			"comment": comment,
		}),
	}).Create(row).Error
	if err != nil {
		return nil, err
	}

	return s.storeOverview(userId, storeId)
}

// storeOverview is the single-store variant of the search query.
func (s *StoreService) storeOverview(userId, storeId int) (*entity.StoreListItem, error) {
	db := database.GetDB()

	query := `
		SELECT s.id, s.name, s.address,
			COALESCE(AVG(r.rating), 0) AS average_rating,
			(SELECT r2.rating FROM ratings r2
				WHERE r2.store_id = s.id AND r2.user_id = ?) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		WHERE s.id = ?
		GROUP BY s.id, s.name, s.address
	`

	var stores []entity.StoreListItem
	if err := db.Raw(query, userId, storeId).Scan(&stores).Error; err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, ErrStoreNotFound
	}
	return &stores[0], nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
