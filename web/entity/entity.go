// Package entity defines the JSON view records returned by the REST API.
package entity

import (
	"time"

	"github.com/ashishaher15/eduplus-challange/database/model"
)

// StoreListItem is one row of the user-facing store search: the aggregate
// rating plus the requesting user's own rating (null when they have none).
type StoreListItem struct {
	Id            int      `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	AverageRating float64  `json:"averageRating" gorm:"column:average_rating"`
	UserRating    *float64 `json:"userRating" gorm:"column:user_rating"`
}

// StoreStats is a store with its rating aggregate, as listed for admins and
// store owners.
type StoreStats struct {
	Id            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	OwnerUserId   *int      `json:"owner_user_id,omitempty" gorm:"column:owner_user_id"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	AverageRating float64   `json:"averageRating" gorm:"column:average_rating"`
	RatingsCount  int64     `json:"ratingsCount" gorm:"column:ratings_count"`
}

// UserListItem is one row of the admin user listing, joined with the user's
// owned store (if any) and that store's rating aggregate.
type UserListItem struct {
	Id                 int        `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Address            string     `json:"address"`
	Role               model.Role `json:"role"`
	CreatedAt          time.Time  `json:"created_at" gorm:"column:created_at"`
	StoreId            *int       `json:"storeId" gorm:"column:store_id"`
	StoreAverageRating float64    `json:"storeAverageRating" gorm:"column:store_average_rating"`
	RatingsCount       int64      `json:"ratingsCount" gorm:"column:ratings_count"`
}

// RatingUser is a user who rated a store, with the rating they gave.
type RatingUser struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Rating     float64   `json:"rating"`
	RatingDate time.Time `json:"rating_date" gorm:"column:rating_date"`
}
