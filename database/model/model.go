package model

import "time"

// Role gates which endpoints and pages a user can reach.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleStoreOwner Role = "store_owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleStoreOwner:
		return true
	}
	return false
}

type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Address   string    `json:"address" gorm:"type:text;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role      `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the view of a user returned by auth endpoints: everything but
// the password hash.
type PublicUser struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		Id:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type Store struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	Address     string    `json:"address" gorm:"type:text;not null"`
	OwnerUserId *int      `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Rating holds one user's rating of one store. The composite unique index is
// what makes rating submission an atomic upsert.
type Rating struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreId   int       `json:"storeId" gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	UserId    int       `json:"userId" gorm:"not null;uniqueIndex:idx_ratings_user_store"`
	Rating    float64   `json:"rating" gorm:"type:decimal(3,2);not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
