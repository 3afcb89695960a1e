package service

import (
	"errors"

	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/logger"
	"github.com/ashishaher15/eduplus-challange/util/crypto"
)

var (
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService struct{}

// Register creates a user with the given role. Payload shape must already be
// validated; only the duplicate-email rule is enforced here.
func (s *AuthService) Register(name, email, address, password string, role model.Role) (*model.User, error) {
	db := database.GetDB()

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Address:  address,
		Password: hash,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks the user up by email and verifies the password.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Where("email = ?", email).First(user).Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdatePassword verifies the old password and stores a hash of the new one.
func (s *AuthService) UpdatePassword(userId int, oldPassword, newPassword string) error {
	db := database.GetDB()

	user := &model.User{}
	err := db.Where("id = ?", userId).First(user).Error
	if database.IsNotFound(err) {
		return ErrUserNotFound
	} else if err != nil {
		return err
	}

	if !crypto.CheckPasswordHash(user.Password, oldPassword) {
		return ErrWrongPassword
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	if err := db.Model(&model.User{}).Where("id = ?", userId).
		Update("password", hash).Error; err != nil {
		return err
	}
	logger.Infof("password updated for user %d", userId)
	return nil
}
