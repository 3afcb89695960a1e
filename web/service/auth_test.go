package service

import (
	"errors"
	"testing"

	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	setup(t)

	service := AuthService{}

	user, err := service.Register("Jane Roe", "jane@example.com", "1 Main St", "longenough", model.RoleUser)
	assert.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.NotEqual(t, "longenough", user.Password, "password must be stored hashed")

	logged, err := service.Login("jane@example.com", "longenough")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, logged.Id)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setup(t)

	service := AuthService{}

	// user@example.com is created by the baseline seed.
	_, err := service.Register("Another User", "user@example.com", "2 Main St", "longenough", model.RoleUser)
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	err = database.GetDB().Model(&model.User{}).
		Where("email = ?", "user@example.com").Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count, "rejected registration must not add a row")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setup(t)

	service := AuthService{}

	_, err := service.Login("user@example.com", "wrongpassword")
	wrongPass := err
	_, err = service.Login("nobody@example.com", "password123")
	unknownEmail := err

	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.True(t, errors.Is(wrongPass, unknownEmail) || wrongPass.Error() == unknownEmail.Error())
}

func TestUpdatePassword(t *testing.T) {
	setup(t)

	service := AuthService{}
	user := userByEmail(t, "user@example.com")

	err := service.UpdatePassword(user.Id, "notthepassword", "newpassword1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = service.UpdatePassword(99999, "password123", "newpassword1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = service.UpdatePassword(user.Id, "password123", "newpassword1")
	assert.NoError(t, err)

	_, err = service.Login("user@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	logged, err := service.Login("user@example.com", "newpassword1")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, logged.Id)
}
