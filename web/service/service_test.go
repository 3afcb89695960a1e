package service

import (
	"path/filepath"
	"testing"

	"github.com/ashishaher15/eduplus-challange/config"
	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"
)

func setup(t *testing.T) {
	t.Helper()
	dbConfig := &config.DatabaseConfig{
		Type: config.DatabaseTypeSQLite,
		SQLite: config.SQLiteConfig{
			Path: filepath.Join(t.TempDir(), "test.db"),
		},
	}
	if err := database.InitDB(dbConfig); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		database.CloseDB()
	})
}

func userByEmail(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{}
	if err := database.GetDB().Where("email = ?", email).First(user).Error; err != nil {
		t.Fatalf("user %s: %v", email, err)
	}
	return user
}
