package database

import (
	"log"

	"github.com/ashishaher15/eduplus-challange/config"
	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/util/crypto"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Baseline accounts created on an empty database so every role has a working
// login out of the box.
var seedUsers = []struct {
	name     string
	email    string
	address  string
	password string
	role     model.Role
}{
	{"Test User", "user@example.com", "123 User St", "password123", model.RoleUser},
	{"Admin User", "admin@example.com", "456 Admin Ave", "admin123", model.RoleAdmin},
	{"Store Owner", "owner@example.com", "789 Store Blvd", "owner123", model.RoleStoreOwner},
}

func initModels() error {
	models := []any{
		&model.User{},
		&model.Store{},
		&model.Rating{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func seedData() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := crypto.HashPasswordAsBcrypt(su.password)
		if err != nil {
			return err
		}
		u := &model.User{
			Name:     su.name,
			Email:    su.email,
			Address:  su.address,
			Password: hash,
			Role:     su.role,
		}
		if err := db.Create(u).Error; err != nil {
			return err
		}
		users = append(users, u)
	}

	owner := users[2]
	store := &model.Store{
		Name:        "Sample Store",
		Email:       owner.Email,
		Address:     owner.Address,
		OwnerUserId: &owner.Id,
	}
	if err := db.Create(store).Error; err != nil {
		return err
	}

	rating := &model.Rating{
		StoreId: store.Id,
		UserId:  users[0].Id,
		Rating:  4.5,
		Comment: "Great store!",
	}
	return db.Create(rating).Error
}

// InitDB opens the configured database, migrates the schema and seeds
// baseline rows. Safe to call again after CloseDB.
func InitDB(dbConfig *config.DatabaseConfig) error {
	if err := dbConfig.ValidateConfig(); err != nil {
		return err
	}
	if err := dbConfig.EnsureDirectoryExists(); err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	}

	var err error
	if dbConfig.IsPostgreSQL() {
		db, err = gorm.Open(postgres.Open(dbConfig.GetDSN()), c)
	} else {
		dsn := dbConfig.GetDSN() + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
		db, err = gorm.Open(sqlite.Open(dsn), c)
	}
	if err != nil {
		return err
	}

	if dbConfig.IsSQLite() {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			return err
		}
	}

	if err := initModels(); err != nil {
		return err
	}
	return seedData()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
