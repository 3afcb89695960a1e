package controller

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ashishaher15/eduplus-challange/config"
	"github.com/ashishaher15/eduplus-challange/database"
	"github.com/ashishaher15/eduplus-challange/database/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
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

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewUserController(engine.Group("/api"))
	return engine
}

func ratingCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := database.GetDB().Model(&model.Rating{}).Count(&count).Error; err != nil {
		t.Fatalf("count ratings: %v", err)
	}
	return count
}

func TestListStoresRequiresUserId(t *testing.T) {
	engine := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID is required")
}

func TestSubmitRatingRejectsInvalidValues(t *testing.T) {
	engine := setupRouter(t)
	before := ratingCount(t)

	for _, body := range []string{
		`{"userId": 1, "rating": 0}`,
		`{"userId": 1, "rating": 6}`,
		`{"userId": 1, "rating": 4.5}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/user/stores/1/rate",
			strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Rating must be an integer between 1 and 5")
	}

	// Missing fields are rejected before validation.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/stores/1/rate",
		strings.NewReader(`{"userId": 1}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing was written by any rejected request.
	assert.Equal(t, before, ratingCount(t))
}

func TestSubmitRatingUpdatesAggregate(t *testing.T) {
	engine := setupRouter(t)

	// The seeded store has one 4.5 rating; a second rating of 2 by the
	// seeded admin moves the average to 3.25.
	admin := &model.User{}
	err := database.GetDB().Where("email = ?", "admin@example.com").First(admin).Error
	assert.NoError(t, err)
	store := &model.Store{}
	err = database.GetDB().Where("name = ?", "Sample Store").First(store).Error
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/user/stores/"+strconv.Itoa(store.Id)+"/rate",
		strings.NewReader(`{"userId": `+strconv.Itoa(admin.Id)+`, "rating": 2}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"averageRating":3.25`)
	assert.Contains(t, w.Body.String(), `"userRating":2`)
}
