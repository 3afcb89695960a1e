package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ashishaher15/eduplus-challange/util/validation"
	"github.com/ashishaher15/eduplus-challange/web/service"

	"github.com/gin-gonic/gin"
)

type RatingForm struct {
	UserId  int      `json:"userId"`
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment"`
}

// UserController serves the store search and rating submission endpoints.
type UserController struct {
	BaseController

	storeService service.StoreService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	user := g.Group("/user")
	user.GET("/stores", a.listStores)
	user.POST("/stores/:storeId/rate", a.submitRating)
}

func (a *UserController) listStores(c *gin.Context) {
	userId, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userId <= 0 {
		jsonError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	stores, err := a.storeService.SearchStores(userId, c.Query("name"), c.Query("address"))
	if err != nil {
		jsonInternalError(c, "Failed to fetch stores", err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (a *UserController) submitRating(c *gin.Context) {
	storeId, err := strconv.Atoi(c.Param("storeId"))
	if err != nil || storeId <= 0 {
		jsonError(c, http.StatusBadRequest, "User ID, store ID, and rating are required")
		return
	}

	var form RatingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if form.UserId <= 0 || form.Rating == nil {
		jsonError(c, http.StatusBadRequest, "User ID, store ID, and rating are required")
		return
	}
	if !validation.IsValidRating(*form.Rating) {
		jsonError(c, http.StatusBadRequest, "Rating must be an integer between 1 and 5")
		return
	}

	store, err := a.storeService.SubmitRating(form.UserId, storeId, *form.Rating, form.Comment)
	if errors.Is(err, service.ErrStoreNotFound) {
		// The rating row was written; only the store lookup came back empty.
		c.JSON(http.StatusOK, gin.H{"message": "Rating submitted but store not found"})
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to submit rating", err)
		return
	}
	c.JSON(http.StatusOK, store)
}
