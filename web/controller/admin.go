package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/util/validation"
	"github.com/ashishaher15/eduplus-challange/web/middleware"
	"github.com/ashishaher15/eduplus-challange/web/service"

	"github.com/gin-gonic/gin"
)

type StoreForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	OwnerUserId int    `json:"owner_user_id"`
}

// AdminController serves the administrator endpoints. The owner-store lookup
// is also reachable by store owners for their dashboard.
type AdminController struct {
	BaseController

	adminService service.AdminService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("/admin")
	admin.Use(a.checkLogin)

	adminOnly := middleware.RoleRequired(model.RoleAdmin)
	admin.GET("/users", adminOnly, a.listUsers)
	admin.GET("/stores", adminOnly, a.listStores)
	admin.POST("/users", adminOnly, a.createUser)
	admin.POST("/stores", adminOnly, a.createStore)

	// /stores/owner/:ownerId and /stores/:storeId/ratings/users both nest
	// under /stores, and gin's router cannot mix the static "owner" segment
	// with a wildcard sibling. Both lookups therefore share generic param
	// routes and dispatch on the literal segments.
	ownerOrAdmin := middleware.RoleRequired(model.RoleAdmin, model.RoleStoreOwner)
	admin.GET("/stores/:p1/:p2", ownerOrAdmin, a.storesNested)
	admin.GET("/stores/:p1/:p2/:p3", ownerOrAdmin, a.storesNested)
}

func (a *AdminController) storesNested(c *gin.Context) {
	p1, p2, p3 := c.Param("p1"), c.Param("p2"), c.Param("p3")
	switch {
	case p1 == "owner" && p3 == "":
		a.storeByOwner(c, p2)
	case p2 == "ratings" && p3 == "users":
		a.storeRatingUsers(c, p1)
	default:
		c.AbortWithStatus(http.StatusNotFound)
	}
}

func (a *AdminController) listUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers()
	if err != nil {
		jsonInternalError(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (a *AdminController) listStores(c *gin.Context) {
	stores, err := a.adminService.ListStores()
	if err != nil {
		jsonInternalError(c, "Failed to fetch stores", err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (a *AdminController) createUser(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	role := model.Role(form.Role)
	if form.Role == "" {
		role = model.RoleUser
	}
	if errs := validation.ValidateRegistration(form.Name, form.Email, form.Address, form.Password, role); !errs.Ok() {
		jsonFieldErrors(c, errs)
		return
	}

	user, err := a.adminService.CreateUser(form.Name, form.Email, form.Address, form.Password, role)
	if errors.Is(err, service.ErrEmailTaken) {
		jsonError(c, http.StatusConflict, "Email already in use")
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

func (a *AdminController) createStore(c *gin.Context) {
	var form StoreForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	store, err := a.adminService.CreateStore(form.Name, form.Email, form.Address, form.OwnerUserId)
	switch {
	case errors.Is(err, service.ErrInvalidOwner):
		jsonError(c, http.StatusBadRequest, "Invalid store owner ID or user is not a store owner")
	case errors.Is(err, service.ErrOwnerHasStore):
		jsonError(c, http.StatusBadRequest, "Owner already has a store")
	case err != nil:
		jsonInternalError(c, "Failed to create store", err)
	default:
		c.JSON(http.StatusCreated, store)
	}
}

func (a *AdminController) storeByOwner(c *gin.Context, rawOwnerId string) {
	ownerId, err := strconv.Atoi(rawOwnerId)
	if err != nil || ownerId <= 0 {
		jsonError(c, http.StatusBadRequest, "Owner ID is required")
		return
	}

	store, err := a.adminService.StoreByOwner(ownerId)
	if errors.Is(err, service.ErrStoreNotFound) {
		jsonError(c, http.StatusNotFound, "Store not found for this owner")
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to fetch store", err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (a *AdminController) storeRatingUsers(c *gin.Context, rawStoreId string) {
	storeId, err := strconv.Atoi(rawStoreId)
	if err != nil || storeId <= 0 {
		jsonError(c, http.StatusBadRequest, "Store ID is required")
		return
	}

	users, err := a.adminService.RatingUsers(storeId)
	if errors.Is(err, service.ErrStoreNotFound) {
		jsonError(c, http.StatusNotFound, "Store not found")
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to fetch rating users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
