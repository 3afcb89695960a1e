package controller

import (
	"errors"
	"net/http"

	"github.com/ashishaher15/eduplus-challange/config"
	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/logger"
	"github.com/ashishaher15/eduplus-challange/util/validation"
	"github.com/ashishaher15/eduplus-challange/web/service"
	"github.com/ashishaher15/eduplus-challange/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the payload for registration and admin user creation.
type RegisterForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordForm struct {
	UserId      int    `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// AuthController serves registration, login and password updates.
type AuthController struct {
	BaseController

	authService service.AuthService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	auth := g.Group("/auth")
	auth.POST("/register", a.register)
	auth.POST("/login", a.login)
	auth.PUT("/password", a.updatePassword)
	auth.POST("/logout", a.logout)
}

func (a *AuthController) register(c *gin.Context) {
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

	user, err := a.authService.Register(form.Name, form.Email, form.Address, form.Password, role)
	if errors.Is(err, service.ErrEmailTaken) {
		jsonError(c, http.StatusConflict, "Email already in use")
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.Id,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.ValidateLogin(form.Email, form.Password); !errs.Ok() {
		jsonFieldErrors(c, errs)
		return
	}

	user, err := a.authService.Login(form.Email, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Warningf("failed login for %q from %s", form.Email, getRemoteIp(c))
		jsonError(c, http.StatusBadRequest, "Invalid email or password")
		return
	} else if err != nil {
		jsonInternalError(c, "Failed to login", err)
		return
	}

	if maxAge := config.GetSessionMaxAge(); maxAge > 0 {
		if err := session.SetMaxAge(c, maxAge*60); err != nil {
			logger.Warning("Unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in from %s", user.Email, getRemoteIp(c))
	c.JSON(http.StatusOK, user.Public())
}

func (a *AuthController) updatePassword(c *gin.Context) {
	var form PasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.ValidatePasswordUpdate(form.UserId, form.OldPassword, form.NewPassword); !errs.Ok() {
		jsonFieldErrors(c, errs)
		return
	}

	err := a.authService.UpdatePassword(form.UserId, form.OldPassword, form.NewPassword)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		jsonError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrWrongPassword):
		jsonError(c, http.StatusBadRequest, "Current password is incorrect")
	case err != nil:
		jsonInternalError(c, "Failed to update password", err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}

func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
