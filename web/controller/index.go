package controller

import (
	"net/http"

	"github.com/ashishaher15/eduplus-challange/database/model"
	"github.com/ashishaher15/eduplus-challange/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController serves the embedded pages and routes a logged-in session
// to the dashboard matching its role.
type IndexController struct {
	BaseController
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/register", a.registerPage)
	g.GET("/user", a.page("user.html", model.RoleUser))
	g.GET("/admin", a.page("admin.html", model.RoleAdmin))
	g.GET("/owner", a.page("owner.html", model.RoleStoreOwner))
}

func roleHome(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleStoreOwner:
		return "/owner"
	default:
		return "/user"
	}
}

func (a *IndexController) index(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		c.Redirect(http.StatusTemporaryRedirect, roleHome(user.Role))
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
}

func (a *IndexController) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"title": "Register"})
}

// page serves a dashboard to sessions holding the required role; everyone
// else is sent back to the login page.
func (a *IndexController) page(name string, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.Redirect(http.StatusTemporaryRedirect, "/")
			return
		}
		if user.Role != role && user.Role != model.RoleAdmin {
			c.Redirect(http.StatusTemporaryRedirect, roleHome(user.Role))
			return
		}
		c.HTML(http.StatusOK, name, gin.H{"title": user.Name})
	}
}
