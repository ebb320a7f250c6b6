package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibroximov13/FindCourse/internal/http/handlers"
	"github.com/ibroximov13/FindCourse/internal/http/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandlers
	Users    *handlers.UserHandlers
	Sessions *handlers.SessionHandlers
	Regions  *handlers.RegionHandlers
	Policies *handlers.PolicyHandlers
}

// BuildRouter wires all routes. Public routes carry no middleware; everything
// else goes through JWT validation and the Casbin role check, in that order.
func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	pub := r.Group("/users")
	pub.POST("/send-otp", h.Auth.SendOTP)
	pub.POST("/verify-otp", h.Auth.VerifyOTP)
	pub.POST("/register", h.Auth.Register)
	pub.POST("/login", h.Auth.Login)
	pub.POST("/refresh", h.Auth.Refresh)

	r.GET("/regions", h.Regions.List)
	r.GET("/regions/:id", h.Regions.Get)

	v := r.Group("/", jwtmw.WithJWT(), cb.Enforce())

	v.POST("/users/createAdminOrSuperAdmin", h.Auth.CreateAdmin)
	v.GET("/users", h.Users.List)
	v.GET("/users/me", h.Users.Me)
	v.PATCH("/users/me", h.Users.UpdateMe)
	v.POST("/users/me/reset-password/send-otp", h.Users.SendResetOTP)
	v.POST("/users/me/reset-password", h.Users.ResetPassword)
	v.PATCH("/users/:id", h.Users.Patch)
	v.DELETE("/users/:id", h.Users.Delete)

	v.GET("/sessions", h.Sessions.List)
	v.GET("/sessions/me", h.Sessions.Me)
	v.GET("/sessions/:id", h.Sessions.Get)
	v.DELETE("/sessions/:id", h.Sessions.Delete)

	v.POST("/regions", h.Regions.Create)
	v.PATCH("/regions/:id", h.Regions.Update)
	v.DELETE("/regions/:id", h.Regions.Delete)

	adm := r.Group("/admin", jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", h.Policies.List)
	adm.POST("/policies", h.Policies.Add)
	adm.DELETE("/policies", h.Policies.Remove)

	return r
}
