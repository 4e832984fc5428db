package router

import (
	"github.com/gin-gonic/gin"

	"github.com/thesisdesk/backend/internal/domain/identity"
	"github.com/thesisdesk/backend/internal/interfaces/http/handler"
	"github.com/thesisdesk/backend/internal/interfaces/http/middleware"
)

// AuthRoutes registers authentication endpoints
type AuthRoutes struct {
	Handler *handler.AuthHandler
}

func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.Handler.Login)
	auth.POST("/refresh", r.Handler.Refresh)
	auth.POST("/logout", r.Handler.Logout)
	auth.GET("/me", r.Handler.Me)
	auth.POST("/change_password", r.Handler.ChangePassword)
	auth.GET("/verify_token", r.Handler.VerifyToken)
}

// UserRoutes registers user management endpoints. Mutations are admin-only.
type UserRoutes struct {
	Handler *handler.UserHandler
}

func (r *UserRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", r.Handler.List)
	users.GET("/:id", r.Handler.GetByID)

	admin := users.Group("", middleware.RequireAdmin())
	admin.POST("", r.Handler.Create)
	admin.PATCH("/:id", r.Handler.Update)
	admin.POST("/:id/reset_password", r.Handler.ResetPassword)
	admin.DELETE("/:id", r.Handler.Delete)
}

// TopicRoutes registers thesis topic endpoints
type TopicRoutes struct {
	Handler *handler.TopicHandler
}

func (r *TopicRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	topics := rg.Group("/topics")
	topics.GET("", r.Handler.List)
	topics.GET("/:id", r.Handler.GetByID)

	staff := topics.Group("", middleware.RequireRole(identity.RoleLecturer, identity.RoleAdmin))
	staff.POST("", r.Handler.Create)
	staff.PATCH("/:id", r.Handler.Update)
	staff.DELETE("/:id", r.Handler.Delete)
}

// GroupRoutes registers student group endpoints. The score lock is admin-only.
type GroupRoutes struct {
	Handler *handler.GroupHandler
}

func (r *GroupRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	groups.GET("", r.Handler.List)
	groups.GET("/:id", r.Handler.GetByID)
	groups.POST("", r.Handler.Create)

	staff := groups.Group("", middleware.RequireRole(identity.RoleLecturer, identity.RoleAdmin))
	staff.PATCH("/:id", r.Handler.Update)

	admin := groups.Group("", middleware.RequireAdmin())
	admin.PATCH("/:id/lock", r.Handler.SetLock)
	admin.DELETE("/:id", r.Handler.Delete)
}

// DefenseRoutes registers defense session endpoints. Mutations are admin-only;
// the conflict probe is open to lecturers planning their schedule.
type DefenseRoutes struct {
	Handler *handler.DefenseHandler
}

func (r *DefenseRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	defenses := rg.Group("/defenses")
	defenses.GET("", r.Handler.List)
	defenses.GET("/:id", r.Handler.GetByID)
	defenses.GET("/check_time_conflict", r.Handler.CheckTimeConflict)

	admin := defenses.Group("", middleware.RequireAdmin())
	admin.POST("", r.Handler.Create)
	admin.PATCH("/:id", r.Handler.Update)
	admin.DELETE("/:id", r.Handler.Delete)
}

// PlanRoutes registers schedule slot endpoints
type PlanRoutes struct {
	Handler *handler.PlanHandler
}

func (r *PlanRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/plans")
	plans.GET("", r.Handler.List)
	plans.GET("/:id", r.Handler.GetByID)
	plans.GET("/check_time", r.Handler.CheckTime)

	staff := plans.Group("", middleware.RequireRole(identity.RoleLecturer, identity.RoleAdmin))
	staff.POST("", r.Handler.Create)
	staff.PATCH("/:id", r.Handler.Reschedule)
	staff.DELETE("/:id", r.Handler.Delete)
}

// LecturerDefenseRoutes registers grading assignment endpoints. Score entry
// is limited to lecturers and admins; the lock gate is enforced below.
type LecturerDefenseRoutes struct {
	Handler *handler.LecturerDefenseHandler
}

func (r *LecturerDefenseRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rows := rg.Group("/lecturer_defenses")
	rows.GET("", r.Handler.List)
	rows.GET("/:id", r.Handler.GetByID)

	staff := rows.Group("", middleware.RequireRole(identity.RoleLecturer, identity.RoleAdmin))
	staff.PATCH("/update_score_by_group", r.Handler.UpdateScoreByGroup)
}

// HealthRoutes registers the health endpoint
type HealthRoutes struct {
	Handler *handler.HealthHandler
}

func (r *HealthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", r.Handler.Health)
}
