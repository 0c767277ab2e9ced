package router

import (
	"time"

	"github.com/vishnupriya759285/velookara/internal/cache"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/handler/auth"
	"github.com/vishnupriya759285/velookara/internal/handler/events"
	"github.com/vishnupriya759285/velookara/internal/handler/issues"
	"github.com/vishnupriya759285/velookara/internal/handler/notices"
	"github.com/vishnupriya759285/velookara/internal/handler/users"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/notify"

	"github.com/labstack/echo/v4"
)

// Deps 路由需要的共用資源
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Secret   string
	TokenTTL time.Duration
	Notifier notify.Notifier
	Stats    *handler.StatsCache
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}
	db := d.DB
	authn := middleware.Authenticate(db, d.Secret)
	adminOnly := middleware.RequireRoles(model.RoleAdmin)

	api := e.Group("/api")

	// 健康檢查不需登入
	api.GET("/health", handler.HealthHandler())
	api.GET("/health/ready", handler.ReadinessHandler(db, d.Cache))

	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db, d.Secret, d.TokenTTL))
	apiAuth.POST("/login", auth.LoginHandler(db, d.Secret, d.TokenTTL))
	apiAuth.GET("/me", auth.MeHandler(), authn)
	apiAuth.PUT("/profile", auth.UpdateProfileHandler(db), authn)

	apiIssues := api.Group("/issues")
	apiIssues.POST("", issues.CreateIssueHandler(db, d.Notifier), authn)
	apiIssues.GET("", issues.ListIssuesHandler(db))
	apiIssues.GET("/my-issues", issues.MyIssuesHandler(db), authn)
	apiIssues.GET("/stats/overview", issues.IssueStatsHandler(db, d.Stats), authn, adminOnly)
	apiIssues.GET("/:id", issues.GetIssueHandler(db))
	apiIssues.PUT("/:id", issues.UpdateIssueHandler(db), authn)
	apiIssues.DELETE("/:id", issues.DeleteIssueHandler(db), authn)
	apiIssues.PUT("/:id/status", issues.UpdateStatusHandler(db, d.Notifier), authn, adminOnly)
	apiIssues.PUT("/:id/assign", issues.AssignIssueHandler(db, d.Notifier), authn, adminOnly)
	apiIssues.POST("/:id/comments", issues.AddCommentHandler(db), authn)
	apiIssues.GET("/:id/comments", issues.ListCommentsHandler(db))
	apiIssues.DELETE("/:id/comments/:commentId", issues.DeleteCommentHandler(db), authn)

	apiNotices := api.Group("/notices")
	apiNotices.POST("", notices.CreateNoticeHandler(db), authn, adminOnly)
	apiNotices.GET("", notices.ListNoticesHandler(db))
	apiNotices.GET("/:id", notices.GetNoticeHandler(db))
	apiNotices.PUT("/:id", notices.UpdateNoticeHandler(db), authn, adminOnly)
	apiNotices.DELETE("/:id", notices.DeleteNoticeHandler(db), authn, adminOnly)

	apiEvents := api.Group("/events")
	apiEvents.POST("", events.CreateEventHandler(db), authn)
	apiEvents.GET("", events.ListEventsHandler(db))
	apiEvents.GET("/:id", events.GetEventHandler(db))
	apiEvents.PUT("/:id", events.UpdateEventHandler(db), authn, adminOnly)
	apiEvents.DELETE("/:id", events.DeleteEventHandler(db), authn, adminOnly)
	apiEvents.POST("/:id/register", events.RegisterHandler(db, d.Notifier))
	apiEvents.GET("/:id/registrations", events.ListRegistrationsHandler(db), authn)

	// 管理員專屬
	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db), authn, adminOnly)
	apiUsers.GET("/stats/overview", users.UserStatsHandler(db, d.Stats), authn, adminOnly)
	apiUsers.GET("/:id", users.GetUserHandler(db), authn, adminOnly)
	apiUsers.PUT("/:id/role", users.UpdateRoleHandler(db), authn, adminOnly)
	apiUsers.PUT("/:id/status", users.UpdateStatusHandler(db), authn, adminOnly)
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db), authn, adminOnly)
}
