package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AbdullahAlroqi/halaqat-management-system/internal/config"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/handlers"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/middleware"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/models"
	"github.com/AbdullahAlroqi/halaqat-management-system/internal/store"
)

// Register wires every API route onto the engine. Admin endpoints are
// gated per role; employees only reach their own records through the
// handlers' scoping.
func Register(r *gin.Engine, s *store.Store, cfg config.Config) {
	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	auth := handlers.NewAuthHandler(s, cfg)
	employees := handlers.NewEmployeeHandler(s)
	leaves := handlers.NewLeaveHandler(s, cfg)
	attendance := handlers.NewAttendanceHandler(s)
	schedules := handlers.NewScheduleHandler(s)
	settings := handlers.NewSettingsHandler(s, cfg)
	dashboard := handlers.NewDashboardHandler(s)
	notifications := handlers.NewNotificationHandler(s)
	reports := handlers.NewReportHandler(s)

	admins := middleware.RequireAnyRole(models.RoleMainAdmin, models.RoleSubAdmin)
	mainAdmin := middleware.RequireAnyRole(models.RoleMainAdmin)
	reviewers := middleware.RequireAnyRole(
		models.RoleMainAdmin, models.RoleSubAdmin,
		models.RoleMainSupervisor, models.RoleSubSupervisor,
	)

	api := r.Group("/api")

	public := api.Group("/auth")
	{
		public.POST("/login", auth.Login)
		public.POST("/register", auth.Register)
		public.POST("/refresh", auth.Refresh)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		authed.POST("/auth/logout", auth.Logout)
		authed.GET("/auth/me", auth.Me)
		authed.POST("/auth/change-password", auth.ChangePassword)
		authed.POST("/auth/change-national-id", auth.ChangeNationalID)

		authed.GET("/leave-types", leaves.ListTypes)
		authed.GET("/leaves", leaves.ListRequests)
		authed.POST("/leaves", leaves.CreateRequest)
		authed.DELETE("/leaves/:id", leaves.DeleteRequest)

		authed.GET("/schedules", schedules.List)
		authed.GET("/attendance", attendance.List)

		authed.GET("/notifications", notifications.List)
		authed.GET("/notifications/unread-count", notifications.UnreadCount)
		authed.POST("/notifications/:id/read", notifications.MarkRead)
	}

	review := api.Group("")
	review.Use(middleware.AuthRequired(cfg.JwtSecret), reviewers)
	{
		review.POST("/leaves/:id/review", leaves.Review)
		review.POST("/attendance", attendance.Record)
		review.PUT("/attendance/:id", attendance.Update)
		review.GET("/employees/:id/subordinates", employees.Subordinates)
	}

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(cfg.JwtSecret), admins)
	{
		admin.GET("/dashboard", dashboard.Get)

		admin.GET("/employees", employees.List)
		admin.GET("/supervisors", employees.ListSupervisors)
		admin.POST("/employees", employees.Create)
		admin.PUT("/employees/:id", employees.Update)
		admin.POST("/employees/:id/deactivate", employees.Deactivate)
		admin.DELETE("/employees/:id", employees.Delete)
		admin.POST("/employees/:id/supervisor", employees.AssignSupervisor)
		admin.POST("/employees/import", employees.Import)
		admin.GET("/employees/template", employees.Template)
		admin.GET("/employees/export", employees.Export)

		admin.POST("/leave-types", leaves.CreateType)
		admin.PUT("/leave-types/:id", leaves.UpdateType)
		admin.DELETE("/leave-types/:id", leaves.DeleteType)

		admin.POST("/schedules", schedules.Create)
		admin.PUT("/schedules/:id", schedules.Update)
		admin.DELETE("/schedules/:id", schedules.Delete)

		admin.DELETE("/attendance/:id", attendance.Delete)

		admin.GET("/reports/leaves", reports.Leaves)
		admin.GET("/reports/leaves/export", reports.LeavesExport)
		admin.GET("/reports/attendance", reports.Attendance)
		admin.GET("/reports/attendance/export", reports.AttendanceExport)
	}

	owner := api.Group("")
	owner.Use(middleware.AuthRequired(cfg.JwtSecret), mainAdmin)
	{
		owner.DELETE("/employees", employees.DeleteAll)
		owner.PUT("/settings", settings.Update)
		owner.POST("/settings/logo", settings.UploadLogo)
	}

	api.GET("/settings", settings.Get)
}
