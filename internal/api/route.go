package api

import (
	"PedGuard/internal/api/middleware"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/oauth", group.AuthHandler.OAuthLogin)
			authGroup.POST("/refresh", group.AuthHandler.Refresh)

			logoutGroup := authGroup.Group("")
			logoutGroup.Use(middleware.AuthMiddleware())
			{
				logoutGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/me", group.UserHandler.GetMe)
			userGroup.PUT("/me", group.UserHandler.UpdateMe)
		}

		accidentGroup := apiGroup.Group("/accidents")
		{
			accidentGroup.GET("/summary", group.AccidentHandler.GetSummary)
		}

		suggestionGroup := apiGroup.Group("/suggestions")
		{
			suggestionGroup.GET("", group.SuggestionHandler.List)
			suggestionGroup.GET("/:id/comments", group.SuggestionActionHandler.GetComments)

			authOptGroup := suggestionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:id", group.SuggestionHandler.GetDetail)
			}

			authedGroup := suggestionGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware())
			{
				authedGroup.POST("", group.SuggestionHandler.Create)
				authedGroup.POST("/:id/like", group.SuggestionActionHandler.ToggleLike)
				authedGroup.POST("/:id/comments", group.SuggestionActionHandler.AddComment)
				authedGroup.DELETE("/:id/comments/:comment_id", group.SuggestionActionHandler.DeleteComment)
			}

			adminGroup := authedGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("/:id/status", group.SuggestionHandler.UpdateStatus)
				adminGroup.GET("/statistics", group.SuggestionHandler.GetStatistics)
			}
		}

		districtGroup := apiGroup.Group("/districts")
		{
			districtGroup.GET("", group.DistrictHandler.GetDistricts)
			districtGroup.GET("/provinces", group.DistrictHandler.GetProvinces)
			districtGroup.GET("/cities", group.DistrictHandler.GetCities)
		}

		mapGroup := apiGroup.Group("/map")
		{
			mapGroup.GET("/crosswalks", group.MapHandler.GetCrosswalks)
			mapGroup.GET("/signals", group.MapHandler.GetSignals)
			mapGroup.GET("/hotspots", group.MapHandler.GetHotspots)
		}

		kpiGroup := apiGroup.Group("/kpi")
		{
			kpiGroup.GET("/summary", group.KpiHandler.GetSummary)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.GET("/stats", group.DashboardHandler.GetStats)
		}

		investmentGroup := apiGroup.Group("/investments")
		{
			investmentGroup.GET("/plans", group.InvestmentHandler.ListPlans)
			investmentGroup.GET("/plans/:id/items", group.InvestmentHandler.GetPlanItems)
		}

		alertGroup := apiGroup.Group("/alerts")
		alertGroup.Use(middleware.AuthMiddleware())
		{
			alertGroup.GET("", group.AlertHandler.List)
			alertGroup.GET("/unread-count", group.AlertHandler.GetUnreadCount)
			alertGroup.PUT("/:id/read", group.AlertHandler.MarkRead)
			alertGroup.PUT("/read-all", group.AlertHandler.MarkAllRead)

			alertAdminGroup := alertGroup.Group("")
			alertAdminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				alertAdminGroup.POST("", group.AlertHandler.Create)
			}
		}
	}

	return r
}
