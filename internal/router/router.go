package router

import (
	"fmt"
	"strings"

	"github.com/wpc41205/my-personal-blog-project/internal/cache"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	adminhandlers "github.com/wpc41205/my-personal-blog-project/internal/http/handlers/admin"
	publichandlers "github.com/wpc41205/my-personal-blog-project/internal/http/handlers/public"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "blog"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/search", publicHandler.SearchPosts)
			public.GET("/posts/:id", publicHandler.GetPost)
			public.GET("/posts/:id/comments", publicHandler.GetPostComments)
			public.GET("/posts/:id/likes", publicHandler.GetPostLikes)
			public.GET("/categories", publicHandler.GetCategories)
		}

		// 读者认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 读者接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetUserProfile)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.PUT("/me/password", publicHandler.UpdateUserPassword)
			user.POST("/posts/:id/like", publicHandler.ToggleLike)
			user.GET("/posts/:id/like", publicHandler.GetLikeStatus)
			user.POST("/posts/:id/comments", publicHandler.AddComment)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("email")), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				// 文章管理
				authorized.GET("/posts", adminHandler.GetAdminPosts)
				authorized.GET("/posts/:id", adminHandler.GetAdminPost)
				authorized.POST("/posts", adminHandler.CreateAdminPost)
				authorized.PUT("/posts/:id", adminHandler.UpdateAdminPost)
				authorized.DELETE("/posts/:id", adminHandler.DeleteAdminPost)

				// 分类管理
				authorized.GET("/categories", adminHandler.GetAdminCategories)
				authorized.POST("/categories", adminHandler.CreateAdminCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateAdminCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteAdminCategory)

				// 通知
				authorized.GET("/notifications", adminHandler.GetAdminNotifications)
				authorized.GET("/notifications/unread-count", adminHandler.GetAdminNotificationUnreadCount)
				authorized.PUT("/notifications/:id/read", adminHandler.MarkAdminNotificationRead)
				authorized.PUT("/notifications/read-all", adminHandler.MarkAdminNotificationsAllRead)

				// 资料与密码
				authorized.GET("/profile", adminHandler.GetAdminProfile)
				authorized.PUT("/profile", adminHandler.UpdateAdminProfile)
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
