package provider

import (
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/authz"
	"github.com/wpc41205/my-personal-blog-project/internal/blogapi"
	"github.com/wpc41205/my-personal-blog-project/internal/cache"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/queue"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
	"github.com/wpc41205/my-personal-blog-project/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	UserRepo         repository.UserRepository
	PostRepo         repository.PostRepository
	CategoryRepo     repository.CategoryRepository
	CommentRepo      repository.CommentRepository
	LikeRepo         repository.LikeRepository
	NotificationRepo repository.NotificationRepository

	// Services
	AuthzService        *authz.Service
	AuthService         *service.AuthService
	UserAuthService     *service.UserAuthService
	ContentService      *service.ContentService
	CategoryService     *service.CategoryService
	EngagementService   *service.EngagementService
	NotificationService *service.NotificationService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
	c.LikeRepo = repository.NewLikeRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	var external service.ExternalClient
	if c.Config.External.Enabled {
		client, err := blogapi.NewClient(blogapi.Config{
			BaseURL:      c.Config.External.BaseURL,
			Timeout:      time.Duration(c.Config.External.TimeoutMS) * time.Millisecond,
			FetchLimit:   c.Config.External.FetchLimit,
			DemoFallback: c.Config.External.DemoFallback,
		})
		if err != nil {
			logger.Errorw("provider_init_blogapi_failed", "error", err)
		} else {
			external = client
		}
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo, c.QueueClient)
	c.ContentService = service.NewContentService(c.Config, c.PostRepo, c.CategoryRepo, c.LikeRepo, c.CommentRepo, external)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.PostRepo)
	c.EngagementService = service.NewEngagementService(c.PostRepo, c.LikeRepo, c.CommentRepo, c.UserRepo, c.NotificationService)
}
