package main

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/logger"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categoryNames := []string{"Cat", "General", "Inspiration"}
	for _, name := range categoryNames {
		var existing models.Category
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&models.Category{Name: name}).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", name, err)
			} else {
				stdLog.Printf("Created category: %s", name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("name IN ?", categoryNames).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	// 添加示例文章
	posts := []models.Post{
		{
			Title:       "The Quiet Power of a Morning Routine",
			Description: "Why the first hour of the day shapes the rest of it.",
			Content:     "## Start small\n\nA morning routine does not need to be elaborate. Ten minutes of reading, a short walk, and a cup of coffee are enough to set the tone.\n\nThe point is not productivity. The point is ownership of the day before the day owns you.",
			Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085",
			Author:      "Pataveekorn C.",
			CategoryID:  categoryIDs["Inspiration"],
			StatusID:    constants.PostStatusPublishedID,
			Date:        time.Date(2024, 9, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Why Cats Sleep Sixteen Hours a Day",
			Description: "A short look at feline sleep cycles and what they mean for your couch.",
			Content:     "Cats are crepuscular hunters. Their bodies are built for short bursts of intense activity followed by long stretches of rest.\n\nIf your cat naps through the afternoon, it is not lazy. It is conserving energy for the 3 a.m. sprint down the hallway.",
			Image:       "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba",
			Author:      "Pataveekorn C.",
			CategoryID:  categoryIDs["Cat"],
			StatusID:    constants.PostStatusPublishedID,
			Date:        time.Date(2024, 9, 18, 10, 30, 0, 0, time.UTC),
		},
		{
			Title:       "Notes on Writing Every Day",
			Description: "What a year of daily writing taught me about showing up.",
			Content:     "The hardest part of writing daily is not the writing. It is sitting down.\n\nAfter a year, the streak itself becomes the motivation. Miss a day and the silence is louder than any deadline.",
			Image:       "https://images.unsplash.com/photo-1455390582262-044cdead277a",
			Author:      "Pataveekorn C.",
			CategoryID:  categoryIDs["General"],
			StatusID:    constants.PostStatusPublishedID,
			Date:        time.Date(2024, 10, 2, 14, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Draft: Thoughts on Slow Travel",
			Description: "An unfinished piece about staying longer in fewer places.",
			Content:     "Slow travel trades the checklist for the neighborhood cafe. This one still needs a proper ending.",
			Image:       "",
			Author:      "Pataveekorn C.",
			CategoryID:  categoryIDs["General"],
			StatusID:    constants.PostStatusDraftID,
			Date:        time.Date(2024, 10, 20, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("title = ?", post.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", post.Title, err)
			} else {
				stdLog.Printf("Created post: %s", post.Title)
			}
		} else {
			stdLog.Printf("Post already exists: %s", post.Title)
		}
	}

	// 添加管理员账号
	admins := []struct {
		Email    string
		Name     string
		Username string
		Role     string
		Password string
	}{
		{Email: "admin@example.com", Name: "Site Admin", Username: "admin", Role: constants.AdminRoleSuper, Password: "admin123"},
		{Email: "editor@example.com", Name: "Content Editor", Username: "editor", Role: constants.AdminRoleEditor, Password: "editor123"},
	}
	for _, a := range admins {
		var existing models.AdminUser
		if err := models.DB.Where("email = ?", a.Email).First(&existing).Error; err != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				stdLog.Printf("Failed to hash password for %s: %v", a.Email, hashErr)
				continue
			}
			admin := models.AdminUser{
				Email:        a.Email,
				Name:         a.Name,
				Username:     a.Username,
				Role:         a.Role,
				PasswordHash: string(hash),
			}
			if err := models.DB.Create(&admin).Error; err != nil {
				stdLog.Printf("Failed to create admin %s: %v", a.Email, err)
			} else {
				stdLog.Printf("Created admin: %s (%s)", a.Email, a.Role)
			}
		} else {
			stdLog.Printf("Admin already exists: %s", a.Email)
		}
	}

	// 添加示例读者账号
	var existingUser models.User
	if err := models.DB.Where("email = ?", "reader@example.com").First(&existingUser).Error; err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("reader123"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Fatalf("Failed to hash reader password: %v", hashErr)
		}
		user := models.User{
			Name:         "Demo Reader",
			Username:     "reader",
			Email:        "reader@example.com",
			PasswordHash: string(hash),
		}
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create reader user: %v", err)
		} else {
			stdLog.Printf("Created reader user: %s", user.Email)
		}
	} else {
		stdLog.Printf("Reader user already exists: %s", existingUser.Email)
	}

	stdLog.Println("Seed completed")
}
