package admin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/provider"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAdminPostHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(&models.Post{}, &models.Category{}, &models.Comment{}, &models.PostLike{})
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	container := &provider.Container{
		ContentService: service.NewContentService(
			&config.Config{},
			repository.NewPostRepository(db),
			repository.NewCategoryRepository(db),
			repository.NewLikeRepository(db),
			repository.NewCommentRepository(db),
			nil,
		),
	}
	handler := New(container)

	r := gin.New()
	r.GET("/admin/posts", handler.GetAdminPosts)
	return r, db
}

func seedAdminPost(t *testing.T, db *gorm.DB, title string, categoryID uint, statusID int) {
	t.Helper()
	post := models.Post{
		Title:      title,
		Content:    title + " body",
		CategoryID: categoryID,
		StatusID:   statusID,
		Date:       time.Now(),
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
}

func listAdminPosts(t *testing.T, r *gin.Engine, query string) []models.Post {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/posts"+query, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	var resp struct {
		StatusCode int           `json:"status_code"`
		Data       []models.Post `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d", resp.StatusCode)
	}
	return resp.Data
}

func TestGetAdminPostsFilters(t *testing.T) {
	r, db := setupAdminPostHandlerTest(t)

	general := models.Category{Name: "General"}
	cat := models.Category{Name: "Cat"}
	for _, c := range []*models.Category{&general, &cat} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}
	seedAdminPost(t, db, "Morning Light", general.ID, constants.PostStatusPublishedID)
	seedAdminPost(t, db, "Half Finished", general.ID, constants.PostStatusDraftID)
	seedAdminPost(t, db, "Cat Nap", cat.ID, constants.PostStatusPublishedID)

	if got := listAdminPosts(t, r, ""); len(got) != 3 {
		t.Fatalf("unfiltered list want 3 got %d", len(got))
	}

	published := listAdminPosts(t, r, "?status=published")
	if len(published) != 2 {
		t.Fatalf("published filter want 2 got %d", len(published))
	}
	for _, post := range published {
		if post.StatusID != constants.PostStatusPublishedID {
			t.Fatalf("published filter leaked draft: %+v", post)
		}
	}

	drafts := listAdminPosts(t, r, "?status=Draft")
	if len(drafts) != 1 || drafts[0].Title != "Half Finished" {
		t.Fatalf("draft filter mismatch: %+v", drafts)
	}

	byCategory := listAdminPosts(t, r, "?category=cat")
	if len(byCategory) != 1 || byCategory[0].Title != "Cat Nap" {
		t.Fatalf("category filter mismatch: %+v", byCategory)
	}

	bySearch := listAdminPosts(t, r, "?search=Morning")
	if len(bySearch) != 1 || bySearch[0].Title != "Morning Light" {
		t.Fatalf("search filter mismatch: %+v", bySearch)
	}
}
