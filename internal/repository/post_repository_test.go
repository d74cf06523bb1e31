package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Post{},
		&models.Category{},
		&models.Comment{},
		&models.PostLike{},
		&models.User{},
	)
	if err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

func seedPost(t *testing.T, db *gorm.DB, title string, categoryID uint, statusID int, date time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:      title,
		Content:    title + " content",
		CategoryID: categoryID,
		StatusID:   statusID,
		Date:       date,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func TestPostListFiltersByCategoryNameCaseInsensitive(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewPostRepository(db)

	category := &models.Category{Name: "Inspiration"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	other := &models.Category{Name: "General"}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	now := time.Now()
	seedPost(t, db, "inspired post", category.ID, constants.PostStatusPublishedID, now)
	seedPost(t, db, "general post", other.ID, constants.PostStatusPublishedID, now)

	posts, total, err := repo.List(PostListFilter{Category: "inspiration", OnlyPublished: true})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(posts) != 1 {
		t.Fatalf("expected 1 post, got total=%d len=%d", total, len(posts))
	}
	if posts[0].Title != "inspired post" {
		t.Fatalf("unexpected post: %s", posts[0].Title)
	}
}

func TestPostListKeywordMatchesTitleDescriptionContent(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewPostRepository(db)
	now := time.Now()

	first := seedPost(t, db, "Morning Coffee", 1, constants.PostStatusPublishedID, now)
	first.Description = "a quiet ritual"
	if err := db.Save(first).Error; err != nil {
		t.Fatalf("update post failed: %v", err)
	}
	seedPost(t, db, "Evening Tea", 1, constants.PostStatusPublishedID, now)

	posts, _, err := repo.List(PostListFilter{Search: "RITUAL"})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Morning Coffee" {
		t.Fatalf("expected keyword match on description, got %d posts", len(posts))
	}
}

func TestPostListExcludesDraftsWhenOnlyPublished(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewPostRepository(db)
	now := time.Now()

	seedPost(t, db, "published", 1, constants.PostStatusPublishedID, now)
	seedPost(t, db, "draft", 1, constants.PostStatusDraftID, now)

	posts, total, err := repo.List(PostListFilter{OnlyPublished: true})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Title != "published" {
		t.Fatalf("drafts leaked into published list: total=%d", total)
	}
}

func TestPostListOrdersByDateDesc(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewPostRepository(db)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	seedPost(t, db, "older", 1, constants.PostStatusPublishedID, base)
	seedPost(t, db, "newer", 1, constants.PostStatusPublishedID, base.Add(48*time.Hour))

	posts, _, err := repo.List(PostListFilter{})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "newer" {
		t.Fatalf("expected newest first, got %+v", posts)
	}
}

func TestLikeCountByPostsGroupsInOneQuery(t *testing.T) {
	db := setupRepositoryTest(t)
	likes := NewLikeRepository(db)

	for user := uint(1); user <= 3; user++ {
		if err := likes.Create(&models.PostLike{PostID: 10, UserID: user}); err != nil {
			t.Fatalf("create like failed: %v", err)
		}
	}
	if err := likes.Create(&models.PostLike{PostID: 11, UserID: 1}); err != nil {
		t.Fatalf("create like failed: %v", err)
	}

	counts, err := likes.CountByPosts([]uint{10, 11, 12})
	if err != nil {
		t.Fatalf("count by posts failed: %v", err)
	}
	if counts[10] != 3 || counts[11] != 1 || counts[12] != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestCommentListByPostOrdersByCreatedAt(t *testing.T) {
	db := setupRepositoryTest(t)
	comments := NewCommentRepository(db)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	second := &models.Comment{PostID: 7, UserID: 1, Content: "second", CreatedAt: base.Add(time.Hour)}
	first := &models.Comment{PostID: 7, UserID: 2, Content: "first", CreatedAt: base}
	if err := db.Create(second).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}

	list, err := comments.ListByPost(7)
	if err != nil {
		t.Fatalf("list comments failed: %v", err)
	}
	if len(list) != 2 || list[0].Content != "first" {
		t.Fatalf("expected chronological order, got %+v", list)
	}
}
