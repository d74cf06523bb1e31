package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/blogapi"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
	"github.com/wpc41205/my-personal-blog-project/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeExternalClient struct {
	posts []blogapi.Post
	err   error
}

func (f *fakeExternalClient) FetchAllPosts(_ context.Context) ([]blogapi.Post, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	return f.posts, false, nil
}

func (f *fakeExternalClient) FetchPost(_ context.Context, id int64) (*blogapi.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, post := range f.posts {
		if post.ID == id {
			copied := post
			return &copied, nil
		}
	}
	return nil, blogapi.ErrPostNotFound
}

// failingPostRepo 模拟本地源完全不可用
type failingPostRepo struct{}

func (failingPostRepo) List(repository.PostListFilter) ([]models.Post, int64, error) {
	return nil, 0, errors.New("db down")
}
func (failingPostRepo) ListAll(bool) ([]models.Post, error)       { return nil, errors.New("db down") }
func (failingPostRepo) GetByID(uint) (*models.Post, error)        { return nil, errors.New("db down") }
func (failingPostRepo) Create(*models.Post) error                 { return errors.New("db down") }
func (failingPostRepo) Update(*models.Post) error                 { return errors.New("db down") }
func (failingPostRepo) Delete(uint) error                         { return errors.New("db down") }
func (failingPostRepo) CountByCategory(uint) (int64, error)       { return 0, errors.New("db down") }
func (failingPostRepo) UpdateLikesCount(uint, int64) error        { return errors.New("db down") }

var testDBSeq atomic.Int64

func setupContentServiceTest(t *testing.T, external ExternalClient) (*ContentService, *gorm.DB) {
	t.Helper()
	// A sequence number keeps each call on its own in-memory database; the
	// test name alone collides when a test sets up more than one service.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(&models.Post{}, &models.Category{}, &models.Comment{}, &models.PostLike{}, &models.User{})
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Content = testContentConfig()
	cfg.External.FetchLimit = 100

	svc := NewContentService(
		cfg,
		repository.NewPostRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLikeRepository(db),
		repository.NewCommentRepository(db),
		external,
	)
	return svc, db
}

func seedStorePost(t *testing.T, db *gorm.DB, title string, categoryID uint, statusID int, date time.Time) models.Post {
	t.Helper()
	post := models.Post{
		Title:      title,
		Content:    title + " body",
		Author:     "Pataveekorn C.",
		CategoryID: categoryID,
		StatusID:   statusID,
		Date:       date,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	return post
}

func TestListPostsMergesBothSourcesSortedByDate(t *testing.T) {
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	external := &fakeExternalClient{posts: []blogapi.Post{
		{ID: 5, Title: "Remote Newest", Category: "General", Date: base.Add(72 * time.Hour).Format(time.RFC3339)},
		{ID: 6, Title: "Remote Oldest", Category: "General", Date: base.Add(-72 * time.Hour).Format(time.RFC3339)},
	}}
	svc, db := setupContentServiceTest(t, external)

	category := models.Category{Name: "General"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	local := seedStorePost(t, db, "Local Middle", category.ID, constants.PostStatusPublishedID, base)

	feed, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if feed.TotalPosts != 3 {
		t.Fatalf("expected 3 merged posts, got %d", feed.TotalPosts)
	}

	gotIDs := []string{feed.Posts[0].ID, feed.Posts[1].ID, feed.Posts[2].ID}
	wantIDs := []string{"external_5", FormatStoreID(local.ID), "external_6"}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("order mismatch at %d: want %s got %s (all: %v)", i, wantIDs[i], gotIDs[i], gotIDs)
		}
	}
	if feed.Posts[1].Category != "General" {
		t.Fatalf("store category name not resolved: %+v", feed.Posts[1])
	}
}

// failingCategoryRepo 模拟分类表不可用
type failingCategoryRepo struct{}

func (failingCategoryRepo) List() ([]models.Category, error)          { return nil, errors.New("db down") }
func (failingCategoryRepo) GetByID(uint) (*models.Category, error)    { return nil, errors.New("db down") }
func (failingCategoryRepo) GetByName(string) (*models.Category, error) {
	return nil, errors.New("db down")
}
func (failingCategoryRepo) Create(*models.Category) error { return errors.New("db down") }
func (failingCategoryRepo) Update(*models.Category) error { return errors.New("db down") }
func (failingCategoryRepo) Delete(uint) error             { return errors.New("db down") }
func (failingCategoryRepo) CountByName(string, *uint) (int64, error) {
	return 0, errors.New("db down")
}

func TestListPostsDegradesWhenCategoryTableUnavailable(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	svc.categoryRepo = failingCategoryRepo{}
	seedStorePost(t, db, "Still Listed", 7, constants.PostStatusPublishedID, time.Now())

	feed, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if feed.TotalPosts != 1 || feed.Posts[0].Title != "Still Listed" {
		t.Fatalf("store posts should survive a category lookup failure: %+v", feed)
	}
	if feed.Posts[0].Category != "" {
		t.Fatalf("category label should degrade to empty, got %q", feed.Posts[0].Category)
	}
}

func TestListPostsPaginationSplitsAcrossSources(t *testing.T) {
	base := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	external := &fakeExternalClient{posts: []blogapi.Post{
		{ID: 9, Title: "Remote Newer", Category: "General", Date: base.Add(24 * time.Hour).Format(time.RFC3339)},
	}}
	svc, db := setupContentServiceTest(t, external)
	seedStorePost(t, db, "Local Older", 0, constants.PostStatusPublishedID, base)

	page1, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 1})
	if err != nil {
		t.Fatalf("list page 1 failed: %v", err)
	}
	if page1.TotalPosts != 2 || page1.TotalPages != 2 {
		t.Fatalf("totals want 2/2 got %d/%d", page1.TotalPosts, page1.TotalPages)
	}
	if len(page1.Posts) != 1 || page1.Posts[0].ID != "external_9" {
		t.Fatalf("page 1 should hold the newer external post, got %+v", page1.Posts)
	}

	page2, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(page2.Posts) != 1 || page2.Posts[0].Title != "Local Older" {
		t.Fatalf("page 2 should hold the older store post, got %+v", page2.Posts)
	}
}

func TestListPostsExternalFailureDegradesSilently(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{err: errors.New("gateway timeout")})
	seedStorePost(t, db, "Local Only", 0, constants.PostStatusPublishedID, time.Now())

	feed, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6})
	if err != nil {
		t.Fatalf("single source failure must not error: %v", err)
	}
	if feed.TotalPosts != 1 || feed.Posts[0].Source != constants.SourceStore {
		t.Fatalf("expected store-only feed, got %+v", feed)
	}
}

func TestListPostsBothSourcesFailing(t *testing.T) {
	cfg := &config.Config{}
	cfg.Content = testContentConfig()
	svc := NewContentService(cfg, failingPostRepo{}, nil, nil, nil, &fakeExternalClient{err: errors.New("gateway down")})

	if _, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6}); !errors.Is(err, ErrSourcesUnavailable) {
		t.Fatalf("expected ErrSourcesUnavailable, got %v", err)
	}
}

func TestListPostsFiltersCategoryAndKeyword(t *testing.T) {
	external := &fakeExternalClient{posts: []blogapi.Post{
		{ID: 1, Title: "Cats at Dawn", Category: "Cat", Date: "2024-12-01T00:00:00Z"},
		{ID: 2, Title: "Gardening", Category: "General", Date: "2024-12-02T00:00:00Z"},
	}}
	svc, db := setupContentServiceTest(t, external)
	category := models.Category{Name: "Cat"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	seedStorePost(t, db, "Kitten Diary", category.ID, constants.PostStatusPublishedID, time.Now())

	feed, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6, Category: "CAT"})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if feed.TotalPosts != 2 {
		t.Fatalf("expected 2 cat posts, got %d", feed.TotalPosts)
	}

	feed, err = svc.SearchPosts(context.Background(), "dawn", 1, 6)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if feed.TotalPosts != 1 || feed.Posts[0].ID != "external_1" {
		t.Fatalf("keyword search mismatch: %+v", feed)
	}
}

func TestListPostsExcludesDrafts(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	seedStorePost(t, db, "Visible", 0, constants.PostStatusPublishedID, time.Now())
	seedStorePost(t, db, "Hidden Draft", 0, constants.PostStatusDraftID, time.Now())

	feed, err := svc.ListPosts(context.Background(), ListPostsOptions{Page: 1, PageSize: 6})
	if err != nil {
		t.Fatalf("list posts failed: %v", err)
	}
	if feed.TotalPosts != 1 || feed.Posts[0].Title != "Visible" {
		t.Fatalf("draft leaked into feed: %+v", feed)
	}
}

func TestGetPostDispatchesBySource(t *testing.T) {
	external := &fakeExternalClient{posts: []blogapi.Post{
		{ID: 11, Title: "Remote", Author: "Thompson P.", Category: "General", Date: "2024-11-01T00:00:00Z"},
	}}
	svc, db := setupContentServiceTest(t, external)
	local := seedStorePost(t, db, "Local", 0, constants.PostStatusPublishedID, time.Now())

	got, err := svc.GetPost(context.Background(), FormatStoreID(local.ID), true)
	if err != nil {
		t.Fatalf("get store post failed: %v", err)
	}
	if got.Source != constants.SourceStore || got.Title != "Local" {
		t.Fatalf("unexpected store post: %+v", got)
	}

	got, err = svc.GetPost(context.Background(), "external_11", true)
	if err != nil {
		t.Fatalf("get external post failed: %v", err)
	}
	if got.Author != "Pataveekorn C." {
		t.Fatalf("external author not normalized: %+v", got)
	}

	if _, err := svc.GetPost(context.Background(), "external_999", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetPost(context.Background(), "store_999", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPostHidesDraftFromPublic(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	draft := seedStorePost(t, db, "WIP", 0, constants.PostStatusDraftID, time.Now())

	if _, err := svc.GetPost(context.Background(), FormatStoreID(draft.ID), true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("public draft access should 404, got %v", err)
	}
	got, err := svc.GetPost(context.Background(), FormatStoreID(draft.ID), false)
	if err != nil {
		t.Fatalf("admin draft access failed: %v", err)
	}
	if got.Status != constants.PostStatusDraft {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestMutationsRejectExternalBeforeAnyIO(t *testing.T) {
	// failingPostRepo 保证任何仓库调用都会报错，返回 ErrExternalReadOnly 证明未触达存储
	cfg := &config.Config{}
	cfg.Content = testContentConfig()
	svc := NewContentService(cfg, failingPostRepo{}, nil, nil, nil, nil)

	input := CreatePostInput{Title: "t", Content: "c", Category: "General"}
	if _, err := svc.UpdatePost(context.Background(), "external_3", input); !errors.Is(err, ErrExternalReadOnly) {
		t.Fatalf("update: expected ErrExternalReadOnly, got %v", err)
	}
	if err := svc.DeletePost(context.Background(), "external_3"); !errors.Is(err, ErrExternalReadOnly) {
		t.Fatalf("delete: expected ErrExternalReadOnly, got %v", err)
	}
}

func TestCreatePostValidatesRequiredFields(t *testing.T) {
	svc, _ := setupContentServiceTest(t, &fakeExternalClient{})

	for _, input := range []CreatePostInput{
		{Content: "c", Category: "General"},
		{Title: "t", Category: "General"},
		{Title: "t", Content: "c"},
	} {
		if _, err := svc.CreatePost(context.Background(), input); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
}

func TestCreatePostResolvesCategoryByName(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	existing := models.Category{Name: "Inspiration"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	created, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title: "New", Content: "body", Category: "inspiration",
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if created.Category != "Inspiration" {
		t.Fatalf("category not matched case-insensitively: %+v", created)
	}
	if created.Author != "Pataveekorn C." {
		t.Fatalf("default author missing: %+v", created)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 1 {
		t.Fatalf("duplicate category created, count=%d", count)
	}
}

func TestCreatePostUnknownCategoryFallsBackToFirst(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	first := models.Category{Name: "General"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&models.Category{Name: "Cat"}).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	created, err := svc.CreatePost(context.Background(), CreatePostInput{
		Title: "Typo", Content: "body", Category: "Generall",
	})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if created.Category != "General" {
		t.Fatalf("unknown label should fall back to the first category, got %+v", created)
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count != 2 {
		t.Fatalf("unknown label must not create a category, count=%d", count)
	}
}

func TestListCategoriesThreeTierFallback(t *testing.T) {
	// 第一层：分类表
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	if err := db.Create(&models.Category{Name: "Cooking"}).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	options, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if options[0].Value != "highlight" || len(options) != 2 || options[1].Label != "Cooking" {
		t.Fatalf("table tier mismatch: %+v", options)
	}

	// 第二层：从聚合文章去重派生
	external := &fakeExternalClient{posts: []blogapi.Post{
		{ID: 1, Category: "Inspiration", Date: "2024-12-01T00:00:00Z"},
		{ID: 2, Category: "General", Date: "2024-11-01T00:00:00Z"},
		{ID: 3, Category: "inspiration", Date: "2024-10-01T00:00:00Z"},
	}}
	svc2, _ := setupContentServiceTest(t, external)
	options, err = svc2.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("derived tier failed: %v", err)
	}
	if len(options) != 3 || options[1].Label != "Inspiration" || options[2].Label != "General" {
		t.Fatalf("derived tier mismatch: %+v", options)
	}

	// 第三层：配置兜底
	svc3, _ := setupContentServiceTest(t, &fakeExternalClient{})
	options, err = svc3.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("fallback tier failed: %v", err)
	}
	if len(options) != 4 || options[1].Label != "Cat" || options[3].Label != "Inspiration" {
		t.Fatalf("fallback tier mismatch: %+v", options)
	}
}

func TestDeletePostRemovesEngagementRows(t *testing.T) {
	svc, db := setupContentServiceTest(t, &fakeExternalClient{})
	post := seedStorePost(t, db, "Doomed", 0, constants.PostStatusPublishedID, time.Now())
	if err := db.Create(&models.Comment{PostID: post.ID, UserID: 1, Content: "hi"}).Error; err != nil {
		t.Fatalf("create comment failed: %v", err)
	}
	if err := db.Create(&models.PostLike{PostID: post.ID, UserID: 1}).Error; err != nil {
		t.Fatalf("create like failed: %v", err)
	}

	if err := svc.DeletePost(context.Background(), FormatStoreID(post.ID)); err != nil {
		t.Fatalf("delete post failed: %v", err)
	}

	var comments, likes int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&likes)
	if comments != 0 || likes != 0 {
		t.Fatalf("engagement rows left behind: comments=%d likes=%d", comments, likes)
	}
}
