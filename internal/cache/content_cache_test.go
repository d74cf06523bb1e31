package cache

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/wpc41205/my-personal-blog-project/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func setupCacheTest(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	parts := strings.Split(mr.Addr(), ":")
	port, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := InitRedis(&config.RedisConfig{Enabled: true, Host: parts[0], Port: port, Prefix: "blogtest"}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() {
		redisEnabled = false
		redisClient = nil
	})
}

func TestCategoryCacheRoundTrip(t *testing.T) {
	setupCacheTest(t)
	ctx := context.Background()

	want := []CachedCategory{{Value: "highlight", Label: "Highlight"}, {Value: "cat", Label: "Cat"}}
	if err := SetCategories(ctx, want); err != nil {
		t.Fatalf("set categories failed: %v", err)
	}

	got, hit, err := GetCategories(ctx)
	if err != nil || !hit {
		t.Fatalf("get categories hit=%v err=%v", hit, err)
	}
	if len(got) != 2 || got[0].Value != "highlight" {
		t.Fatalf("unexpected categories: %+v", got)
	}

	if err := DelCategories(ctx); err != nil {
		t.Fatalf("del categories failed: %v", err)
	}
	if _, hit, _ := GetCategories(ctx); hit {
		t.Fatal("expected miss after delete")
	}
}

func TestInvalidateFeedsClearsAllPages(t *testing.T) {
	setupCacheTest(t)
	ctx := context.Background()

	type page struct {
		Total int `json:"total"`
	}
	for i := 1; i <= 3; i++ {
		if err := SetFeed(ctx, FeedKey(i, 6, "", ""), page{Total: i}); err != nil {
			t.Fatalf("set feed failed: %v", err)
		}
	}

	if err := InvalidateFeeds(ctx); err != nil {
		t.Fatalf("invalidate feeds failed: %v", err)
	}

	var got page
	if hit, _ := GetFeed(ctx, FeedKey(1, 6, "", ""), &got); hit {
		t.Fatal("expected feed cache cleared")
	}
}

func TestCacheDisabledIsNoop(t *testing.T) {
	redisEnabled = false
	redisClient = nil
	ctx := context.Background()

	if err := SetCategories(ctx, []CachedCategory{{Value: "cat"}}); err != nil {
		t.Fatalf("set on disabled cache failed: %v", err)
	}
	if _, hit, err := GetCategories(ctx); hit || err != nil {
		t.Fatalf("disabled cache should miss silently: hit=%v err=%v", hit, err)
	}
}
