package service

import (
	"errors"
	"testing"
	"time"

	"github.com/wpc41205/my-personal-blog-project/internal/blogapi"
	"github.com/wpc41205/my-personal-blog-project/internal/config"
	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/models"
)

func testContentConfig() config.ContentConfig {
	return config.ContentConfig{
		CanonicalAuthor:    "Pataveekorn C.",
		LegacyAuthor:       "Thompson P.",
		FallbackCategories: []string{"Cat", "General", "Inspiration"},
		DefaultPageSize:    6,
	}
}

func TestParseFeedID(t *testing.T) {
	source, id, err := ParseFeedID("store_12")
	if err != nil || source != constants.SourceStore || id != 12 {
		t.Fatalf("store id parse: source=%s id=%d err=%v", source, id, err)
	}

	source, id, err = ParseFeedID("external_7")
	if err != nil || source != constants.SourceExternal || id != 7 {
		t.Fatalf("external id parse: source=%s id=%d err=%v", source, id, err)
	}

	for _, bad := range []string{"", "12", "store_", "_12", "cloud_3", "store_abc", "store_-1"} {
		if _, _, err := ParseFeedID(bad); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", bad, err)
		}
	}
}

func TestFormatFeedIDsRoundTrip(t *testing.T) {
	if got := FormatStoreID(3); got != "store_3" {
		t.Fatalf("unexpected store id: %s", got)
	}
	if got := FormatExternalID(9); got != "external_9" {
		t.Fatalf("unexpected external id: %s", got)
	}
}

func TestNormalizeRewritesLegacyAuthor(t *testing.T) {
	n := newNormalizer(testContentConfig())

	external := n.fromExternal(blogapi.Post{ID: 1, Author: "Thompson P."})
	if external.Author != "Pataveekorn C." {
		t.Fatalf("legacy author not rewritten: %s", external.Author)
	}

	other := n.fromExternal(blogapi.Post{ID: 2, Author: "Jorakay S."})
	if other.Author != "Jorakay S." {
		t.Fatalf("unrelated author changed: %s", other.Author)
	}
}

func TestNormalizeUnescapesLiteralNewlines(t *testing.T) {
	n := newNormalizer(testContentConfig())
	post := n.fromStore(models.Post{ID: 1, Content: `line one\nline two`}, "General", 0)
	if post.Content != "line one\nline two" {
		t.Fatalf("literal newline not unescaped: %q", post.Content)
	}
}

func TestNormalizeStatusLabels(t *testing.T) {
	n := newNormalizer(testContentConfig())
	published := n.fromStore(models.Post{ID: 1, StatusID: constants.PostStatusPublishedID}, "", 0)
	if published.Status != constants.PostStatusPublished {
		t.Fatalf("unexpected status: %s", published.Status)
	}
	draft := n.fromStore(models.Post{ID: 2, StatusID: constants.PostStatusDraftID}, "", 0)
	if draft.Status != constants.PostStatusDraft {
		t.Fatalf("unexpected status: %s", draft.Status)
	}
}

func TestMatchFeedPostCaseInsensitive(t *testing.T) {
	post := FeedPost{Title: "Morning Coffee", Description: "a quiet RITUAL", Content: "brew notes", Category: "Inspiration"}

	if !matchFeedPost(post, "inspiration", "") {
		t.Fatal("category equality should ignore case")
	}
	if matchFeedPost(post, "general", "") {
		t.Fatal("category mismatch should fail")
	}
	if !matchFeedPost(post, "highlight", "") {
		t.Fatal("highlight pseudo category must match everything")
	}
	if !matchFeedPost(post, "", "ritual") {
		t.Fatal("keyword should match description ignoring case")
	}
	if !matchFeedPost(post, "", "BREW") {
		t.Fatal("keyword should match content ignoring case")
	}
	if matchFeedPost(post, "", "tea") {
		t.Fatal("keyword miss should fail")
	}
}

func TestSortFeedPostsStableDateDesc(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	posts := []FeedPost{
		{ID: "store_1", Date: base},
		{ID: "external_1", Date: base.Add(24 * time.Hour)},
		{ID: "store_2", Date: base},
	}
	sortFeedPosts(posts)

	if posts[0].ID != "external_1" {
		t.Fatalf("newest first, got %s", posts[0].ID)
	}
	// 同日保持原始相对顺序
	if posts[1].ID != "store_1" || posts[2].ID != "store_2" {
		t.Fatalf("stable order violated: %s, %s", posts[1].ID, posts[2].ID)
	}
}

func TestPaginateFeedCeilAndBounds(t *testing.T) {
	posts := make([]FeedPost, 7)
	feed := paginateFeed(posts, 1, 6)
	if feed.TotalPages != 2 || feed.TotalPosts != 7 || len(feed.Posts) != 6 {
		t.Fatalf("unexpected first page: %+v", feed)
	}

	feed = paginateFeed(posts, 2, 6)
	if len(feed.Posts) != 1 || feed.CurrentPage != 2 {
		t.Fatalf("unexpected last page: %+v", feed)
	}

	feed = paginateFeed(posts, 9, 6)
	if len(feed.Posts) != 0 || feed.TotalPages != 2 || feed.TotalPosts != 7 {
		t.Fatalf("out of range page should be empty with totals intact: %+v", feed)
	}

	feed = paginateFeed(nil, 1, 6)
	if feed.TotalPages != 0 || feed.TotalPosts != 0 || len(feed.Posts) != 0 {
		t.Fatalf("empty input should yield empty page: %+v", feed)
	}
}
