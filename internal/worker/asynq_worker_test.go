package worker

import (
	"testing"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"
	"github.com/wpc41205/my-personal-blog-project/internal/queue"
)

func TestBuildEngagementMessageLike(t *testing.T) {
	payload := queue.EngagementNotifyPayload{
		Kind:      constants.EngagementKindLike,
		PostID:    3,
		PostTitle: "The Science of Sleep",
		UserName:  "moodeng",
	}
	want := `moodeng liked "The Science of Sleep"`
	if got := buildEngagementMessage(payload); got != want {
		t.Fatalf("unexpected message, want %q, got %q", want, got)
	}
}

func TestBuildEngagementMessageComment(t *testing.T) {
	payload := queue.EngagementNotifyPayload{
		Kind:      constants.EngagementKindComment,
		PostID:    3,
		PostTitle: "The Science of Sleep",
		UserName:  "moodeng",
	}
	want := `moodeng commented on "The Science of Sleep"`
	if got := buildEngagementMessage(payload); got != want {
		t.Fatalf("unexpected message, want %q, got %q", want, got)
	}
}

func TestBuildEngagementMessageFallbacks(t *testing.T) {
	payload := queue.EngagementNotifyPayload{
		Kind:   constants.EngagementKindLike,
		PostID: 9,
	}
	want := `Someone liked "post #9"`
	if got := buildEngagementMessage(payload); got != want {
		t.Fatalf("unexpected message, want %q, got %q", want, got)
	}
}
