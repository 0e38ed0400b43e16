package feed

import (
	"testing"

	"sangini/internal/pkg/errs"
)

func find(t *testing.T, s *Store, id string) Post {
	t.Helper()
	for _, p := range s.Posts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("post %q not found", id)
	return Post{}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	s := NewStore()

	before := find(t, s, "2")
	if !before.IsLiked || before.Likes != 89 {
		t.Fatalf("unexpected seed state: liked=%v likes=%d", before.IsLiked, before.Likes)
	}

	first, cErr := s.ToggleLike("2")
	if cErr != nil {
		t.Fatalf("ToggleLike: %v", cErr)
	}
	if first.IsLiked || first.Likes != 88 {
		t.Fatalf("after first toggle: liked=%v likes=%d, want false/88", first.IsLiked, first.Likes)
	}

	second, cErr := s.ToggleLike("2")
	if cErr != nil {
		t.Fatalf("ToggleLike: %v", cErr)
	}
	if !second.IsLiked || second.Likes != 89 {
		t.Fatalf("after second toggle: liked=%v likes=%d, want true/89", second.IsLiked, second.Likes)
	}
}

func TestToggleRepostMovesOnlyRepostCounter(t *testing.T) {
	s := NewStore()

	updated, cErr := s.ToggleRepost("1")
	if cErr != nil {
		t.Fatalf("ToggleRepost: %v", cErr)
	}
	if !updated.IsReposted || updated.Reposts != 16 {
		t.Fatalf("reposted=%v reposts=%d, want true/16", updated.IsReposted, updated.Reposts)
	}
	if updated.Likes != 127 || updated.IsLiked {
		t.Fatalf("like state changed: liked=%v likes=%d", updated.IsLiked, updated.Likes)
	}
}

func TestToggleUnknownPost(t *testing.T) {
	s := NewStore()

	if _, cErr := s.ToggleLike("999"); cErr == nil {
		t.Fatal("expected error for unknown post")
	}
}

func TestPostLookup(t *testing.T) {
	s := NewStore()

	p, cErr := s.Post("3")
	if cErr != nil {
		t.Fatalf("Post: %v", cErr)
	}
	if p.Author.Name != "Dr. Priya Patel" {
		t.Fatalf("unexpected post: %+v", p)
	}

	if _, cErr := s.Post("999"); cErr == nil || cErr.Code != errs.ErrPostNotFound {
		t.Fatalf("expected post not found, got %v", cErr)
	}
}

func TestPostsReturnsSnapshot(t *testing.T) {
	s := NewStore()

	snap := s.Posts()
	snap[0].Likes = 0

	if p := find(t, s, "1"); p.Likes != 127 {
		t.Fatalf("store mutated through snapshot: likes=%d", p.Likes)
	}
}
