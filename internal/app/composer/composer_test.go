package composer

import (
	"testing"

	"sangini/internal/pkg/errs"
)

func TestAdvanceRequiresImage(t *testing.T) {
	s := NewStore()

	if _, cErr := s.Advance("u1"); cErr == nil || cErr.Code != errs.ErrDraftNeedsImage {
		t.Fatalf("expected draft needs image error, got %v", cErr)
	}

	if _, cErr := s.AttachImage("u1", "drafts/u1/a.jpg"); cErr != nil {
		t.Fatalf("AttachImage: %v", cErr)
	}

	d, cErr := s.Advance("u1")
	if cErr != nil {
		t.Fatalf("Advance: %v", cErr)
	}
	if d.Step != StepDetails {
		t.Fatalf("step = %q, want details", d.Step)
	}
}

func TestBackAlwaysAllowed(t *testing.T) {
	s := NewStore()
	s.AttachImage("u1", "drafts/u1/a.jpg")
	s.Advance("u1")

	d, cErr := s.Back("u1")
	if cErr != nil {
		t.Fatalf("Back: %v", cErr)
	}
	if d.Step != StepImages {
		t.Fatalf("step = %q, want images", d.Step)
	}
	if len(d.Images) != 1 {
		t.Fatalf("images lost on back: %d", len(d.Images))
	}
}

func TestRemoveImage(t *testing.T) {
	s := NewStore()
	s.AttachImage("u1", "drafts/u1/a.jpg")
	s.AttachImage("u1", "drafts/u1/b.jpg")

	d, removed, cErr := s.RemoveImage("u1", 0)
	if cErr != nil {
		t.Fatalf("RemoveImage: %v", cErr)
	}
	if removed != "drafts/u1/a.jpg" {
		t.Fatalf("removed key = %q, want drafts/u1/a.jpg", removed)
	}
	if len(d.Images) != 1 || d.Images[0] != "drafts/u1/b.jpg" {
		t.Fatalf("unexpected images after remove: %v", d.Images)
	}

	if _, _, cErr := s.RemoveImage("u1", 5); cErr == nil || cErr.Code != errs.ErrImageIndexInvalid {
		t.Fatalf("expected image index error, got %v", cErr)
	}
}

func TestHashtags(t *testing.T) {
	s := NewStore()

	d, cErr := s.AddHashtag("u1", "  #HeartHealth  ")
	if cErr != nil {
		t.Fatalf("AddHashtag: %v", cErr)
	}
	if len(d.Hashtags) != 1 || d.Hashtags[0] != "HeartHealth" {
		t.Fatalf("unexpected hashtags: %v", d.Hashtags)
	}

	// Case-insensitive duplicate is ignored.
	d, _ = s.AddHashtag("u1", "hearthealth")
	if len(d.Hashtags) != 1 {
		t.Fatalf("duplicate not ignored: %v", d.Hashtags)
	}

	if _, cErr := s.AddHashtag("u1", "#"); cErr == nil {
		t.Fatal("expected error for empty tag")
	}

	d = s.RemoveHashtag("u1", "#HEARTHEALTH")
	if len(d.Hashtags) != 0 {
		t.Fatalf("tag not removed: %v", d.Hashtags)
	}
}

func TestPublishResets(t *testing.T) {
	s := NewStore()

	if _, cErr := s.Publish("u1"); cErr == nil || cErr.Code != errs.ErrDraftNeedsImage {
		t.Fatalf("expected draft needs image error, got %v", cErr)
	}

	s.AttachImage("u1", "drafts/u1/a.jpg")
	s.Advance("u1")
	s.SetDetails("u1", "Morning walk", "Riverside Park")
	s.AddHashtag("u1", "wellness")

	d, cErr := s.Publish("u1")
	if cErr != nil {
		t.Fatalf("Publish: %v", cErr)
	}
	if d.Step != StepImages || len(d.Images) != 0 || len(d.Hashtags) != 0 || d.Caption != "" {
		t.Fatalf("composer not reset: %+v", d)
	}
}

func TestDraftsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()

	s.AttachImage("u1", "drafts/u1/a.jpg")
	if d := s.Draft("u2"); len(d.Images) != 0 {
		t.Fatalf("u2 sees u1's images: %v", d.Images)
	}
}

func TestValidateImageType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		mime     string
		ok       bool
	}{
		{"jpeg", "photo.jpg", "image/jpeg", true},
		{"png uppercase mime", "chart.png", "IMAGE/PNG", true},
		{"extension mismatch", "photo.png", "image/jpeg", false},
		{"disallowed mime", "doc.pdf", "application/pdf", false},
		{"no extension", "photo", "image/jpeg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cErr := ValidateImageType(tt.fileName, tt.mime)
			if tt.ok && cErr != nil {
				t.Fatalf("unexpected error: %v", cErr)
			}
			if !tt.ok && cErr == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateImageSize(t *testing.T) {
	if cErr := ValidateImageSize(0); cErr == nil {
		t.Fatal("expected error for zero size")
	}
	if cErr := ValidateImageSize(MaxImageSize + 1); cErr == nil || cErr.Code != errs.ErrFileSizeTooLarge {
		t.Fatalf("expected size error, got %v", cErr)
	}
	if cErr := ValidateImageSize(1024); cErr != nil {
		t.Fatalf("unexpected error: %v", cErr)
	}
}
