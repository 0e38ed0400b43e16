/*
Package composer implements the per-user post draft: image attachments go in
first, then caption, location, and hashtags, then save or publish.

Drafts live in memory only. Publish writes the finished draft to the log and
resets the composer; nothing is persisted.
*/
package composer

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/viewstate"
)

// Composer steps.
const (
	StepImages  viewstate.View = "images"
	StepDetails viewstate.View = "details"
)

var stepTransitions = map[viewstate.View][]viewstate.View{
	StepImages:  {StepDetails},
	StepDetails: {StepImages},
}

const (
	// MaxImageSizeMB is the maximum allowed upload size in megabytes.
	MaxImageSizeMB = 5

	// MaxImageSize is the maximum allowed upload size in bytes.
	MaxImageSize = MaxImageSizeMB * 1024 * 1024

	// MaxImages caps how many images a single draft may carry.
	MaxImages = 10

	// PresignedURLDuration is how long an issued upload URL stays valid.
	PresignedURLDuration = 5 * time.Minute
)

// AllowedMIMETypes defines the set of permitted image MIME types.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

// ExtToMIME maps file extensions to their corresponding MIME types.
var ExtToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ValidateImageSize checks that an upload size is positive and within limits.
func ValidateImageSize(fileSize int64) *errs.CustomError {
	if fileSize <= 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}
	if fileSize > MaxImageSize {
		return errs.NewError(errs.ErrFileSizeTooLarge)
	}
	return nil
}

// ValidateImageType checks that the file name's extension and the declared
// MIME type agree and are both allowed.
func ValidateImageType(fileName string, mimeType string) *errs.CustomError {
	lowerMimeType := strings.ToLower(mimeType)

	if _, ok := AllowedMIMETypes[lowerMimeType]; !ok {
		return errs.NewError(errs.ErrFileTypeInvalid)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if len(ext) < 2 {
		return errs.NewError(errs.ErrFileTypeInvalid)
	}

	expectedMIME, ok := ExtToMIME[ext]
	if !ok || expectedMIME != lowerMimeType {
		return errs.NewError(errs.ErrFileTypeInvalid)
	}

	return nil
}

// Draft is one user's in-progress post.
type Draft struct {
	Step      viewstate.View `json:"step"`
	Images    []string       `json:"images"`
	Caption   string         `json:"caption"`
	Location  string         `json:"location"`
	Hashtags  []string       `json:"hashtags"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// draftState pairs the serialized draft with its step machine.
type draftState struct {
	machine  *viewstate.Machine
	images   []string
	caption  string
	location string
	hashtags []string
	updated  time.Time
}

func newDraftState() *draftState {
	return &draftState{
		machine: viewstate.New(StepImages, stepTransitions),
		updated: time.Now(),
	}
}

func (d *draftState) snapshot() Draft {
	images := make([]string, len(d.images))
	copy(images, d.images)
	hashtags := make([]string, len(d.hashtags))
	copy(hashtags, d.hashtags)

	return Draft{
		Step:      d.machine.Current(),
		Images:    images,
		Caption:   d.caption,
		Location:  d.location,
		Hashtags:  hashtags,
		UpdatedAt: d.updated,
	}
}

// Store holds one draft per user.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*draftState
	logger zerolog.Logger
}

func NewStore() *Store {
	return &Store{
		drafts: make(map[string]*draftState),
		logger: logx.Logger().With().Str("component", "Composer").Logger(),
	}
}

// draft returns the caller's draft, creating an empty one on first touch.
// Callers must hold s.mu.
func (s *Store) draft(userID string) *draftState {
	d, ok := s.drafts[userID]
	if !ok {
		d = newDraftState()
		s.drafts[userID] = d
	}
	return d
}

// Draft returns the caller's current draft state.
func (s *Store) Draft(userID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft(userID).snapshot()
}

// AttachImage records an uploaded image key on the draft.
func (s *Store) AttachImage(userID, key string) (Draft, *errs.CustomError) {
	if strings.TrimSpace(key) == "" {
		return Draft{}, errs.NewError(errs.ErrInvalidParams)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	if len(d.images) >= MaxImages {
		return Draft{}, errs.NewError(errs.ErrInvalidParams)
	}

	d.images = append(d.images, key)
	d.updated = time.Now()
	return d.snapshot(), nil
}

// RemoveImage drops the image at the given index and returns the removed key
// so callers can release the stored object.
func (s *Store) RemoveImage(userID string, index int) (Draft, string, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	if index < 0 || index >= len(d.images) {
		return Draft{}, "", errs.NewError(errs.ErrImageIndexInvalid)
	}

	removed := d.images[index]
	d.images = append(d.images[:index], d.images[index+1:]...)
	d.updated = time.Now()
	return d.snapshot(), removed, nil
}

// Advance moves the draft from the image step to the details step. It
// requires at least one attached image.
func (s *Store) Advance(userID string) (Draft, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	if d.machine.Current() == StepImages && len(d.images) == 0 {
		return Draft{}, errs.NewError(errs.ErrDraftNeedsImage)
	}

	if err := d.machine.To(StepDetails); err != nil {
		return Draft{}, errs.NewError(errs.ErrInvalidViewTransition)
	}

	d.updated = time.Now()
	return d.snapshot(), nil
}

// Back returns the draft to the image step. Going back is always allowed.
func (s *Store) Back(userID string) (Draft, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	if err := d.machine.To(StepImages); err != nil {
		return Draft{}, errs.NewError(errs.ErrInvalidViewTransition)
	}

	d.updated = time.Now()
	return d.snapshot(), nil
}

// SetDetails updates the caption and location of the draft.
func (s *Store) SetDetails(userID, caption, location string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	d.caption = strings.TrimSpace(caption)
	d.location = strings.TrimSpace(location)
	d.updated = time.Now()
	return d.snapshot()
}

// AddHashtag appends a tag, trimming whitespace, stripping a leading '#',
// and ignoring duplicates (case-insensitive).
func (s *Store) AddHashtag(userID, tag string) (Draft, *errs.CustomError) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if cleaned == "" {
		return Draft{}, errs.NewError(errs.ErrInvalidParams)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	for _, existing := range d.hashtags {
		if strings.EqualFold(existing, cleaned) {
			return d.snapshot(), nil
		}
	}

	d.hashtags = append(d.hashtags, cleaned)
	d.updated = time.Now()
	return d.snapshot(), nil
}

// RemoveHashtag drops a tag by value; removing an absent tag is a no-op.
func (s *Store) RemoveHashtag(userID, tag string) Draft {
	cleaned := strings.TrimPrefix(strings.TrimSpace(tag), "#")

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	for i, existing := range d.hashtags {
		if strings.EqualFold(existing, cleaned) {
			d.hashtags = append(d.hashtags[:i], d.hashtags[i+1:]...)
			d.updated = time.Now()
			break
		}
	}
	return d.snapshot()
}

// Save logs the draft as saved and keeps it intact.
func (s *Store) Save(userID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	d.updated = time.Now()

	s.logger.Info().
		Str("user_id", userID).
		Int("images", len(d.images)).
		Int("hashtags", len(d.hashtags)).
		Msg("Draft saved.")

	return d.snapshot()
}

// Publish logs the finished draft and resets the composer to an empty draft
// on the image step.
func (s *Store) Publish(userID string) (Draft, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft(userID)
	if len(d.images) == 0 {
		return Draft{}, errs.NewError(errs.ErrDraftNeedsImage)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("images", len(d.images)).
		Str("caption", d.caption).
		Str("location", d.location).
		Strs("hashtags", d.hashtags).
		Msg("Draft published.")

	fresh := newDraftState()
	s.drafts[userID] = fresh
	return fresh.snapshot(), nil
}
