package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sangini/internal/app/composer"
	"sangini/internal/app/storage"
	"sangini/internal/pkg/auth/jwt"
	"sangini/internal/pkg/errs"
	"sangini/internal/pkg/logx"
	"sangini/internal/pkg/randx"
	"sangini/internal/pkg/req"
	"sangini/internal/pkg/resp"
)

// HandleComposerState returns the caller's current draft together with
// short-lived view URLs for its attached images.
func HandleComposerState(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		draft := deps.Composer.Draft(identity.ID)

		imageURLs := make([]string, 0, len(draft.Images))
		for _, key := range draft.Images {
			url, err := deps.Images.PresignDownload(r.Context(), key, composer.PresignedURLDuration)
			if err != nil {
				logx.Error(err, "failed to presign draft image view", "key", key)
				resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
				return
			}
			imageURLs = append(imageURLs, url)
		}

		resp.RespondSuccess(w, r, map[string]any{
			"draft":     draft,
			"imageUrls": imageURLs,
		})
	}
}

type PresignImageInput struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignImage validates the upload and returns a presigned PUT URL
// together with the object key to attach afterwards.
func HandlePresignImage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input PresignImageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := composer.ValidateImageSize(input.FileSize); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := composer.ValidateImageType(input.FileName, input.MimeType); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		key := randx.ImageKey(identity.ID, input.FileName)

		url, err := deps.Images.PresignUpload(r.Context(), key, input.MimeType, input.FileSize, composer.PresignedURLDuration)
		if err != nil {
			logx.Error(err, "failed to presign draft image upload", "key", key)
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]string{
			"uploadUrl": url,
			"key":       key,
		})
	}
}

type AttachImageInput struct {
	Key string `json:"key"`
}

// HandleAttachImage records an uploaded image key on the draft. The key must
// belong to the caller's upload prefix and the object must already be in the
// bucket; presigning alone does not make a key attachable.
func HandleAttachImage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AttachImageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		if !randx.OwnsImageKey(identity.ID, input.Key) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if _, err := deps.Images.ObjectMetadata(r.Context(), input.Key); err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrImageNotUploaded))
				return
			}
			logx.Error(err, "failed to verify uploaded draft image", "key", input.Key)
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		draft, customErr := deps.Composer.AttachImage(identity.ID, input.Key)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleRemoveImage drops the draft image at the given index and deletes the
// stored object.
func HandleRemoveImage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrImageIndexInvalid))
			return
		}

		identity := jwt.GetPayloadFromContext(r)

		draft, removed, customErr := deps.Composer.RemoveImage(identity.ID, index)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Images.Delete(r.Context(), removed); err != nil {
			logx.Error(err, "failed to delete removed draft image", "key", removed)
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleComposerAdvance moves the draft to the details step.
func HandleComposerAdvance(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		draft, customErr := deps.Composer.Advance(identity.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleComposerBack returns the draft to the image step.
func HandleComposerBack(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		draft, customErr := deps.Composer.Back(identity.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

type ComposerDetailsInput struct {
	Caption  string `json:"caption"`
	Location string `json:"location"`
}

// HandleComposerDetails updates the caption and location of the draft.
func HandleComposerDetails(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ComposerDetailsInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		draft := deps.Composer.SetDetails(identity.ID, input.Caption, input.Location)

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

type HashtagInput struct {
	Tag string `json:"tag"`
}

// HandleAddHashtag appends a hashtag to the draft.
func HandleAddHashtag(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input HashtagInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity := jwt.GetPayloadFromContext(r)
		draft, customErr := deps.Composer.AddHashtag(identity.ID, input.Tag)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleRemoveHashtag drops a hashtag from the draft.
func HandleRemoveHashtag(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		draft := deps.Composer.RemoveHashtag(identity.ID, chi.URLParam(r, "tag"))

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleComposerSave stores nothing but acknowledges the draft as saved.
func HandleComposerSave(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		draft := deps.Composer.Save(identity.ID)

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}

// HandleComposerPublish publishes the draft and resets the composer.
func HandleComposerPublish(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)

		draft, customErr := deps.Composer.Publish(identity.ID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"draft": draft})
	}
}
