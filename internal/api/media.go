package api

import (
	"net/http"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/media/video"
)

const (
	videoFieldsRequired = "ファイルとデバイスタイプは必須です"
	imagesRequired      = "画像が必要です"
	defaultVideoTitle   = "無題"
)

func listGalleryHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := cfg.Queries.ListGalleryImages(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(items))
	}
}

func createGalleryHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, cfg.MaxImageUploadSize); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		art, ok, err := imageArtifact(r, cfg.Images, "file")
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		if !ok {
			apperror.WriteJSON(w, r, apperror.ErrInvalidUpload)
			return
		}

		rec := db.GalleryImage{Title: formString(r, "title")}
		created, err := st.gallery.Create(r.Context(), rec, map[string]*asset.Artifact{asset.SlotImage: art})
		if err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}

		logger.FromContext(r.Context()).Info("gallery image created", "id", db.UUIDString(created.ID))
		writeJSON(w, http.StatusOK, created)
	}
}

func deleteGalleryHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		rec, err := cfg.Queries.GetGalleryImage(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		if err := st.gallery.Delete(r.Context(), rec); err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeSuccess(w)
	}
}

func listVideosHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := cfg.Queries.ListPromotionVideos(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(items))
	}
}

// createVideoHandler transcodes inline. The response is withheld until
// ffmpeg finishes, which can take minutes for long clips.
func createVideoHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, cfg.MaxVideoUploadSize); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		deviceType := formString(r, "deviceType")
		if deviceType == "" {
			apperror.WriteJSON(w, r, apperror.WithMessage(apperror.ErrInvalidUpload, videoFieldsRequired))
			return
		}
		profile, err := video.ParseProfile(deviceType)
		if err != nil {
			apperror.WriteJSON(w, r, mapVideoError(err))
			return
		}

		art, err := videoArtifact(r, cfg.Videos, "file", profile)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		title := formString(r, "title")
		if title == "" {
			title = defaultVideoTitle
		}

		rec := db.PromotionVideo{Title: title, DeviceType: profile.DeviceType()}
		created, err := st.videos.Create(r.Context(), rec, map[string]*asset.Artifact{asset.SlotVideo: art})
		if err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}

		logger.FromContext(r.Context()).Info("promotion video created",
			"id", db.UUIDString(created.ID),
			"device_type", created.DeviceType,
			"size", art.Size(),
		)
		writeJSON(w, http.StatusCreated, created)
	}
}

func deleteVideoHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		rec, err := cfg.Queries.GetPromotionVideo(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		if err := st.videos.Delete(r.Context(), rec); err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeSuccess(w)
	}
}

func listBeforeAfterHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := cfg.Queries.ListBeforeAfters(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(items))
	}
}

func createBeforeAfterHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, cfg.MaxImageUploadSize); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		date, err := formDate(r, "date")
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		files := make(map[string]*asset.Artifact, 2)
		for slot, field := range beforeAfterFields {
			art, ok, err := imageArtifact(r, cfg.Images, field)
			if err != nil {
				apperror.WriteJSON(w, r, err)
				return
			}
			if !ok {
				apperror.WriteJSON(w, r, apperror.WithMessage(apperror.ErrInvalidUpload, imagesRequired))
				return
			}
			files[slot] = art
		}

		rec := db.BeforeAfter{
			Title:       formString(r, "title"),
			Description: formString(r, "description"),
			CreatedAt:   date,
		}
		created, err := st.beforeAfter.Create(r.Context(), rec, files)
		if err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeJSON(w, http.StatusOK, created)
	}
}

// beforeAfterFields maps slots to their multipart field names.
var beforeAfterFields = map[string]string{
	asset.SlotBefore: "beforeImage",
	asset.SlotAfter:  "afterImage",
}

// updateBeforeAfterHandler replaces text fields and whichever images were
// sent. Concurrent edits of one pair are last-writer-wins.
func updateBeforeAfterHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		if err := parseMultipart(w, r, cfg.MaxImageUploadSize); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		current, err := cfg.Queries.GetBeforeAfter(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		date, err := formDate(r, "date")
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		files := make(map[string]*asset.Artifact, 2)
		for slot, field := range beforeAfterFields {
			art, ok, err := imageArtifact(r, cfg.Images, field)
			if err != nil {
				apperror.WriteJSON(w, r, err)
				return
			}
			if ok {
				files[slot] = art
			}
		}

		next := current
		next.Title = formString(r, "title")
		next.Description = formString(r, "description")
		if date.Valid {
			next.CreatedAt = date
		}

		updated, err := st.beforeAfter.Replace(r.Context(), current, next, files)
		if err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteBeforeAfterHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		rec, err := cfg.Queries.GetBeforeAfter(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		if err := st.beforeAfter.Delete(r.Context(), rec); err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeSuccess(w)
	}
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
