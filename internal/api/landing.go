package api

import (
	"net/http"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/auth"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/logger"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

var errSlugTaken = apperror.WithMessage(apperror.ErrConflict, "Used slug")

// isAdmin reports whether the request carries a valid session. Public reads
// use it to decide whether drafts are visible.
func isAdmin(g *auth.Gate, r *http.Request) bool {
	token := auth.TokenFromRequest(r)
	return token != "" && g.Authorize(token)
}

// listLandingPagesHandler lists pages, or fetches one when ?id= is given.
// Drafts are only visible to admins.
func listLandingPagesHandler(cfg *Config, gate *auth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admin := isAdmin(gate, r)

		if raw := r.URL.Query().Get("id"); raw != "" {
			id, err := db.ParseUUID(raw)
			if err != nil {
				apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrNotFound))
				return
			}
			page, err := cfg.Queries.GetLandingPage(r.Context(), id)
			if err != nil {
				apperror.WriteJSON(w, r, lookupErr(err))
				return
			}
			if !admin && page.Status != StatusPublished {
				apperror.WriteJSON(w, r, apperror.ErrNotFound)
				return
			}
			writeJSON(w, http.StatusOK, page)
			return
		}

		pages, err := cfg.Queries.ListLandingPages(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		if !admin {
			published := pages[:0]
			for _, p := range pages {
				if p.Status == StatusPublished {
					published = append(published, p)
				}
			}
			pages = published
		}
		writeJSON(w, http.StatusOK, nonNil(pages))
	}
}

func landingPageBySlugHandler(cfg *Config, gate *auth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := cfg.Queries.GetLandingPageBySlug(r.Context(), r.PathValue("slug"))
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}
		if page.Status == StatusDraft && !isAdmin(gate, r) {
			apperror.WriteJSON(w, r, apperror.ErrNotFound)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// landingPageForm reads the text fields shared by create and update.
func landingPageForm(r *http.Request, rec *db.LandingPage) error {
	rec.Slug = formString(r, "slug")
	if rec.Slug == "" {
		return apperror.WithMessage(apperror.ErrBadRequest, "Slug required")
	}

	rec.Status = formString(r, "status")
	switch rec.Status {
	case "":
		rec.Status = StatusDraft
	case StatusDraft, StatusPublished:
	default:
		return apperror.WithMessage(apperror.ErrBadRequest, "Invalid status")
	}

	rec.Title = formString(r, "title")
	rec.ShowOnHome = formBool(r, "showOnHome")
	rec.Catchphrase = formString(r, "catchphrase")
	rec.SubCopy = formString(r, "subCopy")
	rec.Content = r.FormValue("content")
	rec.CtaText = formString(r, "ctaText")
	rec.CtaLink = formString(r, "ctaLink")
	return nil
}

// heroFiles returns the optional hero artifact keyed by slot.
func heroFiles(r *http.Request, images ImageNormalizer) (map[string]*asset.Artifact, error) {
	art, ok, err := imageArtifact(r, images, "heroImage")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return map[string]*asset.Artifact{asset.SlotHero: art}, nil
}

// landingStoreErr adds the slug conflict to the usual store mapping.
func landingStoreErr(err error) error {
	if db.IsUniqueViolation(err) {
		return apperror.Wrap(err, errSlugTaken)
	}
	return storeErr(err)
}

func createLandingPageHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, cfg.MaxImageUploadSize); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		var rec db.LandingPage
		if err := landingPageForm(r, &rec); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		// Checked before the hero is transformed so a taken slug costs no upload.
		if _, err := cfg.Queries.GetLandingPageBySlug(r.Context(), rec.Slug); err == nil {
			apperror.WriteJSON(w, r, errSlugTaken)
			return
		} else if !db.IsNotFound(err) {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}

		files, err := heroFiles(r, cfg.Images)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		created, err := st.landing.Create(r.Context(), rec, files)
		if err != nil {
			apperror.WriteJSON(w, r, landingStoreErr(err))
			return
		}

		logger.FromContext(r.Context()).Info("landing page created", "slug", created.Slug, "status", created.Status)
		writeJSON(w, http.StatusOK, created)
	}
}

func updateLandingPageHandler(cfg *Config, st *stores) http.HandlerFunc {
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

		current, err := cfg.Queries.GetLandingPage(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		next := current
		if err := landingPageForm(r, &next); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		if next.Slug != current.Slug {
			if other, err := cfg.Queries.GetLandingPageBySlug(r.Context(), next.Slug); err == nil && other.ID != current.ID {
				apperror.WriteJSON(w, r, errSlugTaken)
				return
			}
		}

		files, err := heroFiles(r, cfg.Images)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		updated, err := st.landing.Replace(r.Context(), current, next, files)
		if err != nil {
			apperror.WriteJSON(w, r, landingStoreErr(err))
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteLandingPageHandler(cfg *Config, st *stores) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		page, err := cfg.Queries.GetLandingPage(r.Context(), id)
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}

		if err := st.landing.Delete(r.Context(), page); err != nil {
			apperror.WriteJSON(w, r, storeErr(err))
			return
		}
		writeSuccess(w)
	}
}
