package api

import (
	"context"
	"net/http"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/db"
)

// DefaultHero is served until the hero row has been saved once.
var DefaultHero = db.HeroSetting{
	ID:           db.SingletonID,
	Title:        "北海道ブライトオブハウス",
	Subtitle:     "ハウスクリーニング / エアコン清掃 / 特殊清掃",
	MobileHeight: "h-[50vh]",
	PcHeight:     "md:h-[65vh]",
	Btn1Text:     "無料お見積り",
	Btn1Link:     "/contact",
	Btn2Text:     "料金を見る",
	Btn2Link:     "/service",
}

// heroOrDefault loads the hero row, falling back to DefaultHero when it has
// never been saved.
func heroOrDefault(ctx context.Context, q db.Querier) (db.HeroSetting, error) {
	hero, err := q.GetHeroSettings(ctx, db.SingletonID)
	if db.IsNotFound(err) {
		return DefaultHero, nil
	}
	return hero, err
}

func getHeroHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hero, err := heroOrDefault(r.Context(), cfg.Queries)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, hero)
	}
}

// putHeroHandler decodes the body over the current values, so omitted fields
// keep what is stored.
func putHeroHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hero, err := heroOrDefault(r.Context(), cfg.Queries)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		if err := decodeJSON(w, r, &hero); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		saved, err := cfg.Queries.UpsertHeroSettings(r.Context(), db.UpsertHeroSettingsParams{
			ID:           db.SingletonID,
			Title:        hero.Title,
			Subtitle:     hero.Subtitle,
			MobileHeight: hero.MobileHeight,
			PcHeight:     hero.PcHeight,
			Btn1Text:     hero.Btn1Text,
			Btn1Link:     hero.Btn1Link,
			Btn2Text:     hero.Btn2Text,
			Btn2Link:     hero.Btn2Link,
		})
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

func getCompanyHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := cfg.Queries.GetCompanyProfile(r.Context(), db.SingletonID)
		if db.IsNotFound(err) {
			writeJSON(w, http.StatusOK, struct{}{})
			return
		}
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func putCompanyHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body db.UpsertCompanyProfileParams
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		body.ID = db.SingletonID

		profile, err := cfg.Queries.UpsertCompanyProfile(r.Context(), body)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}
