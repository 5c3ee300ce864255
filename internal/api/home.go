package api

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/logger"
)

const (
	homeAfterLimit    = 10
	homeFeaturedLimit = 3
)

type homeResponse struct {
	Hero            db.HeroSetting      `json:"hero"`
	Videos          []db.PromotionVideo `json:"videos"`
	LatestAfterUrls []string            `json:"latestAfterUrls"`
	Featured        []db.LandingPage    `json:"featured"`
}

// homeHandler aggregates everything the top page renders in one call.
func homeHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		hero, err := heroOrDefault(ctx, cfg.Queries)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		videos, err := cfg.Queries.ListPromotionVideos(ctx)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		afters, err := cfg.Queries.ListLatestAfterUrls(ctx, homeAfterLimit)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		featured, err := cfg.Queries.ListFeaturedLandingPages(ctx, homeFeaturedLimit)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}

		writeJSON(w, http.StatusOK, homeResponse{
			Hero:            hero,
			Videos:          nonNil(videos),
			LatestAfterUrls: nonNil(afters),
			Featured:        nonNil(featured),
		})
	}
}

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// staticPages are the fixed public pages, in sitemap order.
var staticPages = []struct {
	path     string
	freq     string
	priority float64
}{
	{"", "weekly", 1.0},
	{"/service", "weekly", 0.8},
	{"/before-after", "daily", 0.8},
	{"/company", "monthly", 0.5},
	{"/contact", "yearly", 0.5},
}

// BuildSitemap lists the static pages followed by every published landing
// page under /lp/{slug}.
func BuildSitemap(siteURL string, now time.Time, pages []db.ListPublishedLandingPagesRow) URLSet {
	base := strings.TrimSuffix(siteURL, "/")
	today := now.UTC().Format("2006-01-02")

	set := URLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        base + p.path,
			LastMod:    today,
			ChangeFreq: p.freq,
			Priority:   p.priority,
		})
	}
	for _, lp := range pages {
		u := SitemapURL{Loc: base + "/lp/" + lp.Slug, ChangeFreq: "monthly", Priority: 0.7}
		if lp.UpdatedAt.Valid {
			u.LastMod = lp.UpdatedAt.Time.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

func sitemapHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := cfg.Queries.ListPublishedLandingPages(r.Context())
		if err != nil {
			// Static pages are still worth serving to crawlers.
			logger.FromContext(r.Context()).Error("sitemap landing pages unavailable", "error", err)
			pages = nil
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(xml.Header))
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		_ = enc.Encode(BuildSitemap(cfg.SiteURL, time.Now(), pages))
	}
}

func robotsHandler(cfg *Config) http.HandlerFunc {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n",
		strings.TrimSuffix(cfg.SiteURL, "/"))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}
