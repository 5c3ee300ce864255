// Package api is the HTTP surface of the site: public content reads, admin
// mutations behind the session gate, the media upload pipelines, the contact
// form and the two-step admin login.
package api

import (
	"net/http"

	"github.com/brightofhouse/site/internal/asset"
	"github.com/brightofhouse/site/internal/auth"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/email"
	"github.com/brightofhouse/site/internal/health"
	"github.com/brightofhouse/site/internal/storage"
)

type Config struct {
	Storage storage.Storage
	Keys    *storage.Keys
	Queries db.Querier

	Images ImageNormalizer
	Videos VideoTranscoder

	Auth         *auth.Service
	CookieSecure bool

	Mailer        email.Mailer
	Composer      email.Composer
	ContactMailTo string

	// Zero disables the limit for that pipeline.
	MaxImageUploadSize int64
	MaxVideoUploadSize int64

	// SiteURL is the public origin used in sitemap.xml and robots.txt.
	SiteURL        string
	AllowedOrigins []string
	DevMode        bool

	// Limiter throttles login and contact posts. Nil disables throttling.
	Limiter Limiter
	Health  *health.Checker
}

// stores holds one reference store per media kind.
type stores struct {
	gallery     *asset.Store[db.GalleryImage]
	beforeAfter *asset.Store[db.BeforeAfter]
	landing     *asset.Store[db.LandingPage]
	videos      *asset.Store[db.PromotionVideo]
}

func newStores(cfg *Config) *stores {
	return &stores{
		gallery:     asset.NewStore(asset.GalleryKind, cfg.Storage, cfg.Keys, asset.GalleryRepository(cfg.Queries)),
		beforeAfter: asset.NewStore(asset.BeforeAfterKind, cfg.Storage, cfg.Keys, asset.BeforeAfterRepository(cfg.Queries)),
		landing:     asset.NewStore(asset.LandingPageKind, cfg.Storage, cfg.Keys, asset.LandingPageRepository(cfg.Queries)),
		videos:      asset.NewStore(asset.VideoKind, cfg.Storage, cfg.Keys, asset.VideoRepository(cfg.Queries)),
	}
}

func NewRouter(cfg *Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.LivenessHandler())
	if cfg.Health != nil {
		mux.HandleFunc("GET /ready", health.ReadinessHandler(cfg.Health))
	}

	mux.HandleFunc("GET /robots.txt", robotsHandler(cfg))
	mux.HandleFunc("GET /sitemap.xml", sitemapHandler(cfg))

	gate := cfg.Auth.Gate()
	admin := func(h http.HandlerFunc) http.HandlerFunc { return withAdmin(gate, h) }
	st := newStores(cfg)

	apiMux := http.NewServeMux()

	apiMux.HandleFunc("GET /api/gallery", listGalleryHandler(cfg))
	apiMux.HandleFunc("POST /api/gallery", admin(createGalleryHandler(cfg, st)))
	apiMux.HandleFunc("DELETE /api/gallery/{id}", admin(deleteGalleryHandler(cfg, st)))

	apiMux.HandleFunc("GET /api/videos", listVideosHandler(cfg))
	apiMux.HandleFunc("POST /api/videos", admin(createVideoHandler(cfg, st)))
	apiMux.HandleFunc("DELETE /api/videos/{id}", admin(deleteVideoHandler(cfg, st)))

	apiMux.HandleFunc("GET /api/works", listBeforeAfterHandler(cfg))
	apiMux.HandleFunc("GET /api/before-after", admin(listBeforeAfterHandler(cfg)))
	apiMux.HandleFunc("POST /api/before-after", admin(createBeforeAfterHandler(cfg, st)))
	apiMux.HandleFunc("PUT /api/before-after/{id}", admin(updateBeforeAfterHandler(cfg, st)))
	apiMux.HandleFunc("DELETE /api/before-after/{id}", admin(deleteBeforeAfterHandler(cfg, st)))

	apiMux.HandleFunc("GET /api/lp", listLandingPagesHandler(cfg, gate))
	apiMux.HandleFunc("GET /api/lp/slug/{slug}", landingPageBySlugHandler(cfg, gate))
	apiMux.HandleFunc("POST /api/lp", admin(createLandingPageHandler(cfg, st)))
	apiMux.HandleFunc("PUT /api/lp/{id}", admin(updateLandingPageHandler(cfg, st)))
	apiMux.HandleFunc("DELETE /api/lp/{id}", admin(deleteLandingPageHandler(cfg, st)))

	apiMux.HandleFunc("GET /api/hero", getHeroHandler(cfg))
	apiMux.HandleFunc("PUT /api/hero", admin(putHeroHandler(cfg)))
	apiMux.HandleFunc("GET /api/company", admin(getCompanyHandler(cfg)))
	apiMux.HandleFunc("PUT /api/company", admin(putCompanyHandler(cfg)))

	apiMux.HandleFunc("GET /api/areas", listAreasHandler(cfg))
	apiMux.HandleFunc("POST /api/areas", admin(createAreaHandler(cfg)))
	apiMux.HandleFunc("PUT /api/areas/{id}", admin(updateAreaHandler(cfg)))
	apiMux.HandleFunc("DELETE /api/areas/{id}", admin(deleteAreaHandler(cfg)))

	apiMux.HandleFunc("GET /api/menu", listMenusHandler(cfg))
	apiMux.HandleFunc("POST /api/menu", admin(createMenuHandler(cfg)))
	apiMux.HandleFunc("PUT /api/menu/{id}", admin(updateMenuHandler(cfg)))
	apiMux.HandleFunc("DELETE /api/menu/{id}", admin(deleteMenuHandler(cfg)))

	apiMux.HandleFunc("GET /api/services", serviceTreeHandler(cfg))
	apiMux.HandleFunc("POST /api/services", admin(createServiceNodeHandler(cfg)))
	apiMux.HandleFunc("PUT /api/services", admin(updateServiceNodeHandler(cfg)))
	apiMux.HandleFunc("DELETE /api/services", admin(deleteServiceNodeHandler(cfg)))

	apiMux.HandleFunc("GET /api/home", homeHandler(cfg))

	throttled := RateLimit(cfg.Limiter)
	apiMux.Handle("POST /api/contact", throttled(contactHandler(cfg)))
	apiMux.Handle("POST /api/auth", throttled(authHandler(cfg)))
	apiMux.HandleFunc("POST /api/auth/logout", logoutHandler(cfg))

	mux.Handle("/api/", CORSWithOrigins(cfg.AllowedOrigins, cfg.DevMode)(apiMux))

	return mux
}
