package asset

import (
	"context"
	"time"

	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/storage"
	"github.com/jackc/pgx/v5/pgtype"
)

// Slot names handlers use when passing artifacts.
const (
	SlotImage  = "image"
	SlotBefore = "before"
	SlotAfter  = "after"
	SlotHero   = "hero"
	SlotVideo  = "video"
)

var GalleryKind = Kind[db.GalleryImage]{
	Name:   "gallery",
	Prefix: storage.PrefixGallery,
	Slots: []Slot[db.GalleryImage]{{
		Name: SlotImage,
		Get:  func(r *db.GalleryImage) string { return r.ImageUrl },
		Set:  func(r *db.GalleryImage, url string) { r.ImageUrl = url },
	}},
}

var BeforeAfterKind = Kind[db.BeforeAfter]{
	Name:   "before_after",
	Prefix: storage.PrefixBeforeAfter,
	Slots: []Slot[db.BeforeAfter]{
		{
			Name: SlotBefore,
			Get:  func(r *db.BeforeAfter) string { return r.BeforeUrl },
			Set:  func(r *db.BeforeAfter, url string) { r.BeforeUrl = url },
		},
		{
			Name: SlotAfter,
			Get:  func(r *db.BeforeAfter) string { return r.AfterUrl },
			Set:  func(r *db.BeforeAfter, url string) { r.AfterUrl = url },
		},
	},
}

// LandingPageKind has an optional hero; an empty URL is stored as NULL.
var LandingPageKind = Kind[db.LandingPage]{
	Name:   "landing_page",
	Prefix: storage.PrefixLanding,
	Slots: []Slot[db.LandingPage]{{
		Name: SlotHero,
		Get: func(r *db.LandingPage) string {
			if !r.HeroImage.Valid {
				return ""
			}
			return r.HeroImage.String
		},
		Set: func(r *db.LandingPage, url string) { r.HeroImage = db.Text(url) },
	}},
}

var VideoKind = Kind[db.PromotionVideo]{
	Name:   "video",
	Prefix: storage.PrefixVideo,
	Slots: []Slot[db.PromotionVideo]{{
		Name: SlotVideo,
		Get:  func(r *db.PromotionVideo) string { return r.VideoUrl },
		Set:  func(r *db.PromotionVideo, url string) { r.VideoUrl = url },
	}},
}

// Prefixes maps every media kind to its storage prefix.
func Prefixes() map[string]string {
	return map[string]string{
		GalleryKind.Name:     GalleryKind.Prefix,
		BeforeAfterKind.Name: BeforeAfterKind.Prefix,
		LandingPageKind.Name: LandingPageKind.Prefix,
		VideoKind.Name:       VideoKind.Prefix,
	}
}

// The narrow query sets below are satisfied by *db.Queries and db.Querier.

type GalleryQueries interface {
	CreateGalleryImage(ctx context.Context, arg db.CreateGalleryImageParams) (db.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id pgtype.UUID) error
}

type BeforeAfterQueries interface {
	CreateBeforeAfter(ctx context.Context, arg db.CreateBeforeAfterParams) (db.BeforeAfter, error)
	UpdateBeforeAfter(ctx context.Context, arg db.UpdateBeforeAfterParams) (db.BeforeAfter, error)
	DeleteBeforeAfter(ctx context.Context, id pgtype.UUID) error
}

type LandingPageQueries interface {
	CreateLandingPage(ctx context.Context, arg db.CreateLandingPageParams) (db.LandingPage, error)
	UpdateLandingPage(ctx context.Context, arg db.UpdateLandingPageParams) (db.LandingPage, error)
	DeleteLandingPage(ctx context.Context, id pgtype.UUID) error
}

type VideoQueries interface {
	CreatePromotionVideo(ctx context.Context, arg db.CreatePromotionVideoParams) (db.PromotionVideo, error)
	DeletePromotionVideo(ctx context.Context, id pgtype.UUID) error
}

type galleryRepo struct{ q GalleryQueries }

func GalleryRepository(q GalleryQueries) Repository[db.GalleryImage] { return galleryRepo{q} }

func (r galleryRepo) Insert(ctx context.Context, rec db.GalleryImage) (db.GalleryImage, error) {
	return r.q.CreateGalleryImage(ctx, db.CreateGalleryImageParams{Title: rec.Title, ImageUrl: rec.ImageUrl})
}

func (r galleryRepo) Update(context.Context, db.GalleryImage) (db.GalleryImage, error) {
	return db.GalleryImage{}, ErrNotReplaceable
}

func (r galleryRepo) Delete(ctx context.Context, rec db.GalleryImage) error {
	return r.q.DeleteGalleryImage(ctx, rec.ID)
}

type beforeAfterRepo struct{ q BeforeAfterQueries }

func BeforeAfterRepository(q BeforeAfterQueries) Repository[db.BeforeAfter] {
	return beforeAfterRepo{q}
}

// Insert stamps the record with the current time when no date was given.
func (r beforeAfterRepo) Insert(ctx context.Context, rec db.BeforeAfter) (db.BeforeAfter, error) {
	if !rec.CreatedAt.Valid {
		rec.CreatedAt = db.Timestamptz(time.Now())
	}
	return r.q.CreateBeforeAfter(ctx, db.CreateBeforeAfterParams{
		Title:       rec.Title,
		Description: rec.Description,
		BeforeUrl:   rec.BeforeUrl,
		AfterUrl:    rec.AfterUrl,
		CreatedAt:   rec.CreatedAt,
	})
}

func (r beforeAfterRepo) Update(ctx context.Context, rec db.BeforeAfter) (db.BeforeAfter, error) {
	return r.q.UpdateBeforeAfter(ctx, db.UpdateBeforeAfterParams{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		BeforeUrl:   rec.BeforeUrl,
		AfterUrl:    rec.AfterUrl,
		CreatedAt:   rec.CreatedAt,
	})
}

func (r beforeAfterRepo) Delete(ctx context.Context, rec db.BeforeAfter) error {
	return r.q.DeleteBeforeAfter(ctx, rec.ID)
}

type landingPageRepo struct{ q LandingPageQueries }

func LandingPageRepository(q LandingPageQueries) Repository[db.LandingPage] {
	return landingPageRepo{q}
}

func (r landingPageRepo) Insert(ctx context.Context, rec db.LandingPage) (db.LandingPage, error) {
	return r.q.CreateLandingPage(ctx, db.CreateLandingPageParams{
		Slug:        rec.Slug,
		Title:       rec.Title,
		Status:      rec.Status,
		ShowOnHome:  rec.ShowOnHome,
		Catchphrase: rec.Catchphrase,
		SubCopy:     rec.SubCopy,
		Content:     rec.Content,
		CtaText:     rec.CtaText,
		CtaLink:     rec.CtaLink,
		HeroImage:   rec.HeroImage,
	})
}

func (r landingPageRepo) Update(ctx context.Context, rec db.LandingPage) (db.LandingPage, error) {
	return r.q.UpdateLandingPage(ctx, db.UpdateLandingPageParams{
		ID:          rec.ID,
		Slug:        rec.Slug,
		Title:       rec.Title,
		Status:      rec.Status,
		ShowOnHome:  rec.ShowOnHome,
		Catchphrase: rec.Catchphrase,
		SubCopy:     rec.SubCopy,
		Content:     rec.Content,
		CtaText:     rec.CtaText,
		CtaLink:     rec.CtaLink,
		HeroImage:   rec.HeroImage,
	})
}

func (r landingPageRepo) Delete(ctx context.Context, rec db.LandingPage) error {
	return r.q.DeleteLandingPage(ctx, rec.ID)
}

type videoRepo struct{ q VideoQueries }

func VideoRepository(q VideoQueries) Repository[db.PromotionVideo] { return videoRepo{q} }

func (r videoRepo) Insert(ctx context.Context, rec db.PromotionVideo) (db.PromotionVideo, error) {
	return r.q.CreatePromotionVideo(ctx, db.CreatePromotionVideoParams{
		Title:      rec.Title,
		VideoUrl:   rec.VideoUrl,
		DeviceType: rec.DeviceType,
	})
}

func (r videoRepo) Update(context.Context, db.PromotionVideo) (db.PromotionVideo, error) {
	return db.PromotionVideo{}, ErrNotReplaceable
}

func (r videoRepo) Delete(ctx context.Context, rec db.PromotionVideo) error {
	return r.q.DeletePromotionVideo(ctx, rec.ID)
}
