package api

import (
	"bytes"
	"context"
	stdimage "image"
	"image/png"
	"io"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/brightofhouse/site/internal/auth"
	"github.com/brightofhouse/site/internal/db"
	"github.com/brightofhouse/site/internal/email"
	"github.com/brightofhouse/site/internal/media/image"
	"github.com/brightofhouse/site/internal/media/video"
	"github.com/brightofhouse/site/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// MockQuerier is an in-memory db.Querier. Fail makes the named method return
// an error instead.
type MockQuerier struct {
	mu sync.Mutex

	gallery    map[[16]byte]db.GalleryImage
	videos     map[[16]byte]db.PromotionVideo
	pairs      map[[16]byte]db.BeforeAfter
	landing    map[[16]byte]db.LandingPage
	areas      map[[16]byte]db.ServiceArea
	menus      map[[16]byte]db.ServiceMenu
	categories map[[16]byte]db.ServiceCategory
	items      map[[16]byte]db.ServiceItem
	details    map[[16]byte]db.ServiceDetail
	codes      map[string]db.AdminCode
	hero       *db.HeroSetting
	company    *db.CompanyProfile

	failures map[string]error
	clock    time.Time
}

var _ db.Querier = (*MockQuerier)(nil)

func NewMockQuerier() *MockQuerier {
	return &MockQuerier{
		gallery:    make(map[[16]byte]db.GalleryImage),
		videos:     make(map[[16]byte]db.PromotionVideo),
		pairs:      make(map[[16]byte]db.BeforeAfter),
		landing:    make(map[[16]byte]db.LandingPage),
		areas:      make(map[[16]byte]db.ServiceArea),
		menus:      make(map[[16]byte]db.ServiceMenu),
		categories: make(map[[16]byte]db.ServiceCategory),
		items:      make(map[[16]byte]db.ServiceItem),
		details:    make(map[[16]byte]db.ServiceDetail),
		codes:      make(map[string]db.AdminCode),
		failures:   make(map[string]error),
		clock:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *MockQuerier) Fail(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = err
}

func (m *MockQuerier) fail(method string) error {
	return m.failures[method]
}

// stamp returns strictly increasing times so created_at ordering is stable.
func (m *MockQuerier) stamp() pgtype.Timestamptz {
	m.clock = m.clock.Add(time.Second)
	return db.Timestamptz(m.clock)
}

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func valuesDesc[T any](items map[[16]byte]T, created func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return created(out[i]).After(created(out[j])) })
	return out
}

func valuesByOrder[T any](items map[[16]byte]T, order func(T) int32, created func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if order(out[i]) != order(out[j]) {
			return order(out[i]) < order(out[j])
		}
		return created(out[i]).Before(created(out[j]))
	})
	return out
}

func get[T any](items map[[16]byte]T, id pgtype.UUID) (T, error) {
	v, ok := items[id.Bytes]
	if !ok {
		var zero T
		return zero, pgx.ErrNoRows
	}
	return v, nil
}

// Admin codes

func (m *MockQuerier) CreateAdminCode(_ context.Context, arg db.CreateAdminCodeParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateAdminCode"); err != nil {
		return err
	}
	m.codes[arg.CodeHash] = db.AdminCode{CodeHash: arg.CodeHash, ExpiresAt: arg.ExpiresAt, CreatedAt: m.stamp()}
	return nil
}

func (m *MockQuerier) ConsumeAdminCode(_ context.Context, codeHash string) (db.AdminCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.codes[codeHash]
	if !ok || !c.ExpiresAt.Time.After(time.Now()) {
		return db.AdminCode{}, pgx.ErrNoRows
	}
	delete(m.codes, codeHash)
	return c, nil
}

func (m *MockQuerier) DeleteExpiredAdminCodes(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, c := range m.codes {
		if !c.ExpiresAt.Time.After(time.Now()) {
			delete(m.codes, k)
		}
	}
	return nil
}

// Gallery

func (m *MockQuerier) CreateGalleryImage(_ context.Context, arg db.CreateGalleryImageParams) (db.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateGalleryImage"); err != nil {
		return db.GalleryImage{}, err
	}
	g := db.GalleryImage{ID: newID(), Title: arg.Title, ImageUrl: arg.ImageUrl, CreatedAt: m.stamp()}
	m.gallery[g.ID.Bytes] = g
	return g, nil
}

func (m *MockQuerier) GetGalleryImage(_ context.Context, id pgtype.UUID) (db.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.gallery, id)
}

func (m *MockQuerier) ListGalleryImages(context.Context) ([]db.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListGalleryImages"); err != nil {
		return nil, err
	}
	return valuesDesc(m.gallery, func(g db.GalleryImage) time.Time { return g.CreatedAt.Time }), nil
}

func (m *MockQuerier) DeleteGalleryImage(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("DeleteGalleryImage"); err != nil {
		return err
	}
	delete(m.gallery, id.Bytes)
	return nil
}

// Videos

func (m *MockQuerier) CreatePromotionVideo(_ context.Context, arg db.CreatePromotionVideoParams) (db.PromotionVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreatePromotionVideo"); err != nil {
		return db.PromotionVideo{}, err
	}
	v := db.PromotionVideo{ID: newID(), Title: arg.Title, VideoUrl: arg.VideoUrl, DeviceType: arg.DeviceType, CreatedAt: m.stamp()}
	m.videos[v.ID.Bytes] = v
	return v, nil
}

func (m *MockQuerier) GetPromotionVideo(_ context.Context, id pgtype.UUID) (db.PromotionVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.videos, id)
}

func (m *MockQuerier) ListPromotionVideos(context.Context) ([]db.PromotionVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesDesc(m.videos, func(v db.PromotionVideo) time.Time { return v.CreatedAt.Time }), nil
}

func (m *MockQuerier) DeletePromotionVideo(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.videos, id.Bytes)
	return nil
}

// Before/after

func (m *MockQuerier) CreateBeforeAfter(_ context.Context, arg db.CreateBeforeAfterParams) (db.BeforeAfter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("CreateBeforeAfter"); err != nil {
		return db.BeforeAfter{}, err
	}
	p := db.BeforeAfter{
		ID:          newID(),
		Title:       arg.Title,
		Description: arg.Description,
		BeforeUrl:   arg.BeforeUrl,
		AfterUrl:    arg.AfterUrl,
		CreatedAt:   arg.CreatedAt,
	}
	m.pairs[p.ID.Bytes] = p
	return p, nil
}

func (m *MockQuerier) GetBeforeAfter(_ context.Context, id pgtype.UUID) (db.BeforeAfter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.pairs, id)
}

func (m *MockQuerier) ListBeforeAfters(context.Context) ([]db.BeforeAfter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesDesc(m.pairs, func(p db.BeforeAfter) time.Time { return p.CreatedAt.Time }), nil
}

func (m *MockQuerier) ListLatestAfterUrls(_ context.Context, limit int32) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var urls []string
	for _, p := range valuesDesc(m.pairs, func(p db.BeforeAfter) time.Time { return p.CreatedAt.Time }) {
		if len(urls) == int(limit) {
			break
		}
		urls = append(urls, p.AfterUrl)
	}
	return urls, nil
}

func (m *MockQuerier) UpdateBeforeAfter(_ context.Context, arg db.UpdateBeforeAfterParams) (db.BeforeAfter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("UpdateBeforeAfter"); err != nil {
		return db.BeforeAfter{}, err
	}
	p, err := get(m.pairs, arg.ID)
	if err != nil {
		return p, err
	}
	p.Title, p.Description = arg.Title, arg.Description
	p.BeforeUrl, p.AfterUrl = arg.BeforeUrl, arg.AfterUrl
	p.CreatedAt = arg.CreatedAt
	m.pairs[p.ID.Bytes] = p
	return p, nil
}

func (m *MockQuerier) DeleteBeforeAfter(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pairs, id.Bytes)
	return nil
}

// Landing pages

func (m *MockQuerier) slugTaken(slug string, except pgtype.UUID) bool {
	for _, p := range m.landing {
		if p.Slug == slug && p.ID != except {
			return true
		}
	}
	return false
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func (m *MockQuerier) CreateLandingPage(_ context.Context, arg db.CreateLandingPageParams) (db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.slugTaken(arg.Slug, pgtype.UUID{}) {
		return db.LandingPage{}, uniqueViolation()
	}
	now := m.stamp()
	p := db.LandingPage{
		ID:          newID(),
		Slug:        arg.Slug,
		Title:       arg.Title,
		Status:      arg.Status,
		ShowOnHome:  arg.ShowOnHome,
		Catchphrase: arg.Catchphrase,
		SubCopy:     arg.SubCopy,
		Content:     arg.Content,
		CtaText:     arg.CtaText,
		CtaLink:     arg.CtaLink,
		HeroImage:   arg.HeroImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.landing[p.ID.Bytes] = p
	return p, nil
}

func (m *MockQuerier) UpdateLandingPage(_ context.Context, arg db.UpdateLandingPageParams) (db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := get(m.landing, arg.ID)
	if err != nil {
		return p, err
	}
	if m.slugTaken(arg.Slug, arg.ID) {
		return db.LandingPage{}, uniqueViolation()
	}
	p.Slug, p.Title, p.Status, p.ShowOnHome = arg.Slug, arg.Title, arg.Status, arg.ShowOnHome
	p.Catchphrase, p.SubCopy, p.Content = arg.Catchphrase, arg.SubCopy, arg.Content
	p.CtaText, p.CtaLink, p.HeroImage = arg.CtaText, arg.CtaLink, arg.HeroImage
	p.UpdatedAt = m.stamp()
	m.landing[p.ID.Bytes] = p
	return p, nil
}

func (m *MockQuerier) GetLandingPage(_ context.Context, id pgtype.UUID) (db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return get(m.landing, id)
}

func (m *MockQuerier) GetLandingPageBySlug(_ context.Context, slug string) (db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.landing {
		if p.Slug == slug {
			return p, nil
		}
	}
	return db.LandingPage{}, pgx.ErrNoRows
}

func (m *MockQuerier) ListLandingPages(context.Context) ([]db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesDesc(m.landing, func(p db.LandingPage) time.Time { return p.CreatedAt.Time }), nil
}

func (m *MockQuerier) ListFeaturedLandingPages(_ context.Context, limit int32) ([]db.LandingPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.LandingPage
	for _, p := range valuesDesc(m.landing, func(p db.LandingPage) time.Time { return p.UpdatedAt.Time }) {
		if p.ShowOnHome && p.Status == StatusPublished && len(out) < int(limit) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockQuerier) ListPublishedLandingPages(context.Context) ([]db.ListPublishedLandingPagesRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("ListPublishedLandingPages"); err != nil {
		return nil, err
	}
	var out []db.ListPublishedLandingPagesRow
	for _, p := range valuesDesc(m.landing, func(p db.LandingPage) time.Time { return p.UpdatedAt.Time }) {
		if p.Status == StatusPublished {
			out = append(out, db.ListPublishedLandingPagesRow{Slug: p.Slug, UpdatedAt: p.UpdatedAt})
		}
	}
	return out, nil
}

func (m *MockQuerier) DeleteLandingPage(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.landing, id.Bytes)
	return nil
}

// Settings

func (m *MockQuerier) GetHeroSettings(_ context.Context, id string) (db.HeroSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hero == nil || m.hero.ID != id {
		return db.HeroSetting{}, pgx.ErrNoRows
	}
	return *m.hero, nil
}

func (m *MockQuerier) UpsertHeroSettings(_ context.Context, arg db.UpsertHeroSettingsParams) (db.HeroSetting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := db.HeroSetting{
		ID:           arg.ID,
		Title:        arg.Title,
		Subtitle:     arg.Subtitle,
		MobileHeight: arg.MobileHeight,
		PcHeight:     arg.PcHeight,
		Btn1Text:     arg.Btn1Text,
		Btn1Link:     arg.Btn1Link,
		Btn2Text:     arg.Btn2Text,
		Btn2Link:     arg.Btn2Link,
		UpdatedAt:    m.stamp(),
	}
	m.hero = &h
	return h, nil
}

func (m *MockQuerier) GetCompanyProfile(_ context.Context, id string) (db.CompanyProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.company == nil || m.company.ID != id {
		return db.CompanyProfile{}, pgx.ErrNoRows
	}
	return *m.company, nil
}

func (m *MockQuerier) UpsertCompanyProfile(_ context.Context, arg db.UpsertCompanyProfileParams) (db.CompanyProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := db.CompanyProfile{
		ID:              arg.ID,
		Name:            arg.Name,
		Representative:  arg.Representative,
		Address:         arg.Address,
		Tel:             arg.Tel,
		BusinessContent: arg.BusinessContent,
		BusinessHours:   arg.BusinessHours,
		MapCode:         arg.MapCode,
		UpdatedAt:       m.stamp(),
	}
	m.company = &c
	return c, nil
}

// Areas and menus

func (m *MockQuerier) CountServiceAreas(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.areas)), nil
}

func (m *MockQuerier) CreateServiceArea(_ context.Context, arg db.CreateServiceAreaParams) (db.ServiceArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := db.ServiceArea{ID: newID(), Title: arg.Title, Regions: arg.Regions, Note: arg.Note, Order: arg.Order, CreatedAt: m.stamp()}
	m.areas[a.ID.Bytes] = a
	return a, nil
}

func (m *MockQuerier) ListServiceAreas(context.Context) ([]db.ServiceArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesByOrder(m.areas,
		func(a db.ServiceArea) int32 { return a.Order },
		func(a db.ServiceArea) time.Time { return a.CreatedAt.Time }), nil
}

func (m *MockQuerier) UpdateServiceArea(_ context.Context, arg db.UpdateServiceAreaParams) (db.ServiceArea, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, err := get(m.areas, arg.ID)
	if err != nil {
		return a, err
	}
	a.Title, a.Regions, a.Note, a.Order = arg.Title, arg.Regions, arg.Note, arg.Order
	m.areas[a.ID.Bytes] = a
	return a, nil
}

func (m *MockQuerier) DeleteServiceArea(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.areas, id.Bytes)
	return nil
}

func (m *MockQuerier) CountServiceMenus(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.menus)), nil
}

func (m *MockQuerier) CreateServiceMenu(_ context.Context, arg db.CreateServiceMenuParams) (db.ServiceMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := db.ServiceMenu{
		ID:          newID(),
		Title:       arg.Title,
		Price:       arg.Price,
		PriceNote:   arg.PriceNote,
		Unit:        arg.Unit,
		Description: arg.Description,
		Features:    arg.Features,
		IsPopular:   arg.IsPopular,
		Order:       arg.Order,
		Link:        arg.Link,
		CreatedAt:   m.stamp(),
	}
	m.menus[s.ID.Bytes] = s
	return s, nil
}

func (m *MockQuerier) ListServiceMenus(context.Context) ([]db.ServiceMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesByOrder(m.menus,
		func(s db.ServiceMenu) int32 { return s.Order },
		func(s db.ServiceMenu) time.Time { return s.CreatedAt.Time }), nil
}

func (m *MockQuerier) UpdateServiceMenu(_ context.Context, arg db.UpdateServiceMenuParams) (db.ServiceMenu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := get(m.menus, arg.ID)
	if err != nil {
		return s, err
	}
	s.Title, s.Price, s.PriceNote, s.Unit = arg.Title, arg.Price, arg.PriceNote, arg.Unit
	s.Description, s.Features, s.IsPopular = arg.Description, arg.Features, arg.IsPopular
	s.Order, s.Link = arg.Order, arg.Link
	m.menus[s.ID.Bytes] = s
	return s, nil
}

func (m *MockQuerier) DeleteServiceMenu(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.menus, id.Bytes)
	return nil
}

// Service tree

func (m *MockQuerier) CountServiceCategories(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.categories)), nil
}

func (m *MockQuerier) CreateServiceCategory(_ context.Context, arg db.CreateServiceCategoryParams) (db.ServiceCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := db.ServiceCategory{ID: newID(), Title: arg.Title, Order: arg.Order, CreatedAt: m.stamp()}
	m.categories[c.ID.Bytes] = c
	return c, nil
}

func (m *MockQuerier) CreateServiceItem(_ context.Context, arg db.CreateServiceItemParams) (db.ServiceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[arg.CategoryID.Bytes]; !ok {
		return db.ServiceItem{}, &pgconn.PgError{Code: "23503"}
	}
	it := db.ServiceItem{
		ID:            newID(),
		CategoryID:    arg.CategoryID,
		Title:         arg.Title,
		SubTitle:      arg.SubTitle,
		RegularPrice:  arg.RegularPrice,
		DiscountPrice: arg.DiscountPrice,
		Order:         arg.Order,
		CreatedAt:     m.stamp(),
	}
	m.items[it.ID.Bytes] = it
	return it, nil
}

func (m *MockQuerier) CreateServiceDetail(_ context.Context, arg db.CreateServiceDetailParams) (db.ServiceDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[arg.ItemID.Bytes]; !ok {
		return db.ServiceDetail{}, &pgconn.PgError{Code: "23503"}
	}
	d := db.ServiceDetail{
		ID:         newID(),
		ItemID:     arg.ItemID,
		Label:      arg.Label,
		Value:      arg.Value,
		IsPrice:    arg.IsPrice,
		IsNote:     arg.IsNote,
		LabelColor: arg.LabelColor,
		LabelSize:  arg.LabelSize,
		LabelAlign: arg.LabelAlign,
		ValueColor: arg.ValueColor,
		ValueSize:  arg.ValueSize,
		ValueAlign: arg.ValueAlign,
		Order:      arg.Order,
		CreatedAt:  m.stamp(),
	}
	m.details[d.ID.Bytes] = d
	return d, nil
}

func (m *MockQuerier) ListServiceCategories(context.Context) ([]db.ServiceCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesByOrder(m.categories,
		func(c db.ServiceCategory) int32 { return c.Order },
		func(c db.ServiceCategory) time.Time { return c.CreatedAt.Time }), nil
}

func (m *MockQuerier) ListServiceItems(context.Context) ([]db.ServiceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesByOrder(m.items,
		func(i db.ServiceItem) int32 { return i.Order },
		func(i db.ServiceItem) time.Time { return i.CreatedAt.Time }), nil
}

func (m *MockQuerier) ListServiceDetails(context.Context) ([]db.ServiceDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return valuesByOrder(m.details,
		func(d db.ServiceDetail) int32 { return d.Order },
		func(d db.ServiceDetail) time.Time { return d.CreatedAt.Time }), nil
}

func (m *MockQuerier) UpdateServiceCategory(_ context.Context, arg db.UpdateServiceCategoryParams) (db.ServiceCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, err := get(m.categories, arg.ID)
	if err != nil {
		return c, err
	}
	c.Title, c.Order = arg.Title, arg.Order
	m.categories[c.ID.Bytes] = c
	return c, nil
}

func (m *MockQuerier) UpdateServiceItem(_ context.Context, arg db.UpdateServiceItemParams) (db.ServiceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, err := get(m.items, arg.ID)
	if err != nil {
		return it, err
	}
	it.Title, it.SubTitle, it.Order = arg.Title, arg.SubTitle, arg.Order
	it.RegularPrice, it.DiscountPrice = arg.RegularPrice, arg.DiscountPrice
	m.items[it.ID.Bytes] = it
	return it, nil
}

func (m *MockQuerier) UpdateServiceDetail(_ context.Context, arg db.UpdateServiceDetailParams) (db.ServiceDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := get(m.details, arg.ID)
	if err != nil {
		return d, err
	}
	d.Label, d.Value, d.IsPrice, d.IsNote = arg.Label, arg.Value, arg.IsPrice, arg.IsNote
	d.LabelColor, d.LabelSize, d.LabelAlign = arg.LabelColor, arg.LabelSize, arg.LabelAlign
	d.ValueColor, d.ValueSize, d.ValueAlign = arg.ValueColor, arg.ValueSize, arg.ValueAlign
	d.Order = arg.Order
	m.details[d.ID.Bytes] = d
	return d, nil
}

// The deletes below cascade the way the foreign keys do.

func (m *MockQuerier) DeleteServiceCategory(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id.Bytes)
	for k, it := range m.items {
		if it.CategoryID == id {
			m.deleteItemLocked(k)
		}
	}
	return nil
}

func (m *MockQuerier) DeleteServiceItem(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteItemLocked(id.Bytes)
	return nil
}

func (m *MockQuerier) deleteItemLocked(id [16]byte) {
	delete(m.items, id)
	for k, d := range m.details {
		if d.ItemID.Bytes == id {
			delete(m.details, k)
		}
	}
}

func (m *MockQuerier) DeleteServiceDetail(_ context.Context, id pgtype.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.details, id.Bytes)
	return nil
}

func (m *MockQuerier) ListMediaUrls(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var urls []string
	for _, g := range m.gallery {
		urls = append(urls, g.ImageUrl)
	}
	for _, p := range m.pairs {
		urls = append(urls, p.BeforeUrl, p.AfterUrl)
	}
	for _, p := range m.landing {
		if p.HeroImage.Valid {
			urls = append(urls, p.HeroImage.String)
		}
	}
	for _, v := range m.videos {
		urls = append(urls, v.VideoUrl)
	}
	return urls, nil
}

// pngEncoder stands in for cwebp so tests need no external binary.
type pngEncoder struct{}

func (pngEncoder) Encode(_ context.Context, img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pngEncoder) Ext() string         { return ".webp" }
func (pngEncoder) ContentType() string { return "image/webp" }

// fakeTranscoder records calls and returns canned output or err.
type fakeTranscoder struct {
	mu       sync.Mutex
	err      error
	profiles []video.Profile
}

func (f *fakeTranscoder) Transcode(_ context.Context, r io.Reader, profile video.Profile) (*video.Output, error) {
	f.mu.Lock()
	f.profiles = append(f.profiles, profile)
	f.mu.Unlock()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return &video.Output{
		Data:        append([]byte("mp4:"), data...),
		Ext:         ".mp4",
		ContentType: "video/mp4",
		Profile:     profile,
	}, nil
}

// recordingMailer captures sent messages. err fails every send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []*email.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg *email.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

const (
	testSecret  = "test-secret-key-for-testing-only"
	testBaseURL = "https://media.example.com"
)

// testEnv wires a router over in-memory fakes.
type testEnv struct {
	cfg     *Config
	router  http.Handler
	queries *MockQuerier
	storage *storage.MemoryStorage
	videos  *fakeTranscoder
	mailer  *recordingMailer
	codes   *auth.MemoryCodeStore
	gate    *auth.Gate
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		queries: NewMockQuerier(),
		storage: storage.NewMemoryStorage(),
		videos:  &fakeTranscoder{},
		mailer:  &recordingMailer{},
		codes:   auth.NewMemoryCodeStore(),
		gate:    auth.NewGate(testSecret, time.Hour),
	}
	composer := email.Composer{From: "noreply@example.com"}
	svc := auth.NewService(auth.ServiceConfig{
		Credentials: auth.Credentials{User: "admin", Pass: "pw"},
		AdminEmail:  "owner@example.com",
	}, env.gate, env.codes, env.mailer, composer)

	env.cfg = &Config{
		Storage:            env.storage,
		Keys:               storage.NewKeys(testBaseURL),
		Queries:            env.queries,
		Images:             image.NewNormalizer(image.DefaultMaxDimension, pngEncoder{}),
		Videos:             env.videos,
		Auth:               svc,
		Mailer:             env.mailer,
		Composer:           composer,
		ContactMailTo:      "office@example.com",
		MaxImageUploadSize: 20 << 20,
		MaxVideoUploadSize: 20 << 20,
		SiteURL:            "https://brightofhouse.jp",
		AllowedOrigins:     []string{"https://brightofhouse.jp"},
	}
	env.router = NewRouter(env.cfg)
	return env
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.gate.Issue()
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}
