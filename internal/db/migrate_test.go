package db

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)

	entries, err := fs.ReadDir(migrations, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestMigrationsCreateEveryTable(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/00001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"gallery_images", "promotion_videos", "before_afters", "landing_pages",
		"hero_settings", "company_profiles", "service_areas", "service_menus",
		"service_categories", "service_items", "service_details", "admin_codes",
	} {
		assert.Contains(t, string(body), "CREATE TABLE "+table+" (", table)
		assert.Contains(t, string(body), "DROP TABLE IF EXISTS "+table+";", table)
	}
	assert.Equal(t, 2, strings.Count(string(body), "ON DELETE CASCADE"))
}

// openTestPool connects to TEST_DATABASE_URL and migrates it, or skips.
func openTestPool(t *testing.T) *Queries {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres test")
	}

	ctx := context.Background()
	pool, err := Open(ctx, url, 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool))
	return New(pool)
}

func TestQueries_Postgres(t *testing.T) {
	q := openTestPool(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Run("landing page slug is unique", func(t *testing.T) {
		slug := "test-" + time.Now().Format("150405.000000")
		lp, err := q.CreateLandingPage(ctx, CreateLandingPageParams{Slug: slug, Title: "t", Status: "DRAFT"})
		require.NoError(t, err)
		defer func() { _ = q.DeleteLandingPage(ctx, lp.ID) }()

		_, err = q.CreateLandingPage(ctx, CreateLandingPageParams{Slug: slug, Title: "dup", Status: "DRAFT"})
		assert.True(t, IsUniqueViolation(err), "err = %v", err)

		got, err := q.GetLandingPageBySlug(ctx, slug)
		require.NoError(t, err)
		assert.False(t, got.HeroImage.Valid)
	})

	t.Run("service tree cascades", func(t *testing.T) {
		cat, err := q.CreateServiceCategory(ctx, CreateServiceCategoryParams{Title: "エアコン", Order: 1})
		require.NoError(t, err)
		item, err := q.CreateServiceItem(ctx, CreateServiceItemParams{CategoryID: cat.ID, Title: "壁掛け"})
		require.NoError(t, err)
		detail, err := q.CreateServiceDetail(ctx, CreateServiceDetailParams{
			ItemID: item.ID, Label: "料金", LabelColor: "default", LabelSize: "sm", LabelAlign: "left",
			ValueColor: "default", ValueSize: "base", ValueAlign: "right",
		})
		require.NoError(t, err)

		require.NoError(t, q.DeleteServiceCategory(ctx, cat.ID))

		details, err := q.ListServiceDetails(ctx)
		require.NoError(t, err)
		for _, d := range details {
			assert.NotEqual(t, detail.ID, d.ID, "detail should be deleted with its category")
		}
	})

	t.Run("admin code is consumed once", func(t *testing.T) {
		hash := "test-hash-" + time.Now().Format("150405.000000")
		require.NoError(t, q.CreateAdminCode(ctx, CreateAdminCodeParams{
			CodeHash: hash, ExpiresAt: Timestamptz(time.Now().Add(time.Minute)),
		}))

		_, err := q.ConsumeAdminCode(ctx, hash)
		require.NoError(t, err)
		_, err = q.ConsumeAdminCode(ctx, hash)
		assert.True(t, IsNotFound(err), "second consume err = %v", err)
	})

	t.Run("hero upsert", func(t *testing.T) {
		_, err := q.UpsertHeroSettings(ctx, UpsertHeroSettingsParams{ID: SingletonID, Title: "one"})
		require.NoError(t, err)
		hero, err := q.UpsertHeroSettings(ctx, UpsertHeroSettingsParams{ID: SingletonID, Title: "two"})
		require.NoError(t, err)
		assert.Equal(t, "two", hero.Title)
	})
}
