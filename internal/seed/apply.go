package seed

import (
	"context"
	"fmt"

	"github.com/brightofhouse/site/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries is the subset of db.Querier the seeder writes through.
type Queries interface {
	GetHeroSettings(ctx context.Context, id string) (db.HeroSetting, error)
	UpsertHeroSettings(ctx context.Context, arg db.UpsertHeroSettingsParams) (db.HeroSetting, error)
	GetCompanyProfile(ctx context.Context, id string) (db.CompanyProfile, error)
	UpsertCompanyProfile(ctx context.Context, arg db.UpsertCompanyProfileParams) (db.CompanyProfile, error)

	CountServiceAreas(ctx context.Context) (int64, error)
	ListServiceAreas(ctx context.Context) ([]db.ServiceArea, error)
	CreateServiceArea(ctx context.Context, arg db.CreateServiceAreaParams) (db.ServiceArea, error)
	DeleteServiceArea(ctx context.Context, id pgtype.UUID) error

	CountServiceMenus(ctx context.Context) (int64, error)
	ListServiceMenus(ctx context.Context) ([]db.ServiceMenu, error)
	CreateServiceMenu(ctx context.Context, arg db.CreateServiceMenuParams) (db.ServiceMenu, error)
	DeleteServiceMenu(ctx context.Context, id pgtype.UUID) error

	CountServiceCategories(ctx context.Context) (int64, error)
	ListServiceCategories(ctx context.Context) ([]db.ServiceCategory, error)
	CreateServiceCategory(ctx context.Context, arg db.CreateServiceCategoryParams) (db.ServiceCategory, error)
	DeleteServiceCategory(ctx context.Context, id pgtype.UUID) error
	CreateServiceItem(ctx context.Context, arg db.CreateServiceItemParams) (db.ServiceItem, error)
	CreateServiceDetail(ctx context.Context, arg db.CreateServiceDetailParams) (db.ServiceDetail, error)
}

var _ Queries = (db.Querier)(nil)

// Result reports one section. Skipped sections already had content and
// force was off.
type Result struct {
	Section string `json:"section"`
	Rows    int    `json:"rows"`
	Skipped bool   `json:"skipped"`
}

// Apply writes c section by section. Without force a section that already
// holds rows is left alone. With force, list sections are replaced and the
// settings rows are overwritten. Callers wanting all-or-nothing pass
// transaction-bound queries.
func Apply(ctx context.Context, q Queries, c *Content, force bool) ([]Result, error) {
	steps := []struct {
		section string
		present bool
		run     func(context.Context, Queries, *Content, bool) (Result, error)
	}{
		{"hero", c.Hero != nil, applyHero},
		{"company", c.Company != nil, applyCompany},
		{"areas", len(c.Areas) > 0, applyAreas},
		{"menus", len(c.Menus) > 0, applyMenus},
		{"services", len(c.Services) > 0, applyServices},
	}

	var results []Result
	for _, s := range steps {
		if !s.present {
			continue
		}
		res, err := s.run(ctx, q, c, force)
		if err != nil {
			return results, fmt.Errorf("seed %s: %w", s.section, err)
		}
		res.Section = s.section
		results = append(results, res)
	}
	return results, nil
}

// singletonExists treats not-found as absent and any other error as fatal.
func singletonExists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case db.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

func applyHero(ctx context.Context, q Queries, c *Content, force bool) (Result, error) {
	_, err := q.GetHeroSettings(ctx, db.SingletonID)
	exists, err := singletonExists(err)
	if err != nil {
		return Result{}, err
	}
	if exists && !force {
		return Result{Skipped: true}, nil
	}

	h := c.Hero
	_, err = q.UpsertHeroSettings(ctx, db.UpsertHeroSettingsParams{
		ID:           db.SingletonID,
		Title:        h.Title,
		Subtitle:     h.Subtitle,
		MobileHeight: h.MobileHeight,
		PcHeight:     h.PcHeight,
		Btn1Text:     h.Btn1Text,
		Btn1Link:     h.Btn1Link,
		Btn2Text:     h.Btn2Text,
		Btn2Link:     h.Btn2Link,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: 1}, nil
}

func applyCompany(ctx context.Context, q Queries, c *Content, force bool) (Result, error) {
	_, err := q.GetCompanyProfile(ctx, db.SingletonID)
	exists, err := singletonExists(err)
	if err != nil {
		return Result{}, err
	}
	if exists && !force {
		return Result{Skipped: true}, nil
	}

	p := c.Company
	_, err = q.UpsertCompanyProfile(ctx, db.UpsertCompanyProfileParams{
		ID:              db.SingletonID,
		Name:            p.Name,
		Representative:  p.Representative,
		Address:         p.Address,
		Tel:             p.Tel,
		BusinessContent: p.BusinessContent,
		BusinessHours:   p.BusinessHours,
		MapCode:         p.MapCode,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Rows: 1}, nil
}

// clearOrSkip reports whether the section should be skipped, deleting the
// existing rows first when force is set.
func clearOrSkip(ctx context.Context, count func(context.Context) (int64, error), reset func(context.Context) error, force bool) (bool, error) {
	n, err := count(ctx)
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if !force {
		return true, nil
	}
	return false, reset(ctx)
}

func applyAreas(ctx context.Context, q Queries, c *Content, force bool) (Result, error) {
	skip, err := clearOrSkip(ctx, q.CountServiceAreas, func(ctx context.Context) error {
		rows, err := q.ListServiceAreas(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			if err := q.DeleteServiceArea(ctx, r.ID); err != nil {
				return err
			}
		}
		return nil
	}, force)
	if err != nil || skip {
		return Result{Skipped: skip}, err
	}

	for i, a := range c.Areas {
		if _, err := q.CreateServiceArea(ctx, db.CreateServiceAreaParams{
			Title:   a.Title,
			Regions: a.Regions,
			Note:    a.Note,
			Order:   int32(i),
		}); err != nil {
			return Result{}, err
		}
	}
	return Result{Rows: len(c.Areas)}, nil
}

func applyMenus(ctx context.Context, q Queries, c *Content, force bool) (Result, error) {
	skip, err := clearOrSkip(ctx, q.CountServiceMenus, func(ctx context.Context) error {
		rows, err := q.ListServiceMenus(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			if err := q.DeleteServiceMenu(ctx, r.ID); err != nil {
				return err
			}
		}
		return nil
	}, force)
	if err != nil || skip {
		return Result{Skipped: skip}, err
	}

	for i, m := range c.Menus {
		unit, link := m.Unit, m.Link
		if unit == "" {
			unit = db.DefaultMenuUnit
		}
		if link == "" {
			link = db.DefaultMenuLink
		}
		if _, err := q.CreateServiceMenu(ctx, db.CreateServiceMenuParams{
			Title:       m.Title,
			Price:       m.Price,
			PriceNote:   m.PriceNote,
			Unit:        unit,
			Description: m.Description,
			Features:    m.Features,
			IsPopular:   m.IsPopular,
			Order:       int32(i),
			Link:        link,
		}); err != nil {
			return Result{}, err
		}
	}
	return Result{Rows: len(c.Menus)}, nil
}

// applyServices counts every category, item and detail row it writes.
// Deleting a category cascades to its items and details.
func applyServices(ctx context.Context, q Queries, c *Content, force bool) (Result, error) {
	skip, err := clearOrSkip(ctx, q.CountServiceCategories, func(ctx context.Context) error {
		rows, err := q.ListServiceCategories(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			if err := q.DeleteServiceCategory(ctx, r.ID); err != nil {
				return err
			}
		}
		return nil
	}, force)
	if err != nil || skip {
		return Result{Skipped: skip}, err
	}

	rows := 0
	for ci, cat := range c.Services {
		category, err := q.CreateServiceCategory(ctx, db.CreateServiceCategoryParams{Title: cat.Title, Order: int32(ci)})
		if err != nil {
			return Result{}, err
		}
		rows++

		for ii, it := range cat.Items {
			item, err := q.CreateServiceItem(ctx, db.CreateServiceItemParams{
				CategoryID:    category.ID,
				Title:         it.Title,
				SubTitle:      it.SubTitle,
				RegularPrice:  it.RegularPrice,
				DiscountPrice: it.DiscountPrice,
				Order:         int32(ii),
			})
			if err != nil {
				return Result{}, err
			}
			rows++

			for di, d := range it.Details {
				style := d.DetailStyle.WithDefaults()
				if _, err := q.CreateServiceDetail(ctx, db.CreateServiceDetailParams{
					ItemID:     item.ID,
					Label:      d.Label,
					Value:      d.Value,
					IsPrice:    d.IsPrice,
					IsNote:     d.IsNote,
					LabelColor: style.LabelColor,
					LabelSize:  style.LabelSize,
					LabelAlign: style.LabelAlign,
					ValueColor: style.ValueColor,
					ValueSize:  style.ValueSize,
					ValueAlign: style.ValueAlign,
					Order:      int32(di),
				}); err != nil {
					return Result{}, err
				}
				rows++
			}
		}
	}
	return Result{Rows: rows}, nil
}
