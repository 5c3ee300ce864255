package api

import (
	"context"
	"net/http"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/db"
	"github.com/jackc/pgx/v5/pgtype"
)

type areaBody struct {
	Title   string  `json:"title"`
	Regions string  `json:"regions"`
	Note    string  `json:"note"`
	Order   flexInt `json:"order"`
}

func listAreasHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := cfg.Queries.ListServiceAreas(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(areas))
	}
}

func createAreaHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body areaBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		area, err := cfg.Queries.CreateServiceArea(r.Context(), db.CreateServiceAreaParams{
			Title:   body.Title,
			Regions: body.Regions,
			Note:    body.Note,
			Order:   int32(body.Order),
		})
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, area)
	}
}

func updateAreaHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		var body areaBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		area, err := cfg.Queries.UpdateServiceArea(r.Context(), db.UpdateServiceAreaParams{
			ID:      id,
			Title:   body.Title,
			Regions: body.Regions,
			Note:    body.Note,
			Order:   int32(body.Order),
		})
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}
		writeJSON(w, http.StatusOK, area)
	}
}

func deleteAreaHandler(cfg *Config) http.HandlerFunc {
	return deleteByID(cfg.Queries.DeleteServiceArea)
}

// deleteByID adapts a plain delete query to a DELETE /{id} handler.
func deleteByID(del func(ctx context.Context, id pgtype.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		if err := del(r.Context(), id); err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeSuccess(w)
	}
}

type menuBody struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	PriceNote   string  `json:"priceNote"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Features    string  `json:"features"`
	IsPopular   bool    `json:"isPopular"`
	Order       flexInt `json:"order"`
	Link        string  `json:"link"`
}

func listMenusHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		menus, err := cfg.Queries.ListServiceMenus(r.Context())
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, nonNil(menus))
	}
}

func createMenuHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body menuBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		if body.Unit == "" {
			body.Unit = db.DefaultMenuUnit
		}
		if body.Link == "" {
			body.Link = db.DefaultMenuLink
		}

		menu, err := cfg.Queries.CreateServiceMenu(r.Context(), db.CreateServiceMenuParams{
			Title:       body.Title,
			Price:       body.Price,
			PriceNote:   body.PriceNote,
			Unit:        body.Unit,
			Description: body.Description,
			Features:    body.Features,
			IsPopular:   body.IsPopular,
			Order:       int32(body.Order),
			Link:        body.Link,
		})
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, menu)
	}
}

func updateMenuHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		var body menuBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		menu, err := cfg.Queries.UpdateServiceMenu(r.Context(), db.UpdateServiceMenuParams{
			ID:          id,
			Title:       body.Title,
			Price:       body.Price,
			PriceNote:   body.PriceNote,
			Unit:        body.Unit,
			Description: body.Description,
			Features:    body.Features,
			IsPopular:   body.IsPopular,
			Order:       int32(body.Order),
			Link:        body.Link,
		})
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}
		writeJSON(w, http.StatusOK, menu)
	}
}

func deleteMenuHandler(cfg *Config) http.HandlerFunc {
	return deleteByID(cfg.Queries.DeleteServiceMenu)
}

// Service tree nodes. The embedded rows keep their own JSON fields.

type ServiceItemNode struct {
	db.ServiceItem
	Details []db.ServiceDetail `json:"details"`
}

type ServiceCategoryNode struct {
	db.ServiceCategory
	Items []ServiceItemNode `json:"items"`
}

// BuildServiceTree nests items under categories and details under items.
// Input order is kept at every level; orphaned rows are dropped.
func BuildServiceTree(cats []db.ServiceCategory, items []db.ServiceItem, details []db.ServiceDetail) []ServiceCategoryNode {
	byItem := make(map[[16]byte][]db.ServiceDetail)
	for _, d := range details {
		byItem[d.ItemID.Bytes] = append(byItem[d.ItemID.Bytes], d)
	}

	byCategory := make(map[[16]byte][]ServiceItemNode)
	for _, it := range items {
		node := ServiceItemNode{ServiceItem: it, Details: nonNil(byItem[it.ID.Bytes])}
		byCategory[it.CategoryID.Bytes] = append(byCategory[it.CategoryID.Bytes], node)
	}

	tree := make([]ServiceCategoryNode, 0, len(cats))
	for _, c := range cats {
		tree = append(tree, ServiceCategoryNode{ServiceCategory: c, Items: nonNil(byCategory[c.ID.Bytes])})
	}
	return tree
}

func serviceTreeHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cats, err := cfg.Queries.ListServiceCategories(ctx)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		items, err := cfg.Queries.ListServiceItems(ctx)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		details, err := cfg.Queries.ListServiceDetails(ctx)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, BuildServiceTree(cats, items, details))
	}
}

const (
	nodeCategory = "category"
	nodeItem     = "item"
	nodeDetail   = "detail"
)

var errInvalidType = apperror.WithMessage(apperror.ErrBadRequest, "Invalid type")

// serviceNodeBody is the union payload of /api/services mutations; type
// selects which fields apply.
type serviceNodeBody struct {
	Type  string  `json:"type"`
	ID    string  `json:"id"`
	Order flexInt `json:"order"`

	Title         string `json:"title"`
	SubTitle      string `json:"subTitle"`
	RegularPrice  string `json:"regularPrice"`
	DiscountPrice string `json:"discountPrice"`
	CategoryID    string `json:"categoryId"`

	ItemID     string `json:"itemId"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	IsPrice    bool   `json:"isPrice"`
	IsNote     bool   `json:"isNote"`
	LabelColor string `json:"labelColor"`
	LabelSize  string `json:"labelSize"`
	LabelAlign string `json:"labelAlign"`
	ValueColor string `json:"valueColor"`
	ValueSize  string `json:"valueSize"`
	ValueAlign string `json:"valueAlign"`
}

// applyDetailDefaults fills empty style fields for new details.
func (b *serviceNodeBody) applyDetailDefaults() {
	style := db.DetailStyle{
		LabelColor: b.LabelColor,
		LabelSize:  b.LabelSize,
		LabelAlign: b.LabelAlign,
		ValueColor: b.ValueColor,
		ValueSize:  b.ValueSize,
		ValueAlign: b.ValueAlign,
	}.WithDefaults()
	b.LabelColor, b.LabelSize, b.LabelAlign = style.LabelColor, style.LabelSize, style.LabelAlign
	b.ValueColor, b.ValueSize, b.ValueAlign = style.ValueColor, style.ValueSize, style.ValueAlign
}

func parseRef(raw, field string) (pgtype.UUID, error) {
	id, err := db.ParseUUID(raw)
	if err != nil {
		return pgtype.UUID{}, apperror.WrapWithMessage(err, apperror.ErrBadRequest.Code, "Invalid "+field, http.StatusBadRequest)
	}
	return id, nil
}

func createServiceNodeHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body serviceNodeBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		ctx := r.Context()
		var (
			created any
			err     error
		)
		switch body.Type {
		case nodeCategory:
			created, err = cfg.Queries.CreateServiceCategory(ctx, db.CreateServiceCategoryParams{
				Title: body.Title,
				Order: int32(body.Order),
			})
		case nodeItem:
			categoryID, perr := parseRef(body.CategoryID, "categoryId")
			if perr != nil {
				apperror.WriteJSON(w, r, perr)
				return
			}
			created, err = cfg.Queries.CreateServiceItem(ctx, db.CreateServiceItemParams{
				CategoryID:    categoryID,
				Title:         body.Title,
				SubTitle:      body.SubTitle,
				RegularPrice:  body.RegularPrice,
				DiscountPrice: body.DiscountPrice,
				Order:         int32(body.Order),
			})
		case nodeDetail:
			itemID, perr := parseRef(body.ItemID, "itemId")
			if perr != nil {
				apperror.WriteJSON(w, r, perr)
				return
			}
			body.applyDetailDefaults()
			created, err = cfg.Queries.CreateServiceDetail(ctx, db.CreateServiceDetailParams{
				ItemID:     itemID,
				Label:      body.Label,
				Value:      body.Value,
				IsPrice:    body.IsPrice,
				IsNote:     body.IsNote,
				LabelColor: body.LabelColor,
				LabelSize:  body.LabelSize,
				LabelAlign: body.LabelAlign,
				ValueColor: body.ValueColor,
				ValueSize:  body.ValueSize,
				ValueAlign: body.ValueAlign,
				Order:      int32(body.Order),
			})
		default:
			apperror.WriteJSON(w, r, errInvalidType)
			return
		}
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeJSON(w, http.StatusOK, created)
	}
}

// updateServiceNodeHandler never moves a node to another parent.
func updateServiceNodeHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body serviceNodeBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		id, err := db.ParseUUID(body.ID)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrNotFound))
			return
		}

		ctx := r.Context()
		var updated any
		switch body.Type {
		case nodeCategory:
			updated, err = cfg.Queries.UpdateServiceCategory(ctx, db.UpdateServiceCategoryParams{
				ID:    id,
				Title: body.Title,
				Order: int32(body.Order),
			})
		case nodeItem:
			updated, err = cfg.Queries.UpdateServiceItem(ctx, db.UpdateServiceItemParams{
				ID:            id,
				Title:         body.Title,
				SubTitle:      body.SubTitle,
				RegularPrice:  body.RegularPrice,
				DiscountPrice: body.DiscountPrice,
				Order:         int32(body.Order),
			})
		case nodeDetail:
			body.applyDetailDefaults()
			updated, err = cfg.Queries.UpdateServiceDetail(ctx, db.UpdateServiceDetailParams{
				ID:         id,
				Label:      body.Label,
				Value:      body.Value,
				IsPrice:    body.IsPrice,
				IsNote:     body.IsNote,
				LabelColor: body.LabelColor,
				LabelSize:  body.LabelSize,
				LabelAlign: body.LabelAlign,
				ValueColor: body.ValueColor,
				ValueSize:  body.ValueSize,
				ValueAlign: body.ValueAlign,
				Order:      int32(body.Order),
			})
		default:
			apperror.WriteJSON(w, r, errInvalidType)
			return
		}
		if err != nil {
			apperror.WriteJSON(w, r, lookupErr(err))
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteServiceNodeHandler relies on cascading foreign keys to remove a
// node's children.
func deleteServiceNodeHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body serviceNodeBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		var del func(context.Context, pgtype.UUID) error
		switch body.Type {
		case nodeCategory:
			del = cfg.Queries.DeleteServiceCategory
		case nodeItem:
			del = cfg.Queries.DeleteServiceItem
		case nodeDetail:
			del = cfg.Queries.DeleteServiceDetail
		default:
			apperror.WriteJSON(w, r, errInvalidType)
			return
		}

		id, err := db.ParseUUID(body.ID)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrNotFound))
			return
		}
		if err := del(r.Context(), id); err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrInternal))
			return
		}
		writeSuccess(w)
	}
}
