package http

import (
	"wardrobe-assistant/internal/model"
	"wardrobe-assistant/internal/wardrobe"
	"wardrobe-assistant/pkg/response"
)

// --- Request DTOs ---

type itemReq struct {
	Name        string   `json:"name"        binding:"required,min=1,max=255"`
	Category    string   `json:"category"    binding:"required"`
	Subcategory string   `json:"subcategory" binding:"max=255"`
	Colors      []string `json:"colors"      binding:"required,min=1"`
	Seasons     []string `json:"seasons"`
	Occasions   []string `json:"occasions"`
	Brand       string   `json:"brand"       binding:"max=255"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
}

func (r itemReq) toInput() wardrobe.AddItemInput {
	return wardrobe.AddItemInput{
		Name:        r.Name,
		Category:    model.Category(r.Category),
		Subcategory: r.Subcategory,
		Colors:      r.Colors,
		Seasons:     toSeasons(r.Seasons),
		Occasions:   toOccasions(r.Occasions),
		Brand:       r.Brand,
		Tags:        r.Tags,
		ImageURL:    r.ImageURL,
	}
}

type sharedItemReq struct {
	itemReq
	OriginUserID string `json:"origin_user_id" binding:"required"`
	OriginItemID string `json:"origin_item_id" binding:"required"`
}

func (r sharedItemReq) toInput() wardrobe.AddSharedItemInput {
	return wardrobe.AddSharedItemInput{
		AddItemInput: r.itemReq.toInput(),
		OriginUserID: r.OriginUserID,
		OriginItemID: r.OriginItemID,
	}
}

type updateItemReq struct {
	ID string `json:"-"` // populated from URI param
	itemReq
	Available bool `json:"available"`
}

func (r updateItemReq) toInput() wardrobe.UpdateItemInput {
	in := r.itemReq.toInput()
	return wardrobe.UpdateItemInput{
		ID:          r.ID,
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Colors:      in.Colors,
		Seasons:     in.Seasons,
		Occasions:   in.Occasions,
		Brand:       in.Brand,
		Tags:        in.Tags,
		ImageURL:    in.ImageURL,
		Available:   r.Available,
	}
}

type filterReq struct {
	Category  string `form:"category"`
	Season    string `form:"season"`
	Occasion  string `form:"occasion"`
	Color     string `form:"color"`
	Available *bool  `form:"available"`
}

func (r filterReq) toCriteria() wardrobe.FilterCriteria {
	return wardrobe.FilterCriteria{
		Category:  model.Category(r.Category),
		Season:    model.Season(r.Season),
		Occasion:  model.Occasion(r.Occasion),
		Color:     r.Color,
		Available: r.Available,
	}
}

type createOutfitReq struct {
	Name     string   `json:"name"     binding:"required,min=1,max=255"`
	ItemIDs  []string `json:"item_ids" binding:"required,min=1"`
	Occasion string   `json:"occasion"`
	Season   string   `json:"season"`
}

func (r createOutfitReq) toInput() wardrobe.CreateOutfitInput {
	return wardrobe.CreateOutfitInput{
		Name:     r.Name,
		ItemIDs:  r.ItemIDs,
		Occasion: model.Occasion(r.Occasion),
		Season:   model.Season(r.Season),
	}
}

type rateOutfitReq struct {
	OutfitID string `json:"-"` // populated from URI param
	Rating   int    `json:"rating" binding:"required"`
}

type saveAvatarReq struct {
	Gender         string `json:"gender"          binding:"max=64"`
	BodyType       string `json:"body_type"       binding:"required"`
	SkinTone       string `json:"skin_tone"       binding:"max=64"`
	BaseDescriptor string `json:"base_descriptor" binding:"required,min=1,max=2000"`
}

func (r saveAvatarReq) toInput() wardrobe.SaveAvatarInput {
	return wardrobe.SaveAvatarInput{
		Gender:         r.Gender,
		BodyType:       model.BodyType(r.BodyType),
		SkinTone:       r.SkinTone,
		BaseDescriptor: r.BaseDescriptor,
	}
}

// --- Response DTOs ---

type provenanceResp struct {
	OriginUserID string        `json:"origin_user_id"`
	OriginItemID string        `json:"origin_item_id"`
	ReceivedAt   response.Date `json:"received_at"`
}

type itemResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory,omitempty"`
	Colors      []string          `json:"colors"`
	Seasons     []string          `json:"seasons,omitempty"`
	Occasions   []string          `json:"occasions,omitempty"`
	Brand       string            `json:"brand,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	Available   bool              `json:"available"`
	CreatedAt   response.DateTime `json:"created_at"`
	Provenance  *provenanceResp   `json:"provenance,omitempty"`
}

func newItemResp(item model.ClothingItem) itemResp {
	resp := itemResp{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Subcategory: item.Subcategory,
		Colors:      item.Colors,
		Seasons:     fromSeasons(item.Seasons),
		Occasions:   fromOccasions(item.Occasions),
		Brand:       item.Brand,
		Tags:        item.Tags,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   response.DateTime(item.CreatedAt),
	}
	if item.Provenance != nil {
		resp.Provenance = &provenanceResp{
			OriginUserID: item.Provenance.OriginUserID,
			OriginItemID: item.Provenance.OriginItemID,
			ReceivedAt:   response.Date(item.Provenance.ReceivedAt),
		}
	}
	return resp
}

type itemsResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func newItemsResp(items []model.ClothingItem) itemsResp {
	out := make([]itemResp, len(items))
	for i, item := range items {
		out[i] = newItemResp(item)
	}
	return itemsResp{Items: out, Total: len(out)}
}

type outfitResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Items     []itemResp        `json:"items"`
	Occasion  string            `json:"occasion,omitempty"`
	Season    string            `json:"season,omitempty"`
	Generated bool              `json:"generated"`
	Rating    *int              `json:"rating,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newOutfitResp(outfit model.Outfit) outfitResp {
	items := make([]itemResp, len(outfit.Items))
	for i, item := range outfit.Items {
		items[i] = newItemResp(item)
	}
	return outfitResp{
		ID:        outfit.ID,
		Name:      outfit.Name,
		Items:     items,
		Occasion:  string(outfit.Occasion),
		Season:    string(outfit.Season),
		Generated: outfit.Generated,
		Rating:    outfit.Rating,
		CreatedAt: response.DateTime(outfit.CreatedAt),
	}
}

type outfitsResp struct {
	Outfits []outfitResp `json:"outfits"`
	Total   int          `json:"total"`
}

func newOutfitsResp(outfits []model.Outfit) outfitsResp {
	out := make([]outfitResp, len(outfits))
	for i, outfit := range outfits {
		out[i] = newOutfitResp(outfit)
	}
	return outfitsResp{Outfits: out, Total: len(out)}
}

type avatarResp struct {
	ID             string            `json:"id"`
	Gender         string            `json:"gender,omitempty"`
	BodyType       string            `json:"body_type"`
	SkinTone       string            `json:"skin_tone,omitempty"`
	BaseDescriptor string            `json:"base_descriptor"`
	Active         bool              `json:"active"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newAvatarResp(avatar model.AvatarProfile) avatarResp {
	return avatarResp{
		ID:             avatar.ID,
		Gender:         avatar.Gender,
		BodyType:       string(avatar.BodyType),
		SkinTone:       avatar.SkinTone,
		BaseDescriptor: avatar.BaseDescriptor,
		Active:         avatar.Active,
		CreatedAt:      response.DateTime(avatar.CreatedAt),
	}
}

type associationResp struct {
	ID             string            `json:"id"`
	AvatarID       string            `json:"avatar_id"`
	ClothingItemID string            `json:"clothing_item_id"`
	LayerOrder     int               `json:"layer_order"`
	Descriptor     string            `json:"descriptor"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newAssociationResp(assoc model.ClothingOnAvatar) associationResp {
	return associationResp{
		ID:             assoc.ID,
		AvatarID:       assoc.AvatarID,
		ClothingItemID: assoc.ClothingItemID,
		LayerOrder:     assoc.LayerOrder,
		Descriptor:     assoc.Descriptor,
		CreatedAt:      response.DateTime(assoc.CreatedAt),
	}
}

type tryOnResp struct {
	Association associationResp `json:"association"`
	Item        itemResp        `json:"item"`
}

type associationsResp struct {
	Associations []associationResp `json:"associations"`
}

type statsResp struct {
	TotalItems      int            `json:"total_items"`
	TotalOutfits    int            `json:"total_outfits"`
	ItemsByCategory map[string]int `json:"items_by_category"`
	ItemsByColor    map[string]int `json:"items_by_color"`
	RecentItems     []itemResp     `json:"recent_items"`
}

func newStatsResp(stats model.WardrobeStats) statsResp {
	byCategory := make(map[string]int, len(stats.ItemsByCategory))
	for category, count := range stats.ItemsByCategory {
		byCategory[string(category)] = count
	}
	recent := make([]itemResp, len(stats.RecentItems))
	for i, item := range stats.RecentItems {
		recent[i] = newItemResp(item)
	}
	return statsResp{
		TotalItems:      stats.TotalItems,
		TotalOutfits:    stats.TotalOutfits,
		ItemsByCategory: byCategory,
		ItemsByColor:    stats.ItemsByColor,
		RecentItems:     recent,
	}
}

type exportResp struct {
	Items        []itemResp        `json:"items"`
	Outfits      []outfitResp      `json:"outfits"`
	Avatar       *avatarResp       `json:"avatar,omitempty"`
	Associations []associationResp `json:"associations"`
	ExportedAt   response.DateTime `json:"exported_at"`
}

func newExportResp(out wardrobe.ExportOutput) exportResp {
	resp := exportResp{
		Items:        newItemsResp(out.Items).Items,
		Outfits:      newOutfitsResp(out.Outfits).Outfits,
		Associations: make([]associationResp, len(out.Associations)),
		ExportedAt:   response.DateTime(out.ExportedAt),
	}
	for i, assoc := range out.Associations {
		resp.Associations[i] = newAssociationResp(assoc)
	}
	if out.Avatar != nil {
		avatar := newAvatarResp(*out.Avatar)
		resp.Avatar = &avatar
	}
	return resp
}

func toSeasons(raw []string) []model.Season {
	out := make([]model.Season, len(raw))
	for i, s := range raw {
		out[i] = model.Season(s)
	}
	return out
}

func fromSeasons(seasons []model.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func toOccasions(raw []string) []model.Occasion {
	out := make([]model.Occasion, len(raw))
	for i, o := range raw {
		out[i] = model.Occasion(o)
	}
	return out
}

func fromOccasions(occasions []model.Occasion) []string {
	out := make([]string, len(occasions))
	for i, o := range occasions {
		out[i] = string(o)
	}
	return out
}
