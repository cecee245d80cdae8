package closetapi

import (
	"time"

	"wardrobe-assistant/internal/model"
)

type provenanceDTO struct {
	OriginUserID string    `json:"origin_user_id"`
	OriginItemID string    `json:"origin_item_id"`
	ReceivedAt   time.Time `json:"received_at"`
}

type itemDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Subcategory string         `json:"subcategory,omitempty"`
	Colors      []string       `json:"colors"`
	Seasons     []string       `json:"seasons,omitempty"`
	Occasions   []string       `json:"occasions,omitempty"`
	Brand       string         `json:"brand,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Available   bool           `json:"available"`
	CreatedAt   time.Time      `json:"created_at"`
	Provenance  *provenanceDTO `json:"provenance,omitempty"`
}

type outfitDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Items     []itemDTO `json:"items"`
	Occasion  string    `json:"occasion,omitempty"`
	Season    string    `json:"season,omitempty"`
	Generated bool      `json:"generated"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type avatarDTO struct {
	ID             string    `json:"id"`
	Gender         string    `json:"gender"`
	BodyType       string    `json:"body_type"`
	SkinTone       string    `json:"skin_tone"`
	BaseDescriptor string    `json:"base_descriptor"`
	CreatedAt      time.Time `json:"created_at"`
	Active         bool      `json:"active"`
}

type associationDTO struct {
	ID             string    `json:"id"`
	AvatarID       string    `json:"avatar_id"`
	ClothingItemID string    `json:"clothing_item_id"`
	LayerOrder     int       `json:"layer_order"`
	Descriptor     string    `json:"descriptor"`
	CreatedAt      time.Time `json:"created_at"`
}

func toItemDTO(item model.ClothingItem) itemDTO {
	dto := itemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Category:    string(item.Category),
		Subcategory: item.Subcategory,
		Colors:      item.Colors,
		Seasons:     stringsFromSeasons(item.Seasons),
		Occasions:   stringsFromOccasions(item.Occasions),
		Brand:       item.Brand,
		Tags:        item.Tags,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
	if item.Provenance != nil {
		dto.Provenance = &provenanceDTO{
			OriginUserID: item.Provenance.OriginUserID,
			OriginItemID: item.Provenance.OriginItemID,
			ReceivedAt:   item.Provenance.ReceivedAt,
		}
	}
	return dto
}

func fromItemDTO(dto itemDTO) model.ClothingItem {
	item := model.ClothingItem{
		ID:          dto.ID,
		Name:        dto.Name,
		Category:    model.Category(dto.Category),
		Subcategory: dto.Subcategory,
		Colors:      dto.Colors,
		Seasons:     seasonsFromStrings(dto.Seasons),
		Occasions:   occasionsFromStrings(dto.Occasions),
		Brand:       dto.Brand,
		Tags:        dto.Tags,
		ImageURL:    dto.ImageURL,
		Available:   dto.Available,
		CreatedAt:   dto.CreatedAt,
	}
	if dto.Provenance != nil {
		item.Provenance = &model.Provenance{
			OriginUserID: dto.Provenance.OriginUserID,
			OriginItemID: dto.Provenance.OriginItemID,
			ReceivedAt:   dto.Provenance.ReceivedAt,
		}
	}
	return item
}

func toOutfitDTO(outfit model.Outfit) outfitDTO {
	items := make([]itemDTO, len(outfit.Items))
	for i, item := range outfit.Items {
		items[i] = toItemDTO(item)
	}
	return outfitDTO{
		ID:        outfit.ID,
		Name:      outfit.Name,
		Items:     items,
		Occasion:  string(outfit.Occasion),
		Season:    string(outfit.Season),
		Generated: outfit.Generated,
		Rating:    outfit.Rating,
		CreatedAt: outfit.CreatedAt,
	}
}

func fromOutfitDTO(dto outfitDTO) model.Outfit {
	items := make([]model.ClothingItem, len(dto.Items))
	for i, item := range dto.Items {
		items[i] = fromItemDTO(item)
	}
	return model.Outfit{
		ID:        dto.ID,
		Name:      dto.Name,
		Items:     items,
		Occasion:  model.Occasion(dto.Occasion),
		Season:    model.Season(dto.Season),
		Generated: dto.Generated,
		Rating:    dto.Rating,
		CreatedAt: dto.CreatedAt,
	}
}

func toAvatarDTO(avatar model.AvatarProfile) avatarDTO {
	return avatarDTO{
		ID:             avatar.ID,
		Gender:         avatar.Gender,
		BodyType:       string(avatar.BodyType),
		SkinTone:       avatar.SkinTone,
		BaseDescriptor: avatar.BaseDescriptor,
		CreatedAt:      avatar.CreatedAt,
		Active:         avatar.Active,
	}
}

func fromAvatarDTO(dto avatarDTO) model.AvatarProfile {
	return model.AvatarProfile{
		ID:             dto.ID,
		Gender:         dto.Gender,
		BodyType:       model.BodyType(dto.BodyType),
		SkinTone:       dto.SkinTone,
		BaseDescriptor: dto.BaseDescriptor,
		CreatedAt:      dto.CreatedAt,
		Active:         dto.Active,
	}
}

func toAssociationDTO(assoc model.ClothingOnAvatar) associationDTO {
	return associationDTO{
		ID:             assoc.ID,
		AvatarID:       assoc.AvatarID,
		ClothingItemID: assoc.ClothingItemID,
		LayerOrder:     assoc.LayerOrder,
		Descriptor:     assoc.Descriptor,
		CreatedAt:      assoc.CreatedAt,
	}
}

func fromAssociationDTO(dto associationDTO) model.ClothingOnAvatar {
	return model.ClothingOnAvatar{
		ID:             dto.ID,
		AvatarID:       dto.AvatarID,
		ClothingItemID: dto.ClothingItemID,
		LayerOrder:     dto.LayerOrder,
		Descriptor:     dto.Descriptor,
		CreatedAt:      dto.CreatedAt,
	}
}

func stringsFromSeasons(seasons []model.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func seasonsFromStrings(raw []string) []model.Season {
	out := make([]model.Season, len(raw))
	for i, s := range raw {
		out[i] = model.Season(s)
	}
	return out
}

func stringsFromOccasions(occasions []model.Occasion) []string {
	out := make([]string, len(occasions))
	for i, o := range occasions {
		out[i] = string(o)
	}
	return out
}

func occasionsFromStrings(raw []string) []model.Occasion {
	out := make([]model.Occasion, len(raw))
	for i, o := range raw {
		out[i] = model.Occasion(o)
	}
	return out
}
