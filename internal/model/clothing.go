package model

import "time"

// Category is the closed set of clothing categories.
type Category string

const (
	CategoryTop         Category = "top"
	CategoryBottom      Category = "bottom"
	CategoryDress       Category = "dress"
	CategoryShoes       Category = "shoes"
	CategoryOuterwear   Category = "outerwear"
	CategoryAccessories Category = "accessories"
	CategoryUnderwear   Category = "underwear"
)

// AllCategories lists every valid category.
var AllCategories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryDress,
	CategoryShoes,
	CategoryOuterwear,
	CategoryAccessories,
	CategoryUnderwear,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Season is the closed set of wearing seasons.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// AllSeasons lists every valid season.
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is a member of the closed season set.
func (s Season) Valid() bool {
	for _, known := range AllSeasons {
		if s == known {
			return true
		}
	}
	return false
}

// Occasion is the closed set of wearing occasions.
type Occasion string

const (
	OccasionCasual Occasion = "casual"
	OccasionFormal Occasion = "formal"
	OccasionWork   Occasion = "work"
	OccasionParty  Occasion = "party"
	OccasionSport  Occasion = "sport"
	OccasionTravel Occasion = "travel"
)

// AllOccasions lists every valid occasion.
var AllOccasions = []Occasion{
	OccasionCasual,
	OccasionFormal,
	OccasionWork,
	OccasionParty,
	OccasionSport,
	OccasionTravel,
}

// Valid reports whether o is a member of the closed occasion set.
func (o Occasion) Valid() bool {
	for _, known := range AllOccasions {
		if o == known {
			return true
		}
	}
	return false
}

// Provenance records where a shared clothing item came from. A shared item is
// always a ClothingItem plus provenance, never the reverse.
type Provenance struct {
	OriginUserID string
	OriginItemID string
	ReceivedAt   time.Time
}

// ClothingItem is a single garment in the wardrobe. Identity is immutable;
// everything else is replaced wholesale via update-by-id.
type ClothingItem struct {
	ID          string
	Name        string
	Category    Category
	Subcategory string
	Colors      []string // ordered, never empty
	Seasons     []Season
	Occasions   []Occasion
	Brand       string
	Tags        []string
	ImageURL    string
	Available   bool
	CreatedAt   time.Time

	// Provenance is set only for items received from another user.
	Provenance *Provenance
}

// Shared reports whether the item was received from another user.
func (i ClothingItem) Shared() bool {
	return i.Provenance != nil
}
