package model

import "time"

// Outfit is a named combination of clothing items. Items are copied by value
// at composition time; later edits to the wardrobe do not rewrite an outfit.
type Outfit struct {
	ID        string
	Name      string
	Items     []ClothingItem
	Occasion  Occasion
	Season    Season
	Generated bool // true when composed by the stylist pipeline
	Rating    *int // 1-5, nil until the user rates it
	CreatedAt time.Time
}

// WardrobeStats is derived from items and outfits, never stored independently.
type WardrobeStats struct {
	TotalItems      int
	TotalOutfits    int
	ItemsByCategory map[Category]int
	ItemsByColor    map[string]int
	RecentItems     []ClothingItem
}
