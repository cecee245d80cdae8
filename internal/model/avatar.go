package model

import "time"

// BodyType is the closed set of avatar body types.
type BodyType string

const (
	BodyTypeSlim     BodyType = "slim"
	BodyTypeAthletic BodyType = "athletic"
	BodyTypeAverage  BodyType = "average"
	BodyTypeCurvy    BodyType = "curvy"
	BodyTypePlus     BodyType = "plus"
)

// AllBodyTypes lists every valid body type.
var AllBodyTypes = []BodyType{
	BodyTypeSlim,
	BodyTypeAthletic,
	BodyTypeAverage,
	BodyTypeCurvy,
	BodyTypePlus,
}

// Valid reports whether b is a member of the closed body type set.
func (b BodyType) Valid() bool {
	for _, known := range AllBodyTypes {
		if b == known {
			return true
		}
	}
	return false
}

// AvatarProfile is the user's rendering avatar. BaseDescriptor seeds every
// future render of this avatar. At most one avatar is active per user.
type AvatarProfile struct {
	ID             string
	Gender         string
	BodyType       BodyType
	SkinTone       string
	BaseDescriptor string
	CreatedAt      time.Time
	Active         bool
}

// ClothingOnAvatar associates one clothing item with an avatar. One
// association exists per (avatar, item) pair.
type ClothingOnAvatar struct {
	ID             string
	AvatarID       string
	ClothingItemID string
	LayerOrder     int
	Descriptor     string
	CreatedAt      time.Time
}

// LayerOrder maps a category to its stacking rank when composing an avatar
// descriptor. The mapping is fixed: underwear sits below everything, then
// main garments, outerwear, shoes, and accessories on top.
func LayerOrder(c Category) int {
	switch c {
	case CategoryUnderwear:
		return 1
	case CategoryTop, CategoryBottom, CategoryDress:
		return 2
	case CategoryOuterwear:
		return 3
	case CategoryShoes:
		return 4
	case CategoryAccessories:
		return 5
	default:
		return 2
	}
}
