package enums

import "fmt"

// ItemKind tags what domain entity a carousel item points at.
type ItemKind string

const (
	ItemKindVideo    ItemKind = "video"
	ItemKindAlbum    ItemKind = "album"
	ItemKindRecipe   ItemKind = "recipe"
	ItemKindProduct  ItemKind = "product"
	ItemKindPlaylist ItemKind = "playlist"
	ItemKindTikTok   ItemKind = "tiktok"
	ItemKindExternal ItemKind = "external"
)

var validItemKinds = []ItemKind{
	ItemKindVideo,
	ItemKindAlbum,
	ItemKindRecipe,
	ItemKindProduct,
	ItemKindPlaylist,
	ItemKindTikTok,
	ItemKindExternal,
}

// String returns the literal string for the kind.
func (k ItemKind) String() string {
	return string(k)
}

// IsValid reports whether the kind is known.
func (k ItemKind) IsValid() bool {
	for _, candidate := range validItemKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseItemKind converts raw input into an ItemKind.
func ParseItemKind(value string) (ItemKind, error) {
	for _, candidate := range validItemKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item kind %q", value)
}
