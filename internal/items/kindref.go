package items

import (
	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

// ItemRef is the tagged union of kind-specific references. Exactly one payload
// field is meaningful for a given Kind:
//
//	video              → VideoID (external platform video id)
//	album              → AlbumID
//	recipe, product,
//	playlist           → RefID (domain entity id)
//	tiktok, external   → LinkURL
type ItemRef struct {
	Kind    enums.ItemKind
	RefID   uuid.UUID
	AlbumID uuid.UUID
	VideoID string
	LinkURL string
}

// VideoRef builds a reference to an external video.
func VideoRef(videoID string) ItemRef {
	return ItemRef{Kind: enums.ItemKindVideo, VideoID: videoID}
}

// AlbumRef builds a reference to a photo album.
func AlbumRef(albumID uuid.UUID) ItemRef {
	return ItemRef{Kind: enums.ItemKindAlbum, AlbumID: albumID}
}

// EntityRef builds a reference to a recipe, product, or playlist.
func EntityRef(kind enums.ItemKind, refID uuid.UUID) ItemRef {
	return ItemRef{Kind: kind, RefID: refID}
}

// LinkRef builds a tiktok/external link reference.
func LinkRef(kind enums.ItemKind, url string) ItemRef {
	return ItemRef{Kind: kind, LinkURL: url}
}

// Validate checks that the mandatory reference field for the kind is present.
// The switch is exhaustive over the kind set; anything else is an unknown kind.
func (r ItemRef) Validate() error {
	switch r.Kind {
	case enums.ItemKindVideo:
		if r.VideoID == "" {
			return missingReference(r.Kind, "video_id")
		}
	case enums.ItemKindAlbum:
		if r.AlbumID == uuid.Nil {
			return missingReference(r.Kind, "album_id")
		}
	case enums.ItemKindRecipe, enums.ItemKindProduct, enums.ItemKindPlaylist:
		if r.RefID == uuid.Nil {
			return missingReference(r.Kind, "ref_id")
		}
	case enums.ItemKindTikTok, enums.ItemKindExternal:
		if r.LinkURL == "" {
			return missingReference(r.Kind, "link_url")
		}
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown item kind").
			WithDetails(map[string]any{"kind": r.Kind.String()})
	}
	return nil
}

func missingReference(kind enums.ItemKind, field string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "missing reference for item kind").
		WithDetails(map[string]any{"kind": kind.String(), "missing_field": field})
}

// ApplyTo writes the kind and the single matching reference column, clearing
// the others so reference exclusivity holds after kind changes.
func (r ItemRef) ApplyTo(item *models.CarouselItem) {
	item.Kind = r.Kind
	item.RefID = nil
	item.AlbumID = nil
	item.VideoID = nil
	item.LinkURL = nil

	switch r.Kind {
	case enums.ItemKindVideo:
		v := r.VideoID
		item.VideoID = &v
	case enums.ItemKindAlbum:
		id := r.AlbumID
		item.AlbumID = &id
	case enums.ItemKindRecipe, enums.ItemKindProduct, enums.ItemKindPlaylist:
		id := r.RefID
		item.RefID = &id
	case enums.ItemKindTikTok, enums.ItemKindExternal:
		u := r.LinkURL
		item.LinkURL = &u
	}
}

// RefFromModel rebuilds the tagged union from a persisted row.
func RefFromModel(item *models.CarouselItem) ItemRef {
	ref := ItemRef{Kind: item.Kind}
	if item.RefID != nil {
		ref.RefID = *item.RefID
	}
	if item.AlbumID != nil {
		ref.AlbumID = *item.AlbumID
	}
	if item.VideoID != nil {
		ref.VideoID = *item.VideoID
	}
	if item.LinkURL != nil {
		ref.LinkURL = *item.LinkURL
	}
	return ref
}

// MembershipKey returns the entity id used to look up membership rows, or
// uuid.Nil for kinds addressed by something other than an entity id.
func (r ItemRef) MembershipKey() uuid.UUID {
	switch r.Kind {
	case enums.ItemKindAlbum:
		return r.AlbumID
	case enums.ItemKindRecipe, enums.ItemKindProduct, enums.ItemKindPlaylist:
		return r.RefID
	default:
		return uuid.Nil
	}
}
