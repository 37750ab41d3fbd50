package items

import (
	"testing"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

func TestItemRefValidate(t *testing.T) {
	entityID := uuid.New()

	cases := []struct {
		name    string
		ref     ItemRef
		wantErr bool
	}{
		{name: "video with id", ref: VideoRef("yt-abc123"), wantErr: false},
		{name: "video missing id", ref: ItemRef{Kind: enums.ItemKindVideo}, wantErr: true},
		{name: "album with id", ref: AlbumRef(entityID), wantErr: false},
		{name: "album missing id", ref: ItemRef{Kind: enums.ItemKindAlbum}, wantErr: true},
		{name: "recipe with id", ref: EntityRef(enums.ItemKindRecipe, entityID), wantErr: false},
		{name: "recipe missing id", ref: ItemRef{Kind: enums.ItemKindRecipe}, wantErr: true},
		{name: "product with id", ref: EntityRef(enums.ItemKindProduct, entityID), wantErr: false},
		{name: "product missing id", ref: ItemRef{Kind: enums.ItemKindProduct}, wantErr: true},
		{name: "playlist with id", ref: EntityRef(enums.ItemKindPlaylist, entityID), wantErr: false},
		{name: "playlist missing id", ref: ItemRef{Kind: enums.ItemKindPlaylist}, wantErr: true},
		{name: "tiktok with url", ref: LinkRef(enums.ItemKindTikTok, "https://tiktok.com/@x/video/1"), wantErr: false},
		{name: "tiktok missing url", ref: ItemRef{Kind: enums.ItemKindTikTok}, wantErr: true},
		{name: "external with url", ref: LinkRef(enums.ItemKindExternal, "https://example.com"), wantErr: false},
		{name: "external missing url", ref: ItemRef{Kind: enums.ItemKindExternal}, wantErr: true},
		{name: "unknown kind", ref: ItemRef{Kind: enums.ItemKind("banner")}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ref.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				typed := pkgerrors.As(err)
				if typed == nil || typed.Code() != pkgerrors.CodeValidation {
					t.Fatalf("expected validation code, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestItemRefApplyToClearsOldReference(t *testing.T) {
	item := &models.CarouselItem{}

	albumID := uuid.New()
	AlbumRef(albumID).ApplyTo(item)
	if item.AlbumID == nil || *item.AlbumID != albumID {
		t.Fatal("expected album id to be set")
	}

	VideoRef("yt-xyz").ApplyTo(item)
	if item.AlbumID != nil {
		t.Fatal("expected album id to be cleared after kind change")
	}
	if item.VideoID == nil || *item.VideoID != "yt-xyz" {
		t.Fatal("expected video id to be set")
	}
	if item.Kind != enums.ItemKindVideo {
		t.Fatalf("expected kind video, got %s", item.Kind)
	}
}

func TestItemRefMembershipKey(t *testing.T) {
	entityID := uuid.New()

	if key := EntityRef(enums.ItemKindRecipe, entityID).MembershipKey(); key != entityID {
		t.Fatalf("expected recipe key %s, got %s", entityID, key)
	}
	if key := AlbumRef(entityID).MembershipKey(); key != entityID {
		t.Fatalf("expected album key %s, got %s", entityID, key)
	}
	if key := VideoRef("yt-abc").MembershipKey(); key != uuid.Nil {
		t.Fatal("expected nil key for video refs")
	}
	if key := LinkRef(enums.ItemKindExternal, "https://example.com").MembershipKey(); key != uuid.Nil {
		t.Fatal("expected nil key for link refs")
	}
}

func TestRefFromModelRoundTrip(t *testing.T) {
	item := &models.CarouselItem{}
	original := EntityRef(enums.ItemKindProduct, uuid.New())
	original.ApplyTo(item)

	rebuilt := RefFromModel(item)
	if rebuilt != original {
		t.Fatalf("expected %+v, got %+v", original, rebuilt)
	}
}
