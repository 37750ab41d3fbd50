package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/api/responses"
	"github.com/gracemeadow/meadowlane-backend/api/validators"
	"github.com/gracemeadow/meadowlane-backend/internal/items"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

type itemRefPayload struct {
	Kind    string  `json:"kind" validate:"required"`
	RefID   *string `json:"ref_id"`
	AlbumID *string `json:"album_id"`
	VideoID *string `json:"video_id"`
	LinkURL *string `json:"link_url"`
}

type createItemPayload struct {
	itemRefPayload
	OrderIndex *int    `json:"order_index"`
	Caption    *string `json:"caption"`
	ImagePath  *string `json:"image_path"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured *bool   `json:"is_featured"`
}

type updateItemPayload struct {
	Kind       *string `json:"kind"`
	RefID      *string `json:"ref_id"`
	AlbumID    *string `json:"album_id"`
	VideoID    *string `json:"video_id"`
	LinkURL    *string `json:"link_url"`
	OrderIndex *int    `json:"order_index"`
	Caption    *string `json:"caption"`
	ImagePath  *string `json:"image_path"`
	IsActive   *bool   `json:"is_active"`
	IsFeatured *bool   `json:"is_featured"`
}

func (p itemRefPayload) toRef() (items.ItemRef, error) {
	kind, err := enums.ParseItemKind(p.Kind)
	if err != nil {
		return items.ItemRef{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown item kind").
			WithDetails(map[string]any{"kind": p.Kind})
	}
	ref := items.ItemRef{Kind: kind}
	if p.RefID != nil {
		id, err := uuid.Parse(*p.RefID)
		if err != nil {
			return items.ItemRef{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid ref_id")
		}
		ref.RefID = id
	}
	if p.AlbumID != nil {
		id, err := uuid.Parse(*p.AlbumID)
		if err != nil {
			return items.ItemRef{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid album_id")
		}
		ref.AlbumID = id
	}
	if p.VideoID != nil {
		ref.VideoID = strings.TrimSpace(*p.VideoID)
	}
	if p.LinkURL != nil {
		ref.LinkURL = strings.TrimSpace(*p.LinkURL)
	}
	return ref, nil
}

// ItemsList returns a carousel's members in display order. Inactive rows are
// included only when requested.
func ItemsList(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		carouselID, err := validators.ParsePathUUID(chi.URLParam(r, "carouselID"), "carouselID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		includeInactive, err := validators.ParseQueryBool(r, "include_inactive", false)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dtos, err := svc.List(ctx, carouselID, includeInactive)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ItemCreate attaches content to a carousel.
func ItemCreate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		carouselID, err := validators.ParsePathUUID(chi.URLParam(r, "carouselID"), "carouselID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ref, err := payload.toRef()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Create(ctx, items.CreateItemInput{
			CarouselID: carouselID,
			Ref:        ref,
			OrderIndex: payload.OrderIndex,
			Caption:    payload.Caption,
			ImagePath:  payload.ImagePath,
			IsActive:   payload.IsActive,
			IsFeatured: payload.IsFeatured,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// ItemUpdate applies a partial edit to an item. Kind changes must arrive with
// the matching reference field.
func ItemUpdate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		itemID, err := validators.ParsePathUUID(chi.URLParam(r, "itemID"), "itemID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input := items.UpdateItemInput{
			OrderIndex: payload.OrderIndex,
			IsActive:   payload.IsActive,
			IsFeatured: payload.IsFeatured,
			Caption:    payload.Caption,
			ImagePath:  payload.ImagePath,
		}
		if payload.Kind != nil {
			ref, err := itemRefPayload{
				Kind:    *payload.Kind,
				RefID:   payload.RefID,
				AlbumID: payload.AlbumID,
				VideoID: payload.VideoID,
				LinkURL: payload.LinkURL,
			}.toRef()
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			input.Ref = &ref
		}

		dto, err := svc.Update(ctx, itemID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// ItemDelete detaches an item from its carousel.
func ItemDelete(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		itemID, err := validators.ParsePathUUID(chi.URLParam(r, "itemID"), "itemID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, itemID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// ItemRemoveByReference detaches whichever item points at the given entity.
// Removing an entity that was never attached succeeds.
func ItemRemoveByReference(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		carouselID, err := validators.ParsePathUUID(chi.URLParam(r, "carouselID"), "carouselID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		refID, err := validators.ParsePathUUID(chi.URLParam(r, "refID"), "refID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.RemoveByReference(ctx, carouselID, refID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"removed": true})
	}
}
