package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gracemeadow/meadowlane-backend/api/responses"
	"github.com/gracemeadow/meadowlane-backend/api/validators"
	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/internal/curation"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

type membershipPayload struct {
	itemRefPayload
	On         *bool   `json:"on" validate:"required"`
	OrderIndex *int    `json:"order_index"`
	Caption    *string `json:"caption"`
	ImagePath  *string `json:"image_path"`
	Title      *string `json:"title"`
}

type singletonPayload struct {
	itemRefPayload
	Caption   *string `json:"caption"`
	ImagePath *string `json:"image_path"`
	Title     *string `json:"title"`
}

// CurationMembership toggles a domain entity in or out of a slug-addressed
// carousel, creating the carousel on first use.
func CurationMembership(svc curation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "curation service unavailable"))
			return
		}

		page, err := validators.ParsePathPage(chi.URLParam(r, "page"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		var payload membershipPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ref, err := payload.toRef()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SetMembership(ctx, curation.MembershipInput{
			Page:       page,
			Slug:       slug,
			Ref:        ref,
			On:         *payload.On,
			OrderIndex: payload.OrderIndex,
			Caption:    payload.Caption,
			ImagePath:  payload.ImagePath,
			Defaults:   carousels.CreateDefaults{Title: payload.Title},
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CurationSetSingleton replaces the single entry of a singleton slot.
func CurationSetSingleton(svc curation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "curation service unavailable"))
			return
		}

		page, err := validators.ParsePathPage(chi.URLParam(r, "page"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		var payload singletonPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ref, err := payload.toRef()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SetSingleton(ctx, curation.SingletonInput{
			Page:      page,
			Slug:      slug,
			Ref:       ref,
			Caption:   payload.Caption,
			ImagePath: payload.ImagePath,
			Defaults:  carousels.CreateDefaults{Title: payload.Title},
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CurationClearSingleton empties a singleton slot.
func CurationClearSingleton(svc curation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "curation service unavailable"))
			return
		}

		page, err := validators.ParsePathPage(chi.URLParam(r, "page"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}

		result, err := svc.ClearSingleton(ctx, page, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
