package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gracemeadow/meadowlane-backend/api/responses"
	"github.com/gracemeadow/meadowlane-backend/api/validators"
	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

type resolveCarouselPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type updateCarouselPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CarouselsList returns the carousels configured for a page, optionally
// narrowed to one slug.
func CarouselsList(svc carousels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel service unavailable"))
			return
		}

		page, err := validators.ParsePathPage(chi.URLParam(r, "page"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		slug := strings.TrimSpace(r.URL.Query().Get("slug"))

		dtos, err := svc.ListByPage(ctx, page, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// CarouselGet resolves one slot by page and slug. Absence is a 404 admin
// tooling branches on rather than an error state.
func CarouselGet(svc carousels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel service unavailable"))
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

		dto, err := svc.GetByPageSlug(ctx, page, slug)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CarouselResolve finds or lazily creates the slot for a page/slug pair.
func CarouselResolve(svc carousels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel service unavailable"))
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

		var payload resolveCarouselPayload
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		dto, err := svc.FindOrCreate(ctx, page, slug, carousels.CreateDefaults{
			Title:       payload.Title,
			Description: payload.Description,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CarouselUpdate applies a partial edit to a carousel's display copy or
// active flag.
func CarouselUpdate(svc carousels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "carouselID"), "carouselID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateCarouselPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Update(ctx, id, carousels.UpdateCarouselInput{
			Title:       payload.Title,
			Description: payload.Description,
			IsActive:    payload.IsActive,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CarouselDelete removes a carousel and everything attached to it.
func CarouselDelete(svc carousels.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carousel service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "carouselID"), "carouselID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
