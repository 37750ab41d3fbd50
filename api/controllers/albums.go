package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gracemeadow/meadowlane-backend/api/responses"
	"github.com/gracemeadow/meadowlane-backend/api/validators"
	"github.com/gracemeadow/meadowlane-backend/internal/albums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

// AlbumsList returns recent albums, newest first.
func AlbumsList(svc albums.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "album service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 25, 1, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dtos, err := svc.ListRecent(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// AlbumGet loads one album by id.
func AlbumGet(svc albums.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "album service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "albumID"), "albumID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AlbumCreate inserts an album.
func AlbumCreate(svc albums.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "album service unavailable"))
			return
		}

		var payload albums.CreateAlbumInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Create(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// AlbumUpdate applies a partial edit.
func AlbumUpdate(svc albums.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "album service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "albumID"), "albumID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload albums.UpdateAlbumInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.Update(ctx, id, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// AlbumDelete removes an album.
func AlbumDelete(svc albums.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "album service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "albumID"), "albumID")
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
