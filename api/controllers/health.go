package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gracemeadow/meadowlane-backend/api/responses"
	"github.com/gracemeadow/meadowlane-backend/pkg/config"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

// Pinger is anything that can confirm a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Meadowlane-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the datastore and cache before reporting ready. A nil
// pinger is skipped so local setups without redis still pass.
func HealthReady(cfg *config.Config, db, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("X-Meadowlane-Env", cfg.App.Env)

		deps := map[string]string{}
		if db != nil {
			if err := db.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
			deps["database"] = "ok"
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cache unreachable"))
				return
			}
			deps["cache"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "deps": deps})
	}
}
