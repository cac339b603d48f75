package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/zimbwa-construction/quotes-backend/api/responses"
	"github.com/zimbwa-construction/quotes-backend/pkg/config"
	"github.com/zimbwa-construction/quotes-backend/pkg/db"
	pkgerrors "github.com/zimbwa-construction/quotes-backend/pkg/errors"
	"github.com/zimbwa-construction/quotes-backend/pkg/logger"
)

const readyProbeTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LZQ-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-LZQ-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
