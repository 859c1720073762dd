package controllers

import (
	"net/http"

	"github.com/insight24/insight-backend/api/responses"
	"github.com/insight24/insight-backend/api/validators"
	authsvc "github.com/insight24/insight-backend/internal/auth"
	pkgerrors "github.com/insight24/insight-backend/pkg/errors"
	"github.com/insight24/insight-backend/pkg/logger"
)

// Login exchanges admin credentials for a bearer token.
func Login(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, token)
	}
}
