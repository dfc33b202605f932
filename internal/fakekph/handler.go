// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakekph

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/utils"
	"github.com/MKhiriev/go-kph-client/models"
)

// Handler serves the KeePassHTTP protocol on top of a [Service].
type Handler struct {
	service *Service

	logger *logger.Logger
}

// NewHandler returns a Handler for service.
func NewHandler(service *Service, logger *logger.Logger) *Handler {
	logger.Info().Msg("fakekph handler created")
	return &Handler{service: service, logger: logger}
}

// Init builds the router. Every request is a POST to the root path.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Post("/", h.dispatch)

	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	return router
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "Handler.dispatch").Msg("invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var (
		resp any
		err  error
	)
	switch req.RequestType {
	case models.RequestAssociate:
		resp = h.service.associate(req)
	case models.RequestTestAssociate:
		resp = h.service.testAssociate(req)
	case models.RequestGetLogins:
		resp, err = h.service.getLogins(req)
	default:
		err = errUnknownRequestType
	}

	if err != nil {
		log.Err(err).
			Str("func", "Handler.dispatch").
			Str("request_type", req.RequestType.String()).
			Msg("request failed")
		status := http.StatusInternalServerError
		if errors.Is(err, errUnknownRequestType) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	log.Debug().
		Str("func", "Handler.dispatch").
		Str("request_type", req.RequestType.String()).
		Str("client_id", req.ID).
		Msg("request handled")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("func", "Handler.dispatch").Msg("failed to write response")
	}
}
