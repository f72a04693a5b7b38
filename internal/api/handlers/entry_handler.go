package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lmoralesc/code-journal-be/internal/auth"
	"github.com/lmoralesc/code-journal-be/internal/services"
)

// EntryHandler handles HTTP requests for journal entries. All routes sit
// behind the auth middleware; the owner is always the authenticated identity.
type EntryHandler struct {
	service services.EntryServiceProvider
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service services.EntryServiceProvider) *EntryHandler {
	return &EntryHandler{service: service}
}

// entryPayload is the client-editable part of an entry. Any owner field in
// the body is ignored.
type entryPayload struct {
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`
}

func (p *entryPayload) validate() error {
	if p.Title == "" {
		return errValidation("title is required")
	}
	if p.Notes == "" {
		return errValidation("notes is required")
	}
	if p.PhotoURL == "" {
		return errValidation("photoUrl is required")
	}
	return nil
}

func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		// Only reachable if a route is registered outside the middleware.
		log.Error().Str("path", r.URL.Path).Msg("No identity in request context")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "authentication required"})
	}
	return ident, ok
}

func entryID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "entryId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errValidation("entryId must be an integer")
	}
	return id, nil
}

// GetAll returns every entry owned by the caller.
func (h *EntryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}

	entries, err := h.service.List(r.Context(), ident.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", ident.UserID).Msg("Failed to list entries")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Get returns a single entry owned by the caller.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := entryID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Get(r.Context(), ident.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Create adds a new entry owned by the caller.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, errValidation("invalid request body"))
		return
	}
	if err := payload.validate(); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Create(r.Context(), ident.UserID, services.EntryInput{
		Title:    payload.Title,
		Notes:    payload.Notes,
		PhotoURL: payload.PhotoURL,
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", ident.UserID).Msg("Failed to create entry")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Update rewrites an entry owned by the caller and returns the result.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := entryID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, errValidation("invalid request body"))
		return
	}
	if err := payload.validate(); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Update(r.Context(), ident.UserID, id, services.EntryInput{
		Title:    payload.Title,
		Notes:    payload.Notes,
		PhotoURL: payload.PhotoURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Delete removes an entry owned by the caller.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := entryID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), ident.UserID, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
