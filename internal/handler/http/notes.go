package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
	"github.com/go-chi/chi/v5"
)

// listNotes handles GET /notes: the caller's Active notes.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("note listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, notes)
}

// listAllNotes handles GET /notes/all: the caller's notes in every
// lifecycle state, soft-deleted ones included.
func (h *Handler) listAllNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	notes, err := h.services.NoteService.ListAllNotes(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("note listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, notes)
}

// createNote handles POST /notes. The slug is server-generated; a folder
// binding must resolve to the caller's Active folder.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	var request models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, callerID, request)
	if err != nil {
		log.Err(err).Msg("note creation failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, note)
}

// getNoteBySlug handles GET /notes/{slug}: the one cross-user read path,
// guarded by the visibility rules. The response carries the fully
// qualified locator in the slug field.
func (h *Handler) getNoteBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	slug := chi.URLParam(r, "slug")

	note, err := h.services.NoteService.GetNoteBySlug(ctx, slug, callerID)
	if err != nil {
		log.Err(err).Str("slug", slug).Msg("note lookup by slug failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, note)
}

// updateNote handles PUT /notes/{id}: partial update of the caller's note.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	var request models.NoteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, id, callerID, request)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note update failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, note)
}

// deleteNote handles DELETE /notes/{id}: soft delete.
func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, id, callerID); err != nil {
		log.Err(err).Int64("id", id).Msg("note soft delete failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// restoreNote handles POST /notes/{id}/restore.
func (h *Handler) restoreNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Note not found", nil)
		return
	}

	if err := h.services.NoteService.RestoreNote(ctx, id, callerID); err != nil {
		log.Err(err).Int64("id", id).Msg("note restore failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
