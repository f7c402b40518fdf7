package http

import (
	"encoding/json"
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
)

// listFolders handles GET /folders: the caller's Active folders.
func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	folders, err := h.services.FolderService.ListFolders(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("folder listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, folders)
}

// createFolder handles POST /folders. The target category must be an
// Active category of the caller, otherwise the response is 404
// "Category not found".
func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	var request models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	folder, err := h.services.FolderService.CreateFolder(ctx, callerID, request)
	if err != nil {
		log.Err(err).Msg("folder creation failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, folder)
}

// getFolder handles GET /folders/{id}.
func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Folder not found", nil)
		return
	}

	folder, err := h.services.FolderService.GetFolder(ctx, id, callerID)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("folder lookup failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, folder)
}

// updateFolder handles PUT /folders/{id}. The category binding is
// immutable; only name and visibility change.
func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Folder not found", nil)
		return
	}

	var request models.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	folder, err := h.services.FolderService.UpdateFolder(ctx, id, callerID, request)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("folder update failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, folder)
}

// deleteFolder handles DELETE /folders/{id}: soft delete.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Folder not found", nil)
		return
	}

	if err := h.services.FolderService.DeleteFolder(ctx, id, callerID); err != nil {
		log.Err(err).Int64("id", id).Msg("folder soft delete failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// restoreFolder handles POST /folders/{id}/restore.
func (h *Handler) restoreFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Folder not found", nil)
		return
	}

	if err := h.services.FolderService.RestoreFolder(ctx, id, callerID); err != nil {
		log.Err(err).Int64("id", id).Msg("folder restore failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
