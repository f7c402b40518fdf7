package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akarpov/notelink/internal/logger"
	"github.com/akarpov/notelink/models"
)

// listCategories handles GET /categories: the caller's Active categories.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, categories)
}

// listDeletedCategories handles GET /categories/deleted: the caller's
// soft-deleted categories.
func (h *Handler) listDeletedCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	categories, err := h.services.CategoryService.ListDeletedCategories(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("deleted category listing failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, categories)
}

// createCategory handles POST /categories.
func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	var request models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(ctx, callerID, request)
	if err != nil {
		log.Err(err).Msg("category creation failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, category)
}

// getCategory handles GET /categories/{id}.
func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Category not found", nil)
		return
	}

	category, err := h.services.CategoryService.GetCategory(ctx, id, callerID)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category lookup failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, category)
}

// updateCategory handles PUT /categories/{id}.
func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Category not found", nil)
		return
	}

	var request models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	category, err := h.services.CategoryService.UpdateCategory(ctx, id, callerID, request)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category update failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, category)
}

// deleteCategory handles DELETE /categories/{id}: soft delete.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	h.categoryTransition(w, r, h.services.CategoryService.DeleteCategory, "category soft delete failed")
}

// restoreCategory handles POST /categories/{id}/restore.
func (h *Handler) restoreCategory(w http.ResponseWriter, r *http.Request) {
	h.categoryTransition(w, r, h.services.CategoryService.RestoreCategory, "category restore failed")
}

// permanentDeleteCategory handles DELETE /categories/{id}/permanent-delete.
func (h *Handler) permanentDeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.categoryTransition(w, r, h.services.CategoryService.PermanentlyDeleteCategory, "category permanent delete failed")
}

// categoryTransition factors the shared shape of the lifecycle endpoints:
// parse the id, call the transition, answer an empty success envelope.
func (h *Handler) categoryTransition(w http.ResponseWriter, r *http.Request, transition func(ctx context.Context, id, ownerID int64) error, failureMsg string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeEnvelope(w, http.StatusNotFound, "Category not found", nil)
		return
	}

	if err := transition(ctx, id, callerID); err != nil {
		log.Err(err).Int64("id", id).Msg(failureMsg)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// bulkDeleteCategories handles DELETE /bulk-delete/categories: soft-deletes
// the listed ids and reports the per-id outcome.
func (h *Handler) bulkDeleteCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := principal(r)
	if !ok {
		writeEnvelope(w, http.StatusUnauthorized, msgLoginFirst, nil)
		return
	}

	var request models.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed", nil)
		return
	}

	result, err := h.services.CategoryService.BulkDeleteCategories(ctx, callerID, request.ID)
	if err != nil {
		log.Err(err).Msg("bulk category delete failed")
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}
