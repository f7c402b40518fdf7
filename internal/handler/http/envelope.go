package http

import (
	"net/http"
	"strconv"

	"github.com/akarpov/notelink/internal/utils"
	"github.com/akarpov/notelink/models"
	"github.com/go-chi/chi/v5"
)

// msgSuccess is the meta message of every successful response.
const msgSuccess = "Success"

// writeEnvelope writes the uniform response envelope. The HTTP status line
// always equals meta.status.
func writeEnvelope(w http.ResponseWriter, status int, message string, data any) {
	utils.WriteJSON(w, models.Envelope{
		Meta: models.Meta{
			Status:  status,
			Message: message,
		},
		Data: data,
	}, status)
}

// writeSuccess writes a success envelope with the given payload.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, msgSuccess, data)
}

// idParam parses the {id} URL parameter of the current route.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
