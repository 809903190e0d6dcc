package http

import (
	"errors"
	"net/http"

	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the API's uniform {"error": message} body. Internal
// errors are masked with the status text so storage details never leak to
// clients; everything else carries its own message.
func respondError(w http.ResponseWriter, err error, message string) {
	status := statusFromError(err)
	if message == "" || status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteJSONError(w, message, status)
}
