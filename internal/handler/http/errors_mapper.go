package http

import (
	"errors"
	"net/http"

	"github.com/flashdeck/flashdeck/internal/service"
	"github.com/flashdeck/flashdeck/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrCategoryNotFound:      http.StatusBadRequest,
	store.ErrCategoryInUse:         http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusBadRequest,

	store.ErrNothingAffected:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: msgInvalidData,
	service.ErrInvalidCredentials:  msgInvalidCredentials,

	store.ErrUsernameAlreadyExists: msgUsernameTaken,
	store.ErrCategoryNotFound:      msgCategoryMissing,
	store.ErrCategoryInUse:         msgCategoryInUse,
	store.ErrNoUserWasFound:        msgInvalidCredentials,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternal
}

// respondError maps a service/store error to its response status and message.
func respondError(w http.ResponseWriter, err error) {
	writeMessage(w, messageFromError(err), statusFromError(err))
}
