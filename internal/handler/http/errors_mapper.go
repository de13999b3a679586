package http

import (
	"errors"
	"net/http"

	"github.com/leanttro/leanttro-web/internal/service"
	"github.com/leanttro/leanttro-web/internal/store"
	"github.com/leanttro/leanttro-web/internal/validators"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed. Domain errors come before the
// generic backend failures they may wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidForm, http.StatusBadRequest},
	{service.ErrSlugTaken, http.StatusConflict},
	{service.ErrEmailTaken, http.StatusConflict},
	{service.ErrDomainTaken, http.StatusConflict},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrEmailNotFound, http.StatusNotFound},
	{service.ErrEmailMismatch, http.StatusBadRequest},
	{service.ErrInvalidResetToken, http.StatusBadRequest},
	{service.ErrMailDelivery, http.StatusBadGateway},
	{service.ErrProfileNotFound, http.StatusNotFound},
	{service.ErrStoreNotFound, http.StatusNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{store.ErrMotoboyNotFound, http.StatusNotFound},
	{store.ErrLojaNotFound, http.StatusNotFound},
	{store.ErrEmptyFile, http.StatusBadRequest},

	{store.ErrQueryingBackend, http.StatusBadGateway},
	{store.ErrSavingItem, http.StatusBadGateway},
	{store.ErrDecodingItem, http.StatusBadGateway},
	{store.ErrUploadingFile, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// formErrorMessages translates validation failures into flash messages.
var formErrorMessages = []struct {
	err     error
	message string
}{
	{validators.ErrReservedSlug, "Este código é reservado. Escolha outro."},
	{validators.ErrInvalidSlug, "Código inválido. Use apenas letras minúsculas, números, - ou _."},
	{validators.ErrInvalidEmail, "E-mail inválido."},
	{validators.ErrWeakPassword, "A senha deve ter pelo menos 6 caracteres e conter ao menos uma letra."},
	{validators.ErrEmptyName, "Informe o nome."},
	{validators.ErrInvalidBirthDate, "Data de nascimento inválida."},
	{validators.ErrInvalidDomain, "Domínio inválido."},
}

// formErrorMessage returns the message of the first validation failure
// wrapped by err, or fallback.
func formErrorMessage(err error, fallback string) string {
	for _, m := range formErrorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return fallback
}
