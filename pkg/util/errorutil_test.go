package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewForbidden("access denied")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
}

func TestToDomainErrorNilIsNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNewInvalidTransitionCarriesDetails(t *testing.T) {
	err := NewInvalidTransition("OPEN", "RESOLVED", "IN_PROGRESS")

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TRANSITION", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "OPEN", domainErr.Details["current"])
	assert.Equal(t, "RESOLVED", domainErr.Details["requested"])
	assert.Equal(t, "IN_PROGRESS", domainErr.Details["allowed"])
	assert.Contains(t, domainErr.Message, "allowed: OPEN -> IN_PROGRESS")
}

func TestNewInvalidTransitionTerminalMessage(t *testing.T) {
	err := NewInvalidTransition("CLOSED", "OPEN", "")

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Message, "CLOSED is terminal")
}
