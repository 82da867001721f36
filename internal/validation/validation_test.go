package validation

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"go-contacts-api/internal/model"
	"go-contacts-api/pkg/apierror"
)

func requireAPIError(t *testing.T, err error) *apierror.APIError {
	t.Helper()

	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	return apiErr
}

func TestStructMissingFields(t *testing.T) {
	t.Parallel()

	err := Struct(model.CreateContactRequest{FirstName: "Ada"}, "missing fields")
	apiErr := requireAPIError(t, err)
	require.Equal(t, "missing fields", apiErr.Message)
	require.Equal(t, "lastName,email", apiErr.Details)
}

func TestStructInvalidEmail(t *testing.T) {
	t.Parallel()

	err := Struct(model.CreateContactRequest{FirstName: "Ada", LastName: "Lovelace", Email: "nope"}, "missing fields")
	apiErr := requireAPIError(t, err)
	require.Equal(t, "email must be a valid email address", apiErr.Message)
}

func TestStructOptionalPointers(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(model.UpdateContactRequest{}, "unused"))

	empty := ""
	err := Struct(model.UpdateContactRequest{FirstName: &empty}, "unused")
	apiErr := requireAPIError(t, err)
	require.Equal(t, "firstName must not be empty", apiErr.Message)

	email := "ada@example.com"
	require.NoError(t, Struct(model.UpdateContactRequest{Email: &email}, "unused"))
}
