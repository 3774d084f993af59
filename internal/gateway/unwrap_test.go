package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reelops/pkg/apierrors"
)

func TestUnwrapNilResultIsNoResult(t *testing.T) {
	var out map[string]string
	ok, err := Unwrap(nil, &out)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestUnwrapCancelledIsNoResult(t *testing.T) {
	res := &Result{
		Status: http.StatusBadRequest,
		Err:    apierrors.Wrap(context.Canceled, apierrors.CodeCanceled, "canceled"),
	}

	var out map[string]string
	ok, err := Unwrap(res, &out)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestUnwrapFailureKeepsServerMessage(t *testing.T) {
	res := &Result{
		Status: http.StatusNotFound,
		Err:    apierrors.New(apierrors.CodeNotFound, "Movie not found"),
	}

	ok, err := Unwrap(res, nil)
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, "Movie not found", apierrors.Message(err, ""))
	assert.True(t, apierrors.HasCode(err, apierrors.CodeNotFound))
}

func TestUnwrapFailureWithoutMessageFallsBack(t *testing.T) {
	res := &Result{
		Status: http.StatusBadGateway,
		Err:    apierrors.New(apierrors.CodeRequestFailed, ""),
	}

	_, err := Unwrap(res, nil)
	require.Error(t, err)
	assert.Equal(t, fallbackErrorMessage, apierrors.Message(err, ""))
}

func TestUnwrapEmptyBodySucceedsWithoutPopulating(t *testing.T) {
	res := &Result{Status: http.StatusOK}

	var out map[string]string
	ok, err := Unwrap(res, &out)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestUnwrapDecodesBody(t *testing.T) {
	res := &Result{
		Status: http.StatusOK,
		Data:   json.RawMessage(`{"message": "Logged out"}`),
	}

	var out map[string]string
	ok, err := Unwrap(res, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Logged out", out["message"])
}

func TestUnwrapMalformedBodyIsAnError(t *testing.T) {
	res := &Result{
		Status: http.StatusOK,
		Data:   json.RawMessage(`{"users": `),
	}

	var out map[string]any
	ok, err := Unwrap(res, &out)
	assert.False(t, ok)
	require.Error(t, err)
}
