/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errs

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorBody(t *testing.T) {
	e := NewNotFoundError(MsgUserNotFound)
	assert.Equal(t, http.StatusNotFound, e.Status)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"User not found"}`, string(b))
}

func TestBadRequestErrorBody(t *testing.T) {
	e := NewBadRequestError("emp_id is required")
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "emp_id is required", e.Error())

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"emp_id is required"}`, string(b))
}

func TestInternalServerErrorKeepsCause(t *testing.T) {
	cause := stderrors.New("ResourceNotFoundException: table missing")
	e := NewInternalServerError(cause)

	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.True(t, stderrors.Is(e, cause))

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"ResourceNotFoundException: table missing"}`, string(b))
}

func TestInternalServerErrorNilCause(t *testing.T) {
	e := NewInternalServerError(nil)
	assert.Equal(t, "Internal Server Error", e.Detail)
	assert.Nil(t, e.Internal)
}
