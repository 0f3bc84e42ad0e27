package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shelf/internal/store"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]int{"count": 2})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(CodeInvalidInput, "title and binder are required", nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "title and binder are required", resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Success("Movie saved successfully"))
	assert.Equal(t, "Movie saved successfully\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Error(CodeWrite, "failed to save movie", map[string]string{"id": "1"}))
	assert.Contains(t, buf.String(), "Error [E003]: failed to save movie")
	assert.NotContains(t, buf.String(), "Details:")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	require.NoError(t, formatter.Error(CodeWrite, "failed to save movie", "disk full"))
	assert.Contains(t, buf.String(), "Details: disk full")
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    out,
		ErrWriter: diag,
		Verbose:   true,
	}

	formatter.VerboseLog("opened %s", "bluRays.sqlite")
	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "opened bluRays.sqlite")

	formatter.Verbose = false
	diag.Reset()
	formatter.VerboseLog("hidden")
	assert.Empty(t, diag.String())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "open", store.ErrStorageUnavailable))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitError_Unwrap(t *testing.T) {
	err := WrapExitError(ExitFailure, "failed to save movie", store.ErrWrite)
	assert.ErrorIs(t, err, store.ErrWrite)
	assert.Equal(t, "failed to save movie: write failed", err.Error())
	assert.Equal(t, "bad", NewExitError(ExitFailure, "bad").Error())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeStorageUnavailable, errorCode(fmt.Errorf("%w: open", store.ErrStorageUnavailable)))
	assert.Equal(t, CodeWrite, errorCode(fmt.Errorf("%w: insert", store.ErrWrite)))
	assert.Equal(t, CodeRead, errorCode(fmt.Errorf("%w: select", store.ErrRead)))
}
