package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageError("storage.Save", cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrGeneration)
	assert.Equal(t, "storage.Save: connection refused", err.Error())
}

func TestKindError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("analyze: %w", GenerationError("", errors.New("rate limited")))

	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, "analyze: rate limited", err.Error())
}
