package fio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("broken pipe")
	err := failure("HTTP request to FIO API failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "failure")
	assert.ErrorContains(t, err, "broken pipe")
}

func TestError_KindPredicates(t *testing.T) {
	warning := &Error{Kind: Warning, Message: "flagged"}
	assert.True(t, IsWarning(warning))
	assert.False(t, IsTemporaryUnavailable(warning))

	unavailable := &Error{Kind: TemporaryUnavailable, Message: "overheated"}
	assert.True(t, IsTemporaryUnavailable(unavailable))
	assert.False(t, IsWarning(unavailable))

	assert.False(t, IsWarning(errors.New("plain")))
	assert.False(t, IsTemporaryUnavailable(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "failure", Failure.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "temporary unavailable", TemporaryUnavailable.String())
}
