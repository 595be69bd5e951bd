package tailor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

func TestParseFailureErrorIncludesSection(t *testing.T) {
	err := &tailor.ParseFailure{Section: "experience", Reason: "missing resumeSubheading"}
	assert.Equal(t, "parse failed in section experience: missing resumeSubheading", err.Error())
}

func TestParseFailureErrorWithoutSection(t *testing.T) {
	err := &tailor.ParseFailure{Reason: "empty source"}
	assert.Equal(t, "parse failed: empty source", err.Error())
}

func TestParseFailureUnwrapsToErrParse(t *testing.T) {
	err := &tailor.ParseFailure{Section: "document", Reason: "empty source"}
	assert.ErrorIs(t, err, tailor.ErrParse)
	assert.True(t, errors.Is(err, tailor.ErrParse))
}
