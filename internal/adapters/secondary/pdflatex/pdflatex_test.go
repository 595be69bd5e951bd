package pdflatex_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/adapters/secondary/pdflatex"
)

func TestNewDefaultsBinaryNameWhenEmpty(t *testing.T) {
	// An empty binaryName should fall back to looking up "pdflatex" on PATH
	// rather than panicking or leaving the compiler unusable by construction.
	c := pdflatex.New("")
	require.NotNil(t, c)
}

func TestAvailableFalseForUnknownBinary(t *testing.T) {
	c := pdflatex.New("definitely-not-a-real-binary-on-this-system")
	assert.False(t, c.Available())
}

func TestCompileReturnsNilPDFWhenUnavailable(t *testing.T) {
	c := pdflatex.New("definitely-not-a-real-binary-on-this-system")

	pdf, err := c.Compile(context.Background(), `\documentclass{article}\begin{document}hi\end{document}`)

	assert.NoError(t, err)
	assert.Nil(t, pdf)
}
