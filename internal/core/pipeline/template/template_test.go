package template_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	tmplengine "github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/template"
)

const originalSource = `
\documentclass{resume}
\begin{document}
\section*{Summary}
Original summary line.
%-----------EXPERIENCE-----------
\section{Experience}
\resumeSubheading{Engineer}{2020 -- Present}{Acme}{Remote}
\resumeItemListStart
      \resumeItem{Original bullet one.}
      \resumeItem{Original bullet two.}
\resumeItemListEnd
\end{document}
`

func TestGenerateReplacesSummaryAndBullets(t *testing.T) {
	engine := tmplengine.New(nil)

	content := tailor.VariantContent{
		Summary: "Tailored summary mentioning Kafka and Kubernetes.",
		ExperienceSections: []tailor.ExperienceSection{
			{
				SelectedBullets: []tailor.SelectedBullet{
					{Bullet: tailor.Bullet{Text: "Tailored bullet one."}},
					{Bullet: tailor.Bullet{Text: "Tailored bullet two."}},
				},
			},
		},
	}

	source, pdf, err := engine.Generate(context.Background(), originalSource, content)

	require.NoError(t, err)
	assert.Nil(t, pdf, "no compiler configured, so no PDF should be produced")
	assert.Contains(t, source, "Tailored summary mentioning Kafka and Kubernetes.")
	assert.NotContains(t, source, "Original summary line.")
	assert.Contains(t, source, "\\resumeItem{Tailored bullet one.}")
	assert.Contains(t, source, "\\resumeItem{Tailored bullet two.}")
	assert.NotContains(t, source, "Original bullet one.")
}

type fakeCompiler struct {
	pdf []byte
	err error
}

func (f *fakeCompiler) Compile(ctx context.Context, source string) ([]byte, error) {
	return f.pdf, f.err
}

func TestGenerateCompilesWhenCompilerConfigured(t *testing.T) {
	engine := tmplengine.New(&fakeCompiler{pdf: []byte("%PDF-1.4 fake")})

	_, pdf, err := engine.Generate(context.Background(), originalSource, tailor.VariantContent{})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
}

func TestGenerateLeavesContentUnchangedWhenPatternsDoNotMatch(t *testing.T) {
	engine := tmplengine.New(nil)

	source, _, err := engine.Generate(context.Background(), "no matching sections here", tailor.VariantContent{Summary: "new summary"})

	require.NoError(t, err)
	assert.Equal(t, "no matching sections here", source)
}
