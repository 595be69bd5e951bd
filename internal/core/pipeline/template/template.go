// Package template implements the Template Engine: splicing tailored
// content back into the original typeset source, preserving everything
// else verbatim, then compiling the result to a PDF.
//
// Grounded on original_source/resume/tailoring/template_engine.py.
package template

import (
	"context"
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

var (
	summaryPattern = regexp.MustCompile(`(?s)(\\section\*\{Summary\}\s*\n)(.*?)(\n\s*%-+[A-Z\s]+-+)`)
	bulletsPattern = regexp.MustCompile(`(?s)(\\resumeItemListStart\s*\n)((?:.*?\n)*?)(\s*\\resumeItemListEnd)`)
	placeholderX   = regexp.MustCompile(`\s*\[X\]\s*\.?`)
)

// Engine rewrites an original typeset source with a variant's tailored
// content and compiles the result via compiler.
type Engine struct {
	compiler ports.DocumentCompiler
}

// New constructs an Engine. compiler may be nil, in which case Generate
// skips compilation and returns a nil PDF.
func New(compiler ports.DocumentCompiler) *Engine {
	return &Engine{compiler: compiler}
}

// Generate splices content into original and, if a compiler is
// configured, compiles the result. Returns the modified source and the
// compiled PDF bytes (nil if unavailable).
func (e *Engine) Generate(ctx context.Context, original string, content tailor.VariantContent) (source string, pdf []byte, err error) {
	modified := replaceSummary(original, content.Summary)
	modified = replaceExperienceBullets(modified, content.ExperienceSections)

	if e.compiler == nil {
		return modified, nil, nil
	}

	pdfBytes, err := e.compiler.Compile(ctx, modified)
	if err != nil {
		return modified, nil, err
	}
	return modified, pdfBytes, nil
}

func replaceSummary(content, newSummary string) string {
	if !summaryPattern.MatchString(content) {
		return content
	}
	return summaryPattern.ReplaceAllString(content, "${1}"+escapeReplacement(newSummary)+"\n${3}")
}

func replaceExperienceBullets(content string, sections []tailor.ExperienceSection) string {
	loc := bulletsPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}

	var bullets []string
	for _, section := range sections {
		for _, sb := range section.SelectedBullets {
			text := sb.Text()
			text = placeholderX.ReplaceAllString(text, "")
			text = strings.TrimSpace(text)
			bullets = append(bullets, "      \\resumeItem{"+text+"}")
		}
	}
	bulletsBlock := strings.Join(bullets, "\n") + "\n"

	start, end := loc[0], loc[1]
	groupStart, groupEnd := loc[2], loc[3]
	endGroupStart, endGroupEnd := loc[6], loc[7]

	replacement := content[groupStart:groupEnd] + bulletsBlock + content[endGroupStart:endGroupEnd]
	return content[:start] + replacement + content[end:]
}

// escapeReplacement neutralizes regexp.ReplaceAllString's "$" expansion
// syntax in text that is itself being substituted in, not a pattern.
func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
