package parser

import (
	"regexp"
	"sort"
	"strings"
)

// section is a \section/\subsection/\subsubsection span of the document.
type section struct {
	level   int
	title   string
	content string
	start   int
	end     int
}

var sectionPatterns = []struct {
	level   int
	pattern *regexp.Regexp
}{
	{1, regexp.MustCompile(`(?i)\\section\*?\s*\{([^}]+)\}`)},
	{2, regexp.MustCompile(`(?i)\\subsection\*?\s*\{([^}]+)\}`)},
	{3, regexp.MustCompile(`(?i)\\subsubsection\*?\s*\{([^}]+)\}`)},
}

type sectionMarker struct {
	level      int
	title      string
	start, end int
}

// extractSections splits a document into section spans, each running until
// the next marker of the same or higher level (or end of document), mirroring
// original_source/resume/section_extractor.py.
func extractSections(content string) []section {
	var markers []sectionMarker
	for _, sp := range sectionPatterns {
		for _, m := range sp.pattern.FindAllStringSubmatchIndex(content, -1) {
			markers = append(markers, sectionMarker{
				level: sp.level,
				title: strings.TrimSpace(content[m[2]:m[3]]),
				start: m[0],
				end:   m[1],
			})
		}
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })

	sections := make([]section, 0, len(markers))
	for i, marker := range markers {
		end := len(content)
		for _, next := range markers[i+1:] {
			if next.level <= marker.level {
				end = next.start
				break
			}
		}
		sections = append(sections, section{
			level:   marker.level,
			title:   marker.title,
			content: strings.TrimSpace(content[marker.end:end]),
			start:   marker.start,
			end:     end,
		})
	}
	return sections
}

// findSectionByName returns the first section whose title matches namePattern
// (a regexp source, matched case-insensitively).
func findSectionByName(sections []section, namePattern string) *section {
	pattern := regexp.MustCompile(`(?i)` + namePattern)
	for i := range sections {
		if pattern.MatchString(sections[i].title) {
			return &sections[i]
		}
	}
	return nil
}

var subsectionPattern = regexp.MustCompile(`(?i)\\subsection\*?\s*\{([^}]+)\}`)

// subsection is a (title, content) pair within a section's content.
type subsection struct {
	title   string
	content string
}

// extractSubsections splits a section's content on \subsection markers.
func extractSubsections(content string) []subsection {
	matches := subsectionPattern.FindAllStringSubmatchIndex(content, -1)
	subs := make([]subsection, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(content[m[2]:m[3]])
		start := m[1]
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		subs = append(subs, subsection{title: title, content: strings.TrimSpace(content[start:end])})
	}
	return subs
}

var (
	itemizePattern   = regexp.MustCompile(`(?is)\\begin\{itemize\}(?:\[[^\]]*\])?(.*?)\\end\{itemize\}`)
	enumeratePattern = regexp.MustCompile(`(?is)\\begin\{enumerate\}(?:\[[^\]]*\])?(.*?)\\end\{enumerate\}`)
	itemMarker       = regexp.MustCompile(`\\item\s+`)
	endEnvMarker     = regexp.MustCompile(`\\end\{(?:itemize|enumerate)\}`)
)

// extractItemizeBlocks returns the \item texts of every itemize/enumerate
// block in content, in document order.
func extractItemizeBlocks(content string) [][]string {
	var blocks [][]string
	type span struct {
		start int
		items []string
	}
	var spans []span

	for _, m := range itemizePattern.FindAllStringSubmatchIndex(content, -1) {
		spans = append(spans, span{start: m[0], items: extractItems(content[m[2]:m[3]])})
	}
	for _, m := range enumeratePattern.FindAllStringSubmatchIndex(content, -1) {
		spans = append(spans, span{start: m[0], items: extractItems(content[m[2]:m[3]])})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for _, s := range spans {
		blocks = append(blocks, s.items)
	}
	return blocks
}

// extractItems splits content at \item markers. Go's regexp lacks
// lookahead, so unlike the Python original's single lookahead-terminated
// pattern, each item's end is found by locating the next \item or \end{...}
// marker (or the end of the block) after it.
func extractItems(blockContent string) []string {
	markers := itemMarker.FindAllStringIndex(blockContent, -1)
	if markers == nil {
		return nil
	}

	var items []string
	for i, m := range markers {
		itemStart := m[1]
		itemEnd := len(blockContent)
		if i+1 < len(markers) {
			itemEnd = markers[i+1][0]
		}
		if end := endEnvMarker.FindStringIndex(blockContent[itemStart:itemEnd]); end != nil {
			itemEnd = itemStart + end[0]
		}
		text := strings.TrimSpace(blockContent[itemStart:itemEnd])
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}
