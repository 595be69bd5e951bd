package parser

import (
	"regexp"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

var (
	resumeItemStart      = regexp.MustCompile(`\\resumeItem\s*\{`)
	resumeSubheadingStart = regexp.MustCompile(`\\resumeSubheading\s*\{`)
	experienceTitlePattern = regexp.MustCompile(`(?m)^(.+?)\s*(?:--|—|\||@)\s*(.+?)$`)
	datePattern          = regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`)
)

// extractExperience finds the experience section and parses it, preferring
// the custom \resumeSubheading template format and falling back to a
// generic "Title -- Company" + itemize layout.
func extractExperience(sections []section, me *macroExpander) []tailor.Experience {
	sec := findSectionByName(sections, `experience|work\s*history|employment`)
	if sec == nil {
		return nil
	}

	if experiences := parseSubheadingExperience(sec.content, me); len(experiences) > 0 {
		return experiences
	}

	var experiences []tailor.Experience
	for _, sub := range extractSubsections(sec.content) {
		experiences = append(experiences, parseExperienceEntry(sub.title, sub.content, me))
	}
	return experiences
}

// parseSubheadingExperience parses \resumeSubheading{Title}{Dates}{Company}{Location}
// blocks followed by a run of \resumeItem{...} bullets.
func parseSubheadingExperience(content string, me *macroExpander) []tailor.Experience {
	var experiences []tailor.Experience

	starts := resumeSubheadingStart.FindAllStringIndex(content, -1)
	for idx, s := range starts {
		pos := s[1] - 1 // position of the first opening brace

		titleText, pos := ExtractBalancedBraces(content, pos)
		title := toPlainText(titleText)
		pos = skipWhitespaceAfterBrace(content, pos)

		dateText, pos := ExtractBalancedBraces(content, pos)
		pos = skipWhitespaceAfterBrace(content, pos)

		companyText, pos := ExtractBalancedBraces(content, pos)
		company := toPlainText(companyText)
		pos = skipWhitespaceAfterBrace(content, pos)

		locationText, pos := ExtractBalancedBraces(content, pos)
		location := toPlainText(locationText)

		startDate, endDate, current := splitDateRange(dateText)

		restEnd := len(content)
		if idx+1 < len(starts) {
			restEnd = starts[idx+1][0]
		}
		bulletSection := content[pos:restEnd]

		bullets := parseResumeItems(bulletSection, company, me)
		if len(bullets) == 0 {
			continue
		}

		experiences = append(experiences, tailor.Experience{
			Title:     title,
			Company:   company,
			Location:  location,
			StartDate: startDate,
			EndDate:   endDate,
			Current:   current,
			Bullets:   bullets,
		})
	}

	return experiences
}

func skipWhitespaceAfterBrace(content string, pos int) int {
	for pos < len(content) && (content[pos] == ' ' || content[pos] == '\t' || content[pos] == '\n') {
		pos++
	}
	return pos
}

func splitDateRange(dateRange string) (start, end string, current bool) {
	parts := strings.Split(dateRange, "--")
	start = strings.TrimSpace(parts[0])
	end = start
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	current = strings.Contains(strings.ToLower(end), "present")
	return start, end, current
}

// parseResumeItems extracts \resumeItem{...} bullets from a block of
// content, expanding zero-arity macros and recording the custom command
// name when a bullet's unexpanded text invokes one.
func parseResumeItems(blockContent, owner string, me *macroExpander) []tailor.Bullet {
	var bullets []tailor.Bullet

	macroNames := make(map[string]struct{})
	for name := range me.macros {
		macroNames[name] = struct{}{}
	}

	for _, m := range resumeItemStart.FindAllStringIndex(blockContent, -1) {
		itemPos := m[1] - 1
		bulletText, _ := ExtractBalancedBraces(blockContent, itemPos)

		expanded := me.expandText(strings.TrimSpace(bulletText))
		plainText := toPlainText(expanded)

		cmdName := findMacroInText(bulletText, macroNames)

		bullet := tailor.Bullet{
			ID:         tailor.BulletID(owner, len(bullets)),
			Text:       plainText,
			Section:    "experience",
			Subsection: owner,
			Modifiable: true,
		}
		if cmdName != "" {
			bullet.CommandName = cmdName
			bullet.OriginalText = bulletText
		}
		bullets = append(bullets, bullet)
	}

	return bullets
}

// parseExperienceEntry parses the generic "Title -- Company" + itemize
// fallback format.
func parseExperienceEntry(titleLine, content string, me *macroExpander) tailor.Experience {
	var title, company string
	if m := experienceTitlePattern.FindStringSubmatch(titleLine); m != nil {
		title = toPlainText(m[1])
		company = toPlainText(m[2])
	} else {
		title = toPlainText(titleLine)
		company = "Unknown"
	}

	dates := datePattern.FindAllString(content, -1)
	startDate, endDate := "", ""
	if len(dates) > 0 {
		startDate = dates[0]
		endDate = startDate
	}
	if len(dates) > 1 {
		endDate = dates[1]
	}

	var bullets []tailor.Bullet
	for _, items := range extractItemizeBlocks(content) {
		for _, itemText := range items {
			expanded := me.expandText(itemText)
			plainText := toPlainText(expanded)

			macroNames := make(map[string]struct{})
			for name := range me.macros {
				macroNames[name] = struct{}{}
			}
			cmdName := findMacroInText(itemText, macroNames)

			bullet := tailor.Bullet{
				ID:         tailor.BulletID(company, len(bullets)),
				Text:       plainText,
				Section:    "experience",
				Subsection: company,
				Modifiable: true,
			}
			if cmdName != "" {
				bullet.CommandName = cmdName
				bullet.OriginalText = itemText
			}
			bullets = append(bullets, bullet)
		}
	}

	return tailor.Experience{
		Title:     title,
		Company:   company,
		StartDate: startDate,
		EndDate:   endDate,
		Current:   strings.Contains(strings.ToLower(endDate), "present"),
		Bullets:   bullets,
	}
}
