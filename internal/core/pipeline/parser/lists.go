package parser

import (
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

// extractListSection pulls plain-text items out of a simple itemize-only
// section such as certifications or awards.
func extractListSection(sections []section, namePattern string, me *macroExpander) []string {
	sec := findSectionByName(sections, namePattern)
	if sec == nil {
		return nil
	}

	var items []string
	for _, block := range extractItemizeBlocks(sec.content) {
		for _, itemText := range block {
			expanded := me.expandText(itemText)
			if text := toPlainText(expanded); text != "" {
				items = append(items, text)
			}
		}
	}

	if len(items) == 0 {
		items = extractFootnoteItems(sec.content)
	}

	return items
}

func extractFootnoteItems(content string) []string {
	var items []string
	markers := itemMarker.FindAllStringIndex(content, -1)
	for i, m := range markers {
		end := len(content)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		text := toPlainText(strings.TrimSpace(content[m[1]:end]))
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}

// extractProjects finds the projects section and splits it into named
// entries by \subsection.
func extractProjects(sections []section) []tailor.Project {
	sec := findSectionByName(sections, `projects?`)
	if sec == nil {
		return nil
	}

	var projects []tailor.Project
	for _, sub := range extractSubsections(sec.content) {
		name := toPlainText(sub.title)
		description := toPlainText(sub.content)

		var bullets []tailor.Bullet
		for _, block := range extractItemizeBlocks(sub.content) {
			for _, itemText := range block {
				bullets = append(bullets, tailor.Bullet{
					ID:         tailor.BulletID(name, len(bullets)),
					Text:       toPlainText(itemText),
					Section:    "projects",
					Subsection: name,
					Modifiable: true,
				})
			}
		}

		project := tailor.Project{Name: name, Bullets: bullets}
		if len(bullets) == 0 && description != "" {
			project.Bullets = nil
		}
		projects = append(projects, project)
	}
	return projects
}
