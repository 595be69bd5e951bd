package tailor

import (
	"strconv"
	"strings"
)

// PersonalInfo is the identity block of a résumé.
type PersonalInfo struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	GitHub   string
}

// Skills groups a résumé's skill vocabulary by kind.
type Skills struct {
	Technical []string
	Tools     []string
	Languages []string
}

// Bullet is a single achievement line — the atom of selection and rewriting.
type Bullet struct {
	// ID is stable: "<company-or-section>_<index>", lower-cased, spaces
	// replaced with underscores.
	ID string

	Text string

	// Section is one of "experience", "summary", "project".
	Section string

	// Subsection names the owning company/project.
	Subsection string

	Modifiable bool

	// CommandName and OriginalText are set when the bullet body is itself
	// a reference to a user-defined macro, so the template engine can
	// reconstruct the variant in the same form.
	CommandName  string
	OriginalText string
}

// Experience is one employment entry.
type Experience struct {
	Title     string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	Current   bool
	Bullets   []Bullet
}

// Education is one education entry.
type Education struct {
	Institution string
	Degree      string
	Field       string
	Location    string
	StartDate   string
	EndDate     string
}

// Project is an optional projects-section entry.
type Project struct {
	Name    string
	Bullets []Bullet
}

// Resume is the fully parsed, immutable document. It is the output of the
// Document Parser and the input to every other pipeline stage.
type Resume struct {
	Personal      PersonalInfo
	Summary       string
	Experience    []Experience
	Education     []Education
	Skills        Skills
	Projects      []Project
	Certifications []string
	Awards        []string

	// Macros maps a user-defined command name to its expanded plain text.
	Macros map[string]string

	// AllBullets is the flat cross-index of every bullet across
	// Experience and Projects, built once at parse time.
	AllBullets []Bullet
}

// BuildIndex (re)computes AllBullets from Experience and Projects. Called by
// the parser once, exposed so tests can assert the invariant directly.
func (r *Resume) BuildIndex() {
	all := make([]Bullet, 0)
	for _, exp := range r.Experience {
		all = append(all, exp.Bullets...)
	}
	for _, p := range r.Projects {
		all = append(all, p.Bullets...)
	}
	r.AllBullets = all
}

// BulletID derives the stable bullet identifier from an owning section name
// and its position within that section.
func BulletID(owner string, index int) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(owner), " ", "_"))
	if slug == "" {
		slug = "section"
	}
	return slug + "_" + strconv.Itoa(index)
}
