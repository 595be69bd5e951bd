package ports

import "context"

// BulletEnhancer rewrites a single résumé bullet to better match a job,
// implemented by an Ollama-backed adapter. Distinct from AIProvider (which
// serves the authenticated-profile-builder side of the product): this port
// serves the résumé-tailoring pipeline, which needs only raw text in and
// text out, not the structured JobAnalysis shape AIProvider speaks.
type BulletEnhancer interface {
	// EnhanceBullet rewrites bulletText for jobTitle, trying to naturally
	// incorporate keywords. Returns "", nil if the backend is unavailable
	// or declines to answer — callers treat that as "keep the original".
	EnhanceBullet(ctx context.Context, bulletText, jobTitle string, keywords []string) (string, error)

	// GenerateSummary drafts a professional summary from a candidate's
	// top bullets, skills, and the target job.
	GenerateSummary(ctx context.Context, bullets, skills []string, jobTitle string, keywords []string) (string, error)

	// Available reports whether the backend is currently reachable.
	Available(ctx context.Context) bool
}

// ContentFetcher retrieves and extracts readable text from a URL — used to
// pull a job posting or a hosted résumé source when the caller supplies a
// link instead of raw text.
type ContentFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// DocumentCompiler renders a typeset résumé source into a PDF.
type DocumentCompiler interface {
	Compile(ctx context.Context, source string) ([]byte, error)
}

// TailoringGateway persists tailoring variants and their scores.
type TailoringGateway interface {
	SaveVariant(ctx context.Context, v TailoringVariant) (string, error)
	GetVariant(ctx context.Context, id string) (*TailoringVariant, error)
	ListVariants(ctx context.Context, userID string) ([]TailoringVariant, error)
	DeleteVariant(ctx context.Context, id string) error
}

// TailoringVariant is the persistence-layer shape of a tailored résumé
// variant, kept separate from tailor.Variant so the domain package stays
// free of storage concerns.
type TailoringVariant struct {
	ID              string
	UserID          string
	JobTitle        string
	Company         string
	SourcePath      string
	PDFPath         string
	OutputFilename  string
	ATSScoreOverall float64
	FitScoreOverall float64
	CreatedAtUnix   int64
}
