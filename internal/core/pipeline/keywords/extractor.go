// Package keywords implements the Keyword Extractor: pulling a ranked set
// of technical, domain, and soft-skill terms out of a job description.
//
// Grounded on original_source/resume/ats/keyword_extractor.py.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
)

// techPattern pairs a canonical skill name with the regex that detects it.
type techPattern struct {
	name    string
	pattern *regexp.Regexp
}

var techPatterns = []techPattern{
	{"kafka", regexp.MustCompile(`(?i)\b(?:kafka|apache\s+kafka|confluent)\b`)},
	{"kubernetes", regexp.MustCompile(`(?i)\bk8s\b|\bkubernetes\b`)},
	{"docker", regexp.MustCompile(`(?i)\bdocker\b|\bcontainerization\b`)},
	{"python", regexp.MustCompile(`(?i)\bpython\b|\bpython3\b`)},
	{"java", regexp.MustCompile(`(?i)\bjava\b(?:\s*script)?`)},
	{"aws", regexp.MustCompile(`(?i)\baws\b|\bamazon\s+web\s+services\b`)},
	{"azure", regexp.MustCompile(`(?i)\bazure\b|\bmicrosoft\s+azure\b`)},
	{"terraform", regexp.MustCompile(`(?i)\bterraform\b|\biac\b|\binfrastructure\s+as\s+code\b`)},
	{"ansible", regexp.MustCompile(`(?i)\bansible\b`)},
	{"jenkins", regexp.MustCompile(`(?i)\bjenkins\b|\bci/cd\b`)},
	{"git", regexp.MustCompile(`(?i)\bgit\b|\bgithub\b|\bgitlab\b`)},
}

var synonyms = map[string][]string{
	"kafka":      {"apache kafka", "confluent kafka", "kafka streams"},
	"kubernetes": {"k8s", "container orchestration"},
	"ci/cd":      {"continuous integration", "continuous deployment", "jenkins", "gitlab ci"},
	"monitoring": {"observability", "telemetry", "alerting", "grafana", "prometheus"},
	"scripting":  {"automation", "bash", "shell", "python scripting"},
	"cloud":      {"aws", "azure", "gcp", "cloud computing"},
}

var certifications = []string{
	"aws certified", "azure certified", "cka", "ckad",
	"confluent certified", "kafka certification",
	"terraform certified", "ansible certified",
}

var domainPatterns = []techPattern{
	{"cluster management", regexp.MustCompile(`(?i)\bcluster\s+(?:management|administration|scaling)\b`)},
	{"high availability", regexp.MustCompile(`(?i)\bhigh\s+availability\b|\bha\b`)},
	{"disaster recovery", regexp.MustCompile(`(?i)\bdisaster\s+recovery\b|\bdr\b|\bbackup\b`)},
	{"performance tuning", regexp.MustCompile(`(?i)\bperformance\s+(?:tuning|optimization)\b`)},
	{"security", regexp.MustCompile(`(?i)\bsecurity\b|\bssl/tls\b|\bencryption\b|\bsasl\b`)},
	{"monitoring", regexp.MustCompile(`(?i)\bmonitoring\b|\bobservability\b|\bmetrics\b`)},
	{"replication", regexp.MustCompile(`(?i)\breplication\b|\bdata\s+replication\b`)},
	{"partitioning", regexp.MustCompile(`(?i)\bpartition(?:ing|s)?\b`)},
	{"throughput", regexp.MustCompile(`(?i)\bthroughput\b|\blatency\b`)},
}

var softSkills = []string{
	"collaboration", "communication", "leadership", "problem solving",
	"analytical", "troubleshooting", "teamwork", "mentoring",
	"documentation", "agile", "scrum",
}

var requirementsSectionPattern = regexp.MustCompile(`(?is)(?:requirements?|qualifications?)`)
var wordPattern = regexp.MustCompile(`[a-z0-9]+`)
var sentenceSplitPattern = regexp.MustCompile(`[.!?\n]+`)

// Extract returns up to topN ranked keywords from a job description text.
func Extract(jobDescription string, topN int) []tailor.Keyword {
	var all []tailor.Keyword
	all = append(all, extractTechnicalSkills(jobDescription)...)
	all = append(all, extractCertifications(jobDescription)...)
	all = append(all, extractKeyPhrases(jobDescription, 3)...)
	all = append(all, extractDomainTerms(jobDescription)...)
	all = append(all, extractSoftSkills(jobDescription)...)

	return deduplicateAndRank(all, topN)
}

func extractTechnicalSkills(text string) []tailor.Keyword {
	var keywords []tailor.Keyword
	lower := strings.ToLower(text)

	for _, tp := range techPatterns {
		matches := tp.pattern.FindAllStringIndex(lower, -1)
		for _, m := range matches {
			start := max(0, m[0]-20)
			end := min(len(text), m[1]+20)
			context := text[start:end]

			keywords = append(keywords, tailor.Keyword{
				Text:       tp.name,
				Category:   tailor.CategoryTechnical,
				Importance: calculateImportance(text, text[m[0]:m[1]]),
				Synonyms:   synonyms[tp.name],
				Context:    context,
			})
		}
	}
	return keywords
}

func extractCertifications(text string) []tailor.Keyword {
	var keywords []tailor.Keyword
	lower := strings.ToLower(text)

	for _, cert := range certifications {
		if strings.Contains(lower, cert) {
			keywords = append(keywords, tailor.Keyword{
				Text:       titleCase(cert),
				Category:   tailor.CategoryCertification,
				Importance: 0.9,
			})
		}
	}
	return keywords
}

// extractKeyPhrases finds 2..n-grams that repeat at least twice across the
// document's sentences.
func extractKeyPhrases(text string, n int) []tailor.Keyword {
	counts := make(map[string]int)

	for _, sentence := range sentenceSplitPattern.Split(strings.ToLower(text), -1) {
		words := wordPattern.FindAllString(sentence, -1)
		var filtered []string
		for _, w := range words {
			if len(w) > 2 {
				filtered = append(filtered, w)
			}
		}

		for size := 2; size <= n; size++ {
			for i := 0; i+size <= len(filtered); i++ {
				phrase := strings.Join(filtered[i:i+size], " ")
				counts[phrase]++
			}
		}
	}

	type countedPhrase struct {
		phrase string
		count  int
	}
	var ranked []countedPhrase
	for phrase, count := range counts {
		if count >= 2 {
			ranked = append(ranked, countedPhrase{phrase, count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].phrase < ranked[j].phrase
	})
	if len(ranked) > 20 {
		ranked = ranked[:20]
	}

	var keywords []tailor.Keyword
	for _, r := range ranked {
		keywords = append(keywords, tailor.Keyword{
			Text:       r.phrase,
			Category:   categorizePhrase(r.phrase),
			Importance: min(float64(r.count)/5.0, 1.0),
		})
	}
	return keywords
}

func extractDomainTerms(text string) []tailor.Keyword {
	var keywords []tailor.Keyword
	lower := strings.ToLower(text)

	for _, dp := range domainPatterns {
		if dp.pattern.MatchString(lower) {
			keywords = append(keywords, tailor.Keyword{
				Text:       dp.name,
				Category:   tailor.CategoryDomain,
				Importance: 0.8,
			})
		}
	}
	return keywords
}

func extractSoftSkills(text string) []tailor.Keyword {
	var keywords []tailor.Keyword
	lower := strings.ToLower(text)

	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			keywords = append(keywords, tailor.Keyword{
				Text:       strings.Title(skill),
				Category:   tailor.CategorySoftSkill,
				Importance: 0.5,
			})
		}
	}
	return keywords
}

// calculateImportance scores a matched keyword 0..1 from contextual signals:
// appearing near "requirements"/"qualifications", in the first paragraph,
// near emphasis words, and by raw frequency.
func calculateImportance(fullText, keyword string) float64 {
	importance := 0.5
	lower := strings.ToLower(fullText)
	keywordLower := strings.ToLower(keyword)

	if idx := requirementsSectionPattern.FindStringIndex(lower); idx != nil {
		if strings.Contains(lower[idx[0]:], keywordLower) {
			importance += 0.3
		}
	}

	firstParaEnd := min(500, len(lower))
	if strings.Contains(lower[:firstParaEnd], keywordLower) {
		importance += 0.2
	}

	emphasisPattern := regexp.MustCompile(`(?i)\b(?:required|must|essential|critical|key)\b.{0,50}` + regexp.QuoteMeta(keywordLower))
	if emphasisPattern.MatchString(lower) {
		importance += 0.2
	}

	frequency := strings.Count(lower, keywordLower)
	importance += min(float64(frequency)*0.1, 0.3)

	return min(importance, 1.0)
}

func categorizePhrase(phrase string) tailor.KeywordCategory {
	techIndicators := []string{"system", "cluster", "server", "data", "api", "infrastructure"}
	for _, ind := range techIndicators {
		if strings.Contains(phrase, ind) {
			return tailor.CategoryTechnical
		}
	}

	expIndicators := []string{"experience", "years", "background", "expertise"}
	for _, ind := range expIndicators {
		if strings.Contains(phrase, ind) {
			return tailor.CategoryExperience
		}
	}

	return tailor.CategoryDomain
}

// deduplicateAndRank keeps the highest-importance entry per normalized
// text, then sorts by (category priority, importance) descending.
func deduplicateAndRank(keywords []tailor.Keyword, topN int) []tailor.Keyword {
	unique := make(map[string]tailor.Keyword)
	for _, kw := range keywords {
		key := kw.Key()
		if existing, ok := unique[key]; !ok || kw.Importance > existing.Importance {
			unique[key] = kw
		}
	}

	ranked := make([]tailor.Keyword, 0, len(unique))
	for _, kw := range unique {
		ranked = append(ranked, kw)
	}
	sort.Slice(ranked, func(i, j int) bool {
		pi, pj := ranked[i].Category.Priority(), ranked[j].Category.Priority()
		if pi != pj {
			return pi > pj
		}
		return ranked[i].Importance > ranked[j].Importance
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// titleCase capitalizes the first letter of each space-separated word,
// standing in for Python's str.title() over our small fixed vocabularies.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min[T int | float64](a, b T) T {
	if a < b {
		return a
	}
	return b
}
