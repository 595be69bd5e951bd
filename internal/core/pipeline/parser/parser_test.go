package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeSource = `
\documentclass{resume}

\begin{document}

\name{Jane Doe}
\email{jane.doe@example.com}
\phone{+1 555-123-4567}
\linkedin{linkedin.com/in/janedoe}
\github{github.com/janedoe}

\section{Summary}
Platform engineer with a decade of experience building Kafka-backed event
pipelines and leading cross-functional teams across multiple time zones.

\section{Experience}
\resumeSubheading{Senior Platform Engineer}{Jan 2020 -- Present}{Acme Corp}{Remote}
\resumeItem{Led the Kafka platform team, architecting clusters serving 2B events/day.}
\resumeItem{Migrated deployments to Kubernetes, cutting infra costs by 30\%.}

\resumeSubheading{Platform Engineer}{Jun 2016 -- Dec 2019}{Beta Inc}{NY}
\resumeItem{Built CI/CD pipelines with Jenkins and Docker.}

\section{Education}
\resumeSubheading{State University}{City, ST}{B.S. in Computer Science}{2016}

\section{Technical Skills}
Technical: Kafka, Kubernetes, Docker, Go

\section{Certifications}
\begin{itemize}
	\item AWS Certified Solutions Architect
	\item Certified Kubernetes Administrator
\end{itemize}

\section{Projects}
\subsection{Open Source Event Bus}
\begin{itemize}
	\item Designed a pluggable event bus used by three internal teams.
\end{itemize}

\end{document}
`

func TestParseRejectsEmptySource(t *testing.T) {
	_, err := Parse("   ")
	require.Error(t, err)
}

func TestParseExtractsPersonalInfo(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", resume.Personal.Name)
	assert.Equal(t, "jane.doe@example.com", resume.Personal.Email)
	assert.Equal(t, "janedoe", resume.Personal.LinkedIn)
	assert.Equal(t, "janedoe", resume.Personal.GitHub)
}

func TestParseExtractsSummary(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	assert.Contains(t, resume.Summary, "Platform engineer")
	assert.Contains(t, resume.Summary, "Kafka")
}

func TestParseExtractsExperience(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	require.Len(t, resume.Experience, 2)

	first := resume.Experience[0]
	assert.Equal(t, "Senior Platform Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Remote", first.Location)
	assert.True(t, first.Current)
	require.Len(t, first.Bullets, 2)
	assert.Contains(t, first.Bullets[0].Text, "Kafka platform team")

	second := resume.Experience[1]
	assert.Equal(t, "Platform Engineer", second.Title)
	assert.Equal(t, "Beta Inc", second.Company)
	assert.False(t, second.Current)
}

func TestParseExtractsEducation(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "State University", resume.Education[0].Institution)
	assert.Equal(t, "B.S. in Computer Science", resume.Education[0].Degree)
}

func TestParseBucketsSkillsByCategory(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	assert.Contains(t, resume.Skills.Technical, "Kafka")
	assert.Contains(t, resume.Skills.Technical, "Kubernetes")
	assert.Contains(t, resume.Skills.Technical, "Go")
}

func TestParseExtractsCertificationsAndProjects(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	require.Len(t, resume.Certifications, 2)
	assert.Contains(t, resume.Certifications, "AWS Certified Solutions Architect")

	require.Len(t, resume.Projects, 1)
	assert.Equal(t, "Open Source Event Bus", resume.Projects[0].Name)
	require.Len(t, resume.Projects[0].Bullets, 1)
}

func TestParseBuildsBulletIndex(t *testing.T) {
	resume, err := Parse(sampleResumeSource)
	require.NoError(t, err)

	assert.NotEmpty(t, resume.AllBullets)
	for _, b := range resume.AllBullets {
		assert.NotEmpty(t, b.ID)
	}
}

func TestParseMissingSectionsAreLeftEmptyNotError(t *testing.T) {
	minimal := `\section{Experience}\resumeSubheading{Engineer}{2020 -- Present}{Acme}{Remote}\resumeItem{Did things.}`

	resume, err := Parse(minimal)
	require.NoError(t, err)

	assert.Empty(t, resume.Education)
	assert.Empty(t, resume.Certifications)
	assert.Equal(t, "", resume.Summary)
}

func TestExtractBalancedBracesHandlesNestedBraces(t *testing.T) {
	text := `{outer \textbf{inner} text} trailing`
	body, end := ExtractBalancedBraces(text, 0)

	assert.Equal(t, `outer \textbf{inner} text`, body)
	assert.Equal(t, len(`{outer \textbf{inner} text}`), end)
}

func TestExtractBalancedBracesBestEffortOnUnbalancedInput(t *testing.T) {
	text := `{unterminated`
	body, end := ExtractBalancedBraces(text, 0)

	assert.Equal(t, "unterminated", body)
	assert.Equal(t, len(text), end)
}

func TestExtractBalancedBracesSkipsToOpeningBrace(t *testing.T) {
	text := `  {value}`
	body, _ := ExtractBalancedBraces(text, 0)

	assert.Equal(t, "value", body)
}

func TestMacroExpanderExpandsZeroArityMacro(t *testing.T) {
	me := newMacroExpander()
	me.extractDefinitions(`\newcommand{\teamName}{Platform Team}`)

	expanded := me.expandText(`Led the \teamName across two offices.`)

	assert.Equal(t, "Led the Platform Team across two offices.", expanded)
}

func TestMacroExpanderPreservesLiteralDollarInBody(t *testing.T) {
	source := `
\newcommand{\revenueBullet}{Increased revenue by \$2M in fiscal year 2023}
\section{Experience}
\resumeSubheading{Sales Engineer}{2021 -- Present}{Acme Corp}{Remote}
\resumeItem{\revenueBullet}
`
	resume, err := Parse(source)
	require.NoError(t, err)

	require.Len(t, resume.Experience, 1)
	require.Len(t, resume.Experience[0].Bullets, 1)

	assert.Equal(t, "Increased revenue by $2M in fiscal year 2023", resume.Experience[0].Bullets[0].Text)
}

func TestMacroExpanderRemovesDefinitionsFromContent(t *testing.T) {
	me := newMacroExpander()
	content := `\newcommand{\teamName}{Platform Team}\section{Experience}`

	stripped := me.removeDefinitions(content)

	assert.NotContains(t, stripped, "newcommand")
	assert.Contains(t, stripped, `\section{Experience}`)
}

func TestToPlainTextStripsFormattingAndEscapes(t *testing.T) {
	text := `Built a \textbf{scalable} system for Acme \& Co, saving 20\%.`

	plain := toPlainText(text)

	assert.Equal(t, "Built a scalable system for Acme & Co, saving 20%.", plain)
}

func TestExtractItemizeBlocksFindsMultipleBlocksInOrder(t *testing.T) {
	content := `
\begin{itemize}
	\item first
	\item second
\end{itemize}
some text
\begin{itemize}
	\item third
\end{itemize}
`
	blocks := extractItemizeBlocks(content)

	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"first", "second"}, blocks[0])
	assert.Equal(t, []string{"third"}, blocks[1])
}

func TestParseRecordsCommandNameOnMacroExpressedBullet(t *testing.T) {
	source := `
\newcommand{\kafkaBullet}{Managed 100-node Kafka cluster}
\section{Experience}
\resumeSubheading{Platform Engineer}{2021 -- Present}{Acme Corp}{Remote}
\resumeItem{\kafkaBullet}
`
	resume, err := Parse(source)
	require.NoError(t, err)

	require.Len(t, resume.Experience, 1)
	require.Len(t, resume.Experience[0].Bullets, 1)

	bullet := resume.Experience[0].Bullets[0]
	assert.Equal(t, "kafkaBullet", bullet.CommandName)
	assert.Equal(t, "Managed 100-node Kafka cluster", bullet.Text)
}

func TestExtractSectionsRespectsNestingLevel(t *testing.T) {
	content := `\section{Experience}Intro text.\subsection{Acme}Acme body.\section{Education}Edu body.`

	sections := extractSections(content)

	require.Len(t, sections, 3)
	assert.Equal(t, "Experience", sections[0].title)
	assert.Equal(t, "Acme body.", sections[1].content)
	assert.Equal(t, "Education", sections[2].title)
	assert.Equal(t, "Edu body.", sections[2].content)
}
