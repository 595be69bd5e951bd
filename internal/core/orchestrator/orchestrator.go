// Package orchestrator drives the résumé-tailoring pipeline end to end:
// parse, extract keywords, select bullets, enhance, splice into a new
// typeset source, compile, score, and persist — one task per generation
// request, reporting progress to pollers and SSE subscribers.
//
// Grounded on original_source/resume/tailoring/variant_generator.py (the
// pipeline steps and their order) and original_source/dashboard/api/
// generate.py (task-map-keyed background execution, progress checkpoints,
// and the stream producer's poll-and-yield loop).
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/ats"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/enhancer"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/fit"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/keywords"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/parser"
	"github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/selector"
	tmplengine "github.com/SeltikHD/chameleon-vitae/internal/core/pipeline/template"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

// streamPollInterval matches the spec's 2 Hz floor frequency for the SSE
// producer.
const streamPollInterval = 500 * time.Millisecond

const (
	llmTimeout       = 60 * time.Second
	availableTimeout = 5 * time.Second
)

var techIndicators = []string{
	"kafka", "kubernetes", "docker", "python", "aws",
	"terraform", "jenkins", "git", "linux", "monitoring",
}

// Orchestrator owns the process-wide task map and drives pipeline runs.
// Every collaborator is optional except the parser/selector/ats pipeline
// stages, which have no external dependency; a nil BulletEnhancer or
// DocumentCompiler degrades the corresponding step to a no-op rather than
// failing the task, per spec.md's ExternalUnavailable handling.
type Orchestrator struct {
	mu    sync.RWMutex
	tasks map[string]*tailor.Task

	fetcher     ports.ContentFetcher
	backend     ports.BulletEnhancer
	enhancer    *enhancer.Enhancer
	compiler    ports.DocumentCompiler
	storage     ports.FileStorage
	gateway     ports.TailoringGateway
	currentYear int
}

// New constructs an Orchestrator. Any adapter argument may be nil; the
// corresponding pipeline step degrades gracefully instead of failing tasks.
func New(
	fetcher ports.ContentFetcher,
	backend ports.BulletEnhancer,
	compiler ports.DocumentCompiler,
	storage ports.FileStorage,
	gateway ports.TailoringGateway,
	currentYear int,
) *Orchestrator {
	o := &Orchestrator{
		tasks:       make(map[string]*tailor.Task),
		fetcher:     fetcher,
		backend:     backend,
		compiler:    compiler,
		storage:     storage,
		gateway:     gateway,
		currentYear: currentYear,
	}
	if backend != nil {
		o.enhancer = enhancer.New(backend)
	}
	return o
}

// Start validates req, registers a task, and launches the pipeline on its
// own goroutine. It returns the task ID immediately; the pipeline continues
// after Start returns and is not cancelled by the caller's context.
func (o *Orchestrator) Start(ctx context.Context, req tailor.TailorRequest) (string, error) {
	if req.ResumeSource == "" && req.ResumeURL == "" {
		return "", fmt.Errorf("%w: resume source or resume URL required", tailor.ErrInputInvalid)
	}
	if req.JobDescription == "" && req.JobURL == "" {
		return "", fmt.Errorf("%w: job description or job URL required", tailor.ErrInputInvalid)
	}
	if req.JobTitle == "" {
		return "", fmt.Errorf("%w: job title required", tailor.ErrInputInvalid)
	}
	if req.TargetBullets <= 0 {
		req.TargetBullets = selector.DefaultConfig().TargetBullets
	}

	taskID := uuid.New().String()
	now := time.Now()
	task := &tailor.Task{
		ID:        taskID,
		State:     tailor.TaskPending,
		Percent:   tailor.ProgressStart,
		Message:   "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}

	o.mu.Lock()
	o.tasks[taskID] = task
	o.mu.Unlock()

	go o.run(taskID, req)

	return taskID, nil
}

// Status returns a snapshot of a task's current state.
func (o *Orchestrator) Status(taskID string) (tailor.Task, error) {
	o.mu.RLock()
	task, ok := o.tasks[taskID]
	o.mu.RUnlock()
	if !ok {
		return tailor.Task{}, tailor.ErrTaskNotFound
	}
	return task.Snapshot(), nil
}

// Stream returns a channel of task snapshots, emitted whenever the task's
// state changes (or at the 2 Hz floor) until it reaches a terminal state,
// at which point the channel is closed after one final event. Cancelling
// ctx stops the producer goroutine without affecting the underlying task.
func (o *Orchestrator) Stream(ctx context.Context, taskID string) (<-chan tailor.Task, error) {
	if _, err := o.Status(taskID); err != nil {
		return nil, err
	}

	out := make(chan tailor.Task)
	go func() {
		defer close(out)

		var last tailor.Task
		first := true
		ticker := time.NewTicker(streamPollInterval)
		defer ticker.Stop()

		for {
			snap, err := o.Status(taskID)
			if err != nil {
				return
			}
			if first || snap.Percent != last.Percent || snap.State != last.State || snap.Message != last.Message {
				first = false
				last = snap
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
			if snap.State.IsTerminal() {
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (o *Orchestrator) run(taskID string, req tailor.TailorRequest) {
	defer func() {
		if r := recover(); r != nil {
			o.fail(taskID, fmt.Errorf("internal error: %v", r))
		}
	}()

	ctx := context.Background()
	o.update(taskID, tailor.TaskRunning, tailor.ProgressStart, "starting generation")

	resumeSource := req.ResumeSource
	if resumeSource == "" {
		fetched, err := o.fetchText(ctx, req.ResumeURL)
		if err != nil {
			o.fail(taskID, err)
			return
		}
		resumeSource = fetched
	}

	o.update(taskID, tailor.TaskRunning, tailor.ProgressParsing, "parsing résumé")
	resume, err := parser.Parse(resumeSource)
	if err != nil {
		o.fail(taskID, fmt.Errorf("%w: %v", tailor.ErrParse, err))
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		fetched, err := o.fetchText(ctx, req.JobURL)
		if err != nil {
			o.fail(taskID, err)
			return
		}
		jobDescription = fetched
	}

	o.update(taskID, tailor.TaskRunning, tailor.ProgressKeywords, "extracting keywords")
	jdKeywords := keywords.Extract(jobDescription, 30)
	topKeywords := make([]string, len(jdKeywords))
	for i, kw := range jdKeywords {
		topKeywords[i] = kw.Text
	}

	o.update(taskID, tailor.TaskRunning, tailor.ProgressSelection, "selecting bullets")
	sections := selector.Select(resume, jobDescription, topKeywords, selector.Config{
		TargetBullets:    req.TargetBullets,
		MinBulletsPerJob: selector.DefaultConfig().MinBulletsPerJob,
		MaxBulletsPerJob: selector.DefaultConfig().MaxBulletsPerJob,
	})

	var enhancement tailor.EnhancementStats
	if req.UseAI && o.enhancer != nil {
		enhanceCtx, cancel := context.WithTimeout(ctx, llmTimeout)
		enhancement = o.enhancer.EnhanceBatch(enhanceCtx, sections, req.JobTitle, topKeywords, maxBulletsToEnhance)
		cancel()
	}

	summary := o.generateSummary(ctx, resume, sections, req.JobTitle, topKeywords)
	skills := optimizeSkills(resume, topKeywords)

	content := tailor.VariantContent{
		Summary:            summary,
		ExperienceSections: sections,
		Skills:             skills,
	}

	engine := tmplengine.New(o.compiler)
	compileCtx, cancel := context.WithTimeout(ctx, 2*llmTimeout)
	modifiedSource, pdf, err := engine.Generate(compileCtx, resumeSource, content)
	cancel()
	if err != nil {
		log.Warn().Err(err).Str("task_id", taskID).Msg("pdf compilation failed, keeping source artifact only")
	}

	variantID := uuid.New().String()
	variant := tailor.Variant{
		ID:             variantID,
		BaseResumePath: req.ResumeSource,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Content:        content,
		OutputFilename: variantID + ".tex",
		CreatedAt:      time.Now(),
		Enhancement:    enhancement,
	}

	variantResume, err := parser.Parse(modifiedSource)
	if err != nil {
		variantResume = resume
	}
	scored := ats.Score(variantResume, jobDescription, req.JobTitle)
	variant.ATSScore = &scored

	if req.JobRequirements != nil {
		fitScore := fit.Score(variantResume, *req.JobRequirements, o.currentYear)
		variant.FitScore = &fitScore
	}

	sourcePath, pdfPath, err := o.persistArtifacts(ctx, variant, modifiedSource, pdf)
	if err != nil {
		o.fail(taskID, fmt.Errorf("%w: %v", tailor.ErrPersistence, err))
		return
	}
	variant.SourcePath = sourcePath
	variant.PDFPath = pdfPath

	o.update(taskID, tailor.TaskRunning, tailor.ProgressPersisted, "saving variant")
	if o.gateway != nil {
		gv := ports.TailoringVariant{
			ID:              variant.ID,
			UserID:          req.RequestedBy,
			JobTitle:        variant.JobTitle,
			Company:         variant.Company,
			SourcePath:      variant.SourcePath,
			PDFPath:         variant.PDFPath,
			OutputFilename:  variant.OutputFilename,
			ATSScoreOverall: variant.ATSScore.Overall,
			CreatedAtUnix:   variant.CreatedAt.Unix(),
		}
		if variant.FitScore != nil {
			gv.FitScoreOverall = variant.FitScore.Overall
		}
		if _, err := o.gateway.SaveVariant(ctx, gv); err != nil {
			o.fail(taskID, fmt.Errorf("%w: %v", tailor.ErrPersistence, err))
			return
		}
	}

	o.mu.Lock()
	if task, ok := o.tasks[taskID]; ok {
		task.State = tailor.TaskCompleted
		task.Percent = tailor.ProgressComplete
		task.Message = "generation completed"
		task.UpdatedAt = time.Now()
		task.Result = &tailor.TaskResult{
			VariantID: variant.ID,
			ATSScore:  variant.ATSScore,
			FitScore:  variant.FitScore,
		}
	}
	o.mu.Unlock()
}

const maxBulletsToEnhance = 10

func (o *Orchestrator) fetchText(ctx context.Context, url string) (string, error) {
	if o.fetcher == nil {
		return "", fmt.Errorf("%w: no content fetcher configured for URL input", tailor.ErrExternalUnavailable)
	}
	text, err := o.fetcher.FetchText(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", tailor.ErrExternalUnavailable, err)
	}
	return text, nil
}

// generateSummary tries the AI backend first, then falls back to keyword
// injection into the original summary, then a generic templated summary.
func (o *Orchestrator) generateSummary(ctx context.Context, resume *tailor.Resume, sections []tailor.ExperienceSection, jobTitle string, jdKeywords []string) string {
	if o.backend != nil {
		availCtx, cancel := context.WithTimeout(ctx, availableTimeout)
		available := o.backend.Available(availCtx)
		cancel()

		if available {
			var bullets []string
			for _, section := range sections {
				count := 0
				for _, sb := range section.SelectedBullets {
					if count >= 2 {
						break
					}
					bullets = append(bullets, sb.Text())
					count++
				}
			}

			skills := resume.Skills.Technical
			if len(skills) > 10 {
				skills = skills[:10]
			}
			top5 := jdKeywords
			if len(top5) > 5 {
				top5 = top5[:5]
			}

			genCtx, cancel := context.WithTimeout(ctx, llmTimeout)
			aiSummary, err := o.backend.GenerateSummary(genCtx, bullets, skills, jobTitle, top5)
			cancel()
			if err == nil && aiSummary != "" {
				return aiSummary
			}
		}
	}

	if resume.Summary != "" {
		return injectKeywords(resume.Summary, jdKeywords)
	}

	top3 := jdKeywords
	if len(top3) > 3 {
		top3 = top3[:3]
	}
	return fmt.Sprintf("Experienced professional with expertise in %s seeking %s role.", strings.Join(top3, ", "), jobTitle)
}

func injectKeywords(summary string, jdKeywords []string) string {
	summaryLower := strings.ToLower(summary)
	var missing []string
	for _, kw := range jdKeywords {
		if !strings.Contains(summaryLower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	if len(missing) == 0 {
		return summary
	}
	if len(missing) > 2 {
		missing = missing[:2]
	}
	return summary + " Specialized in " + strings.Join(missing, ", ") + "."
}

// optimizeSkills reorders a résumé's skills by relevance to the job
// description's keywords and appends any clearly-technical keywords the
// résumé doesn't already list.
func optimizeSkills(resume *tailor.Resume, jdKeywords []string) tailor.Skills {
	type scored struct {
		skill string
		score int
	}

	score := func(skill string) int {
		skillLower := strings.ToLower(skill)
		s := 0
		for _, kw := range jdKeywords {
			kwLower := strings.ToLower(kw)
			switch {
			case kwLower == skillLower:
				s += 10
			case strings.Contains(skillLower, kwLower) || strings.Contains(kwLower, skillLower):
				s += 5
			}
		}
		return s
	}

	rank := func(skills []string) []string {
		ranked := make([]scored, len(skills))
		for i, s := range skills {
			ranked[i] = scored{s, score(s)}
		}
		for i := 1; i < len(ranked); i++ {
			for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
				ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
			}
		}
		out := make([]string, len(ranked))
		for i, r := range ranked {
			out[i] = r.skill
		}
		return out
	}

	optimized := tailor.Skills{
		Technical: rank(resume.Skills.Technical),
		Tools:     rank(resume.Skills.Tools),
		Languages: rank(resume.Skills.Languages),
	}

	known := make(map[string]bool)
	for _, s := range append(append(append([]string{}, resume.Skills.Technical...), resume.Skills.Tools...), resume.Skills.Languages...) {
		known[strings.ToLower(s)] = true
	}

	top10 := jdKeywords
	if len(top10) > 10 {
		top10 = top10[:10]
	}
	for _, kw := range top10 {
		if known[strings.ToLower(kw)] || !isValidTechSkill(kw) {
			continue
		}
		optimized.Technical = append(optimized.Technical, titleCase(kw))
	}

	return optimized
}

func isValidTechSkill(keyword string) bool {
	keywordLower := strings.ToLower(keyword)
	for _, tech := range techIndicators {
		if strings.Contains(keywordLower, tech) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	for i, f := range fields {
		if len(f) > 0 {
			fields[i] = strings.ToUpper(f[:1]) + f[1:]
		}
	}
	return strings.Join(fields, " ")
}

// persistArtifacts writes the per-variant trio of artifacts — source,
// optional PDF, and metadata — through the storage port, returning the
// keys for the source and (if produced) PDF.
func (o *Orchestrator) persistArtifacts(ctx context.Context, variant tailor.Variant, source string, pdf []byte) (sourceKey, pdfKey string, err error) {
	if o.storage == nil {
		return "", "", nil
	}

	sourceKey = variant.ID + ".tex"
	if _, err := o.storage.Upload(ctx, ports.UploadRequest{
		Key:         sourceKey,
		Content:     strings.NewReader(source),
		ContentType: "application/x-tex",
	}); err != nil {
		return "", "", fmt.Errorf("uploading source: %w", err)
	}

	if len(pdf) > 0 {
		pdfKey = variant.ID + ".pdf"
		if _, err := o.storage.Upload(ctx, ports.UploadRequest{
			Key:         pdfKey,
			Content:     bytes.NewReader(pdf),
			ContentType: "application/pdf",
		}); err != nil {
			return sourceKey, "", fmt.Errorf("uploading pdf: %w", err)
		}
	}

	metadata, err := json.Marshal(variant)
	if err != nil {
		return sourceKey, pdfKey, fmt.Errorf("marshaling metadata: %w", err)
	}
	if _, err := o.storage.Upload(ctx, ports.UploadRequest{
		Key:         variant.ID + "_metadata.json",
		Content:     bytes.NewReader(metadata),
		ContentType: "application/json",
	}); err != nil {
		return sourceKey, pdfKey, fmt.Errorf("uploading metadata: %w", err)
	}

	return sourceKey, pdfKey, nil
}

func (o *Orchestrator) update(taskID string, state tailor.TaskState, percent int, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	task, ok := o.tasks[taskID]
	if !ok {
		return
	}
	task.State = state
	task.Percent = percent
	task.Message = message
	task.UpdatedAt = time.Now()
}

func (o *Orchestrator) fail(taskID string, err error) {
	log.Error().Err(err).Str("task_id", taskID).Msg("tailoring task failed")
	o.mu.Lock()
	defer o.mu.Unlock()
	task, ok := o.tasks[taskID]
	if !ok {
		return
	}
	task.State = tailor.TaskFailed
	task.Err = err.Error()
	task.Message = "generation failed"
	task.UpdatedAt = time.Now()
}
