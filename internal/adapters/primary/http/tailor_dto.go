package http

import "time"

// StartGenerationRequest requests a new tailored-résumé generation task.
type StartGenerationRequest struct {
	ResumeSource   string `json:"resume_source,omitempty" example:"\\documentclass{article}..."`
	ResumeURL      string `json:"resume_url,omitempty" example:"https://example.com/resume.tex"`
	JobTitle       string `json:"job_title" example:"Senior Backend Engineer"`
	Company        string `json:"company,omitempty" example:"Acme Corp"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" example:"https://linkedin.com/jobs/view/12345"`
	TargetBullets  int    `json:"target_bullets,omitempty" example:"12"`
	UseAI          bool   `json:"use_ai,omitempty" example:"true"`
}

// StartGenerationResponse acknowledges a generation task was queued.
type StartGenerationResponse struct {
	TaskID string `json:"task_id" example:"b3f1c9d4-..."`
}

// TaskStatusResponse reports a generation task's current progress.
type TaskStatusResponse struct {
	TaskID    string              `json:"task_id"`
	State     string              `json:"state" example:"running"`
	Percent   int                 `json:"percent" example:"40"`
	Message   string              `json:"message" example:"selecting bullets"`
	Error     string              `json:"error,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Result    *TaskResultResponse `json:"result,omitempty"`
}

// TaskResultResponse is the outcome of a completed generation task.
type TaskResultResponse struct {
	VariantID string   `json:"variant_id"`
	ATSScore  *float64 `json:"ats_score,omitempty"`
	FitScore  *float64 `json:"fit_score,omitempty"`
}

// VariantResponse describes a persisted tailored résumé variant.
type VariantResponse struct {
	ID             string  `json:"id"`
	JobTitle       string  `json:"job_title"`
	Company        string  `json:"company,omitempty"`
	OutputFilename string  `json:"output_filename"`
	ATSScore       float64 `json:"ats_score"`
	FitScore       float64 `json:"fit_score,omitempty"`
	CreatedAt      int64   `json:"created_at"`
}

// ListVariantsResponse lists a user's tailored résumé variants.
type ListVariantsResponse struct {
	Data []VariantResponse `json:"data"`
}
