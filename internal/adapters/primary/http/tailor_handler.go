package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/SeltikHD/chameleon-vitae/internal/core/domain/tailor"
	"github.com/SeltikHD/chameleon-vitae/internal/core/orchestrator"
	"github.com/SeltikHD/chameleon-vitae/internal/core/ports"
)

// TailorHandler handles the résumé-tailoring pipeline's HTTP surface:
// starting a generation task, polling or streaming its progress, and
// listing/fetching/deleting the variants it produces.
type TailorHandler struct {
	orchestrator *orchestrator.Orchestrator
	gateway      ports.TailoringGateway
	storage      ports.FileStorage
}

// NewTailorHandler creates a new TailorHandler.
func NewTailorHandler(orch *orchestrator.Orchestrator, gateway ports.TailoringGateway, storage ports.FileStorage) *TailorHandler {
	return &TailorHandler{
		orchestrator: orch,
		gateway:      gateway,
		storage:      storage,
	}
}

// Start queues a new tailoring generation task.
//
//	@Summary		Start résumé generation
//	@Description	Queues a background task that tailors a résumé to a job description
//	@Tags			tailor
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		StartGenerationRequest	true	"Generation parameters"
//	@Success		202		{object}	StartGenerationResponse
//	@Failure		400		{object}	ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Router			/v1/generate/start [post]
func (h *TailorHandler) Start(w http.ResponseWriter, r *http.Request) {
	authUser, ok := GetAuthenticatedUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req StartGenerationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	taskID, err := h.orchestrator.Start(r.Context(), tailor.TailorRequest{
		ResumeSource:   req.ResumeSource,
		ResumeURL:      req.ResumeURL,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		JobDescription: req.JobDescription,
		JobURL:         req.JobURL,
		TargetBullets:  req.TargetBullets,
		UseAI:          req.UseAI,
		RequestedBy:    authUser.ID,
	})
	if err != nil {
		if errors.Is(err, tailor.ErrInputInvalid) {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		log.Error().Err(err).Str("user_id", authUser.ID).Msg("Failed to start generation task")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to start generation")
		return
	}

	respondJSON(w, http.StatusAccepted, StartGenerationResponse{TaskID: taskID})
}

// Status returns a generation task's current progress.
//
//	@Summary		Get generation status
//	@Description	Returns the current progress of a tailoring task
//	@Tags			tailor
//	@Produce		json
//	@Security		BearerAuth
//	@Param			taskID	path		string	true	"Task ID"
//	@Success		200		{object}	TaskStatusResponse
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		404		{object}	ErrorResponse	"Task not found"
//	@Router			/v1/generate/status/{taskID} [get]
func (h *TailorHandler) Status(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetAuthenticatedUser(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	taskID := chi.URLParam(r, "taskID")
	task, err := h.orchestrator.Status(taskID)
	if err != nil {
		respondError(w, http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
		return
	}

	respondJSON(w, http.StatusOK, mapTaskToResponse(task))
}

// Stream streams a generation task's progress as server-sent events until
// it reaches a terminal state.
//
//	@Summary		Stream generation status
//	@Description	Streams progress events for a tailoring task over SSE
//	@Tags			tailor
//	@Produce		text/event-stream
//	@Security		BearerAuth
//	@Param			taskID	path	string	true	"Task ID"
//	@Success		200		{string}	string	"text/event-stream"
//	@Failure		401		{object}	ErrorResponse	"Unauthorized"
//	@Failure		404		{object}	ErrorResponse	"Task not found"
//	@Router			/v1/generate/stream/{taskID} [get]
func (h *TailorHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetAuthenticatedUser(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	taskID := chi.URLParam(r, "taskID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "STREAMING_UNSUPPORTED", "Streaming unsupported")
		return
	}

	events, err := h.orchestrator.Stream(r.Context(), taskID)
	if err != nil {
		respondError(w, http.StatusNotFound, "TASK_NOT_FOUND", "Task not found")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for task := range events {
		if err := writeSSEEvent(w, mapTaskToResponse(task)); err != nil {
			return
		}
		flusher.Flush()
	}
}

// List returns all tailored résumé variants for the authenticated user.
//
//	@Summary		List variants
//	@Description	Lists tailored résumé variants generated for the authenticated user
//	@Tags			tailor
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ListVariantsResponse
//	@Failure		401	{object}	ErrorResponse	"Unauthorized"
//	@Failure		500	{object}	ErrorResponse	"Internal server error"
//	@Router			/v1/variants [get]
func (h *TailorHandler) List(w http.ResponseWriter, r *http.Request) {
	authUser, ok := GetAuthenticatedUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if h.gateway == nil {
		respondJSON(w, http.StatusOK, ListVariantsResponse{Data: []VariantResponse{}})
		return
	}

	variants, err := h.gateway.ListVariants(r.Context(), authUser.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", authUser.ID).Msg("Failed to list variants")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list variants")
		return
	}

	data := make([]VariantResponse, len(variants))
	for i, v := range variants {
		data[i] = mapVariantToResponse(v)
	}

	respondJSON(w, http.StatusOK, ListVariantsResponse{Data: data})
}

// Get returns a single tailored résumé variant.
//
//	@Summary		Get variant
//	@Description	Returns a single tailored résumé variant's metadata
//	@Tags			tailor
//	@Produce		json
//	@Security		BearerAuth
//	@Param			variantID	path		string	true	"Variant ID"
//	@Success		200			{object}	VariantResponse
//	@Failure		401			{object}	ErrorResponse	"Unauthorized"
//	@Failure		404			{object}	ErrorResponse	"Variant not found"
//	@Router			/v1/variants/{variantID} [get]
func (h *TailorHandler) Get(w http.ResponseWriter, r *http.Request) {
	authUser, ok := GetAuthenticatedUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	variant, err := h.lookupOwnedVariant(w, r, authUser.ID)
	if err != nil {
		return
	}

	respondJSON(w, http.StatusOK, mapVariantToResponse(*variant))
}

// Delete removes a tailored résumé variant.
//
//	@Summary		Delete variant
//	@Description	Deletes a tailored résumé variant and its persisted row
//	@Tags			tailor
//	@Security		BearerAuth
//	@Param			variantID	path	string	true	"Variant ID"
//	@Success		204
//	@Failure		401			{object}	ErrorResponse	"Unauthorized"
//	@Failure		404			{object}	ErrorResponse	"Variant not found"
//	@Router			/v1/variants/{variantID} [delete]
func (h *TailorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authUser, ok := GetAuthenticatedUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	if _, err := h.lookupOwnedVariant(w, r, authUser.ID); err != nil {
		return
	}

	variantID := chi.URLParam(r, "variantID")
	if err := h.gateway.DeleteVariant(r.Context(), variantID); err != nil {
		log.Error().Err(err).Str("variant_id", variantID).Msg("Failed to delete variant")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete variant")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Download streams a variant's compiled PDF.
//
//	@Summary		Download variant PDF
//	@Description	Downloads the compiled PDF for a tailored résumé variant
//	@Tags			tailor
//	@Produce		application/pdf
//	@Security		BearerAuth
//	@Param			variantID	path	string	true	"Variant ID"
//	@Success		200			{file}	binary	"PDF file"
//	@Failure		401			{object}	ErrorResponse	"Unauthorized"
//	@Failure		404			{object}	ErrorResponse	"Variant or PDF not found"
//	@Router			/v1/variants/{variantID}/download [get]
func (h *TailorHandler) Download(w http.ResponseWriter, r *http.Request) {
	h.downloadArtifact(w, r, func(v *ports.TailoringVariant) string { return v.PDFPath }, "application/pdf")
}

// DownloadTex streams a variant's typeset LaTeX source.
//
//	@Summary		Download variant source
//	@Description	Downloads the typeset LaTeX source for a tailored résumé variant
//	@Tags			tailor
//	@Produce		application/x-tex
//	@Security		BearerAuth
//	@Param			variantID	path	string	true	"Variant ID"
//	@Success		200			{file}	binary	"LaTeX source"
//	@Failure		401			{object}	ErrorResponse	"Unauthorized"
//	@Failure		404			{object}	ErrorResponse	"Variant not found"
//	@Router			/v1/variants/{variantID}/download-tex [get]
func (h *TailorHandler) DownloadTex(w http.ResponseWriter, r *http.Request) {
	h.downloadArtifact(w, r, func(v *ports.TailoringVariant) string { return v.SourcePath }, "application/x-tex")
}

func (h *TailorHandler) downloadArtifact(w http.ResponseWriter, r *http.Request, key func(*ports.TailoringVariant) string, contentType string) {
	authUser, ok := GetAuthenticatedUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	variant, err := h.lookupOwnedVariant(w, r, authUser.ID)
	if err != nil {
		return
	}

	artifactKey := key(variant)
	if artifactKey == "" || h.storage == nil {
		respondError(w, http.StatusNotFound, "ARTIFACT_NOT_FOUND", "Requested artifact was not produced for this variant")
		return
	}

	reader, err := h.storage.Download(r.Context(), artifactKey)
	if err != nil {
		log.Error().Err(err).Str("key", artifactKey).Msg("Failed to download artifact")
		respondError(w, http.StatusNotFound, "ARTIFACT_NOT_FOUND", "Artifact not found")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, reader)
}

// writeSSEEvent writes a single server-sent event carrying payload as its
// JSON-encoded data field.
func writeSSEEvent(w http.ResponseWriter, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", body)
	return err
}

// lookupOwnedVariant fetches a variant by path parameter and verifies it
// belongs to the authenticated user, writing the appropriate error response
// and returning a non-nil error if either check fails.
func (h *TailorHandler) lookupOwnedVariant(w http.ResponseWriter, r *http.Request, userID string) (*ports.TailoringVariant, error) {
	variantID := chi.URLParam(r, "variantID")
	if variantID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Variant ID is required")
		return nil, errEmptyVariantID
	}

	if h.gateway == nil {
		respondError(w, http.StatusNotFound, "VARIANT_NOT_FOUND", "Variant not found")
		return nil, tailor.ErrVariantNotFound
	}

	variant, err := h.gateway.GetVariant(r.Context(), variantID)
	if err != nil {
		if errors.Is(err, tailor.ErrVariantNotFound) {
			respondError(w, http.StatusNotFound, "VARIANT_NOT_FOUND", "Variant not found")
			return nil, err
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve variant")
		return nil, err
	}

	if variant.UserID != userID {
		respondError(w, http.StatusNotFound, "VARIANT_NOT_FOUND", "Variant not found")
		return nil, tailor.ErrVariantNotFound
	}

	return variant, nil
}

var errEmptyVariantID = errors.New("variant ID is required")

func mapTaskToResponse(t tailor.Task) TaskStatusResponse {
	resp := TaskStatusResponse{
		TaskID:    t.ID,
		State:     string(t.State),
		Percent:   t.Percent,
		Message:   t.Message,
		Error:     t.Err,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Result != nil {
		result := &TaskResultResponse{VariantID: t.Result.VariantID}
		if t.Result.ATSScore != nil {
			overall := t.Result.ATSScore.Overall
			result.ATSScore = &overall
		}
		if t.Result.FitScore != nil {
			overall := t.Result.FitScore.Overall
			result.FitScore = &overall
		}
		resp.Result = result
	}
	return resp
}

func mapVariantToResponse(v ports.TailoringVariant) VariantResponse {
	return VariantResponse{
		ID:             v.ID,
		JobTitle:       v.JobTitle,
		Company:        v.Company,
		OutputFilename: v.OutputFilename,
		ATSScore:       v.ATSScoreOverall,
		FitScore:       v.FitScoreOverall,
		CreatedAt:      v.CreatedAtUnix,
	}
}
