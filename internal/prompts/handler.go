package prompts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codepromptu/server/internal/users"
	"github.com/codepromptu/server/internal/validation"
	"github.com/codepromptu/server/pkg/handlers"
	"github.com/codepromptu/server/pkg/routes"
)

// Handler provides HTTP endpoints for prompt operations. The acting user is
// taken from the request context, where the auth middleware places it; an
// absent user means the anonymous scope.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// CreateResult is the response body for a successful create.
type CreateResult struct {
	Guid string `json:"guid"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/name/{name}", Handler: h.GetByName},
			{Method: "GET", Pattern: "/{guid}", Handler: h.Get},
			{Method: "PUT", Pattern: "/{guid}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{guid}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{guid}/tags/{tag}", Handler: h.AddTag},
			{Method: "DELETE", Pattern: "/{guid}/tags/{tag}", Handler: h.RemoveTag},
			{Method: "POST", Pattern: "/{guid}/usage", Handler: h.RecordUsage},
			{Method: "GET", Pattern: "/{guid}/usage", Handler: h.ListUsage},
		},
	}
}

// List returns every prompt visible to the caller's scope.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context(), users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create processes a JSON body to create a new prompt and returns its guid.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := validation.Struct(cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	g, err := h.sys.Create(r.Context(), cmd, users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, CreateResult{Guid: g})
}

// Get returns a single prompt by its guid path parameter.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.Get(r.Context(), r.PathValue("guid"), users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// GetByName returns a single prompt by its display name path parameter.
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.GetByName(r.Context(), r.PathValue("name"), users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Update processes a JSON body to update the prompt identified by the guid
// path parameter.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := validation.Struct(cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	err := h.sys.Update(r.Context(), r.PathValue("guid"), cmd, users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a prompt by its guid path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.sys.Delete(r.Context(), r.PathValue("guid"), users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddTag links the tag path parameter to the prompt.
func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request) {
	err := h.sys.AddTag(
		r.Context(),
		r.PathValue("guid"),
		r.PathValue("tag"),
		users.FromContext(r.Context()),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordUsage processes a JSON body to append a usage record to the prompt
// identified by the guid path parameter.
func (h *Handler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	var cmd UsageCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := validation.Struct(cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	err := h.sys.RecordUsage(r.Context(), r.PathValue("guid"), cmd, users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUsage returns the usage history of the prompt identified by the guid
// path parameter.
func (h *Handler) ListUsage(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.ListUsage(r.Context(), r.PathValue("guid"), users.FromContext(r.Context()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// RemoveTag unlinks the tag path parameter from the prompt.
func (h *Handler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	err := h.sys.RemoveTag(
		r.Context(),
		r.PathValue("guid"),
		r.PathValue("tag"),
		users.FromContext(r.Context()),
	)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
