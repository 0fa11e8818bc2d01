package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"askboard-hq/askboard/pkg/api/types"
	"askboard-hq/askboard/pkg/question"
	"askboard-hq/askboard/pkg/question/storage"
	"askboard-hq/askboard/pkg/telemetry/metrics"
)

// QuestionsHandler handles the /questions collection: create and list.
type QuestionsHandler struct {
	storage   storage.Storage
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewQuestionsHandler creates a new collection handler.
func NewQuestionsHandler(store storage.Storage, collector *metrics.Collector) *QuestionsHandler {
	return &QuestionsHandler{
		storage:   store,
		collector: collector,
		logger:    slog.Default().With("component", "api.questions"),
	}
}

// ServeHTTP implements http.Handler for GET and POST /questions.
func (h *QuestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		types.WriteError(w, http.StatusMethodNotAllowed, types.TypeInvalidRequest, "Method not allowed")
	}
}

// create handles POST /questions.
func (h *QuestionsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, types.TypeInvalidRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		types.WriteError(w, http.StatusBadRequest, types.TypeInvalidRequest, "content must not be empty")
		return
	}

	q, err := h.storage.Create(r.Context(), req.Content)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to create question", "error", err)
		types.WriteError(w, http.StatusInternalServerError, types.TypeServerError, "Failed to create question")
		return
	}

	h.collector.RecordQuestionCreated()

	types.WriteJSON(w, http.StatusCreated, q)
}

// list handles GET /questions. Records are returned newest first; the
// retention guard has already removed anything stale.
func (h *QuestionsHandler) list(w http.ResponseWriter, r *http.Request) {
	questions, err := h.storage.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list questions", "error", err)
		types.WriteError(w, http.StatusInternalServerError, types.TypeServerError, "Failed to list questions")
		return
	}

	h.collector.SetVisibleQuestions(int64(len(questions)))

	types.WriteJSON(w, http.StatusOK, questions)
}

// QuestionHandler handles a single record: PATCH /questions/{id}.
type QuestionHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewQuestionHandler creates a new single-record handler.
func NewQuestionHandler(store storage.Storage) *QuestionHandler {
	return &QuestionHandler{
		storage: store,
		logger:  slog.Default().With("component", "api.questions"),
	}
}

// ServeHTTP implements http.Handler for PATCH /questions/{id}.
func (h *QuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		types.WriteError(w, http.StatusMethodNotAllowed, types.TypeInvalidRequest, "Method not allowed")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, types.TypeInvalidRequest, "Invalid question id")
		return
	}

	var req types.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsResolved == nil {
		types.WriteError(w, http.StatusBadRequest, types.TypeInvalidRequest, "is_resolved must be a boolean")
		return
	}

	q, err := h.storage.SetResolved(r.Context(), id, *req.IsResolved)
	if errors.Is(err, question.ErrNotFound) {
		types.WriteError(w, http.StatusNotFound, types.TypeNotFound, "question not found")
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to update question", "error", err, "id", id)
		types.WriteError(w, http.StatusInternalServerError, types.TypeServerError, "Failed to update question")
		return
	}

	types.WriteJSON(w, http.StatusOK, q)
}
