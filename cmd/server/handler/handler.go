package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	recall "github.com/w-h-a/recall"
	"github.com/w-h-a/recall/embedder"
	"github.com/w-h-a/recall/generator"
	"github.com/w-h-a/recall/store"
)

type SaveRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type SaveResponse struct {
	Id int64 `json:"id"`
}

type AnswerRequest struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	// Mode selects the instruction template: "comparison" (default) or
	// "question".
	Mode string `json:"mode,omitempty"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	engine *recall.Engine
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/v1/records", h.Save).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/answers", h.Answer).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(strings.TrimSpace(req.Category)) == 0 || len(strings.TrimSpace(req.Text)) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "category and text are required"})
		return
	}

	id, err := h.engine.Save(r.Context(), req.Category, req.Text)
	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, SaveResponse{Id: id})
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(strings.TrimSpace(req.Category)) == 0 || len(strings.TrimSpace(req.Text)) == 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "category and text are required"})
		return
	}

	var answer string
	var err error

	switch strings.ToLower(strings.TrimSpace(req.Mode)) {
	case "question":
		answer, err = h.engine.AnswerQuestion(r.Context(), req.Category, req.Text)
	default:
		answer, err = h.engine.RetrieveAndAnswer(r.Context(), req.Category, req.Text)
	}

	if err != nil {
		writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, AnswerResponse{Answer: answer})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, embedder.ErrUnavailable), errors.Is(err, generator.ErrFailed):
		return http.StatusBadGateway
	case errors.Is(err, store.ErrDimensionMismatch), errors.Is(err, store.ErrWrite), errors.Is(err, store.ErrRead):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func New(engine *recall.Engine) *Handler {
	if engine == nil {
		panic("engine is required")
	}

	return &Handler{
		engine: engine,
	}
}
