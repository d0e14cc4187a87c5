package assistant

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kimbiseo/assistant-api/internal/ai"
	"github.com/kimbiseo/assistant-api/internal/business"
)

const serviceName = "kim-biseo"

const (
	msgInvalidBody      = "요청 본문을 해석할 수 없습니다."
	msgMessagesRequired = "messages 배열이 필요합니다."
	msgGenerationFailed = "응답을 생성하지 못했습니다."
	msgServerError      = "서버 에러가 발생했습니다."
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type chatRequest struct {
	Messages []ai.Message `json:"messages"`
	Role     string       `json:"role"`
}

type chatResponse struct {
	Message string        `json:"message"`
	Source  string        `json:"source"`
	Role    business.Role `json:"role"`
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { chatDuration.Observe(time.Since(start).Seconds()) }()

	log := h.log.With(zap.String("request_id", uuid.NewString()))

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		chatFailures.WithLabelValues("validation").Inc()
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.Messages == nil {
		chatFailures.WithLabelValues("validation").Inc()
		writeError(w, http.StatusBadRequest, msgMessagesRequired)
		return
	}

	result, err := h.svc.Chat(r.Context(), req.Role, req.Messages)
	if err != nil {
		if errors.Is(err, ErrEmptyCompletion) {
			chatFailures.WithLabelValues("generation").Inc()
			log.Warn("chat completion came back empty", zap.String("role_hint", req.Role))
			writeError(w, http.StatusInternalServerError, msgGenerationFailed)
			return
		}
		chatFailures.WithLabelValues("internal").Inc()
		log.Error("chat request failed", zap.Error(err), zap.String("role_hint", req.Role))
		writeError(w, http.StatusInternalServerError, msgServerError)
		return
	}

	chatRequests.WithLabelValues(result.Source).Inc()
	log.Info("chat answered",
		zap.String("source", result.Source),
		zap.String("role", string(result.Role)),
		zap.Int("turns", len(req.Messages)),
	)

	writeJSON(w, http.StatusOK, chatResponse{
		Message: result.Message,
		Source:  result.Source,
		Role:    result.Role,
	})
}

type statusResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Service:   serviceName,
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard(r.URL.Query().Get("role")))
}

// RecoverJSON converts a handler panic into the generic JSON server
// error instead of chi's empty 500 body.
func (h *Handler) RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error("panic in handler", zap.Any("panic", rec), zap.String("path", r.URL.Path))
				writeError(w, http.StatusInternalServerError, msgServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
