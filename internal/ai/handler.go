package ai

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/versepath/scripture-companion/pkg/response"
	"github.com/versepath/scripture-companion/pkg/util"
)

// QuotaRecorder tracks AI usage against the local quota snapshot.
type QuotaRecorder interface {
	DecrementQueries()
	AddTokensUsed(tokens int)
}

type Handler struct {
	service Service
	quota   QuotaRecorder
}

func NewHandler(service Service, quota QuotaRecorder) Handler {
	return Handler{service: service, quota: quota}
}

type insightRequest struct {
	VerseText string `json:"verseText"`
	Reference string `json:"reference"`
	Topic     string `json:"topic,omitempty"`
}

func (h *Handler) writeInsightError(w http.ResponseWriter, err error) {
	var providerError *ProviderError
	if errors.As(err, &providerError) {
		// Provider failures are retryable, never fatal to the session.
		response.Retryable(w, http.StatusBadGateway, "AI provider unavailable", providerError.Error())
		return
	}
	response.Error(w, http.StatusInternalServerError, "Failed to generate content", err.Error())
}

func (h *Handler) recordUsage(insight *Insight) {
	if h.quota == nil {
		return
	}
	h.quota.DecrementQueries()
	tokens := insight.TokensUsed
	if tokens == 0 {
		// Some providers omit usage counts; estimate from the content.
		tokens = util.EstimateTokens(insight.Content)
	}
	h.quota.AddTokensUsed(tokens)
}

func (h *Handler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.CheckConnection(r.Context())
	if err != nil {
		// CheckConnection reports unreachable as connected=false; an
		// error here means something else broke.
		response.Error(w, http.StatusInternalServerError, "Failed to check connection", err.Error())
		return
	}
	response.Success(w, status, "successfully")
}

func (h *Handler) InsightHandler(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.VerseText == "" || req.Reference == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"verseText": "verseText is required",
			"reference": "reference is required",
		})
		return
	}

	insight, err := h.service.GetInsight(r.Context(), req.VerseText, req.Reference)
	if err != nil {
		h.writeInsightError(w, err)
		return
	}

	h.recordUsage(insight)
	response.Success(w, insight, "successfully")
}

func (h *Handler) ActionStepsHandler(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.VerseText == "" || req.Reference == "" || req.Topic == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"verseText": "verseText is required",
			"reference": "reference is required",
			"topic":     "topic is required",
		})
		return
	}

	insight, err := h.service.GenerateActionSteps(r.Context(), req.VerseText, req.Reference, req.Topic)
	if err != nil {
		h.writeInsightError(w, err)
		return
	}

	h.recordUsage(insight)
	response.Success(w, insight, "successfully")
}

func (h *Handler) ReflectionQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	var req insightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.VerseText == "" || req.Reference == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"verseText": "verseText is required",
			"reference": "reference is required",
		})
		return
	}

	insight, err := h.service.GenerateReflectionQuestions(r.Context(), req.VerseText, req.Reference)
	if err != nil {
		h.writeInsightError(w, err)
		return
	}

	h.recordUsage(insight)
	response.Success(w, insight, "successfully")
}
