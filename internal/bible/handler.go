package bible

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/versepath/scripture-companion/pkg/response"
)

type Handler struct {
	bible       *BibleService
	topics      *TopicService
	application *ApplicationService
	daily       *DailyVerseJob
}

func NewHandler(bible *BibleService, topics *TopicService, application *ApplicationService, daily *DailyVerseJob) Handler {
	return Handler{bible: bible, topics: topics, application: application, daily: daily}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(w, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, ErrInvalidReference):
		response.Error(w, http.StatusBadRequest, "Invalid verse reference", err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Request failed", err.Error())
	}
}

func (h *Handler) GetBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := h.bible.GetBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, books, "successfully")
}

func (h *Handler) GetVersesHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "bookID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid book id", err.Error())
		return
	}
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid chapter", err.Error())
		return
	}

	verses, err := h.bible.GetVerses(r.Context(), bookID, chapter)
	if err != nil {
		writeError(w, err)
		return
	}
	if verses == nil {
		verses = []Verse{}
	}
	response.Success(w, verses, "successfully")
}

func (h *Handler) GetVerseHandler(w http.ResponseWriter, r *http.Request) {
	verseID, err := strconv.Atoi(chi.URLParam(r, "verseID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse id", err.Error())
		return
	}

	verse, err := h.bible.GetVerse(r.Context(), verseID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verse, "successfully")
}

func (h *Handler) GetVerseByReferenceHandler(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"reference": "reference is required",
		})
		return
	}

	verse, err := h.bible.GetVerseByReference(r.Context(), reference)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verse, "successfully")
}

func (h *Handler) GetRandomVerseHandler(w http.ResponseWriter, r *http.Request) {
	var topicID *int
	if raw := r.URL.Query().Get("topicId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid topic id", err.Error())
			return
		}
		topicID = &id
	}

	verse, err := h.bible.GetRandomVerse(r.Context(), topicID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verse, "successfully")
}

func (h *Handler) SearchVersesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"q": "search query is required",
		})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", raw)
			return
		}
		limit = n
	}

	verses, err := h.bible.SearchVerses(r.Context(), query, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verses, "successfully")
}

func (h *Handler) GetDailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	if h.daily != nil {
		if verse := h.daily.Current(); verse != nil {
			response.Success(w, verse, "successfully")
			return
		}
	}

	// Nothing served yet today; fall back to a fresh random verse.
	verse, err := h.bible.GetRandomVerse(r.Context(), nil)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verse, "successfully")
}

func (h *Handler) GetTopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.GetTopics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, topics, "successfully")
}

func (h *Handler) GetTopicBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	topic, err := h.topics.GetTopicBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, topic, "successfully")
}

func (h *Handler) GetVersesByTopicHandler(w http.ResponseWriter, r *http.Request) {
	topicID, err := strconv.Atoi(chi.URLParam(r, "topicID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid topic id", err.Error())
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", raw)
			return
		}
		limit = n
	}

	verses, err := h.topics.GetVersesByTopic(r.Context(), topicID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, verses, "successfully")
}

func (h *Handler) GetVerseApplicationHandler(w http.ResponseWriter, r *http.Request) {
	verseID, err := strconv.Atoi(chi.URLParam(r, "verseID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse id", err.Error())
		return
	}

	application, err := h.application.GetVerseApplication(r.Context(), verseID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.Success(w, application, "successfully")
}
