package store

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/versepath/scripture-companion/internal/bible"
	"github.com/versepath/scripture-companion/pkg/response"
)

// Handler exposes the local stores to the presentation layer.
type Handler struct {
	nav      *NavigationStore
	user     *UserStore
	settings *SettingsStore
}

func NewHandler(nav *NavigationStore, user *UserStore, settings *SettingsStore) Handler {
	return Handler{nav: nav, user: user, settings: settings}
}

type addHighlightRequest struct {
	VerseID int            `json:"verseId"`
	Color   HighlightColor `json:"color"`
}

var validColors = map[HighlightColor]bool{
	HighlightYellow: true,
	HighlightGreen:  true,
	HighlightBlue:   true,
	HighlightPink:   true,
	HighlightOrange: true,
}

func (h *Handler) GetHighlightsHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.user.Highlights(), "successfully")
}

func (h *Handler) AddHighlightHandler(w http.ResponseWriter, r *http.Request) {
	var req addHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.VerseID == 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"verseId": "verseId is required",
		})
		return
	}
	if !validColors[req.Color] {
		response.Error(w, http.StatusBadRequest, "Invalid highlight color", string(req.Color))
		return
	}

	highlight := h.user.AddHighlight(req.VerseID, req.Color)
	response.Success(w, highlight, "successfully")
}

func (h *Handler) RemoveHighlightHandler(w http.ResponseWriter, r *http.Request) {
	verseID, err := strconv.Atoi(chi.URLParam(r, "verseID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse id", err.Error())
		return
	}
	h.user.RemoveHighlight(verseID)
	response.Success(w, "Ok", "successfully")
}

func (h *Handler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	verseID, err := strconv.Atoi(chi.URLParam(r, "verseID"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid verse id", err.Error())
		return
	}

	isFavorite := h.user.ToggleFavorite(verseID)
	response.Success(w, map[string]bool{
		"isFavorite": isFavorite,
	}, "successfully")
}

func (h *Handler) GetFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.user.Favorites(), "successfully")
}

func (h *Handler) GetQuotaHandler(w http.ResponseWriter, r *http.Request) {
	quota := h.user.Quota()
	if quota == nil {
		response.Success(w, nil, "no quota snapshot")
		return
	}
	response.Success(w, quota, "successfully")
}

type navigateRequest struct {
	BookID  int  `json:"bookId"`
	Chapter int  `json:"chapter"`
	Verse   *int `json:"verse,omitempty"`
}

func (h *Handler) NavigateHandler(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}
	if req.BookID == 0 || req.Chapter == 0 {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"bookId":  "bookId is required",
			"chapter": "chapter is required",
		})
		return
	}

	h.nav.NavigateTo(req.BookID, req.Chapter, req.Verse)

	position := map[string]any{
		"currentBook":    h.nav.CurrentBook(),
		"currentChapter": h.nav.CurrentChapter(),
	}
	response.Success(w, position, "successfully")
}

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	history := h.nav.History()
	if history == nil {
		history = []bible.VerseReference{}
	}
	response.Success(w, history, "successfully")
}

func (h *Handler) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	h.nav.ClearHistory()
	response.Success(w, "Ok", "successfully")
}

// ResetHandler clears all local data across every store.
func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	ResetAll(h.nav, h.user, h.settings)
	response.Success(w, "Ok", "successfully")
}
