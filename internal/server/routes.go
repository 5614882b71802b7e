package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/versepath/scripture-companion/internal/ai"
	"github.com/versepath/scripture-companion/internal/bible"
	"github.com/versepath/scripture-companion/internal/settings"
	"github.com/versepath/scripture-companion/internal/store"
	"github.com/versepath/scripture-companion/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/scripture-companion/v1", func(r chi.Router) {
		s.loadBibleRoutes(r)
		s.loadAIRoutes(r)
		s.loadSettingsRoutes(r)
		s.loadStoreRoutes(r)
	})
	r.Get("/scripture-companion/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Scripture Companion"
	response.Success(w, resp, "Success")
}

func (s *Server) loadBibleRoutes(router chi.Router) {
	bibleHandler := bible.NewHandler(s.bibleService, s.topicService, s.applicationService, s.daily)

	router.Get("/bible/books", bibleHandler.GetBooksHandler)
	router.Get("/bible/books/{bookID}/chapters/{chapter}/verses", bibleHandler.GetVersesHandler)
	router.Get("/bible/verses/{verseID}", bibleHandler.GetVerseHandler)
	router.Get("/bible/verse", bibleHandler.GetVerseByReferenceHandler)
	router.Get("/bible/random-verse", bibleHandler.GetRandomVerseHandler)
	router.Get("/bible/search", bibleHandler.SearchVersesHandler)
	router.Get("/bible/daily-verse", bibleHandler.GetDailyVerseHandler)

	router.Get("/topics", bibleHandler.GetTopicsHandler)
	router.Get("/topics/{slug}", bibleHandler.GetTopicBySlugHandler)
	router.Get("/topics/{topicID}/verses", bibleHandler.GetVersesByTopicHandler)

	router.Get("/verses/{verseID}/application", bibleHandler.GetVerseApplicationHandler)
}

func (s *Server) loadAIRoutes(router chi.Router) {
	aiHandler := ai.NewHandler(s.aiService, s.userStore)

	router.Get("/ai/status", aiHandler.StatusHandler)
	router.Post("/ai/insight", aiHandler.InsightHandler)
	router.Post("/ai/action-steps", aiHandler.ActionStepsHandler)
	router.Post("/ai/reflection-questions", aiHandler.ReflectionQuestionsHandler)
}

func (s *Server) loadSettingsRoutes(router chi.Router) {
	settingsHandler := settings.NewHandler(s.settingsService, s.settingsStore)

	router.Get("/settings", settingsHandler.GetSettingsHandler)
	router.Patch("/settings", settingsHandler.UpdateSettingsHandler)
}

func (s *Server) loadStoreRoutes(router chi.Router) {
	storeHandler := store.NewHandler(s.navStore, s.userStore, s.settingsStore)

	router.Get("/user/highlights", storeHandler.GetHighlightsHandler)
	router.Post("/user/highlights", storeHandler.AddHighlightHandler)
	router.Delete("/user/highlights/{verseID}", storeHandler.RemoveHighlightHandler)
	router.Post("/user/favorites/{verseID}/toggle", storeHandler.ToggleFavoriteHandler)
	router.Get("/user/favorites", storeHandler.GetFavoritesHandler)
	router.Get("/user/quota", storeHandler.GetQuotaHandler)

	router.Get("/navigation/history", storeHandler.GetHistoryHandler)
	router.Delete("/navigation/history", storeHandler.ClearHistoryHandler)
	router.Post("/navigation/navigate", storeHandler.NavigateHandler)

	router.Post("/local/reset", storeHandler.ResetHandler)
}
