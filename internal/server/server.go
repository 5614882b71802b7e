package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/versepath/scripture-companion/internal/ai"
	"github.com/versepath/scripture-companion/internal/bible"
	"github.com/versepath/scripture-companion/internal/host"
	"github.com/versepath/scripture-companion/internal/mail"
	"github.com/versepath/scripture-companion/internal/settings"
	"github.com/versepath/scripture-companion/internal/store"
	"github.com/versepath/scripture-companion/pkg/config"
)

type Server struct {
	port    string
	cfg     *config.Config
	handler http.Handler

	bibleService       *bible.BibleService
	topicService       *bible.TopicService
	applicationService *bible.ApplicationService
	aiService          ai.Service
	settingsService    settings.Service

	navStore      *store.NavigationStore
	userStore     *store.UserStore
	settingsStore *store.SettingsStore

	daily  *bible.DailyVerseJob
	cancel context.CancelFunc
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(cfg *config.Config) *Server {
	channel := host.NewChannel()
	if channel != nil {
		log.Println("Host engine configured:", cfg.HostAddr)
	} else {
		log.Println("No host engine configured, running in demo mode")
	}

	mockRepo := bible.NewMockRepository()

	var bibleLive bible.BibleAPI
	var topicLive bible.TopicAPI
	var applicationLive bible.ApplicationAPI
	var aiLive ai.Service
	var settingsLive settings.Service
	if channel != nil {
		remote := bible.NewRemoteRepository(channel)
		bibleLive = remote
		topicLive = remote
		applicationLive = remote
		aiLive = ai.NewRemoteService(channel)
		settingsLive = settings.NewRemoteService(channel)
	}

	// Stores come up before anything renders so the persisted theme is
	// applied immediately.
	settingsStore := store.NewSettingsStore(cfg.DataDir,
		store.WithThemeApplier(func(theme settings.Theme) {
			log.Printf("Effective theme: %s", theme)
		}),
	)
	navStore := store.NewNavigationStore(cfg.DataDir)
	userStore := store.NewUserStore(cfg.DataDir)

	s := &Server{
		port: cfg.Port,
		cfg:  cfg,

		bibleService:       bible.NewBibleService(bibleLive, mockRepo, nil),
		topicService:       bible.NewTopicService(topicLive, mockRepo, nil),
		applicationService: bible.NewApplicationService(applicationLive, mockRepo, nil),
		aiService:          ai.NewService(aiLive, ai.NewMockService(), nil),
		settingsService:    settings.NewService(settingsLive, settings.NewMockService(), nil),

		navStore:      navStore,
		userStore:     userStore,
		settingsStore: settingsStore,
	}

	s.daily = bible.NewDailyVerseJob(s.bibleService, settingsStore.DailyVerse)
	if cfg.SmtpHost != "" && cfg.DailyVerseEmail != "" {
		mailer := mail.NewMail(
			cfg.SmtpFrom,
			"Scripture Companion",
			cfg.SmtpPassword,
			cfg.SmtpHost,
			cfg.SmtpPort,
		)
		s.daily.WithMailer(mailer, cfg.DailyVerseEmail)
		log.Println("Daily verse email delivery enabled")
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs runs scheduled jobs
func (s *Server) StartBackgroundJobs() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.daily.Start(ctx)
	log.Println("Daily verse job started")
}

func (s *Server) StopBackgroundJobs() {
	if s.cancel != nil {
		s.cancel()
		log.Println("Background jobs stopped gracefully")
	}
}
