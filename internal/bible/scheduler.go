package bible

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/versepath/scripture-companion/pkg/util"
)

// DailySettings reports the current daily-verse preferences. Injected as
// a func so this package never depends on the settings store directly.
type DailySettings func() (enabled bool, timeOfDay string)

// VerseMailer delivers the daily verse by email when configured.
type VerseMailer interface {
	SendDailyVerse(to string, verse *VerseWithBook) error
}

// DailyVerseJob fetches one random verse per day once the configured
// time of day has passed, caches it for the UI, and optionally emails it.
type DailyVerseJob struct {
	api      BibleAPI
	settings DailySettings

	mailer    VerseMailer
	recipient string

	mu         sync.Mutex
	current    *VerseWithBook
	servedDate string // yyyy-mm-dd of the cached verse
}

func NewDailyVerseJob(api BibleAPI, settings DailySettings) *DailyVerseJob {
	return &DailyVerseJob{api: api, settings: settings}
}

// WithMailer enables email delivery of the daily verse.
func (j *DailyVerseJob) WithMailer(mailer VerseMailer, recipient string) *DailyVerseJob {
	j.mailer = mailer
	j.recipient = recipient
	return j
}

// Start runs the daily verse check on a schedule until ctx is cancelled.
func (j *DailyVerseJob) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	log.Println("Daily verse job started (1m interval)")

	// Catch up immediately so a restart after the configured time still
	// serves today's verse.
	j.runOnce(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			log.Println("Daily verse job stopped gracefully")
			return
		case now := <-ticker.C:
			j.runOnce(ctx, now)
		}
	}
}

func (j *DailyVerseJob) runOnce(ctx context.Context, now time.Time) {
	enabled, timeOfDay := j.settings()
	if !enabled {
		return
	}

	today := now.Format("2006-01-02")
	if now.Format("15:04") < timeOfDay {
		return
	}

	j.mu.Lock()
	alreadyServed := j.servedDate == today
	j.mu.Unlock()
	if alreadyServed {
		return
	}

	verse, err := j.api.GetRandomVerse(ctx, nil)
	if err != nil {
		log.Printf("Failed to fetch daily verse: %v", err)
		return
	}

	j.mu.Lock()
	j.current = verse
	j.servedDate = today
	j.mu.Unlock()

	log.Printf("Daily verse for %s: %s %q", today,
		FormatReference(verse.BookName, verse.Chapter, verse.Verse.Verse, 0),
		util.Truncate(verse.Text, 60))

	if j.mailer != nil && j.recipient != "" {
		if err := j.mailer.SendDailyVerse(j.recipient, verse); err != nil {
			log.Printf("Failed to send daily verse to %s: %v", j.recipient, err)
		}
	}
}

// Current returns today's verse, or nil when none has been served yet.
func (j *DailyVerseJob) Current() *VerseWithBook {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.current
}
