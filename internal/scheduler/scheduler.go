package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/setlocale/internal/database"
)

// Scheduler runs the nightly housekeeping job that recomputes each
// word's translation_count and is_translated from its populated
// translation fields. Hand-edited rows drift; the recount keeps the
// completion metadata honest.
type Scheduler struct {
	scheduler *gocron.Scheduler
	words     *database.WordRepository
	hour      int
}

// New creates a scheduler that runs the recount daily at the given hour
func New(words *database.WordRepository, hour int) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		words:     words,
		hour:      hour,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", s.hour)).Do(s.recountTranslations)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// recountTranslations repairs completion metadata for every drifted word
func (s *Scheduler) recountTranslations() {
	words, err := s.words.All()
	if err != nil {
		log.Printf("recount: failed to load words: %v", err)
		return
	}

	fixed := 0
	for i := range words {
		word := &words[i]
		count := word.PopulatedTranslationCount()
		translated := word.IsTranslated || count > 0

		if count == word.TranslationCount && translated == word.IsTranslated {
			continue
		}
		if err := s.words.UpdateCounters(word.ID, count, translated); err != nil {
			log.Printf("recount: failed to update word %q: %v", word.Key, err)
			continue
		}
		fixed++
	}

	log.Printf("recount: checked %d words, fixed %d", len(words), fixed)
}
