package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
)

type Scheduler struct {
	catalog *catalog.Catalog
	path    string
}

func NewScheduler(c *catalog.Catalog, catalogPath string) *Scheduler {
	return &Scheduler{catalog: c, path: catalogPath}
}

// Start schedules a nightly catalog reload at 12:00AM. A no-op when no
// catalog file is configured (the built-in mock data never changes).
func (s *Scheduler) Start() {
	if s.path == "" {
		return
	}

	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.reload()
	})
	if err != nil {
		log.Printf("Failed to create catalog reload job: %v", err)
		return
	}

	log.Println("Catalog reload scheduler started (running nightly at 12:00AM)")
	c.Start()
}

func (s *Scheduler) reload() {
	log.Printf("Nightly catalog reload from %s...", s.path)
	if err := s.catalog.LoadFromFile(s.path); err != nil {
		log.Printf("Catalog reload failed, keeping previous data: %v", err)
		return
	}
	log.Println("Catalog reload complete")
}
