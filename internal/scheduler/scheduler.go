package scheduler

import (
	"fmt"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/robfig/cron/v3"

	"InvestAdvisor/internal/worker"
)

// Scheduler publishes batch-run requests on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Publisher message.Publisher
	Topic     string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(pub message.Publisher, topic string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Publisher: pub,
		Topic:     topic,
	}
}

// Register registers the batch cron task.
func (s *Scheduler) Register(batchCron string) error {
	if _, err := s.Cron.AddFunc(batchCron, s.publishRun); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) publishRun() {
	log.Println("[INFO] scheduled batch run requested")
	if err := worker.RequestRun(s.Publisher, s.Topic, "cron"); err != nil {
		log.Printf("[ERROR] scheduled publish: %v", err)
	}
}
