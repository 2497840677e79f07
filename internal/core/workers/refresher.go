package workers

import (
	"context"
	"log"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

type RefreshJob struct {
	UserID string
}

// Refresher fans out "reload your presentation" signals to clients
// after a mutation changed a user's progress. Delivery is best-effort:
// a full queue drops the job and a publish failure is only logged,
// since the widget refreshes on its own timeline anyway.
type Refresher struct {
	publisher domain.RefreshPublisher
	jobs      chan RefreshJob
}

func NewRefresher(publisher domain.RefreshPublisher) *Refresher {
	return &Refresher{
		publisher: publisher,
		jobs:      make(chan RefreshJob, 100),
	}
}

func (w *Refresher) Start(ctx context.Context) {
	go func() {
		log.Println("Refresh worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Refresh worker shutting down...")
				return
			}
		}
	}()
}

func (w *Refresher) Enqueue(userID string) {
	select {
	case w.jobs <- RefreshJob{UserID: userID}:
	default:
		log.Printf("Refresh worker queue full! Dropping signal for user %s", userID)
	}
}

func (w *Refresher) processJob(ctx context.Context, job RefreshJob) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishRefresh(ctx, job.UserID); err != nil {
		log.Printf("Refresh worker failed to publish for user %s: %v", job.UserID, err)
	}
}
