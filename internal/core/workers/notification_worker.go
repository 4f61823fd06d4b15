package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/quotes"
	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

const NotificationTitle = "Steps recorded!"

type QuotePicker interface {
	Random() (quotes.Quote, error)
}

type Notification struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Quote     *quotes.Quote `json:"quote,omitempty"`
	Steps     int           `json:"steps"`
	Date      string        `json:"date"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type NotificationJob struct {
	Entry domain.StepEntry
}

// NotificationWorker turns recorded entries into a short-lived confirmation
// with a motivational quote. Only the latest notification is kept.
type NotificationWorker struct {
	quotes  QuotePicker
	ttl     time.Duration
	now     func() time.Time
	metrics *metrics.Manager
	jobs    chan NotificationJob

	mu      sync.RWMutex
	current *Notification
}

func NewNotificationWorker(picker QuotePicker, ttl time.Duration, m *metrics.Manager) *NotificationWorker {
	return &NotificationWorker{
		quotes:  picker,
		ttl:     ttl,
		now:     time.Now,
		metrics: m,
		jobs:    make(chan NotificationJob, 100),
	}
}

func (w *NotificationWorker) Start(ctx context.Context) {
	go func() {
		logrus.Infoln("[NOTIFY] worker started in background")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(job)
			case <-ctx.Done():
				logrus.Infoln("[NOTIFY] worker shutting down")
				return
			}
		}
	}()
}

func (w *NotificationWorker) Enqueue(entry domain.StepEntry) {
	select {
	case w.jobs <- NotificationJob{Entry: entry}:
	default:
		logrus.Warnf("[NOTIFY] queue full, dropping notification for %s", entry.Date.Format(domain.DateLayout))
	}
}

// Current returns the latest notification while it has not expired.
func (w *NotificationWorker) Current() (*Notification, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.current == nil || !w.now().Before(w.current.ExpiresAt) {
		return nil, false
	}
	n := *w.current
	return &n, true
}

func (w *NotificationWorker) processJob(job NotificationJob) {
	now := w.now()
	n := &Notification{
		ID:        uuid.NewString(),
		Title:     NotificationTitle,
		Message:   fmt.Sprintf("You walked %d steps on %s", job.Entry.Steps, job.Entry.Label()),
		Steps:     job.Entry.Steps,
		Date:      job.Entry.Date.Format(domain.DateLayout),
		CreatedAt: now,
		ExpiresAt: now.Add(w.ttl),
	}

	if w.quotes != nil {
		q, err := w.quotes.Random()
		if err != nil {
			logrus.Warnf("[NOTIFY] no quote available: %v", err)
		} else {
			n.Quote = &q
		}
	}

	w.mu.Lock()
	w.current = n
	w.mu.Unlock()

	if w.metrics != nil {
		w.metrics.CounterNotifications.Inc()
	}
	logrus.Debugf("[NOTIFY] %s", n.Message)
}
