// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/query"
	"go-folio/models"
)

// InboxRefresher keeps the contact-message list warm while the dashboard is
// open: every RefreshInterval it refetches the messages query so the inbox
// screen and the unread count render current data without a manual reload.
type InboxRefresher struct {
	messages *query.Query[[]models.ContactMessage]
	interval time.Duration
	logger   *logger.Logger

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewInboxRefresher(messages *query.Query[[]models.ContactMessage], cfg config.ClientWorkers, logger *logger.Logger) *InboxRefresher {
	return &InboxRefresher{
		messages: messages,
		interval: cfg.RefreshInterval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run implements [Worker]. It starts the refresh loop in its own goroutine
// and returns immediately.
func (r *InboxRefresher) Run() {
	r.wg.Add(1)
	go r.loop()
}

func (r *InboxRefresher) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *InboxRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	if _, err := r.messages.Fetch(ctx); err != nil {
		// A stale result means a foreground fetch won the race, which is the
		// outcome we want anyway.
		if errors.Is(err, query.ErrStale) {
			return
		}
		r.logger.Warn().Err(err).Msg("inbox refresh failed")
	}
}

// Stop implements [Stopper]. It halts the loop and waits for the in-flight
// refresh, if any, to finish. Safe to call more than once.
func (r *InboxRefresher) Stop() {
	r.once.Do(func() {
		close(r.stop)
	})
	r.wg.Wait()
}
