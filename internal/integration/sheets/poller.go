package sheets

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerror "github.com/phoenix-field/backend/internal/domain/error"
)

// Poller refreshes the snapshot store on a fixed interval, standing in for
// the mobile client's auto-refresh timer. A failed poll keeps the previous
// snapshot; a poll superseded by a concurrent manual refresh is a non-event.
type Poller struct {
	store    *Store
	interval time.Duration
}

// NewPoller creates a poller over the given store.
func NewPoller(store *Store, interval time.Duration) *Poller {
	return &Poller{store: store, interval: interval}
}

// Start begins the poll loop. It blocks until the context is cancelled.
func (p *Poller) Start(ctx context.Context) {
	slog.Info("Sheet poller started", "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Refresh immediately on start, then on ticker.
	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Sheet poller shutting down")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if err := p.store.Refresh(ctx); err != nil {
		if errors.Is(err, domainerror.ErrStaleFetch) {
			slog.Debug("Poll superseded by newer refresh")
			return
		}
		slog.Error("Sheet poll failed, keeping previous snapshot", "error", err)
	}
}
