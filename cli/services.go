package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"storefront/cart"
	"storefront/catalog"
	"storefront/domain"
	"storefront/feedback"
	"storefront/filter"
	"storefront/metrics"
	"storefront/notify"
	"storefront/session"
)

// services is the explicitly wired storefront state shared by all commands.
type services struct {
	catalog  *catalog.Catalog
	cart     *cart.Engine
	auth     *session.Auth
	filters  *filter.Filters
	notices  *notify.Queue
	feedback *feedback.Tracker
	registry *prometheus.Registry
}

func newServices(ctx context.Context, kv domain.KeyValueStore, cat *catalog.Catalog, logger *slog.Logger) (*services, error) {
	reg := prometheus.NewRegistry()
	notices := notify.NewQueue()

	s := &services{
		catalog: cat,
		cart: cart.NewEngine(cat, kv,
			cart.WithLogger(logger),
			cart.WithNotifier(notices),
			cart.WithMetrics(metrics.NewCartMetrics(reg)),
		),
		auth:     session.NewAuth(kv, logger),
		filters:  filter.NewFilters(cat.List),
		notices:  notices,
		feedback: feedback.NewTracker(),
		registry: reg,
	}

	if err := s.cart.Initialize(ctx); err != nil {
		return nil, err
	}
	if err := s.auth.Initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *services) Close() {
	s.notices.Close()
	s.feedback.Close()
}
