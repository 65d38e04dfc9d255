package bootstrap

import (
	"log/slog"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewUpstreamClient,
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, logger)
}
