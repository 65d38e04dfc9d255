package components

import (
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule binds the upstream REST gateways to the read and write ports
// the usecase layer consumes. A gateway carrying both reads and writes is
// bound once per port.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			upstream.NewAuthGateway,
			fx.As(new(commands.AuthPort)),
		),
		fx.Annotate(
			upstream.NewUserGateway,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserWritePort)),
		),
		fx.Annotate(
			upstream.NewPackageGateway,
			fx.As(new(queries.PackageReadStore)),
			fx.As(new(commands.PackageWritePort)),
		),
		fx.Annotate(
			upstream.NewCatalogGateway,
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(queries.AgencyOptionReadStore)),
		),
		fx.Annotate(
			upstream.NewReferenceGateway,
			fx.As(new(queries.ReferenceReadStore)),
			fx.As(new(queries.CountryReadStore)),
		),
		fx.Annotate(
			upstream.NewAnalyticsGateway,
			fx.As(new(queries.AnalyticsReadStore)),
		),
		fx.Annotate(
			upstream.NewMediaGateway,
			fx.As(new(commands.MediaPort)),
		),
	),
)
