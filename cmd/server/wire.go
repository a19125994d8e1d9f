//go:build wireinject

package main

import (
	"agentsync/server/internal/domain"
	"agentsync/server/internal/infrastructure"
	"agentsync/server/internal/interfaces"
	"agentsync/server/internal/interfaces/httpserver/handlers"
	"agentsync/server/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		handlers.HandlerProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
