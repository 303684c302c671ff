package app

import (
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/athletiq/athletiq_backend/config"
	"github.com/athletiq/athletiq_backend/internal/domain/injury"
	"github.com/athletiq/athletiq_backend/internal/repo"
	"github.com/athletiq/athletiq_backend/internal/service/injurycase"
	"github.com/athletiq/athletiq_backend/internal/store/entstore"
	pasetotoken "github.com/athletiq/athletiq_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideInjuryStore,
		ProvideDirectory,
		ProvideInjuryCaseService,
		ProvidePasetoManager,
	),
)

func ProvideInjuryStore(client *repo.Client) injury.Store {
	return entstore.New(client)
}

func ProvideDirectory(client *repo.Client) injury.Directory {
	return entstore.NewDirectory(client)
}

func ProvideInjuryCaseService(store injury.Store, dir injury.Directory, nc *nats.Conn) injurycase.Service {
	return injurycase.New(store, dir, nc)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
