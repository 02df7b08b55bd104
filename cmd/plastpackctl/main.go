// plastpackctl is the back-office command line for the catalog service: the
// public storefront reads work without credentials, everything else rides on
// the stored admin token.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"plastpack/config"
	"plastpack/internal/domain/service"
	"plastpack/internal/infra/api"
	"plastpack/internal/infra/credential"
	logs "plastpack/internal/infra/log"
	"plastpack/internal/infra/nav"
	"plastpack/internal/usecase"
	"plastpack/internal/usecase/impl"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger    *slog.Logger
	Public    *api.PublicClient
	Admin     *api.AdminClient
	Session   usecase.SessionUsecase
	Navigator service.Navigator
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectClient(),
		injectUsecase(),
		fx.Invoke(run),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		newCredentialStore,
		newTokenInspector,
		newNavigator,
	)
}

func injectClient() fx.Option {
	return fx.Provide(
		api.NewPublic,
		api.NewAdmin,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		newSessionUsecase,
	)
}

func newCredentialStore(cfg *config.Config) service.CredentialStore {
	return credential.NewFileStore(cfg.Credentials.Path)
}

func newTokenInspector() service.TokenInspector {
	return credential.NewInspector()
}

func newNavigator(logger *slog.Logger) service.Navigator {
	return nav.NewTracker(logger)
}

func newSessionUsecase(
	cfg *config.Config,
	admin *api.AdminClient,
	store service.CredentialStore,
	inspector service.TokenInspector,
	navigator service.Navigator,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return impl.NewSessionService(admin, store, inspector, navigator, cfg.Admin.LoginRoute, logger)
}

func run(params runParams) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exitCode := 0
	if err := dispatch(ctx, params, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = 1
	}

	_ = params.Shutdowner.Shutdown(fx.ExitCode(exitCode))
}
