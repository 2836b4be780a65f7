package components

import (
	"time"

	"grab-service/internal/pkg/clock"
	"grab-service/internal/pkg/config"
	"grab-service/internal/usecase"
	"grab-service/internal/usecase/commands"
	"grab-service/internal/usecase/queries"
	"grab-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewOfferResolver,
	commands.NewQuotaLedger,
	func(cfg config.Config) *commands.CodeGenerator {
		return commands.NewCodeGenerator(cfg.Engine.CodeWidth, cfg.Engine.CodeMaxAttempts)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewClaimCommands,
		NewRedemptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClaimQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewClaimCommands(
	uow shared.UnitOfWork,
	resolver *commands.OfferResolver,
	ledger *commands.QuotaLedger,
	codes *commands.CodeGenerator,
	notifier shared.Notifier,
	claimQueries queries.ClaimQueries,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
) commands.ClaimCommands {
	return commands.NewClaimUseCase(commands.ClaimDeps{
		UoW:            uow,
		Resolver:       resolver,
		Ledger:         ledger,
		Codes:          codes,
		Notifier:       notifier,
		ClaimQueries:   claimQueries,
		Clock:          clk,
		Location:       loc,
		IdempotencyTTL: cfg.Engine.IdempotencyTTL,
		NotifyTimeout:  cfg.Engine.NotifyTimeout,
	})
}

func NewRedemptionCommands(uow shared.UnitOfWork, ledger *commands.QuotaLedger, notifier shared.Notifier, clk clock.Clock, cfg config.Config) commands.RedemptionCommands {
	return commands.NewRedemptionUseCase(uow, ledger, notifier, clk, cfg.Engine.NotifyTimeout)
}
