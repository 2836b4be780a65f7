package components

import (
	"grab-service/internal/infra/readstore"
	"grab-service/internal/infra/repository"
	sqlc "grab-service/internal/infra/sqlc/generated"
	"grab-service/internal/infra/uow"
	"grab-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ClaimViewQueries)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimReadStore)),
		),
	),
)

// Transactional repositories are built per transaction by the unit of work.
// The notification repository writes outside claim transactions.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		repository.NewNotificationRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
