//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "grab-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertOffer stores a row produced by builder.OfferBuilder.BuildInfra.
func InsertOffer(t *testing.T, db DBLike, o sqlc.Offers) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (
			id, kind, title, status, is_information, owner_user_id, organization_id, venue_id,
			max_grab, unlimited, is_daily, start_at, end_at, mirror_code,
			redemption_mode, validation_time_limit_minutes, stock_debit
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		o.ID, o.Kind, o.Title, o.Status, o.IsInformation, o.OwnerUserID, o.OrganizationID, o.VenueID,
		o.MaxGrab, o.Unlimited, o.IsDaily, o.StartAt, o.EndAt, o.MirrorCode,
		o.RedemptionMode, o.ValidationTimeLimitMinutes, o.StockDebit)
	require.NoError(t, err)

	return o.ID
}

// SetPromoStock upserts a shared stock row. A nil stock means unlimited.
func SetPromoStock(t *testing.T, db DBLike, code string, stock *int) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO promo_stocks (code, stock) VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET stock = EXCLUDED.stock, updated_at = NOW()`,
		code, stock)
	require.NoError(t, err)
}

func AddOrganizationMember(t *testing.T, db DBLike, organizationID, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO organization_members (organization_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		organizationID, userID)
	require.NoError(t, err)
}

func AddVenueOperator(t *testing.T, db DBLike, venueID, userID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO venue_operators (venue_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		venueID, userID)
	require.NoError(t, err)
}

func CountClaims(t *testing.T, db DBLike, offerID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM claims WHERE offer_id = $1", offerID).Scan(&n)
	require.NoError(t, err)
	return n
}

// SumCounters adds up every daily counter of an offer.
func SumCounters(t *testing.T, db DBLike, offerID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(total), 0)::int FROM daily_counters WHERE offer_id = $1", offerID).Scan(&n)
	require.NoError(t, err)
	return n
}

// PromoStock returns nil for an unlimited row.
func PromoStock(t *testing.T, db DBLike, code string) *int {
	t.Helper()

	var stock *int
	err := db.QueryRow(context.Background(), "SELECT stock FROM promo_stocks WHERE code = $1", code).Scan(&stock)
	require.NoError(t, err)
	return stock
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// TokenUsedAt returns the used_at of the redemption token with the given code.
func TokenUsedAt(t *testing.T, db DBLike, code string) *time.Time {
	t.Helper()

	var usedAt *time.Time
	err := db.QueryRow(context.Background(),
		"SELECT used_at FROM redemption_tokens WHERE code = $1", code).Scan(&usedAt)
	require.NoError(t, err)
	return usedAt
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
