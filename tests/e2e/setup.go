//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"grab-service/cmd/bootstrap"
	"grab-service/cmd/bootstrap/components"
	"grab-service/internal/infra/db"
	"grab-service/internal/pkg/clock"
	"grab-service/internal/pkg/config"
	"grab-service/tests/common/authtest"
	"grab-service/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "grab"
	pgPassword = "grabpass"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// 営業日の境界は Asia/Tokyo。10時なら前後どちらの日付にもずれない
var defaultNow = time.Date(2025, 10, 16, 10, 0, 0, 0, time.FixedZone("JST", 9*60*60))

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port.Port(), dbName)
}

// ------------------------------------------------------------
// PostgreSQLコンテナ（プロセス内で共有）
// ------------------------------------------------------------
func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// データはRAM上、耐久性は不要
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return endpoint{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "grab-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "コンテナのホスト取得に失敗")
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "コンテナのポート取得に失敗")
	return endpoint{host: host, port: port}
}

// ------------------------------------------------------------
// スイートごとに専用データベースを作成してマイグレーション
// ------------------------------------------------------------
func createDatabase(t *testing.T, ep endpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	dbName := "grab_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, ep.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列実行中のCREATE DATABASEはテンプレートのロックで失敗することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行します", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, ep.dsn("postgres"))
		if err != nil {
			slog.Warn("データベース削除用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     ep.host,
		Port:     ep.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 40,
		MinConns: 2,
	}

	pool, _, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(ctx, pool), "マイグレーションに失敗")
	return pool, dbConfig
}

// migrate applies every migrations/*.sql file in name order.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		sqlText, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sqlText)); err != nil {
			return fmt.Errorf("apply %s: %w", f, err)
		}
	}
	return nil
}

// go test はパッケージのディレクトリで実行されるので上位へ辿る
func migrationsDir() (string, error) {
	dir := "migrations"
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", fmt.Errorf("migrations directory not found")
}

// ------------------------------------------------------------
// 本番と同じfxモジュールでアプリを組み立てる
// REDIS_ADDR・AMQP_URLが空なのでレート制限は無効、通知はジョブキューへ
// ------------------------------------------------------------
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig, clk *clock.MockClock) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			bootstrap.NewEngineLocation,
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RateLimitModule,
		bootstrap.NotifierModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		// 日付をまたぐテストのため時計を差し替える
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return router, cfg
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool // フィクスチャ投入と検証用
	Config config.Config
	Clock  *clock.MockClock
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	s.Clock = clock.NewMockClock(defaultNow)
	pool, dbConfig := createDatabase(t, postgresEndpoint(t))
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbConfig, s.Clock)
	s.JWT = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *SharedSuite) SetupSubTest() {
	// TRUNCATEで毎回まっさらな状態に戻す
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースのリセットに失敗")
	s.Clock.Set(defaultNow)
}

// Now is the time the application currently sees.
func (s *SharedSuite) Now() time.Time {
	return s.Clock.Now()
}
