//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"car-rental/cmd/bootstrap"
	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/infra/db"
	"car-rental/internal/pkg/config"
	"car-rental/tests/common/dbtest"

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

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ServiceEnv is one running service: its router and, for leaf services, its own database.
type ServiceEnv struct {
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

// ------------------------------------------------------------
// Leaf service with a private database
// ------------------------------------------------------------
func setupLeafService(t *testing.T, service string, module fx.Option) ServiceEnv {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo, service)

	cfg := createTestConfig(service)
	cfg.DB = dbConfig

	router := buildE2EApp(t, cfg,
		fx.Provide(func() *pgxpool.Pool { return pool }),
		module,
	)

	slog.Info("e2e service ready",
		"service", service,
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return ServiceEnv{Router: router, DB: pool, Config: cfg}
}

// ------------------------------------------------------------
// Start the postgres container
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container address")

	return postgresInfo
}

// ------------------------------------------------------------
// Create and migrate a database for one service
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo, service string) (*pgxpool.Pool, config.DBConfig) {
	dbName := service + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	// CREATE DATABASE fails when template1 is busy with a concurrent create
	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second)
			slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "failed to create test database")

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	require.NotNil(t, pool)

	t.Cleanup(func() {
		pool.Close()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	require.NoError(t, db.Migrate(ctx, pool, service), "migration failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seeding reference data failed")

	return pool, dbConfig
}

// ------------------------------------------------------------
// Build the fx app of one service without starting a listener
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config, opts ...fx.Option) *gin.Engine {
	t.Helper()

	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		fx.Options(opts...),

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router
}

func createTestConfig(service string) config.Config {
	cfg := config.NewTestConfig()
	cfg.Service = service
	cfg.Upstream.Timeout = 2 * time.Second
	return cfg
}

// ------------------------------------------------------------
// Generic container start
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// Start the postgres container once per test process
// ------------------------------------------------------------
func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "shared_buffers=256MB",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresTestContainer, "postgres container is not running")
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Suite for a single leaf service
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	ServiceEnv

	service string
	module  fx.Option
}

func NewSharedSuite(service string, module fx.Option) SharedSuite {
	return SharedSuite{service: service, module: module}
}

func (s *SharedSuite) SetupSuite() {
	s.ServiceEnv = setupLeafService(s.T(), s.service, s.module)
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

// ------------------------------------------------------------
// All four services: leaves behind real HTTP servers, gateway in front
// ------------------------------------------------------------
type Platform struct {
	Gateway  *gin.Engine
	Cars     ServiceEnv
	Payments ServiceEnv
	Rentals  ServiceEnv
}

func StartPlatform(t *testing.T) *Platform {
	p := &Platform{
		Cars:     setupLeafService(t, config.ServiceCars, components.CarsModule),
		Payments: setupLeafService(t, config.ServicePayments, components.PaymentsModule),
		Rentals:  setupLeafService(t, config.ServiceRentals, components.RentalsModule),
	}

	carsSrv := httptest.NewServer(p.Cars.Router)
	paymentsSrv := httptest.NewServer(p.Payments.Router)
	rentalsSrv := httptest.NewServer(p.Rentals.Router)
	t.Cleanup(func() {
		carsSrv.Close()
		paymentsSrv.Close()
		rentalsSrv.Close()
	})

	cfg := createTestConfig(config.ServiceGateway)
	cfg.Upstream.CarsURL = carsSrv.URL
	cfg.Upstream.PaymentsURL = paymentsSrv.URL
	cfg.Upstream.RentalsURL = rentalsSrv.URL

	p.Gateway = buildE2EApp(t, cfg,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		components.GatewayModule,
	)
	return p
}

// Reset truncates every leaf database and reseeds the reference car.
func (p *Platform) Reset(t *testing.T) {
	t.Helper()
	for _, env := range []ServiceEnv{p.Cars, p.Payments, p.Rentals} {
		require.NoError(t, dbtest.ResetDB(env.DB))
	}
}
