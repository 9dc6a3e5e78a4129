package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/catalogops/catalog-sync/cmd/catalog/config"
	"github.com/catalogops/catalog-sync/e2e/helpers"
	"github.com/catalogops/catalog-sync/internal/autoupdate"
	"github.com/catalogops/catalog-sync/internal/editor"
	"github.com/catalogops/catalog-sync/internal/handler"
	"github.com/catalogops/catalog-sync/internal/platform/rabbitmq"
	"github.com/catalogops/catalog-sync/internal/platform/storage"
	pgmodels "github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/catalogops/catalog-sync/internal/platform/storage/storagetesting"
	"github.com/catalogops/catalog-sync/internal/recent"
	"github.com/catalogops/catalog-sync/internal/remote"
	"github.com/catalogops/catalog-sync/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent = "catalog-sync-e2e-test/0.0.1"
	exchange  = "catalog-sync-e2e"

	projectID = int32(1)

	shopeeLink = "https://shopee.vn/catalog-e2e-product"
	tiktokLink = "https://shop.tiktok.com/catalog-e2e-product"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        *config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	var err error

	var cfg config.Config
	if err = env.Parse(&cfg); err != nil {
		s.Require().FailNow("can't parse env variables", err)
	}
	s.cfg = &cfg

	if cfg.DatabaseURL == "" || cfg.RabbitMQ.URL == "" {
		s.T().Skip("DATABASE_URL and RABBITMQ_URL environment variables are required")
	}

	if s.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	helpers.DeclareRMQExchange(s.T(), s.channel, exchange)

	if s.db, err = sql.Open("postgres", cfg.DatabaseURL); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
}

func (s *E2ETestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

func (s *E2ETestSuite) TestCatalogFlow() {
	ctx, cancel := context.WithCancel(context.Background())

	// Prepare test RMQ queue
	queue := fmt.Sprintf("catalog-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("catalog.cmd.e2e.%d", rand.Int63n(100000))
	helpers.DeclareRMQQueue(s.T(), s.channel, queue, exchange, routingKey)

	// Prepare test data: one product missing canonical pricing,
	// one already consistent, one without any marketplace listings.
	s.insertTestData()

	// Mock storefront server
	storefront, storefrontPaths := helpers.PrepareMockedStorefront(s.T(), http.StatusOK)

	// Prepare updater consuming reconcile commands
	store := storage.NewPostgres(s.db)
	updater := autoupdate.NewUpdater(store, s.cfg.BatchSize)

	// Prepare RMQ client and commander
	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	publisher := commander.NewCatalogCommander(commander.NewRabbitMQSender(rmq, routingKey))

	// Prepare test logger
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	// Prepare and run handler
	han := handler.NewRMQHandler(rmq, updater, &logger)
	handlerErr := han.Start(ctx, queue)
	s.Require().NoError(handlerErr, "handler shouldn't return any error")

	// Send reconcile command
	if err := publisher.SendReconcileCommand(ctx, int(projectID)); err != nil {
		s.Require().FailNow("can't publish reconcile command", err)
	}

	// Wait for reconciling to be finished
	run := helpers.WaitForRunToBeFinished(s.T(), s.db, projectID)

	// Cancel context to stop consumer
	cancel()

	s.Require().NotNil(run.Success, "run should have success status")
	s.True(*run.Success, "run should be successful")
	s.Equal(int32(1), *run.CorrectedProducts, "should return correct number of corrected products")
	s.Equal(int32(2), *run.SkippedProducts, "should return correct number of skipped products")
	s.Equal(int32(0), *run.FailedProducts, "should return correct number of failed products")

	corrected := s.getProduct(1)
	s.Equal(100.0, corrected.Price, "should correct regular price from listings")
	s.Equal(80.0, corrected.PromotionalPrice, "should correct promotional price from listings")
	s.Equal(tiktokLink, corrected.ExternalURL, "should point external url at cheapest listing")

	logs := strings.Split(buf.String(), "\n")
	logs = lo.Filter(logs, func(log string, _ int) bool { return strings.TrimSpace(log) != "" })
	assertLogsMessages(s.T(), []string{"command started", "command finished"}, logs)

	// Edit the corrected product through the HTTP API
	touched := recent.NewCache(time.Minute)
	defer touched.Stop()

	woo := remote.NewClient(storefront.Client(), storefront.URL, "ck_e2e", "cs_e2e", userAgent)
	ed := editor.NewEditor(store, store, woo, touched, &logger)

	e := echo.New()
	e.Validator = handler.NewValidator()
	handler.NewProductAPI(store, ed, publisher, touched, s.cfg.RestoreWindow, &logger).Register(e)

	body := `{"actor":"e2e","fields":{"title":"Updated title"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, "edit should return 200")

	var editResp struct {
		AuditLogged  bool `json:"auditLogged"`
		RemoteSynced bool `json:"remoteSynced"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &editResp), "edit response should be valid json")
	s.True(editResp.AuditLogged, "audit entry should be recorded")
	s.True(editResp.RemoteSynced, "storefront should be synced")

	edited := s.getProduct(1)
	s.Equal("Updated title", edited.Title, "should store edited title")
	s.True(touched.Contains(1), "edited product should be marked as recently touched")

	entries := storagetesting.GetAuditEntries(s.T(), s.db)
	s.Require().Len(entries, 1, "should store one audit entry")
	s.Equal("title", entries[0].ChangedFields, "audit entry should list changed fields")
	s.Equal("e2e", entries[0].Actor, "audit entry should store actor")

	s.Equal([]string{"/wp-json/wc/v3/products/9001"}, storefrontPaths(), "storefront should receive product update")
}

func (s *E2ETestSuite) insertTestData() {
	now := time.Now().UTC()

	storagetesting.InsertProjects(s.T(), s.db, pgmodels.Project{
		ID:        projectID,
		Name:      "e2e store",
		StoreURL:  "https://e2e.example.com",
		CreatedAt: now,
	})

	storagetesting.InsertProducts(s.T(), s.db,
		pgmodels.Product{
			ID:          1,
			ProjectID:   projectID,
			WebsiteID:   "9001",
			Sku:         "sku-1",
			Title:       "Blender",
			ShopeeLink:  shopeeLink,
			ShopeePrice: 100,
			TiktokLink:  tiktokLink,
			TiktokPrice: 80,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		pgmodels.Product{
			ID:               2,
			ProjectID:        projectID,
			WebsiteID:        "9002",
			Sku:              "sku-2",
			Title:            "Mixer",
			Price:            100,
			PromotionalPrice: 80,
			ExternalURL:      tiktokLink,
			ShopeeLink:       shopeeLink,
			ShopeePrice:      100,
			TiktokLink:       tiktokLink,
			TiktokPrice:      80,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		pgmodels.Product{
			ID:        3,
			ProjectID: projectID,
			WebsiteID: "9003",
			Sku:       "sku-3",
			Title:     "Kettle",
			CreatedAt: now,
			UpdatedAt: now,
		},
	)
}

func (s *E2ETestSuite) getProduct(productID int32) *pgmodels.Product {
	products := storagetesting.GetProducts(s.T(), s.db)
	product, found := lo.Find(products, func(p pgmodels.Product) bool { return p.ID == productID })
	s.Require().True(found, "product should exist in db")
	return &product
}

// assertLogsMessages is helper function which unmarshals log json and asserts message.
func assertLogsMessages(t *testing.T, expected []string, actual []string) {
	t.Helper()

	require.Len(t, actual, len(expected), "incorrect number of logs")

	for ix, exp := range expected {
		var log struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(actual[ix]), &log); err != nil {
			require.FailNow(t, "can't unmarshal json log", err)
		}

		assert.Equalf(t, exp, log.Message, "log at index %d is incorrect", ix)
	}
}
