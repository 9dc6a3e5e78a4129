package helpers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	pgmodels "github.com/catalogops/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/catalogops/catalog-sync/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

// WaitForRunToBeFinished is blocking helper function, returns latest run of the project after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, projectID int32) *pgmodels.ReconcileRun {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)

		var latestRun *pgmodels.ReconcileRun
		for _, run := range storagetesting.GetRuns(t, queryable) {
			if run.ProjectID != projectID {
				continue
			}
			if latestRun == nil || run.ID > latestRun.ID {
				latestRun = &pgmodels.ReconcileRun{}
				*latestRun = run
			}
		}

		if latestRun != nil && latestRun.FinishedAt != nil {
			return latestRun
		}
	}
}

// PrepareMockedStorefront mocks the storefront REST API.
// Returns the server and a function returning paths of requests received so far.
func PrepareMockedStorefront(t *testing.T, statusCode int) (*httptest.Server, func() []string) {
	t.Helper()

	var mu sync.Mutex
	requestedPaths := []string{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		mu.Lock()
		requestedPaths = append(requestedPaths, req.URL.Path)
		mu.Unlock()
		wrt.WriteHeader(statusCode)
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string{}, requestedPaths...)
	}
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
