package commander_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/catalogops/catalog-sync/pkg/v1/commander"
	"github.com/catalogops/catalog-sync/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUniSendReconcileCommand(t *testing.T) {
	projectID := rand.Intn(1000) + 1
	body := []byte(fmt.Sprintf(`{"action":"reconcile","projectId":%d}`, projectID))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewCatalogCommander(sender)
			err := cmndr.SendReconcileCommand(context.TODO(), projectID)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUniSendPurgeCommand(t *testing.T) {
	projectID := rand.Intn(1000) + 1
	body := []byte(fmt.Sprintf(`{"action":"purge","projectId":%d}`, projectID))

	sender := mocks.NewSender(t)
	sender.On("Send", mock.Anything, body).Return(nil)

	cmndr := commander.NewCatalogCommander(sender)
	err := cmndr.SendPurgeCommand(context.TODO(), projectID)

	require.NoError(t, err, "shouldn't return any error")
}
