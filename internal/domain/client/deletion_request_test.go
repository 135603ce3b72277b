package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeletionRequest(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	requestedBy := uuid.New()

	req := NewDeletionRequest(tenantID, customerID, requestedBy)

	assert.Equal(t, tenantID, req.TenantID)
	assert.Equal(t, customerID, req.CustomerID)
	assert.Equal(t, requestedBy, req.RequestedBy)
	assert.Equal(t, DeletionRequestStatusPending, req.Status)
	assert.False(t, req.IsExecuted())
	assert.Nil(t, req.ExecutedAt)
}

func TestDeletionRequestMarkExecuted(t *testing.T) {
	summary := DeletionSummary{
		CustomerAnonymized:       true,
		DocumentsDeleted:         3,
		CommentsRedacted:         7,
		PortalContactsAnonymized: 2,
		InvoicesPreserved:        12,
	}

	t.Run("records the cascade outcome", func(t *testing.T) {
		req := NewDeletionRequest(uuid.New(), uuid.New(), uuid.New())
		before := req.Version

		require.NoError(t, req.MarkExecuted(summary))

		assert.Equal(t, DeletionRequestStatusExecuted, req.Status)
		assert.True(t, req.IsExecuted())
		require.NotNil(t, req.ExecutedAt)
		assert.Equal(t, summary, req.Summary())
		assert.Equal(t, before+1, req.Version)
	})

	t.Run("publishes DeletionExecuted event", func(t *testing.T) {
		req := NewDeletionRequest(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, req.MarkExecuted(summary))

		events := req.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeDeletionExecuted, events[0].EventType())
	})

	t.Run("rejects a second execution", func(t *testing.T) {
		req := NewDeletionRequest(uuid.New(), uuid.New(), uuid.New())
		require.NoError(t, req.MarkExecuted(summary))

		err := req.MarkExecuted(DeletionSummary{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already been executed")

		// The stored outcome is untouched by the failed call.
		assert.Equal(t, summary, req.Summary())
	})
}
