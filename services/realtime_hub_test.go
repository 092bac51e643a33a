package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johpaz/apiGestion-api/models"
)

func TestRealtimeHubRegistry(t *testing.T) {
	hub := NewRealtimeHub()

	a1 := &WSClient{UserID: 1}
	a2 := &WSClient{UserID: 1}
	b := &WSClient{UserID: 2}

	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)

	assert.Equal(t, 2, hub.ConnectionsFor(1))
	assert.Equal(t, 1, hub.ConnectionsFor(2))
	assert.Equal(t, 0, hub.ConnectionsFor(3))

	hub.Unregister(a1)
	assert.Equal(t, 1, hub.ConnectionsFor(1))

	hub.Unregister(a2)
	assert.Equal(t, 0, hub.ConnectionsFor(1))

	// Unregistering an unknown client is a no-op.
	hub.Unregister(a2)
	assert.Equal(t, 1, hub.ConnectionsFor(2))
}

func TestAlertEventWireShape(t *testing.T) {
	event := AlertEvent{
		Kind: EventAlertCreated,
		Alert: &models.Alert{
			ID:       3,
			Title:    "Problema de sanidad detectado",
			Priority: models.AlertPriorityHigh,
		},
	}

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "kind")
	assert.Contains(t, decoded, "alerta")

	var kind string
	require.NoError(t, json.Unmarshal(decoded["kind"], &kind))
	assert.Equal(t, "alerta.creada", kind)
}
