package network

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMessageDeferredPayload(t *testing.T) {
	raw := []byte(`{"type":"grid_shape","payload":{"shape":"ring","radius":3}}`)

	var msg ClientMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, MsgTypeGridShape, msg.Type)

	// Payload decoding is deferred until the type is known.
	var shape GridShapePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &shape))
	assert.Equal(t, "ring", shape.Shape)
	assert.Equal(t, 3, shape.Radius)
}

func TestServerMessageWireFormat(t *testing.T) {
	data, err := json.Marshal(ServerMessage{
		Type:    MsgTypeHex,
		Payload: HexPayload{X: 1, Y: 2, Z: -3, Key: "1,2", InGrid: true},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "hex",
		"payload": {"x": 1, "y": 2, "z": -3, "key": "1,2", "in_grid": true}
	}`, string(data))
}

func TestWelcomeWireFormat(t *testing.T) {
	data, err := json.Marshal(ServerMessage{
		Type:    MsgTypeWelcome,
		Payload: WelcomePayload{ConnectionID: "c1", Orientation: "flat", Size: 16, HexCount: 7},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "welcome",
		"payload": {"connection_id": "c1", "orientation": "flat", "size": 16, "hex_count": 7}
	}`, string(data))
}
