package network

import "encoding/json"

// Message types - Client → Server
const (
	MsgTypeHexAt     = "hex_at"
	MsgTypeHexInfo   = "hex_info"
	MsgTypeGridShape = "grid_shape"
	MsgTypePing      = "ping"
)

// Message types - Server → Client
const (
	MsgTypeWelcome    = "welcome"
	MsgTypeHex        = "hex"
	MsgTypeHexDetails = "hex_details"
	MsgTypeGrid       = "grid"
	MsgTypeError      = "error"
	MsgTypePong       = "pong"
)

// Error codes carried by ErrorPayload
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeUnknownType    = "unknown_message_type"
	ErrCodeInvalidShape   = "invalid_shape"
	ErrCodeShapeTooLarge  = "shape_too_large"
)

// ClientMessage represents any message from client to server
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents any message from server to client
type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// --- Client Message Payloads ---

// HexAtPayload asks which hex contains a point in pixel space
type HexAtPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HexInfoPayload asks for geometry details of a hex by its coordinates.
// The z coordinate is derived server-side, so only x and y travel.
type HexInfoPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridShapePayload asks the server to build and return a grid shape.
// Radius applies to hexagon, ring, spiral and triangle shapes; Width
// and Height apply to rectangle and parallelogram shapes.
type GridShapePayload struct {
	Shape  string `json:"shape"`
	Radius int    `json:"radius"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// --- Server Message Payloads ---

// WelcomePayload is sent to client after successful connection
type WelcomePayload struct {
	ConnectionID string  `json:"connection_id"`
	Orientation  string  `json:"orientation"`
	Size         float64 `json:"size"`
	HexCount     int     `json:"hex_count"`
}

// HexPayload describes a single hex in cube coordinates
type HexPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Key    string  `json:"key"`
	InGrid bool    `json:"in_grid"`
}

// PointPayload is a point in pixel space
type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HexDetailsPayload carries the full geometry of a hex
type HexDetailsPayload struct {
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Z       float64        `json:"z"`
	Center  PointPayload   `json:"center"`
	Corners []PointPayload `json:"corners"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
}

// GridPayload carries a freshly built grid shape
type GridPayload struct {
	Shape string       `json:"shape"`
	Count int          `json:"count"`
	Hexes []HexPayload `json:"hexes"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PongPayload answers a ping with the server timestamp
type PongPayload struct {
	Timestamp int64 `json:"timestamp"`
}
