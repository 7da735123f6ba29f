package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type BoardSocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type BoardSocketClient struct {
	Conn      *websocket.Conn
	SessionId uuid.UUID
}

type BoardSocketHub struct {
	Boards map[uuid.UUID][]*BoardSocketClient
}

// ItemsChangedPayload fans the current item list out to a board's
// connected sockets.
type ItemsChangedPayload struct {
	Event   string      `json:"event"`
	BoardId uuid.UUID   `json:"board_id"`
	Items   []BoardItem `json:"items"`
}
