package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"moodboard/internal/canvas"
	"moodboard/internal/enums"
	"moodboard/internal/errs"
	"moodboard/internal/interfaces"
	"moodboard/internal/models"
	redisModels "moodboard/internal/models/redis"
	"moodboard/internal/msgs"
)

// Wire payloads for the live-editing protocol.

type selectItemPayload struct {
	ItemId uuid.UUID `json:"itemId"`
}

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type gesturePayload struct {
	ItemId uuid.UUID        `json:"itemId"`
	Node   canvas.NodeState `json:"node"`
}

type editTextPayload struct {
	ItemId  uuid.UUID          `json:"itemId"`
	Content models.ItemContent `json:"content"`
}

type keyDeletePayload struct {
	TextInputFocused bool `json:"textInputFocused"`
}

type pastePayload struct {
	Text        string `json:"text"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	// Data carries pasted file bytes as base64.
	Data    string        `json:"data"`
	Pointer *canvas.Point `json:"pointer"`
}

type viewportPayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SocketBoardHandler owns one canvas session per websocket connection
// and fans item changes out through redis to every socket watching the
// same board.
type SocketBoardHandler struct {
	mu       sync.Mutex
	ctx      context.Context
	upgrader websocket.Upgrader
	hub      *models.BoardSocketHub
	Redis    *redis.Client
	boards   interfaces.BoardFinder
	store    interfaces.ItemStore
	uploader canvas.Uploader
	previews interfaces.PreviewFetcher
}

func NewSocketBoardHandler(
	redis *redis.Client,
	ctx context.Context,
	boards interfaces.BoardFinder,
	store interfaces.ItemStore,
	uploader canvas.Uploader,
	previews interfaces.PreviewFetcher,
) *SocketBoardHandler {
	sbh := &SocketBoardHandler{
		ctx:      ctx,
		Redis:    redis,
		boards:   boards,
		store:    store,
		uploader: uploader,
		previews: previews,
		hub: &models.BoardSocketHub{
			Boards: make(map[uuid.UUID][]*models.BoardSocketClient),
		},
	}
	go sbh.HandleRedisMessages()
	return sbh
}

func (sbh *SocketBoardHandler) HandleSocketBoardRoute(ctx *gin.Context) {
	boardId, err := sbh.getBoardIdFromQuery(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidBoardId},
		})
		return
	}

	if _, err := sbh.boards.GetBoard(boardId); err != nil {
		ctx.AbortWithStatusJSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	sbh.HandleConnections(ctx, boardId)
}

func (sbh *SocketBoardHandler) getBoardIdFromQuery(ctx *gin.Context) (uuid.UUID, error) {
	boardIdStr := ctx.Query("boardId")
	if boardIdStr == "" {
		return uuid.Nil, errs.ErrInvalidBoardId
	}
	return uuid.Parse(boardIdStr)
}

func (sbh *SocketBoardHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	sbh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	return sbh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
}

func (sbh *SocketBoardHandler) HandleConnections(ctx *gin.Context, boardId uuid.UUID) {
	ws, err := sbh.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	defer func(ws *websocket.Conn) {
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	sessionId := uuid.New()
	session := canvas.NewSession(
		boardId,
		sbh.store,
		sbh.uploader,
		sbh.previews,
		canvas.DefaultDebounce,
	)
	session.Sync.SetOnChange(func() {
		sbh.publishItemsChanged(boardId, session.Items())
	})

	// Register before loading so fanout during the refresh reaches this
	// socket too.
	sbh.addClient(sessionId, boardId, ws)
	defer func() {
		// Flush pending debounced edits before the session goes away.
		session.Close()
		sbh.removeClient(sessionId, boardId)
	}()

	if err := session.Sync.Refresh(); err != nil {
		log.Printf("Error loading items for board %s: %v", boardId, err)
	}
	// The initial snapshot goes straight to the new connection; the
	// redis round-trip only serves the other sockets on this board.
	sbh.sendSnapshot(ws, boardId, session.Items())

	sbh.handleIncomingEvents(ws, session)
}

func (sbh *SocketBoardHandler) addClient(sessionId, boardId uuid.UUID, ws *websocket.Conn) {
	sbh.mu.Lock()
	defer sbh.mu.Unlock()
	if _, ok := sbh.hub.Boards[boardId]; !ok {
		sbh.hub.Boards[boardId] = []*models.BoardSocketClient{}
	}
	sbh.hub.Boards[boardId] = append(sbh.hub.Boards[boardId], &models.BoardSocketClient{
		Conn:      ws,
		SessionId: sessionId,
	})
}

func (sbh *SocketBoardHandler) removeClient(sessionId, boardId uuid.UUID) {
	sbh.mu.Lock()
	defer sbh.mu.Unlock()
	for i, client := range sbh.hub.Boards[boardId] {
		if client.SessionId == sessionId {
			sbh.hub.Boards[boardId] = append(sbh.hub.Boards[boardId][:i], sbh.hub.Boards[boardId][i+1:]...)
			break
		}
	}
	if len(sbh.hub.Boards[boardId]) == 0 {
		delete(sbh.hub.Boards, boardId)
	}
}

func (sbh *SocketBoardHandler) handleIncomingEvents(ws *websocket.Conn, session *canvas.Session) {
	for {
		var event models.BoardSocketEvent
		if err := ws.ReadJSON(&event); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure, websocket.CloseGoingAway) {
				return
			}
			log.Printf("handleIncomingEvents / Error reading json: %v", err)
			return
		}

		if err := sbh.dispatchEvent(session, event); err != nil {
			log.Printf("Error handling %s event: %v", event.Event, err)
		}
	}
}

func (sbh *SocketBoardHandler) dispatchEvent(session *canvas.Session, event models.BoardSocketEvent) error {
	switch event.Event {
	case enums.SOCKET_EVENT_SELECT_ITEM:
		var payload selectItemPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.ClickItem(payload.ItemId)

	case enums.SOCKET_EVENT_CLICK_CANVAS:
		session.ClickCanvas()

	case enums.SOCKET_EVENT_DBL_CLICK_CANVAS:
		var payload pointPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		_, err := session.DoubleClickCanvas(payload.X, payload.Y)
		return err

	case enums.SOCKET_EVENT_DRAG_END:
		var payload gesturePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.DragEnd(payload.ItemId, payload.Node)

	case enums.SOCKET_EVENT_TRANSFORM_END:
		var payload gesturePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.TransformEnd(payload.ItemId, payload.Node)

	case enums.SOCKET_EVENT_EDIT_TEXT:
		var payload editTextPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.EditText(payload.ItemId, payload.Content)

	case enums.SOCKET_EVENT_CLOSE_EDITOR:
		session.CloseEditor()

	case enums.SOCKET_EVENT_KEY_DELETE:
		var payload keyDeletePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.KeyDelete(payload.TextInputFocused)

	case enums.SOCKET_EVENT_VIEWPORT:
		var payload viewportPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		session.SetViewport(payload.Width, payload.Height)

	case enums.SOCKET_EVENT_PASTE:
		var payload pastePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return sbh.handlePaste(session, payload)

	default:
		log.Printf("Unknown event: %v", event.Event)
	}
	return nil
}

func (sbh *SocketBoardHandler) handlePaste(session *canvas.Session, payload pastePayload) error {
	pasteEvent := canvas.PasteEvent{
		Text:    payload.Text,
		Pointer: payload.Pointer,
	}
	if payload.Data != "" {
		data, err := base64.StdEncoding.DecodeString(payload.Data)
		if err != nil {
			return errs.ErrInvalidRequestBody
		}
		pasteEvent.Files = []canvas.PastedFile{{
			Name:        payload.FileName,
			ContentType: payload.ContentType,
			Size:        int64(len(data)),
			Data:        bytes.NewReader(data),
		}}
	}
	_, err := session.Paste(pasteEvent)
	return err
}

// sendSnapshot writes the current item list to one connection. The hub
// mutex also serializes writes to each conn, so this must take it.
func (sbh *SocketBoardHandler) sendSnapshot(ws *websocket.Conn, boardId uuid.UUID, items []models.BoardItem) {
	payload := models.ItemsChangedPayload{
		Event:   enums.SOCKET_EVENT_ITEMS_CHANGED,
		BoardId: boardId,
		Items:   items,
	}
	sbh.mu.Lock()
	defer sbh.mu.Unlock()
	if err := ws.WriteJSON(payload); err != nil {
		log.Printf("Error writing json: %v", err)
	}
}

func (sbh *SocketBoardHandler) publishItemsChanged(boardId uuid.UUID, items []models.BoardItem) {
	payload := models.ItemsChangedPayload{
		Event:   enums.SOCKET_EVENT_ITEMS_CHANGED,
		BoardId: boardId,
		Items:   items,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling items changed payload: %v", err)
		return
	}
	if err := sbh.Redis.Publish(sbh.ctx, redisModels.REDIS_CHANNEL_BOARD_ITEMS, jsonPayload).Err(); err != nil {
		log.Printf("Error publishing items changed payload: %v", err)
	}
}

func (sbh *SocketBoardHandler) HandleRedisMessages() {
	pubsub := sbh.Redis.Subscribe(sbh.ctx, redisModels.REDIS_CHANNEL_BOARD_ITEMS)
	if _, err := pubsub.Receive(sbh.ctx); err != nil {
		log.Printf("Could not subscribe to channel: %v", err)
		return
	}
	for msg := range pubsub.Channel() {
		var payload models.ItemsChangedPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Error unmarshalling items changed payload: %v", err)
			continue
		}
		sbh.sendToBoardClients(payload)
	}
}

func (sbh *SocketBoardHandler) sendToBoardClients(payload models.ItemsChangedPayload) {
	sbh.mu.Lock()
	defer sbh.mu.Unlock()
	for _, client := range sbh.hub.Boards[payload.BoardId] {
		if err := client.Conn.WriteJSON(payload); err != nil {
			log.Printf("Error writing json: %v", err)
		}
	}
}
