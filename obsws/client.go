package obsws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-obs-remote/config"
	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
)

//go:generate mockgen -source=client.go -destination=../internal/mock/caller_mock.go -package=mock

// Caller performs a single obs-websocket request. Implementations marshal
// requestData into the request envelope and, when responseData is non-nil,
// unmarshal the server's responseData payload into it.
type Caller interface {
	Call(ctx context.Context, requestType string, requestData, responseData any) error
}

// Event is one server-side notification delivered to registered handlers.
type Event struct {
	Type   string
	Intent int
	Data   json.RawMessage
}

// EventHandler receives events on the client's read goroutine. Handlers
// must not block; long work should be handed off to another goroutine.
type EventHandler func(Event)

// Client is an obs-websocket v5 client over a single gorilla/websocket
// connection. It is safe for concurrent use; requests issued concurrently
// are correlated by request id.
type Client struct {
	cfg *config.Config
	log *logger.Logger

	mu        sync.Mutex // guards conn, connected, done
	conn      *websocket.Conn
	connected bool
	done      chan struct{}

	writeMu sync.Mutex // serialises frame writes

	pendingMu sync.Mutex
	pending   map[string]chan requestResponse

	handlersMu    sync.RWMutex
	nextHandlerID int
	allHandlers   map[int]EventHandler
	typeHandlers  map[string]map[int]EventHandler

	backoffBase time.Duration
}

// New constructs a Client from the given configuration. The connection is
// not established until [Client.Connect] is called.
func New(cfg *config.Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:          cfg,
		log:          log,
		pending:      make(map[string]chan requestResponse),
		allHandlers:  make(map[int]EventHandler),
		typeHandlers: make(map[string]map[int]EventHandler),
		backoffBase:  500 * time.Millisecond,
	}
}

// Connect dials the obs-websocket server and performs the Hello/Identify
// handshake. It is idempotent: connecting an already-connected client is a
// no-op.
//
// Returns [ErrAuthenticationFailed] when the server rejects the password and
// [ErrConnectionFailed] (wrapped) for every other dial or handshake failure.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	url := c.cfg.WebSocketURL()
	dialer := websocket.Dialer{
		HandshakeTimeout: c.cfg.Timeout,
		Subprotocols:     []string{subprotocol},
	}

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrConnectionFailed, url, err)
	}

	if err = c.identify(conn); err != nil {
		_ = conn.Close()
		return err
	}

	c.conn = conn
	c.connected = true
	c.done = make(chan struct{})

	go c.readLoop(conn, c.done)

	c.log.Info().Str("url", url).Msg("connected to obs")
	return nil
}

// identify consumes the server Hello, answers with Identify (computing the
// authentication string when the server supplies a challenge), and waits for
// Identified.
func (c *Client) identify(conn *websocket.Conn) error {
	deadline := time.Now().Add(c.cfg.Timeout)
	if err := conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("%w: set handshake deadline: %v", ErrConnectionFailed, err)
	}

	var helloMsg message
	if err := conn.ReadJSON(&helloMsg); err != nil {
		return fmt.Errorf("%w: read hello: %v", ErrConnectionFailed, err)
	}
	if helloMsg.Op != opHello {
		return fmt.Errorf("%w: expected hello (op %d), got op %d", ErrConnectionFailed, opHello, helloMsg.Op)
	}

	var hello helloData
	if err := json.Unmarshal(helloMsg.D, &hello); err != nil {
		return fmt.Errorf("%w: decode hello: %v", ErrConnectionFailed, err)
	}

	identify := identifyData{
		RPCVersion:         rpcVersion,
		EventSubscriptions: c.cfg.EventSubscriptions,
	}
	if hello.Authentication != nil {
		identify.Authentication = authResponse(c.cfg.Password, hello.Authentication.Salt, hello.Authentication.Challenge)
	}

	identifyMsg, err := newMessage(opIdentify, identify)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if err = conn.WriteJSON(identifyMsg); err != nil {
		return fmt.Errorf("%w: send identify: %v", ErrConnectionFailed, err)
	}

	var identifiedMsg message
	if err = conn.ReadJSON(&identifiedMsg); err != nil {
		if websocket.IsCloseError(err, closeAuthenticationFailed) {
			return ErrAuthenticationFailed
		}
		return fmt.Errorf("%w: read identified: %v", ErrConnectionFailed, err)
	}
	if identifiedMsg.Op != opIdentified {
		return fmt.Errorf("%w: expected identified (op %d), got op %d", ErrConnectionFailed, opIdentified, identifiedMsg.Op)
	}

	var identified identifiedData
	if err = json.Unmarshal(identifiedMsg.D, &identified); err != nil {
		return fmt.Errorf("%w: decode identified: %v", ErrConnectionFailed, err)
	}

	if err = conn.SetReadDeadline(time.Time{}); err != nil {
		return fmt.Errorf("%w: clear handshake deadline: %v", ErrConnectionFailed, err)
	}

	c.log.Debug().
		Str("server_version", hello.OBSWebSocketVersion).
		Int("rpc_version", identified.NegotiatedRPCVersion).
		Msg("obs handshake complete")
	return nil
}

// Disconnect closes the connection. It is idempotent and safe to call on a
// client that never connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected || c.conn == nil {
		return nil
	}

	closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(time.Second))

	err := c.conn.Close()
	c.connected = false
	c.conn = nil

	c.log.Info().Msg("disconnected from obs")
	return err
}

// IsConnected reports whether the client currently holds an identified
// connection.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Call sends one request and waits for the matching response.
//
// Transport-level failures (broken connection, response timeout) are retried
// with exponential backoff up to Config.MaxRetries additional attempts.
// Protocol-level request errors (RequestStatus.Result == false) surface
// immediately, mapped to the sentinel errors in errors.go.
func (c *Client) Call(ctx context.Context, requestType string, requestData, responseData any) error {
	backoff := retry.WithMaxRetries(uint64(c.cfg.MaxRetries), retry.NewExponential(c.backoffBase))

	var resp requestResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := c.doCall(ctx, requestType, requestData)
		if err != nil {
			if errors.Is(err, ErrConnectionFailed) || errors.Is(err, ErrTimeout) {
				c.log.Warn().Err(err).Str("request", requestType).Msg("obs request attempt failed")
				return retry.RetryableError(err)
			}
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return err
	}

	if responseData != nil && len(resp.ResponseData) > 0 {
		if err = json.Unmarshal(resp.ResponseData, responseData); err != nil {
			return fmt.Errorf("decode %s response: %w", requestType, err)
		}
	}
	return nil
}

func (c *Client) doCall(ctx context.Context, requestType string, requestData any) (requestResponse, error) {
	c.mu.Lock()
	conn, connected, done := c.conn, c.connected, c.done
	c.mu.Unlock()

	if !connected || conn == nil {
		return requestResponse{}, ErrNotConnected
	}

	id := uuid.NewString()
	ch := make(chan requestResponse, 1)

	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()

	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	msg, err := newMessage(opRequest, requestEnvelope{
		RequestType: requestType,
		RequestID:   id,
		RequestData: requestData,
	})
	if err != nil {
		return requestResponse{}, err
	}

	c.writeMu.Lock()
	err = conn.WriteJSON(msg)
	c.writeMu.Unlock()
	if err != nil {
		return requestResponse{}, fmt.Errorf("%w: send %s: %v", ErrConnectionFailed, requestType, err)
	}

	timer := time.NewTimer(c.cfg.Timeout)
	defer timer.Stop()

	select {
	case resp, ok := <-ch:
		if !ok {
			return requestResponse{}, ErrNotConnected
		}
		if !resp.RequestStatus.Result {
			return requestResponse{}, mapRequestError(requestType, resp.RequestStatus)
		}
		return resp, nil
	case <-done:
		return requestResponse{}, ErrNotConnected
	case <-timer.C:
		return requestResponse{}, fmt.Errorf("%w: %s: no response within %s", ErrTimeout, requestType, c.cfg.Timeout)
	case <-ctx.Done():
		return requestResponse{}, ctx.Err()
	}
}

// readLoop owns all reads from conn: it routes responses to their pending
// callers and fans events out to registered handlers. It exits on the first
// read error, failing all in-flight calls.
//
// A loop whose connection has since been replaced must not touch shared
// state: the pending map and the connected flag belong to the current
// connection, identified by c.done.
func (c *Client) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			current := c.done == done
			if current {
				c.connected = false
			}
			c.mu.Unlock()

			if current {
				c.failPending()
			}

			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				c.log.Debug().Err(err).Msg("obs read loop stopped")
			}
			return
		}

		var msg message
		if err = json.Unmarshal(data, &msg); err != nil {
			c.log.Warn().Err(err).Msg("discarding malformed obs frame")
			continue
		}

		switch msg.Op {
		case opRequestResponse:
			var resp requestResponse
			if err = json.Unmarshal(msg.D, &resp); err != nil {
				c.log.Warn().Err(err).Msg("discarding malformed obs response")
				continue
			}

			c.pendingMu.Lock()
			ch, ok := c.pending[resp.RequestID]
			if ok {
				delete(c.pending, resp.RequestID)
			}
			c.pendingMu.Unlock()

			if ok {
				ch <- resp
			}

		case opEvent:
			var ev eventMessage
			if err = json.Unmarshal(msg.D, &ev); err != nil {
				c.log.Warn().Err(err).Msg("discarding malformed obs event")
				continue
			}
			c.dispatchEvent(Event{Type: ev.EventType, Intent: ev.EventIntent, Data: ev.EventData})
		}
	}
}

// failPending closes every in-flight response channel so blocked callers
// fail with ErrNotConnected instead of waiting out their timeout.
func (c *Client) failPending() {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	for id, ch := range c.pending {
		delete(c.pending, id)
		close(ch)
	}
}

// OnEvent registers a handler for every event. The returned function
// removes the registration.
func (c *Client) OnEvent(handler EventHandler) (off func()) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()

	id := c.nextHandlerID
	c.nextHandlerID++
	c.allHandlers[id] = handler

	return func() {
		c.handlersMu.Lock()
		defer c.handlersMu.Unlock()
		delete(c.allHandlers, id)
	}
}

// OnEventType registers a handler for events of one type (e.g.
// "CurrentProgramSceneChanged"). The returned function removes the
// registration.
func (c *Client) OnEventType(eventType string, handler EventHandler) (off func()) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()

	id := c.nextHandlerID
	c.nextHandlerID++
	if c.typeHandlers[eventType] == nil {
		c.typeHandlers[eventType] = make(map[int]EventHandler)
	}
	c.typeHandlers[eventType][id] = handler

	return func() {
		c.handlersMu.Lock()
		defer c.handlersMu.Unlock()
		delete(c.typeHandlers[eventType], id)
		if len(c.typeHandlers[eventType]) == 0 {
			delete(c.typeHandlers, eventType)
		}
	}
}

func (c *Client) dispatchEvent(ev Event) {
	c.handlersMu.RLock()
	handlers := make([]EventHandler, 0, len(c.allHandlers))
	for _, h := range c.allHandlers {
		handlers = append(handlers, h)
	}
	for _, h := range c.typeHandlers[ev.Type] {
		handlers = append(handlers, h)
	}
	c.handlersMu.RUnlock()

	for _, h := range handlers {
		c.callHandler(h, ev)
	}
}

// callHandler isolates the read loop from panicking handlers.
func (c *Client) callHandler(handler EventHandler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Any("panic", r).Str("event", ev.Type).Msg("event handler panicked")
		}
	}()
	handler(ev)
}

// Version fetches OBS Studio and obs-websocket version information.
func (c *Client) Version(ctx context.Context) (models.VersionInfo, error) {
	var version models.VersionInfo
	err := c.Call(ctx, "GetVersion", nil, &version)
	return version, err
}

// Stats fetches OBS Studio runtime statistics.
func (c *Client) Stats(ctx context.Context) (models.StatsInfo, error) {
	var stats models.StatsInfo
	err := c.Call(ctx, "GetStats", nil, &stats)
	return stats, err
}
