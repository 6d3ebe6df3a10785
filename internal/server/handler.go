package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	blast "github.com/msto63/bologna/foundation/bologna/ast"
	bldriver "github.com/msto63/bologna/foundation/bologna/driver"
	blparser "github.com/msto63/bologna/foundation/bologna/parser"
	"github.com/msto63/bologna/pkg/core/cache"
	"github.com/msto63/bologna/pkg/core/logging"
	"github.com/msto63/bologna/pkg/core/version"
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage represents a client message
type WSMessage struct {
	Type    string          `json:"type"`    // "parse", "tokens", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSResponse represents a server message
type WSResponse struct {
	Type    string      `json:"type"` // "result", "tokens", "pong", "error"
	Payload interface{} `json:"payload"`
}

// WSParsePayload is the payload of a parse request
type WSParsePayload struct {
	Source string `json:"source"`
}

// WSTokensPayload is the payload of a tokens request
type WSTokensPayload struct {
	Source     string `json:"source"`
	Whitespace bool   `json:"whitespace,omitempty"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSConstruct describes one top-level construct of a parse result
type WSConstruct struct {
	Kind    string                 `json:"kind"`
	OK      bool                   `json:"ok"`
	Message string                 `json:"message"`
	SExpr   string                 `json:"sexpr,omitempty"`
	AST     map[string]interface{} `json:"ast,omitempty"`
	Error   *WSParseError          `json:"error,omitempty"`
}

// WSParseError carries the location of a parse failure
type WSParseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// WSSummary counts the constructs of a parse result
type WSSummary struct {
	Definitions int `json:"definitions"`
	Externs     int `json:"externs"`
	Expressions int `json:"expressions"`
	Failures    int `json:"failures"`
}

// WSResultPayload is the payload of a "result" response
type WSResultPayload struct {
	Constructs []WSConstruct `json:"constructs"`
	Summary    WSSummary     `json:"summary"`
}

// WSToken is one token of a "tokens" response
type WSToken struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text"`
	Value  interface{} `json:"value,omitempty"` // number, or "+Inf" when out of range
	Line   int         `json:"line"`
	Column int         `json:"column"`
}

// WSPongPayload is the payload of a "pong" response
type WSPongPayload struct {
	Version  string `json:"version"`
	Protocol string `json:"protocol"`
}

// HandlerConfig holds websocket handler settings
type HandlerConfig struct {
	Parser blparser.Options

	// ReadTimeout closes idle connections; pongs extend it
	ReadTimeout time.Duration

	// ReadLimit is the maximum message size in bytes
	ReadLimit int64

	// Results caches encoded parse results by source text; nil disables
	// caching
	Results *cache.Cache[json.RawMessage]

	Logger *logging.Logger
}

// WebSocketHandler parses source text sent over websocket connections.
// Every message is parsed in a fresh parser session.
type WebSocketHandler struct {
	parserOpts  blparser.Options
	readTimeout time.Duration
	readLimit   int64
	results     *cache.Cache[json.RawMessage]
	logger      *logging.Logger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cfg HandlerConfig) *WebSocketHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("bologna-websocket")
	}
	return &WebSocketHandler{
		parserOpts:  cfg.Parser,
		readTimeout: cfg.ReadTimeout,
		readLimit:   cfg.ReadLimit,
		results:     cfg.Results,
		logger:      logger,
	}
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection runs the read loop of a single connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	logger := h.logger.With("conn", uuid.New().String()[:8])
	logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}
	if h.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(h.readTimeout))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(h.readTimeout))
			return nil
		})
	}

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				h.sendError(conn, logger, "invalid_message", "Message is not valid JSON")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}

		if h.readTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(h.readTimeout))
		}
		logger.Debug("message received", "type", msg.Type, "bytes", len(msg.Payload))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, logger, WSResponse{
				Type:    "pong",
				Payload: WSPongPayload{Version: version.Bologna, Protocol: version.Protocol},
			})

		case "parse":
			var payload WSParsePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, logger, "invalid_payload", "Invalid parse payload")
				continue
			}
			result, err := h.parse(payload.Source)
			if err != nil {
				logger.Error("encoding parse result failed", "error", err)
				h.sendError(conn, logger, "internal", "Parse result could not be encoded")
				continue
			}
			h.sendResponse(conn, logger, WSResponse{Type: "result", Payload: result})

		case "tokens":
			var payload WSTokensPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(conn, logger, "invalid_payload", "Invalid tokens payload")
				continue
			}
			h.sendResponse(conn, logger, WSResponse{Type: "tokens", Payload: Tokens(payload.Source, payload.Whitespace)})

		default:
			h.sendError(conn, logger, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// parse returns the encoded result payload for source. Results that fail
// to encode are not cached.
func (h *WebSocketHandler) parse(source string) (json.RawMessage, error) {
	if h.results == nil {
		return h.parseUncached(source)
	}
	return h.results.GetOrSet(cache.Key("parse", source), func() (json.RawMessage, error) {
		return h.parseUncached(source)
	})
}

func (h *WebSocketHandler) parseUncached(source string) (json.RawMessage, error) {
	reports, summary := bldriver.ParseAll(source, h.parserOpts)
	return json.Marshal(BuildResult(reports, summary))
}

// BuildResult converts driver reports into a result payload. Separators
// are left out.
func BuildResult(reports []bldriver.Report, summary bldriver.Summary) WSResultPayload {
	result := WSResultPayload{
		Constructs: make([]WSConstruct, 0, len(reports)),
		Summary: WSSummary{
			Definitions: summary.Definitions,
			Externs:     summary.Externs,
			Expressions: summary.Expressions,
			Failures:    summary.Failures,
		},
	}

	for _, r := range reports {
		if r.OK() && r.Kind == bldriver.KindSeparator {
			continue
		}

		c := WSConstruct{
			Kind:    r.Kind.String(),
			OK:      r.OK(),
			Message: r.Message(),
		}
		if r.Node != nil {
			c.SExpr = blast.Format(r.Node)
			c.AST = blast.Encode(r.Node)
		}

		var perr *blparser.ParseError
		if errors.As(r.Err, &perr) {
			c.Error = &WSParseError{
				Code:    string(perr.Code()),
				Message: perr.Message,
				Line:    perr.Pos.Line,
				Column:  perr.Pos.Column,
			}
		}
		result.Constructs = append(result.Constructs, c)
	}
	return result
}

// Tokens lexes source and returns every token up to and including EOF
func Tokens(source string, whitespace bool) []WSToken {
	toks := blparser.Tokenize(source, blparser.LexerOptions{EmitWhitespace: whitespace})

	out := make([]WSToken, 0, len(toks))
	for _, tok := range toks {
		t := WSToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		}
		if tok.Kind == blparser.TokenNumber {
			t.Value = blast.EncodeNumber(tok.Value)
		}
		out = append(out, t)
	}
	return out
}

// sendResponse sends a response message via WebSocket. A response that
// cannot be encoded is replaced by an "internal" error.
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, logger *logging.Logger, resp WSResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Error("WebSocket encode error", "type", resp.Type, "error", err)
		data, _ = json.Marshal(WSResponse{
			Type:    "error",
			Payload: WSErrorPayload{Code: "internal", Message: "Response could not be encoded"},
		})
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Error("WebSocket send error", "error", err)
	}
}

// sendError sends an error message via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, logger *logging.Logger, code, message string) {
	h.sendResponse(conn, logger, WSResponse{
		Type:    "error",
		Payload: WSErrorPayload{Code: code, Message: message},
	})
}
