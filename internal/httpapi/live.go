package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cloud-ru/rentbuy-go/internal/metrics"
	"github.com/cloud-ru/rentbuy-go/internal/tools"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 << 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveReply - ответ на очередной снимок входных данных
type LiveReply struct {
	Type   string      `json:"type"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Status int         `json:"status,omitempty"`
}

var errLiveRateLimited = errors.New("rate limit exceeded")

type liveRequest struct {
	params map[string]interface{}
	err    error
}

// liveSession пересчитывает прогноз на каждый снимок ввода.
// Если клиент присылает данные быстрее, чем идет расчет, промежуточные
// снимки отбрасываются и считается только последний.
type liveSession struct {
	conn    *websocket.Conn
	handler tools.ToolHandler
	logger  *zap.Logger
	pending chan liveRequest
	closing <-chan struct{}
	// allow расходует токен лимитера на каждое сообщение; nil - без лимита
	allow   func() bool
}

func (s *Server) liveProjection(w http.ResponseWriter, r *http.Request) {
	handler, ok := s.handlers[tools.ToolProjection]
	if !ok {
		writeError(w, http.StatusNotFound, "projection tool is not configured")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	metrics.LiveSessions.Inc()
	defer metrics.LiveSessions.Dec()

	session := &liveSession{
		conn:    conn,
		handler: handler,
		logger:  s.logger,
		pending: make(chan liveRequest, 1),
		closing: s.closing,
	}
	if s.limiter != nil {
		ip := clientIP(r)
		session.allow = func() bool { return s.limiter.Allow(ip) }
	}
	session.run(r.Context())
}

func (ls *liveSession) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer ls.conn.Close()

	go ls.readPump(cancel)
	ls.writePump(ctx)
}

func (ls *liveSession) readPump(cancel context.CancelFunc) {
	defer cancel()

	ls.conn.SetReadLimit(maxMessageSize)
	_ = ls.conn.SetReadDeadline(time.Now().Add(pongWait))
	ls.conn.SetPongHandler(func(string) error {
		return ls.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := ls.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				ls.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		var req liveRequest
		if ls.allow != nil && !ls.allow() {
			req.err = errLiveRateLimited
		} else if err := json.Unmarshal(message, &req.params); err != nil {
			req.err = err
		}
		ls.offer(req)
	}
}

// offer кладет запрос в очередь, вытесняя еще не обработанный
func (ls *liveSession) offer(req liveRequest) {
	for {
		select {
		case ls.pending <- req:
			return
		default:
		}
		select {
		case <-ls.pending:
		default:
		}
	}
}

func (ls *liveSession) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = ls.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case <-ls.closing:
			_ = ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = ls.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return

		case req := <-ls.pending:
			reply := ls.compute(ctx, req)
			_ = ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ls.conn.WriteJSON(reply); err != nil {
				ls.logger.Debug("websocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ls.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ls *liveSession) compute(ctx context.Context, req liveRequest) LiveReply {
	if errors.Is(req.err, errLiveRateLimited) {
		return LiveReply{Type: "error", Error: req.err.Error(), Status: http.StatusTooManyRequests}
	}
	if req.err != nil {
		return LiveReply{Type: "error", Error: "invalid message", Status: http.StatusBadRequest}
	}

	result, err := ls.handler(ctx, req.params)
	if err != nil {
		return LiveReply{Type: "error", Error: err.Error(), Status: StatusFor(err)}
	}
	return LiveReply{Type: "projection", Result: result}
}
