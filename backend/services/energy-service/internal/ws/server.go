package ws

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"urjaportal/backend/libs/i18n"
)

// Server upgrades HTTP connections to live calculator WebSockets.
type Server struct {
	ctx       context.Context
	manager   *Manager
	processor MessageProcessor
	timeouts  Timeouts
	logger    *zap.Logger
	upgrader  websocket.Upgrader
}

// NewServer builds ws server. Connections are closed when ctx is cancelled.
func NewServer(ctx context.Context, manager *Manager, processor MessageProcessor, timeouts Timeouts, logger *zap.Logger) *Server {
	return &Server{
		ctx:       ctx,
		manager:   manager,
		processor: processor,
		timeouts:  timeouts,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS is HTTP handler for GET /energy/ws/calculator. The reply language
// comes from ?lang= or Accept-Language.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	lang := i18n.FromRequest(r)
	if raw := r.URL.Query().Get("lang"); raw != "" {
		if tag, ok := i18n.Parse(raw); ok {
			lang = tag
		}
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(s.ctx)
	connection := NewConnection(id, lang, conn, s.processor, s.timeouts, s.logger, func(id string) {
		s.manager.Remove(id)
		cancel()
	})
	s.manager.Add(connection)

	go connection.Start(ctx)
	s.logger.Debug("calculator connected", zap.String("conn_id", id), zap.String("lang", i18n.Code(lang)))
}
