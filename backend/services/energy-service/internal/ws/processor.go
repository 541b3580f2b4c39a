package ws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"urjaportal/backend/libs/calc"
	"urjaportal/backend/libs/i18n"
)

// Frame is an incoming calculator request.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Reply answers exactly one Frame. Either Result or Error is set.
type Reply struct {
	Type   string      `json:"type"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Code   string      `json:"code,omitempty"`
	Field  string      `json:"field,omitempty"`
}

// HandlerFunc computes the result for one frame payload.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (interface{}, error)

// MessageProcessor turns a raw frame into a raw reply.
type MessageProcessor interface {
	Process(ctx context.Context, lang language.Tag, raw []byte) []byte
}

// Processor dispatches frames to handlers registered by type.
type Processor struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

// NewProcessor returns processor.
func NewProcessor(logger *zap.Logger) *Processor {
	return &Processor{handlers: make(map[string]HandlerFunc), logger: logger}
}

// Register attaches handler to a frame type.
func (p *Processor) Register(kind string, handler HandlerFunc) {
	p.handlers[kind] = handler
}

// Process never returns nil: malformed and failing frames get an error reply.
func (p *Processor) Process(ctx context.Context, lang language.Tag, raw []byte) []byte {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return p.encode(p.failure(lang, "", i18n.KeyMalformedFrame, ""))
	}
	frame.Type = strings.ToLower(strings.TrimSpace(frame.Type))

	handler, ok := p.handlers[frame.Type]
	if !ok {
		return p.encode(p.failure(lang, frame.Type, i18n.KeyUnknownFrameType, ""))
	}

	result, err := handler(ctx, frame.Payload)
	if err != nil {
		var ve *calc.ValidationError
		switch {
		case errors.As(err, &ve):
			return p.encode(p.failure(lang, frame.Type, ve.Code, ve.Field))
		case errors.Is(err, errBadPayload):
			return p.encode(p.failure(lang, frame.Type, i18n.KeyMalformedFrame, ""))
		default:
			p.logger.Warn("calculator handler failed", zap.String("type", frame.Type), zap.Error(err))
			return p.encode(p.failure(lang, frame.Type, i18n.KeyInternal, ""))
		}
	}
	return p.encode(Reply{Type: frame.Type, Result: result})
}

func (p *Processor) failure(lang language.Tag, kind, code, field string) Reply {
	return Reply{Type: kind, Error: i18n.Message(lang, code), Code: code, Field: field}
}

func (p *Processor) encode(reply Reply) []byte {
	data, err := json.Marshal(reply)
	if err != nil {
		p.logger.Error("encode calculator reply failed", zap.Error(err))
		data, _ = json.Marshal(Reply{Type: reply.Type, Code: i18n.KeyInternal})
	}
	return data
}

var errBadPayload = errors.New("ws: payload does not match frame type")

// Decode unmarshals a frame payload into T. An empty payload yields the zero value.
func Decode[T any](payload json.RawMessage) (T, error) {
	var target T
	if len(payload) == 0 || string(payload) == "null" {
		return target, nil
	}
	if err := json.Unmarshal(payload, &target); err != nil {
		var zero T
		return zero, errBadPayload
	}
	return target, nil
}
