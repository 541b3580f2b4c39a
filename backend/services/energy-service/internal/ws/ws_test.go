package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"urjaportal/backend/libs/i18n"
	"urjaportal/backend/services/energy-service/internal/service"
)

func newTestProcessor() *Processor {
	p := NewProcessor(zap.NewNop())
	RegisterCalculators(p, service.NewApplianceService(nil, nil, zap.NewNop()), service.NewSolarService(zap.NewNop()))
	return p
}

func decodeReply(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var reply map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &reply))
	return reply
}

func TestProcessorFrames(t *testing.T) {
	p := newTestProcessor()
	ctx := context.Background()

	tests := []struct {
		name  string
		frame string
		check func(t *testing.T, reply map[string]interface{})
	}{
		{
			name:  "bill by units",
			frame: `{"type":"bill","payload":{"method":"units","units":100}}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				result := reply["result"].(map[string]interface{})
				assert.Equal(t, "residential", result["category"])
				assert.InDelta(t, 1344.0, result["total_amount"], 1e-9)
			},
		},
		{
			name:  "bill reading order",
			frame: `{"type":"BILL","payload":{"previous_reading":10,"current_reading":5}}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				assert.Equal(t, "bill", reply["type"])
				assert.Equal(t, "reading_order", reply["code"])
				assert.Equal(t, "current_reading", reply["field"])
				assert.Nil(t, reply["result"])
			},
		},
		{
			name:  "appliances",
			frame: `{"type":"appliances","payload":{"appliances":[{"name":"Heater","wattage":1000,"hours_per_day":1}]}}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				totals := reply["result"].(map[string]interface{})["totals"].(map[string]interface{})
				assert.InDelta(t, 30.0, totals["monthly_kwh"], 1e-9)
			},
		},
		{
			name:  "solar without input",
			frame: `{"type":"solar"}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				result := reply["result"].(map[string]interface{})
				assert.Equal(t, false, result["available"])
			},
		},
		{
			name:  "payload of wrong shape",
			frame: `{"type":"solar","payload":[1,2]}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				assert.Equal(t, i18n.KeyMalformedFrame, reply["code"])
			},
		},
		{
			name:  "unknown type",
			frame: `{"type":"weather"}`,
			check: func(t *testing.T, reply map[string]interface{}) {
				assert.Equal(t, i18n.KeyUnknownFrameType, reply["code"])
			},
		},
		{
			name:  "not json",
			frame: `hello`,
			check: func(t *testing.T, reply map[string]interface{}) {
				assert.Equal(t, i18n.KeyMalformedFrame, reply["code"])
				assert.Equal(t, "Message could not be read.", reply["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, decodeReply(t, p.Process(ctx, i18n.English, []byte(tt.frame))))
		})
	}
}

func TestProcessorLocalizesErrors(t *testing.T) {
	reply := decodeReply(t, newTestProcessor().Process(context.Background(), i18n.Marathi, []byte(`{"type":"bill","payload":{"method":"units","units":0}}`)))
	assert.Equal(t, "invalid_units", reply["code"])
	assert.Equal(t, i18n.Message(i18n.Marathi, "invalid_units"), reply["error"])
}

func TestServerRoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewManager()
	srv := NewServer(ctx, manager, newTestProcessor(), Timeouts{Ping: time.Second, Read: 5 * time.Second, Write: time.Second}, zap.NewNop())
	httpSrv := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	defer httpSrv.Close()

	url := "ws" + strings.TrimPrefix(httpSrv.URL, "http") + "/?lang=mr"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	frames := []string{
		`{"type":"bill","payload":{"method":"units","units":100}}`,
		`garbage`,
		`{"type":"solar","payload":{"desired_capacity_kw":5}}`,
	}
	for _, f := range frames {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(f)))
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var replies []map[string]interface{}
	for range frames {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)
		replies = append(replies, decodeReply(t, raw))
	}

	assert.Equal(t, "bill", replies[0]["type"])
	assert.Equal(t, i18n.Message(i18n.Marathi, i18n.KeyMalformedFrame), replies[1]["error"])
	solar := replies[2]["result"].(map[string]interface{})
	assert.Equal(t, true, solar["available"])
	assert.Equal(t, 1, manager.Len())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return manager.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServerAnswersEveryPipelinedFrame(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer(ctx, NewManager(), newTestProcessor(), Timeouts{Ping: time.Second, Read: 5 * time.Second, Write: time.Second}, zap.NewNop())
	httpSrv := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	defer httpSrv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(httpSrv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	const frames = 500
	writeErr := make(chan error, 1)
	go func() {
		for i := 0; i < frames; i++ {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"solar","payload":{"desired_capacity_kw":2}}`)); err != nil {
				writeErr <- err
				return
			}
		}
		writeErr <- nil
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))
	for i := 0; i < frames; i++ {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err, "reply %d", i)
		assert.Equal(t, "solar", decodeReply(t, raw)["type"])
	}
	require.NoError(t, <-writeErr)
}
