package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/websocket"
	"github.com/stpnv0/rahi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub(newTestLogger(t))
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(r.Context(), r.URL.Query().Get("user"), conn)
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHub_PushReachesEverySession(t *testing.T) {
	hub, url := startHub(t)

	first := dial(t, url+"?user=u1")
	defer first.Close()
	second := dial(t, url+"?user=u1")
	defer second.Close()
	other := dial(t, url+"?user=u2")
	defer other.Close()

	require.Eventually(t, func() bool { return hub.Sessions("u1") == 2 && hub.Sessions("u2") == 1 },
		time.Second, 10*time.Millisecond)

	n := &domain.Notification{ID: "n1", UserID: "u1", Type: domain.NotificationBookingUpdate, Title: "Booking accepted", Message: "On the way"}
	hub.Push(context.Background(), &domain.User{ID: "u1"}, n)

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type string              `json:"type"`
			Data domain.Notification `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "notification", msg.Type)
		assert.Equal(t, "n1", msg.Data.ID)
		assert.Equal(t, "Booking accepted", msg.Data.Title)
	}

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, url+"?user=u1")
	require.Eventually(t, func() bool { return hub.Sessions("u1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	require.Eventually(t, func() bool { return hub.Sessions("u1") == 0 }, time.Second, 10*time.Millisecond)

	// Push to a user without sessions is a no-op.
	hub.Push(context.Background(), &domain.User{ID: "u1"}, &domain.Notification{ID: "n1"})
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	n.Push(context.Background(), &domain.User{ID: "u1", TelegramChatID: &chatID},
		&domain.Notification{Title: "Job completed", Message: "Thanks"})
}

func TestFormatMessage_EscapesMarkdown(t *testing.T) {
	got := formatMessage(&domain.Notification{Title: "Payment_received", Message: "₹450.00 added"})
	assert.Equal(t, "*Payment\\_received*\n\n₹450.00 added", got)
}

type fakeSender struct {
	errs []error
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if len(f.errs) == 0 {
		return tgbotapi.Message{}, nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return tgbotapi.Message{}, err
}

func TestTelegramNotifier_Push(t *testing.T) {
	chatID := int64(42)
	linked := &domain.User{ID: "u1", TelegramChatID: &chatID}
	note := &domain.Notification{ID: "n1", Title: "Job completed", Message: "Thanks"}

	tests := []struct {
		name  string
		user  *domain.User
		errs  []error
		sends int
	}{
		{"delivered", linked, nil, 1},
		{"no chat linked", &domain.User{ID: "u2"}, nil, 0},
		{"retry after short flood wait", linked, []error{
			&tgbotapi.Error{Code: 429, ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 1}},
		}, 2},
		{"long flood wait is not retried", linked, []error{
			&tgbotapi.Error{Code: 429, ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: 60}},
		}, 1},
		{"plain failure is not retried", linked, []error{errors.New("bad gateway")}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &fakeSender{errs: tt.errs}
			n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

			n.Push(context.Background(), tt.user, note)

			require.Len(t, bot.sent, tt.sends)
			if tt.sends > 0 {
				msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, chatID, msg.ChatID)
				assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
			}
		})
	}
}

func TestTelegramNotifier_CancelledContextSkipsSend(t *testing.T) {
	chatID := int64(42)
	bot := &fakeSender{}
	n := &TelegramNotifier{bot: bot, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Push(ctx, &domain.User{ID: "u1", TelegramChatID: &chatID}, &domain.Notification{ID: "n1"})

	assert.Empty(t, bot.sent)
}
