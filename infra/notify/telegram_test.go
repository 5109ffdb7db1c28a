package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func telegramServer(t *testing.T, fail bool) (*httptest.Server, *[]string) {
	t.Helper()
	var texts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken/sendMessage", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "chan", body["chat_id"])
		texts = append(texts, body["text"])
		if fail {
			http.Error(w, "flood", http.StatusTooManyRequests)
		}
	}))
	return srv, &texts
}

func TestTelegramSendSingleMessage(t *testing.T) {
	srv, texts := telegramServer(t, false)
	defer srv.Close()

	tg := NewTelegram(TelegramConfig{Token: "token", ChatID: "chan", BaseURL: srv.URL}, nil)
	require.NoError(t, tg.Send(context.Background(), "hello"))
	require.Len(t, *texts, 1)
	assert.Equal(t, "hello", (*texts)[0])
}

func TestTelegramSendSplitsOnGroupSeparator(t *testing.T) {
	srv, texts := telegramServer(t, false)
	defer srv.Close()

	blockA := strings.Repeat("a", 2500)
	blockB := strings.Repeat("b", 2500)
	message := blockA + "\n\n\n" + blockB

	tg := NewTelegram(TelegramConfig{Token: "token", ChatID: "chan", BaseURL: srv.URL}, nil)
	require.NoError(t, tg.Send(context.Background(), message))
	require.Len(t, *texts, 2)
	assert.Equal(t, blockA, (*texts)[0])
	assert.Equal(t, blockB, (*texts)[1])
}

func TestTelegramSendFailure(t *testing.T) {
	srv, _ := telegramServer(t, true)
	defer srv.Close()

	tg := NewTelegram(TelegramConfig{Token: "token", ChatID: "chan", BaseURL: srv.URL}, nil)
	require.Error(t, tg.Send(context.Background(), "hello"))
}

func TestTelegramConfigEnabled(t *testing.T) {
	assert.False(t, TelegramConfig{}.Enabled())
	assert.False(t, TelegramConfig{Token: "x"}.Enabled())
	assert.True(t, TelegramConfig{Token: "x", ChatID: "y"}.Enabled())
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, msg string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestMultiStopsOnFirstFailure(t *testing.T) {
	ok := &fakeNotifier{}
	bad := &fakeNotifier{err: assert.AnError}
	after := &fakeNotifier{}

	m := NewMulti(ok, bad, after)
	require.Error(t, m.Send(context.Background(), "msg"))
	assert.Len(t, ok.sent, 1)
	assert.Empty(t, after.sent)
}
