package serve

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerSubscribePublish(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	require.Eventually(t, func() bool {
		return b.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	b.Publish(Event{Type: "reload", Data: map[string]string{"file": "SoilVoc.ttl"}})

	select {
	case msg := <-ch:
		s := string(msg)
		assert.Contains(t, s, "event: reload\n")
		assert.Contains(t, s, `"file":"SoilVoc.ttl"`)
		assert.True(t, strings.HasSuffix(s, "\n\n"))
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestBrokerUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	id, ch := b.Subscribe()
	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	b.Unsubscribe(id)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
	assert.Equal(t, 0, b.ClientCount())
}

func TestBrokerCloseIdempotent(t *testing.T) {
	b := NewBroker()
	_, ch := b.Subscribe()
	require.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	b.Close()
	b.Close()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.ClientCount())

	// Publishing after close must not panic or block.
	b.Publish(Event{Type: "reload"})
}

func TestInjectReloadScript(t *testing.T) {
	t.Run("before closing body tag", func(t *testing.T) {
		out := injectReloadScript("<html><body><p>hi</p></body></html>")
		assert.Contains(t, out, "EventSource")
		assert.Less(t, strings.Index(out, "EventSource"), strings.Index(out, "</body>"))
	})

	t.Run("appended when no body tag", func(t *testing.T) {
		out := injectReloadScript("plain")
		assert.True(t, strings.HasPrefix(out, "plain"))
		assert.Contains(t, out, "EventSource")
	})
}

func TestServerRouterServesEvents(t *testing.T) {
	s := NewServer("SoilVoc.ttl", ":0", 0, nil)
	defer s.broker.Close()
	s.page = []byte("<html><body>ok</body></html>")

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "ok")
}
