package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type peer struct {
	info    Info
	samples [][]float64
	raw     []string
	hangUp  bool
}

func (p peer) serve(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		write := func(v any) bool {
			data, err := json.Marshal(v)
			if err != nil {
				return false
			}
			return conn.Write(ctx, websocket.MessageText, data) == nil
		}

		if !write(p.info) {
			return
		}
		for _, msg := range p.raw {
			if conn.Write(ctx, websocket.MessageText, []byte(msg)) != nil {
				return
			}
		}
		for _, s := range p.samples {
			if !write(sampleMessage{Sample: s}) {
				return
			}
		}

		if p.hangUp {
			_ = conn.Close(websocket.StatusNormalClosure, "done")
			return
		}
		_, _, _ = conn.Read(ctx)
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func eegInfo(channels int) Info {
	return Info{Type: "EEG", Name: "test-headset", Channels: channels, Rate: 250}
}

func ramp(n, channels int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, channels)
		for c := range row {
			row[c] = float64(i*channels + c)
		}
		out[i] = row
	}
	return out
}

func openInlet(t *testing.T, url string, opts Options) *Inlet {
	t.Helper()

	in, err := Open(context.Background(), url, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })
	return in
}

func TestAcquireFullWindow(t *testing.T) {
	url := peer{info: eegInfo(2), samples: ramp(300, 2)}.serve(t)
	in := openInlet(t, url, Options{})

	assert.Equal(t, eegInfo(2), in.Info())

	buf, err := in.Acquire(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, buf.Rate)
	require.Equal(t, 250, buf.Len())
	assert.Equal(t, []float64{0, 1}, buf.Samples[0])
	assert.Equal(t, []float64{498, 499}, buf.Samples[249])
	assert.Equal(t, 250, in.Pulled())
}

func TestAcquireStopsAtFirstTimeout(t *testing.T) {
	url := peer{info: eegInfo(1), samples: ramp(10, 1)}.serve(t)
	in := openInlet(t, url, Options{SampleTimeout: 50 * time.Millisecond})

	start := time.Now()
	buf, err := in.Acquire(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, 10, buf.Len())
	assert.Equal(t, 10, in.Pulled())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAcquireAfterPeerHangsUp(t *testing.T) {
	url := peer{info: eegInfo(1), samples: ramp(3, 1), hangUp: true}.serve(t)
	in := openInlet(t, url, Options{SampleTimeout: 2 * time.Second})

	buf, err := in.Acquire(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Len())

	_, err = in.Acquire(context.Background(), 250)
	assert.ErrorIs(t, err, ErrStreamClosed)
	assert.Zero(t, in.Pulled())
}

func TestAcquireSkipsMalformedSamples(t *testing.T) {
	url := peer{
		info:    eegInfo(2),
		raw:     []string{`not json`, `{"sample":[1]}`},
		samples: ramp(4, 2),
	}.serve(t)
	in := openInlet(t, url, Options{SampleTimeout: 200 * time.Millisecond})

	buf, err := in.Acquire(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, int64(2), in.Malformed())
}

func TestAcquireHonorsContext(t *testing.T) {
	url := peer{info: eegInfo(1)}.serve(t)
	in := openInlet(t, url, Options{SampleTimeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Acquire(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenRejectsOtherStreamTypes(t *testing.T) {
	url := peer{info: Info{Type: "Markers", Channels: 1, Rate: 250}}.serve(t)

	_, err := Open(context.Background(), url, Options{})
	assert.ErrorIs(t, err, ErrStreamNotFound)
	assert.ErrorContains(t, err, `"Markers"`)
}

func TestOpenRejectsEmptyInfo(t *testing.T) {
	url := peer{info: Info{Type: "EEG"}}.serve(t)

	_, err := Open(context.Background(), url, Options{})
	assert.ErrorIs(t, err, ErrStreamNotFound)
}

func TestOpenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	_, err := Open(context.Background(), url, Options{DiscoveryTimeout: 500 * time.Millisecond})
	assert.ErrorIs(t, err, ErrStreamNotFound)
}

func TestCloseIsIdempotent(t *testing.T) {
	url := peer{info: eegInfo(1)}.serve(t)
	in, err := Open(context.Background(), url, Options{})
	require.NoError(t, err)

	require.NoError(t, in.Close())
	require.NoError(t, in.Close())

	_, err = in.Acquire(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStreamClosed)
}
