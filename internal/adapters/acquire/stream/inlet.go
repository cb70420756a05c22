// Package stream reads live multi-channel samples from a websocket stream.
//
// The peer first sends a stream info message, then one message per sample:
//
//	{"type":"EEG","name":"headset","channels":8,"rate":250}
//	{"sample":[1.2,0.4,...]}
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
)

const (
	DefaultStreamType       = "EEG"
	DefaultDiscoveryTimeout = 3 * time.Second
	DefaultSampleTimeout    = time.Second
	defaultQueueSize        = 4096
)

var (
	ErrStreamNotFound = errors.New("sample stream not found")
	ErrStreamClosed   = errors.New("sample stream closed")
)

type Info struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Channels int     `json:"channels"`
	Rate     float64 `json:"rate"`
}

type Options struct {
	StreamType       string
	DiscoveryTimeout time.Duration
	SampleTimeout    time.Duration
	QueueSize        int
}

func (o Options) withDefaults() Options {
	if o.StreamType == "" {
		o.StreamType = DefaultStreamType
	}
	if o.DiscoveryTimeout <= 0 {
		o.DiscoveryTimeout = DefaultDiscoveryTimeout
	}
	if o.SampleTimeout <= 0 {
		o.SampleTimeout = DefaultSampleTimeout
	}
	if o.QueueSize <= 0 {
		o.QueueSize = defaultQueueSize
	}
	return o
}

type sampleMessage struct {
	Sample []float64 `json:"sample"`
}

// Inlet is an open stream. Samples are queued by a background reader until
// Close is called.
type Inlet struct {
	conn          *websocket.Conn
	info          Info
	sampleTimeout time.Duration
	samples       chan []float64
	cancel        context.CancelFunc
	done          chan struct{}
	closeOnce     sync.Once

	dropped   atomic.Int64
	malformed atomic.Int64
	pulled    atomic.Int64
}

var (
	_ ports.SampleSource   = (*Inlet)(nil)
	_ ports.PullProgresser = (*Inlet)(nil)
)

// Open dials url and waits for stream info of the requested type. Both steps
// share the discovery timeout. Any failure wraps ErrStreamNotFound.
func Open(ctx context.Context, url string, opts Options) (*Inlet, error) {
	opts = opts.withDefaults()

	dialCtx, cancel := context.WithTimeout(ctx, opts.DiscoveryTimeout)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrStreamNotFound, url, err)
	}

	info, err := readInfo(dialCtx, conn)
	if err != nil {
		_ = conn.CloseNow()
		return nil, fmt.Errorf("%w: %v", ErrStreamNotFound, err)
	}
	if !strings.EqualFold(info.Type, opts.StreamType) {
		_ = conn.Close(websocket.StatusPolicyViolation, "unexpected stream type")
		return nil, fmt.Errorf("%w: stream type %q, want %q", ErrStreamNotFound, info.Type, opts.StreamType)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	in := &Inlet{
		conn:          conn,
		info:          info,
		sampleTimeout: opts.SampleTimeout,
		samples:       make(chan []float64, opts.QueueSize),
		cancel:        runCancel,
		done:          make(chan struct{}),
	}
	go in.readLoop(runCtx)

	return in, nil
}

func readInfo(ctx context.Context, conn *websocket.Conn) (Info, error) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("read stream info: %w", err)
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return Info{}, fmt.Errorf("decode stream info: %w", err)
	}
	if info.Channels <= 0 || info.Rate <= 0 {
		return Info{}, fmt.Errorf("stream info has %d channels at %g Hz", info.Channels, info.Rate)
	}

	return info, nil
}

func (in *Inlet) readLoop(ctx context.Context) {
	defer close(in.done)
	defer close(in.samples)

	for {
		_, data, err := in.conn.Read(ctx)
		if err != nil {
			return
		}

		var msg sampleMessage
		if err := json.Unmarshal(data, &msg); err != nil || len(msg.Sample) != in.info.Channels {
			in.malformed.Add(1)
			continue
		}

		select {
		case in.samples <- msg.Sample:
		default:
			in.dropped.Add(1)
		}
	}
}

func (in *Inlet) Info() Info {
	return in.info
}

// Dropped counts samples discarded because nobody pulled them in time.
func (in *Inlet) Dropped() int64 {
	return in.dropped.Load()
}

func (in *Inlet) Malformed() int64 {
	return in.malformed.Load()
}

// Pulled reports how many samples the running, or last, Acquire has
// collected.
func (in *Inlet) Pulled() int {
	return int(in.pulled.Load())
}

// Acquire pulls up to window samples. Each sample waits at most the sample
// timeout; the first timeout ends the pull with whatever was collected. Once
// the stream has ended and its queue is drained, Acquire returns
// ErrStreamClosed.
func (in *Inlet) Acquire(ctx context.Context, window int) (domain.SampleBuffer, error) {
	buf := domain.SampleBuffer{Rate: in.info.Rate}
	in.pulled.Store(0)

	timer := time.NewTimer(in.sampleTimeout)
	defer timer.Stop()

	for len(buf.Samples) < window {
		timer.Reset(in.sampleTimeout)

		select {
		case sample, ok := <-in.samples:
			if !ok {
				if len(buf.Samples) == 0 {
					return buf, ErrStreamClosed
				}
				return buf, nil
			}
			buf.Samples = append(buf.Samples, sample)
			in.pulled.Store(int64(len(buf.Samples)))
		case <-timer.C:
			return buf, nil
		case <-ctx.Done():
			return buf, ctx.Err()
		}
	}

	return buf, nil
}

// Close stops the reader and releases the connection. It is safe to call more
// than once.
func (in *Inlet) Close() error {
	in.closeOnce.Do(func() {
		in.cancel()
		<-in.done
		_ = in.conn.CloseNow()
	})
	return nil
}
