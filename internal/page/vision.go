package page

import (
	"context"
	"errors"
	"sync"

	"github.com/lumenlabs/lumen/internal/feed"
	"github.com/lumenlabs/lumen/internal/gen"
)

const visionFallback = "Every step forward, however small, is already part of something remarkable."

// ErrVisionInFlight is returned when a generation is already running.
var ErrVisionInFlight = errors.New("vision generation already in flight")

// Vision produces the grand-vision statement exactly once. After the first
// resolution, success or failure, the stored statement is replayed and no
// further generation calls are made. A failed generation stores the
// fallback sentence rather than the generic stream error text.
type Vision struct {
	streamer TextStreamer
	titles   func() []string

	mu        sync.Mutex
	done      bool
	inFlight  bool
	statement string
}

func NewVision(streamer TextStreamer, titles func() []string) *Vision {
	return &Vision{streamer: streamer, titles: titles}
}

// Generate streams the vision statement to the surface.
func (v *Vision) Generate(ctx context.Context, target feed.Surface) error {
	v.mu.Lock()
	if v.done {
		statement := v.statement
		v.mu.Unlock()
		replay(target, statement)
		return nil
	}
	if v.inFlight {
		v.mu.Unlock()
		return ErrVisionInFlight
	}
	v.inFlight = true
	v.mu.Unlock()

	prompt := gen.VisionStatement(v.titles())
	statement, err := feed.Run(ctx, func(ctx context.Context) (gen.Stream, error) {
		return v.streamer.StreamText(ctx, prompt)
	}, target, visionFallback)

	v.mu.Lock()
	v.inFlight = false
	v.done = true
	if err != nil {
		v.statement = visionFallback
	} else {
		v.statement = statement
	}
	v.mu.Unlock()

	return err
}

// Done reports whether the statement has been resolved; the page hides the
// trigger control once this is true.
func (v *Vision) Done() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}
