package page

import (
	"context"
	"io"
	"sync"

	"github.com/lumenlabs/lumen/internal/gen"
)

// fakeStream yields its fragments, then err if set, otherwise io.EOF.
type fakeStream struct {
	fragments []string
	err       error
	i         int
}

func (f *fakeStream) Next() (string, error) {
	if f.i < len(f.fragments) {
		frag := f.fragments[f.i]
		f.i++
		return frag, nil
	}
	if f.err != nil {
		return "", f.err
	}
	return "", io.EOF
}

// blockingStream signals when its consumer first calls Next, then holds
// until released. Used to pin a load in flight.
type blockingStream struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingStream) Next() (string, error) {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return "", io.EOF
}

type fakeStreamer struct {
	mu        sync.Mutex
	calls     int
	prompts   []string
	openErr   error
	streamErr error
	fragments []string
	stream    gen.Stream // optional override
}

func (f *fakeStreamer) StreamText(_ context.Context, prompt string) (gen.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.stream != nil {
		return f.stream, nil
	}
	return &fakeStream{fragments: f.fragments, err: f.streamErr}, nil
}

func (f *fakeStreamer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memSurface records the capability calls a feeder makes.
type memSurface struct {
	content   string
	streaming bool
	begins    int
	ends      int
	fails     int
}

func (m *memSurface) Begin() {
	m.content = ""
	m.streaming = true
	m.begins++
}

func (m *memSurface) Append(fragment string) {
	m.content += fragment
}

func (m *memSurface) End() {
	m.streaming = false
	m.ends++
}

func (m *memSurface) Fail(message string) {
	m.content = message
	m.streaming = false
	m.fails++
}
