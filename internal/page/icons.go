package page

import (
	"context"
	"log"
	"sync"

	"github.com/lumenlabs/lumen/internal/gen"
)

// FallbackGlyph replaces an icon whose generation failed or returned no
// image payload.
const FallbackGlyph = "✨"

// ImageGenerator dispatches one non-streaming image generation.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (gen.Image, error)
}

// IconState is the resolution state of one placeholder.
type IconState string

const (
	IconPending IconState = "pending"
	IconImage   IconState = "image"
	IconGlyph   IconState = "glyph"
)

// IconView is the externally visible snapshot of one placeholder.
type IconView struct {
	Phase string    `json:"phase"`
	State IconState `json:"state"`
	Glyph string    `json:"glyph,omitempty"`
}

// Icons resolves one generated image per phase placeholder. Each
// placeholder is resolved exactly once, with no retry; a failure resolves
// to the fallback glyph and never blocks the remaining placeholders.
type Icons struct {
	generator ImageGenerator

	mu    sync.RWMutex
	items []*iconEntry
}

type iconEntry struct {
	phase string
	state IconState
	image gen.Image
}

func NewIcons(generator ImageGenerator, phases []string) *Icons {
	ic := &Icons{generator: generator}
	for _, phase := range phases {
		ic.items = append(ic.items, &iconEntry{phase: phase, state: IconPending})
	}
	return ic
}

// ResolveAll generates every pending icon, strictly one request at a time.
// Sequential on purpose: four placeholders do not justify fan-out.
func (ic *Icons) ResolveAll(ctx context.Context) {
	for _, item := range ic.items {
		ic.mu.RLock()
		state := item.state
		ic.mu.RUnlock()
		if state != IconPending {
			continue
		}

		img, err := ic.generator.GenerateImage(ctx, gen.IconImage(item.phase))

		ic.mu.Lock()
		if err != nil {
			log.Printf("Icon generation for phase %q failed, using fallback glyph: %v", item.phase, err)
			item.state = IconGlyph
		} else {
			item.state = IconImage
			item.image = img
		}
		ic.mu.Unlock()
	}
}

// List returns the placeholders in page order.
func (ic *Icons) List() []IconView {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	out := make([]IconView, len(ic.items))
	for i, item := range ic.items {
		out[i] = item.view()
	}
	return out
}

// Get returns one placeholder's snapshot and, when resolved to an image,
// the image payload.
func (ic *Icons) Get(phase string) (IconView, gen.Image, bool) {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	for _, item := range ic.items {
		if item.phase == phase {
			return item.view(), item.image, true
		}
	}
	return IconView{}, gen.Image{}, false
}

func (e *iconEntry) view() IconView {
	v := IconView{Phase: e.phase, State: e.state}
	if e.state == IconGlyph {
		v.Glyph = FallbackGlyph
	}
	return v
}
