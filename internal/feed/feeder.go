// Package feed pumps a fragment stream into a text surface. The same pump
// drives section expansions, the vision statement and chat replies; only
// the surface and the error sentence differ per caller.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lumenlabs/lumen/internal/gen"
)

// Surface is the capability set the feeder needs over one text target.
// Implementations own the rendering (an SSE connection, a test buffer);
// the feeder only decides what happens when.
type Surface interface {
	// Begin clears the surface and marks it streaming.
	Begin()
	// Append adds one fragment after the current content.
	Append(fragment string)
	// End clears the streaming mark, leaving the content in place.
	End()
	// Fail replaces the content wholesale with a user-facing message and
	// clears the streaming mark.
	Fail(message string)
}

// OpenFunc dispatches the generation call and hands back its stream.
type OpenFunc func(ctx context.Context) (gen.Stream, error)

// Run drives one stream to completion against the surface and returns the
// concatenated text. Fragments are appended strictly in arrival order. On
// any failure, during open or mid-stream, the surface is failed with
// errText and the underlying error is returned. A started stream is never
// aborted early; it runs to its own completion or failure.
func Run(ctx context.Context, open OpenFunc, target Surface, errText string) (string, error) {
	target.Begin()

	stream, err := open(ctx)
	if err != nil {
		target.Fail(errText)
		return "", fmt.Errorf("opening stream: %w", err)
	}

	var full strings.Builder
	for {
		fragment, err := stream.Next()
		if errors.Is(err, io.EOF) {
			target.End()
			return full.String(), nil
		}
		if err != nil {
			target.Fail(errText)
			return "", fmt.Errorf("reading stream: %w", err)
		}
		if fragment == "" {
			continue
		}
		full.WriteString(fragment)
		target.Append(fragment)
	}
}
