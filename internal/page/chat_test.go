package page

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lumenlabs/lumen/internal/gen"
)

type fakeReplier struct {
	mu        sync.Mutex
	calls     int
	sent      []string
	fragments []string
	streamErr error
}

func (f *fakeReplier) StreamReply(_ context.Context, message string) (gen.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.sent = append(f.sent, message)
	return &fakeStream{fragments: f.fragments, err: f.streamErr}, nil
}

func newTestChat(replier *fakeReplier) (*Chat, *int) {
	starts := 0
	chat := NewChat(func() gen.Replier {
		starts++
		return replier
	})
	return chat, &starts
}

func TestSendRejectsEmptyInput(t *testing.T) {
	chat, starts := newTestChat(&fakeReplier{})

	for _, input := range []string{"", "   ", "\n\t "} {
		err := chat.Send(context.Background(), input, &memSurface{})
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Send(%q) returned %v, want ErrEmptyMessage", input, err)
		}
	}

	if got := len(chat.Messages()); got != 0 {
		t.Errorf("transcript has %d messages after empty submissions, want 0", got)
	}
	if *starts != 0 {
		t.Errorf("session created %d times by empty submissions, want 0", *starts)
	}
}

func TestSendHelloProducesOneTurn(t *testing.T) {
	replier := &fakeReplier{fragments: []string{"Hi ", "there, ", "traveler!"}}
	chat, _ := newTestChat(replier)

	surface := &memSurface{}
	if err := chat.Send(context.Background(), "Hello", surface); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(msgs))
	}
	if msgs[0].Sender != "user" || msgs[0].Text != "Hello" {
		t.Errorf("first message = %s %q, want user \"Hello\"", msgs[0].Sender, msgs[0].Text)
	}
	if msgs[1].Sender != "model" || msgs[1].Text != "Hi there, traveler!" {
		t.Errorf("second message = %s %q, want model reply equal to fragment concatenation",
			msgs[1].Sender, msgs[1].Text)
	}
	if msgs[1].Streaming {
		t.Error("assistant message still marked streaming after completion")
	}
	if surface.content != "Hi there, traveler!" {
		t.Errorf("surface content = %q, want streamed reply", surface.content)
	}
}

func TestSessionCreatedAtMostOnce(t *testing.T) {
	replier := &fakeReplier{fragments: []string{"ok"}}
	chat, starts := newTestChat(replier)

	for _, msg := range []string{"first", "second", "third"} {
		if err := chat.Send(context.Background(), msg, &memSurface{}); err != nil {
			t.Fatalf("Send(%q) returned error: %v", msg, err)
		}
	}

	if *starts != 1 {
		t.Errorf("session created %d times, want exactly 1", *starts)
	}
	if replier.calls != 3 {
		t.Errorf("session received %d turns, want 3", replier.calls)
	}
}

func TestSendFailureReplacesReplyWithApology(t *testing.T) {
	replier := &fakeReplier{streamErr: errors.New("connection dropped")}
	chat, _ := newTestChat(replier)

	surface := &memSurface{}
	if err := chat.Send(context.Background(), "Hello?", surface); err == nil {
		t.Fatal("Send returned nil error for failed stream")
	}

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript has %d messages, want 2", len(msgs))
	}
	if msgs[1].Text != chatApology {
		t.Errorf("assistant text = %q, want apology sentence", msgs[1].Text)
	}
	if msgs[1].Streaming {
		t.Error("streaming mark not cleared after failure")
	}
	if surface.content != chatApology {
		t.Errorf("surface content = %q, want apology sentence", surface.content)
	}
}

func TestSendTrimsUserText(t *testing.T) {
	replier := &fakeReplier{fragments: []string{"ok"}}
	chat, _ := newTestChat(replier)

	if err := chat.Send(context.Background(), "  Hello  \n", &memSurface{}); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if got := chat.Messages()[0].Text; got != "Hello" {
		t.Errorf("stored user text = %q, want trimmed %q", got, "Hello")
	}
	if replier.sent[0] != "Hello" {
		t.Errorf("session received %q, want trimmed text", replier.sent[0])
	}
}
