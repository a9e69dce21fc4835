package page

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlabs/lumen/internal/feed"
	"github.com/lumenlabs/lumen/internal/gen"
)

const chatApology = "I'm sorry, I lost my train of thought for a moment. Could you ask me that again?"

// ErrEmptyMessage is returned for empty or whitespace-only input. It is a
// validation outcome, not a failure; callers ignore the submission.
var ErrEmptyMessage = errors.New("empty chat message")

// Message is one rendered turn of the transcript.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "user" or "model"
	Text      string    `json:"text"`
	Streaming bool      `json:"streaming"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat drives the assistant widget. The underlying session is created
// lazily on the first message and lives for the rest of the process; the
// session itself holds the turn history, the controller only keeps the
// transcript rendered to visitors.
type Chat struct {
	startChat func() gen.Replier

	mu       sync.Mutex
	session  gen.Replier
	messages []*Message
}

func NewChat(startChat func() gen.Replier) *Chat {
	return &Chat{startChat: startChat}
}

// Send appends the user's turn and streams the assistant reply into a new
// transcript message via the surface. Empty input returns ErrEmptyMessage
// and leaves the transcript untouched. On stream failure the assistant
// message is replaced with a fixed apology.
func (c *Chat) Send(ctx context.Context, text string, target feed.Surface) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	c.messages = append(c.messages, &Message{
		ID:        uuid.NewString(),
		Sender:    "user",
		Text:      trimmed,
		Timestamp: time.Now(),
	})
	reply := &Message{
		ID:        uuid.NewString(),
		Sender:    "model",
		Streaming: true,
		Timestamp: time.Now(),
	}
	c.messages = append(c.messages, reply)

	if c.session == nil {
		c.session = c.startChat()
	}
	session := c.session
	c.mu.Unlock()

	replyText, err := feed.Run(ctx, func(ctx context.Context) (gen.Stream, error) {
		return session.StreamReply(ctx, trimmed)
	}, target, chatApology)

	c.mu.Lock()
	reply.Streaming = false
	if err != nil {
		reply.Text = chatApology
	} else {
		reply.Text = replyText
	}
	c.mu.Unlock()

	return err
}

// Messages returns a snapshot of the transcript in order.
func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = *m
	}
	return out
}
