// Package gen wraps the Gemini SDK behind the small set of generation
// operations the page needs: one-shot streamed text, a persistent chat
// session, and square icon imagery.
package gen

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lumenlabs/lumen/internal/config"
)

const (
	defaultTextModelName  = "gemini-2.0-flash"
	defaultChatModelName  = "gemini-2.0-flash"
	defaultImageModelName = "gemini-2.0-flash-preview-image-generation"

	chatSystemInstruction = "You are Sol, an uplifting guide accompanying a visitor through their journey page. " +
		"Be warm, encouraging and concise. Keep answers to a few sentences, " +
		"stay positive and forward-looking, and gently steer the conversation back to the visitor's own journey."
)

// ErrNoImage is returned when an image request succeeds but the response
// carries no inline image payload.
var ErrNoImage = errors.New("response contained no image payload")

// Image is one generated inline image payload.
type Image struct {
	MIMEType string
	Data     []byte
}

// Replier is one ongoing conversation; each call streams the reply to one
// user turn. The server-held session accumulates the turn history.
type Replier interface {
	StreamReply(ctx context.Context, message string) (Stream, error)
}

type Service struct {
	client *genai.Client
}

func NewService() *Service {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create GenAI client: %v", err)
	}

	return &Service{
		client: client,
	}
}

func (s *Service) Close() {
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			log.Printf("Error closing GenAI client: %v", err)
		} else {
			log.Println("GenAI client closed.")
		}
	}
}

// StreamText dispatches a one-shot streamed completion. Connection errors
// surface on the first Next call of the returned stream.
func (s *Service) StreamText(ctx context.Context, prompt string) (Stream, error) {
	model := s.client.GenerativeModel(defaultTextModelName)
	it := model.GenerateContentStream(ctx, genai.Text(prompt))
	return &respStream{it: it}, nil
}

// StartChat opens a fresh conversation under the guide persona.
func (s *Service) StartChat() *Chat {
	model := s.client.GenerativeModel(defaultChatModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(chatSystemInstruction)},
	}
	return &Chat{session: model.StartChat()}
}

// Chat implements Replier on top of a genai chat session.
type Chat struct {
	session *genai.ChatSession
}

func (c *Chat) StreamReply(ctx context.Context, message string) (Stream, error) {
	it := c.session.SendMessageStream(ctx, genai.Text(message))
	return &respStream{it: it}, nil
}

// GenerateImage requests one image and extracts the first inline payload
// from the response parts.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	model := s.client.GenerativeModel(defaultImageModelName)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Image{}, fmt.Errorf("gemini image request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Image{}, ErrNoImage
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return Image{MIMEType: blob.MIMEType, Data: blob.Data}, nil
		}
	}
	return Image{}, ErrNoImage
}
