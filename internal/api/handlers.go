package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumenlabs/lumen/internal/content"
	"github.com/lumenlabs/lumen/internal/page"
)

type APIHandler struct {
	sections *page.Sections
	vision   *page.Vision
	chat     *page.Chat
	icons    *page.Icons
}

func NewAPIHandler(sections *page.Sections, vision *page.Vision, chat *page.Chat, icons *page.Icons) *APIHandler {
	return &APIHandler{
		sections: sections,
		vision:   vision,
		chat:     chat,
		icons:    icons,
	}
}

type PageResponse struct {
	Sections   []content.Section `json:"sections"`
	Icons      []page.IconView   `json:"icons"`
	VisionDone bool              `json:"vision_done"`
}

func (h *APIHandler) PageHandler(w http.ResponseWriter, r *http.Request) {
	resp := PageResponse{
		Sections:   h.sections.List(),
		Icons:      h.icons.List(),
		VisionDone: h.vision.Done(),
	}
	json.NewEncoder(w).Encode(resp)
}

// ExpandSectionHandler streams a section's detail text over SSE. Cached
// sections replay without a generation call. A second expand while the
// first load is in flight is a 409 no-op, so rapid toggling never issues a
// second network call.
func (h *APIHandler) ExpandSectionHandler(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")

	surface, ok := newSSESurface(w)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	err := h.sections.Expand(r.Context(), sectionID, surface)
	switch {
	case errors.Is(err, page.ErrUnknownSection):
		http.Error(w, "Section not found", http.StatusNotFound)
	case errors.Is(err, page.ErrExpandInFlight):
		http.Error(w, "Section is already loading", http.StatusConflict)
	case err != nil:
		// The surface already carried the user-facing error sentence.
		log.Printf("Error expanding section %s: %v", sectionID, err)
	}
}

// VisionHandler streams the vision statement over SSE. After the first
// resolution the stored statement is replayed; the trigger cannot cause a
// second generation call.
func (h *APIHandler) VisionHandler(w http.ResponseWriter, r *http.Request) {
	surface, ok := newSSESurface(w)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	err := h.vision.Generate(r.Context(), surface)
	switch {
	case errors.Is(err, page.ErrVisionInFlight):
		http.Error(w, "Vision generation is already running", http.StatusConflict)
	case err != nil:
		log.Printf("Error generating vision statement: %v", err)
	}
}

func (h *APIHandler) IconsHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.icons.List())
}

// IconImageHandler serves a resolved icon's image bytes. Pending and
// fallback placeholders are served as JSON so the page can render the
// glyph with its own styling.
func (h *APIHandler) IconImageHandler(w http.ResponseWriter, r *http.Request) {
	phase := chi.URLParam(r, "phase")

	view, img, ok := h.icons.Get(phase)
	if !ok {
		http.Error(w, "Icon not found", http.StatusNotFound)
		return
	}

	if view.State == page.IconImage {
		w.Header().Set("Content-Type", img.MIMEType)
		w.Write(img.Data)
		return
	}
	json.NewEncoder(w).Encode(view)
}

type PostChatMessageRequest struct {
	Content string `json:"content"`
}

// PostChatMessageHandler streams the assistant's reply to one chat turn
// over SSE. Empty or whitespace-only input is silently ignored with a 204.
func (h *APIHandler) PostChatMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req PostChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	surface, ok := newSSESurface(w)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	err := h.chat.Send(r.Context(), req.Content, surface)
	switch {
	case errors.Is(err, page.ErrEmptyMessage):
		w.WriteHeader(http.StatusNoContent)
	case err != nil:
		log.Printf("Error handling chat message: %v", err)
	}
}

func (h *APIHandler) ChatMessagesHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.chat.Messages())
}
