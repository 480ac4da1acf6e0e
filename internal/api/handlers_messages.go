// ABOUTME: Handlers for posting and fetching direct messages
// ABOUTME: The message list response uses the capital-M Messages key the frontend binds to

package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hatchboard/hatchboard/internal/store"
)

// postMessageRequest is the JSON request body for POST /messagepost.
type postMessageRequest struct {
	Message     string `json:"message"`
	SenderID    string `json:"senderId"`
	ReceiverID  string `json:"receiverId"`
	SenderEmail string `json:"senderEmail"`
	ProjectID   string `json:"projectId"`
	SenderName  string `json:"senderName"`
}

// getMessagesRequest is the JSON request body for POST /getmessages.
type getMessagesRequest struct {
	UserID string `json:"userId"`
}

// messageResponse is the JSON shape for a message record.
type messageResponse struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	SenderID    string `json:"senderId"`
	ReceiverID  string `json:"receiverId"`
	SenderEmail string `json:"senderEmail"`
	ProjectID   string `json:"projectId"`
	SenderName  string `json:"senderName"`
	CreatedAt   string `json:"created_at"`
}

// getMessagesResponse is the JSON response for POST /getmessages.
type getMessagesResponse struct {
	Messages []messageResponse `json:"Messages"`
}

func messageResponseFrom(m *store.Message) messageResponse {
	return messageResponse{
		ID:          m.ID,
		Message:     m.Message,
		SenderID:    m.SenderID,
		ReceiverID:  m.ReceiverID,
		SenderEmail: m.SenderEmail,
		ProjectID:   m.ProjectID,
		SenderName:  m.SenderName,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// handlePostMessage handles POST /messagepost for authenticated users.
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg := &store.Message{
		ID:          uuid.New().String(),
		Message:     req.Message,
		SenderID:    req.SenderID,
		ReceiverID:  req.ReceiverID,
		SenderEmail: req.SenderEmail,
		ProjectID:   req.ProjectID,
		SenderName:  req.SenderName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateMessage(r.Context(), msg); err != nil {
		s.logger.Error("creating message", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	respondMessage(w, http.StatusOK, "Message sent successfully")
}

// handleGetMessages handles POST /getmessages: every message the given
// user sent or received, oldest first.
func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	var req getMessagesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	messages, err := s.store.ListMessagesForUser(r.Context(), req.UserID)
	if err != nil {
		s.logger.Error("listing messages", "error", err, "user_id", req.UserID)
		respondError(w, http.StatusInternalServerError, "failed to fetch messages")
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageResponseFrom(m))
	}
	respondJSON(w, http.StatusOK, getMessagesResponse{Messages: out})
}
