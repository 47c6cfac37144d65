package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"squadup_server/models"

	"github.com/google/uuid"
)

// timestampLayout is RFC3339 with fixed-width nanoseconds so lexicographic
// order on stored timestamps matches chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ChatService is the per-conversation message timeline: ordered append-only
// log with one-directional sent->read state transitions.
type ChatService struct {
	Conversations *ConversationService
	Messages      MessageStore
	Notifier      Notifier
}

// SendMessageInput is the caller-side shape of an append.
type SendMessageInput struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Type           string `json:"type"`
	Text           string `json:"text,omitempty"`
	AttachmentURL  string `json:"attachmentUrl,omitempty"`
	ClientToken    string `json:"clientToken,omitempty"`
}

// SendMessage appends a message to the conversation. The store assigns the
// message id and a timestamp monotonic relative to prior appends in the same
// conversation, stamps it sent, and refreshes the conversation's last-message
// snapshot. An append failure is returned to the caller; a send never fails
// silently.
func (s *ChatService) SendMessage(ctx context.Context, input SendMessageInput) (*models.Message, error) {
	if err := validateMessageInput(input); err != nil {
		return nil, err
	}

	conv, err := s.Conversations.Get(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}

	recipient := conv.OtherParticipant(input.SenderID)
	if recipient == "" {
		return nil, fmt.Errorf("sender %s is not a participant of conversation %s", input.SenderID, input.ConversationID)
	}

	msg := models.Message{
		ConversationID: conv.ConversationID,
		MessageID:      uuid.NewString(),
		SenderID:       input.SenderID,
		RecipientID:    recipient,
		Type:           input.Type,
		Text:           input.Text,
		AttachmentURL:  input.AttachmentURL,
		Status:         models.MessageStatusSent,
		CreatedAt:      nextTimestamp(conv),
		ClientToken:    input.ClientToken,
	}

	if err := s.Messages.Append(ctx, msg); err != nil {
		return nil, err
	}

	// The snapshot is denormalized state; a failed refresh is reconciled by
	// the next successful send, not surfaced to the sender.
	snapshot := models.LastMessage{Text: snapshotText(msg), SenderID: msg.SenderID, SentAt: msg.CreatedAt}
	if err := s.Conversations.Store.UpdateLastMessage(ctx, conv.PairKey, snapshot); err != nil {
		log.Printf("⚠️ Failed to refresh last-message snapshot for %s: %v", conv.ConversationID, err)
	}

	if s.Notifier != nil {
		s.Notifier.NewMessage(conv.ConversationID, msg)
	}

	return &msg, nil
}

// ListMessages returns the conversation's messages ascending by timestamp.
// The read is finite and restartable; callers re-invoke it for freshness.
func (s *ChatService) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	messages, err := s.Messages.List(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

// MarkRead transitions every sent message authored by the reader's
// counterpart to read. Messages authored by the reader are never touched.
// A conversation with nothing to transition is a no-op, not an error.
func (s *ChatService) MarkRead(ctx context.Context, conversationID, readerID string) error {
	conv, err := s.Conversations.Get(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(readerID) {
		return fmt.Errorf("reader %s is not a participant of conversation %s", readerID, conversationID)
	}

	messages, err := s.Messages.List(ctx, conversationID)
	if err != nil {
		return err
	}

	flipped := 0
	for _, msg := range messages {
		if msg.IsFrom(readerID) || msg.Status != models.MessageStatusSent {
			continue
		}
		if err := s.Messages.UpdateStatus(ctx, conversationID, msg.MessageID, models.MessageStatusRead); err != nil {
			log.Printf("⚠️ Failed to mark message %s as read: %v", msg.MessageID, err)
			continue
		}
		flipped++
	}

	readAt := time.Now().UTC().Format(timestampLayout)
	if err := s.Conversations.Store.UpdateLastReadAt(ctx, conv.PairKey, readerID, readAt); err != nil {
		log.Printf("⚠️ Failed to update lastReadAt for %s in %s: %v", readerID, conversationID, err)
	}

	log.Printf("✅ Marked %d messages as read in %s for %s", flipped, conversationID, readerID)
	return nil
}

// MergeOptimistic reconciles locally pending messages against the
// authoritative timeline. A pending entry whose client token already appears
// in the authoritative list has been assigned its real id and is dropped;
// the rest stay appended at the tail. The result never duplicates a message.
func MergeOptimistic(authoritative, pending []models.Message) []models.Message {
	confirmed := make(map[string]struct{}, len(authoritative))
	for _, msg := range authoritative {
		if msg.ClientToken != "" {
			confirmed[msg.ClientToken] = struct{}{}
		}
	}

	merged := make([]models.Message, 0, len(authoritative)+len(pending))
	merged = append(merged, authoritative...)
	for _, msg := range pending {
		if _, ok := confirmed[msg.ClientToken]; ok && msg.ClientToken != "" {
			continue
		}
		merged = append(merged, msg)
	}
	return merged
}

// nextTimestamp picks a store-assigned timestamp that never runs behind the
// conversation's latest snapshot, keeping per-conversation order monotonic
// even across small clock skews.
func nextTimestamp(conv *models.Conversation) string {
	now := time.Now().UTC()
	if conv.LastMessage != nil {
		if last, err := time.Parse(time.RFC3339Nano, conv.LastMessage.SentAt); err == nil && !now.After(last) {
			now = last.Add(time.Nanosecond)
		}
	}
	return now.Format(timestampLayout)
}

func validateMessageInput(input SendMessageInput) error {
	if input.ConversationID == "" || input.SenderID == "" {
		return errors.New("conversationId and senderId are required")
	}
	switch input.Type {
	case models.MessageTypeText:
		if input.Text == "" {
			return errors.New("text messages require text")
		}
	case models.MessageTypeImage, models.MessageTypeFile:
		if input.AttachmentURL == "" {
			return errors.New("image and file messages require attachmentUrl")
		}
	default:
		return fmt.Errorf("unknown message type %q", input.Type)
	}
	return nil
}

func snapshotText(msg models.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	switch msg.Type {
	case models.MessageTypeImage:
		return "📷 Image"
	case models.MessageTypeFile:
		return "📎 File"
	default:
		return msg.Text
	}
}
