package models

type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"`
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	RecipientID    string `dynamodbav:"recipientId" json:"recipientId"`
	Type           string `dynamodbav:"type" json:"type"`
	Text           string `dynamodbav:"text,omitempty" json:"text,omitempty"`
	AttachmentURL  string `dynamodbav:"attachmentUrl,omitempty" json:"attachmentUrl,omitempty"`
	Status         string `dynamodbav:"status" json:"status"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
	// ClientToken carries the sender-side token used to reconcile an
	// optimistic local entry with the store-assigned message.
	ClientToken string `dynamodbav:"clientToken,omitempty" json:"clientToken,omitempty"`
}

// IsFrom reports whether the message was authored by the given user.
func (m Message) IsFrom(userID string) bool {
	return m.SenderID == userID
}

// MessagesTable is the DynamoDB table name for conversation messages
const MessagesTable = "Messages"
