package services

import "squadup_server/models"

// MessageGroup is a contiguous run of messages from one sender.
type MessageGroup struct {
	SenderID string           `json:"senderId"`
	Messages []models.Message `json:"messages"`
}

// GroupBySender folds an ordered message list into contiguous same-sender
// runs. Pure: flattening the groups back together reproduces the input.
func GroupBySender(messages []models.Message) []MessageGroup {
	var groups []MessageGroup
	for _, msg := range messages {
		if len(groups) == 0 || groups[len(groups)-1].SenderID != msg.SenderID {
			groups = append(groups, MessageGroup{SenderID: msg.SenderID})
		}
		last := &groups[len(groups)-1]
		last.Messages = append(last.Messages, msg)
	}
	return groups
}
