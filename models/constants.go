package models

// ✅ Gender values (GenderAny is only valid as a preference, never as a gender)
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderAny    = "Any"
)

// ✅ Swipe decisions
const (
	DecisionLike    = "like"
	DecisionDislike = "dislike"
)

// ✅ Message Types (text, image, file)
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// ✅ Message Statuses (sent -> read, one-directional)
const (
	MessageStatusSent = "sent"
	MessageStatusRead = "read"
)
