package models

// PresenceRecord is the current online/offline state of a user. Records are
// overwritten continuously; an unknown user is reported offline.
type PresenceRecord struct {
	UserID   string `json:"userId"`
	IsOnline bool   `json:"isOnline"`
}
