package chat

import "time"

// Message is one entry in a job's conversation. Messages are never deleted;
// the only mutation after creation is flipping Read from false to true.
type Message struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}
