package chat

import "time"

// seedMessages is the starter conversation written to an empty messages
// slot, matching the seeded assigned job.
func seedMessages(now time.Time) []Message {
	return []Message{
		{
			ID:         "msg-1",
			JobID:      "job-3",
			SenderID:   "user-3",
			ReceiverID: "worker-1",
			Content:    "Hi, are you available to start the bookshelf project this week?",
			Timestamp:  now.Add(-24 * time.Hour),
			Read:       true,
		},
		{
			ID:         "msg-2",
			JobID:      "job-3",
			SenderID:   "worker-1",
			ReceiverID: "user-3",
			Content:    "Yes, I can start on Thursday. Would that work for you?",
			Timestamp:  now.Add(-23 * time.Hour),
			Read:       true,
		},
		{
			ID:         "msg-3",
			JobID:      "job-3",
			SenderID:   "user-3",
			ReceiverID: "worker-1",
			Content:    "Thursday works great. What time should I expect you?",
			Timestamp:  now.Add(-22 * time.Hour),
			Read:       false,
		},
	}
}
