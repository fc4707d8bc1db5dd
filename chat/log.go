package chat

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fixify/identity"
)

var (
	// ErrUnauthenticated signals a send attempted with no acting user.
	ErrUnauthenticated = errors.New("chat: authentication required")
	// ErrEmptyContent signals a send with no message text.
	ErrEmptyContent = errors.New("chat: message content is required")
	// ErrMissingReceiver signals a send without a receiver.
	ErrMissingReceiver = errors.New("chat: receiver is required")
)

// Log holds the flat message list and answers per-job conversation queries.
// Conversations are derived on demand: messages are grouped by job and
// sorted by timestamp ascending, with insertion order breaking ties.
type Log struct {
	mu    sync.Mutex
	repo  Repository
	now   func() time.Time
	idGen func() string
}

// NewLog creates a message log over the given repository.
func NewLog(repo Repository) *Log {
	return &Log{
		repo:  repo,
		now:   time.Now,
		idGen: func() string { return "msg-" + uuid.NewString() },
	}
}

// Send appends an unread message from the acting user to the job's
// conversation.
func (l *Log) Send(ctx context.Context, actor identity.Actor, jobID, receiverID, content string) (Message, error) {
	if actor.ID == "" {
		return Message{}, ErrUnauthenticated
	}
	if receiverID == "" {
		return Message{}, ErrMissingReceiver
	}
	if content == "" {
		return Message{}, ErrEmptyContent
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		ID:         l.idGen(),
		JobID:      jobID,
		SenderID:   actor.ID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  l.now().UTC(),
		Read:       false,
	}

	if err := l.repo.SaveAll(ctx, append(msgs, msg)); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// JobMessages returns the conversation for a job ordered by timestamp
// ascending. An unknown job yields an empty conversation.
func (l *Log) JobMessages(ctx context.Context, jobID string) ([]Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.JobID == jobID {
			out = append(out, m)
		}
	}
	sortByTimestamp(out)
	return out, nil
}

// Conversations returns all messages grouped by job, each conversation
// ordered by timestamp ascending.
func (l *Log) Conversations(ctx context.Context) (map[string][]Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	chats := make(map[string][]Message)
	for _, m := range msgs {
		chats[m.JobID] = append(chats[m.JobID], m)
	}
	for jobID := range chats {
		sortByTimestamp(chats[jobID])
	}
	return chats, nil
}

// MarkRead flips the read flag of the given messages. Already-read and
// unknown ids are ignored, so the call is idempotent.
func (l *Log) MarkRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	changed := false
	for i := range msgs {
		if wanted[msgs[i].ID] && !msgs[i].Read {
			msgs[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.repo.SaveAll(ctx, msgs)
}

// UnreadCount returns the number of unread messages in the job's
// conversation addressed to the actor.
func (l *Log) UnreadCount(ctx context.Context, actor identity.Actor, jobID string) (int, error) {
	if actor.ID == "" {
		return 0, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range msgs {
		if m.JobID == jobID && m.ReceiverID == actor.ID && !m.Read {
			count++
		}
	}
	return count, nil
}

// EnsureSeed writes the starter conversation if the slot has never been
// populated.
func (l *Log) EnsureSeed(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs, err := l.repo.List(ctx)
	if err != nil {
		return err
	}
	if msgs != nil {
		return nil
	}
	return l.repo.SaveAll(ctx, seedMessages(l.now().UTC()))
}

func sortByTimestamp(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
}
