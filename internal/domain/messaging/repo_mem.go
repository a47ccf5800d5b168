package messaging

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps messages in a process-local map.
type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[string]*Message
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{messages: make(map[string]*Message)}
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			cp := *m
			result = append(result, &cp)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *MemoryRepository) ListUnread(_ context.Context, userID string) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Message
	for _, m := range r.messages {
		if m.ReceiverID == userID && !m.IsRead {
			cp := *m
			result = append(result, &cp)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func sortNewestFirst(list []*Message) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (r *MemoryRepository) Create(_ context.Context, in CreateMessage) (*Message, error) {
	m := &Message{
		ID:          uuid.NewString(),
		SenderID:    in.SenderID,
		ReceiverID:  in.ReceiverID,
		PatientID:   in.PatientID,
		Subject:     in.Subject,
		Content:     in.Content,
		IsRead:      false,
		MessageType: in.MessageType,
		CreatedAt:   time.Now(),
	}
	if m.MessageType == "" {
		m.MessageType = TypeGeneral
	}

	r.mu.Lock()
	r.messages[m.ID] = m
	r.mu.Unlock()

	cp := *m
	return &cp, nil
}

func (r *MemoryRepository) MarkRead(_ context.Context, id string) (*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, nil
	}
	m.IsRead = true

	cp := *m
	return &cp, nil
}

// Put inserts a message as-is, preserving id and timestamps. Used by fixture
// seeding and tests.
func (r *MemoryRepository) Put(m *Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.messages[m.ID] = &cp
}
