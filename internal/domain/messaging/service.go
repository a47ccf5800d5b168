package messaging

import (
	"context"
	"fmt"
	"strings"
)

// Broadcaster pushes message events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(topic, event string, payload interface{})
}

type Service struct {
	repo   Repository
	events Broadcaster
}

func NewService(repo Repository, events Broadcaster) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) GetMessage(ctx context.Context, id string) (*Message, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("userId is required")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListUnread(ctx context.Context, userID string) ([]*Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("userId is required")
	}
	return s.repo.ListUnread(ctx, userID)
}

// SendMessage stores a message and notifies the receiver's live session.
func (s *Service) SendMessage(ctx context.Context, in CreateMessage) (*Message, error) {
	if strings.TrimSpace(in.SenderID) == "" {
		return nil, fmt.Errorf("senderId is required")
	}
	if strings.TrimSpace(in.ReceiverID) == "" {
		return nil, fmt.Errorf("receiverId is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("content is required")
	}
	if in.MessageType != "" {
		switch in.MessageType {
		case TypeGeneral, TypeAppointment, TypeMedical:
		default:
			return nil, fmt.Errorf("invalid messageType %q", in.MessageType)
		}
	}

	m, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Broadcast("messages:"+m.ReceiverID, "message.created", m)
	}
	return m, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*Message, error) {
	return s.repo.MarkRead(ctx, id)
}
