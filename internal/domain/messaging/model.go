package messaging

import "time"

// Message types.
const (
	TypeGeneral     = "general"
	TypeAppointment = "appointment"
	TypeMedical     = "medical"
)

// Message is a directed note between two staff users, optionally scoped to
// a patient. Immutable once created except for the read flag, which only
// moves false to true.
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	ReceiverID  string    `json:"receiverId"`
	PatientID   *string   `json:"patientId,omitempty"`
	Subject     *string   `json:"subject,omitempty"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"isRead"`
	MessageType string    `json:"messageType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateMessage is the input for sending a message.
type CreateMessage struct {
	SenderID    string  `json:"senderId"`
	ReceiverID  string  `json:"receiverId"`
	PatientID   *string `json:"patientId"`
	Subject     *string `json:"subject"`
	Content     string  `json:"content"`
	MessageType string  `json:"messageType"`
}
