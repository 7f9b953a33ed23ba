package notification

import (
	"fmt"
	"time"

	"rentdesk/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// SessionUserKey is the melody session key holding the connected user id.
const SessionUserKey = "userID"

// Service broadcasts to every connected session.
type Service interface {
	SendMessage(message string) error
}

// Notifier delivers a message to the sessions of one user.
type Notifier interface {
	NotifyUser(userID uint, message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

func (s *MelodyService) NotifyUser(userID uint, message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.BroadcastFilter([]byte(message), func(session *melody.Session) bool {
		id, ok := session.Get(SessionUserKey)
		if !ok {
			return false
		}
		uid, ok := id.(uint)
		return ok && uid == userID
	})
}

// Nop drops every message.
type Nop struct{}

func (Nop) SendMessage(string) error       { return nil }
func (Nop) NotifyUser(uint, string) error { return nil }

// Message is the JSON frame pushed to tenant sockets.
type Message struct {
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	PaymentID uint      `json:"paymentId,omitempty"`
	RoomID    uint      `json:"roomId,omitempty"`
	Month     string    `json:"month,omitempty"`
	Status    string    `json:"status,omitempty"`
	Paid      int64     `json:"paidAmount,omitempty"`
	Rent      int64     `json:"rentAmount,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}

type MessageBuilder struct {
	msg Message
}

func NewMessageBuilder(kind string) *MessageBuilder {
	return &MessageBuilder{msg: Message{Type: kind}}
}

// ForPayment fills the payment fields and a default text.
func (b *MessageBuilder) ForPayment(p *models.Payment) *MessageBuilder {
	b.msg.PaymentID = p.ID
	b.msg.RoomID = p.RoomID
	b.msg.Month = p.Month
	b.msg.Status = p.Status
	b.msg.Paid = p.PaidAmount
	b.msg.Rent = p.RentAmount
	if b.msg.Text == "" {
		b.msg.Text = fmt.Sprintf("Payment for %s recorded: %d of %d (%s)", p.Month, p.PaidAmount, p.RentAmount, p.Status)
	}
	return b
}

func (b *MessageBuilder) WithRoom(roomID uint) *MessageBuilder {
	b.msg.RoomID = roomID
	return b
}

func (b *MessageBuilder) WithMonth(month string) *MessageBuilder {
	b.msg.Month = month
	return b
}

func (b *MessageBuilder) WithText(text string) *MessageBuilder {
	b.msg.Text = text
	return b
}

func (b *MessageBuilder) Build() string {
	b.msg.SentAt = time.Now().UTC()
	data, err := json.Marshal(b.msg)
	if err != nil {
		return b.msg.Text
	}
	return string(data)
}
