package notification

import (
	"testing"

	"rentdesk/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilderForPayment(t *testing.T) {
	raw := NewMessageBuilder("payment_recorded").ForPayment(&models.Payment{
		ID: 9, RoomID: 3, Month: "2024-05", Status: "PARTIAL", PaidAmount: 1000, RentAmount: 4000,
	}).Build()

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Equal(t, "payment_recorded", msg.Type)
	assert.Equal(t, uint(9), msg.PaymentID)
	assert.Equal(t, uint(3), msg.RoomID)
	assert.Equal(t, "Payment for 2024-05 recorded: 1000 of 4000 (PARTIAL)", msg.Text)
	assert.False(t, msg.SentAt.IsZero())
}

func TestMessageBuilderKeepsExplicitText(t *testing.T) {
	raw := NewMessageBuilder("rent_due").WithText("pay up").WithRoom(2).WithMonth("2024-06").Build()

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	assert.Equal(t, "pay up", msg.Text)
	assert.Equal(t, "2024-06", msg.Month)
	assert.Zero(t, msg.PaymentID)
}

func TestMelodyServiceWithoutInstance(t *testing.T) {
	s := NewMelodyService(nil)
	assert.Error(t, s.SendMessage("x"))
	assert.Error(t, s.NotifyUser(1, "x"))

	live := NewMelodyService(melody.New())
	assert.NoError(t, live.NotifyUser(1, "nobody listening"))

	var n Notifier = Nop{}
	assert.NoError(t, n.NotifyUser(1, "x"))
}
