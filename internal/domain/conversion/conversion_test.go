package conversion

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_StatusFlow(t *testing.T) {
	t.Run("new form starts not converted", func(t *testing.T) {
		form, err := NewForm("Ana", "5511999990000", "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, FormStatusNotConverted, form.Status)
		assert.True(t, form.IsOpen())
	})

	t.Run("requires phone", func(t *testing.T) {
		_, err := NewForm("Ana", "", "")
		assert.Error(t, err)
	})

	t.Run("in contact then converted", func(t *testing.T) {
		form, _ := NewForm("Ana", "5511999990000", "")
		require.NoError(t, form.MarkInContact())
		require.NoError(t, form.MarkConverted())
		assert.Equal(t, FormStatusConverted, form.Status)
		assert.NotNil(t, form.ConvertedAt)
		assert.False(t, form.IsOpen())
	})

	t.Run("converted form cannot be cancelled", func(t *testing.T) {
		form, _ := NewForm("Ana", "5511999990000", "")
		require.NoError(t, form.MarkConverted())
		assert.Error(t, form.Cancel("desistiu"))
	})

	t.Run("cancel requires reason", func(t *testing.T) {
		form, _ := NewForm("Ana", "5511999990000", "")
		assert.Error(t, form.Cancel(""))
		assert.NoError(t, form.Cancel("sem resposta"))
		assert.Equal(t, "sem resposta", form.CancelReason)
	})
}

func TestConversionMessage(t *testing.T) {
	t.Run("records outbound message", func(t *testing.T) {
		msg, err := NewConversionMessage(uuid.New(), MessageTypeWelcome, "wamid.123", "session-1")
		require.NoError(t, err)
		assert.Equal(t, MessageTypeWelcome, msg.Type)
		assert.False(t, msg.HasReply())
	})

	t.Run("requires external id", func(t *testing.T) {
		_, err := NewConversionMessage(uuid.New(), MessageTypeFeedback, "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewConversionMessage(uuid.New(), MessageType("PROMO"), "wamid.1", "")
		assert.Error(t, err)
	})

	t.Run("reply recorded once", func(t *testing.T) {
		msg, _ := NewConversionMessage(uuid.New(), MessageTypeFeedback, "wamid.9", "session-2")
		now := time.Now()
		require.NoError(t, msg.RecordReply("Adorei as flores!", now))
		assert.True(t, msg.HasReply())
		assert.Equal(t, "Adorei as flores!", msg.ReplyText)

		assert.Error(t, msg.RecordReply("de novo", now))
	})
}
