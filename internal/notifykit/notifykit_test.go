package notifykit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForChannel_FamiliesAreConsistent(t *testing.T) {
	for _, ch := range []Channel{ChannelEmail, ChannelPush} {
		t.Run(string(ch), func(t *testing.T) {
			f, err := ForChannel(ch)
			require.NoError(t, err)
			assert.Equal(t, ch, f.Channel())

			tmpl := f.CreateTemplate("Welcome to our platform!")
			n := f.CreateNotification("user", "admin@example.com", tmpl)
			s := f.CreateSender(n)

			assert.Equal(t, ch, tmpl.Channel())
			assert.Equal(t, ch, n.Channel())
			assert.Equal(t, ch, s.Channel())
			assert.Same(t, n, s.Notification())
			assert.Equal(t, "Welcome to our platform!", n.Template().Apply())
		})
	}
}

func TestEmailFamily_Send(t *testing.T) {
	f := EmailFactory{}
	n := f.CreateNotification("user@example.com", "admin@example.com", f.CreateTemplate("Welcome!"))

	var buf bytes.Buffer
	require.NoError(t, f.CreateSender(n).Send(&buf))
	assert.Equal(t, "Sending Email notification to user@example.com\nEmail sent to user@example.com from admin@example.com\nMessage: Welcome!\n", buf.String())

	email, ok := n.(*EmailNotification)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", email.Sender())
}

func TestPushFamily_Send(t *testing.T) {
	f := PushFactory{}
	n := f.CreateNotification("device-id", "ignored", f.CreateTemplate("New updates available!"))

	var buf bytes.Buffer
	require.NoError(t, f.CreateSender(n).Send(&buf))
	assert.Equal(t, "Sending Push notification to device-id\nPush notification sent to device device-id\nMessage: New updates available!\n", buf.String())
}

func TestForChannel_Unknown(t *testing.T) {
	f, err := ForChannel("pigeon")
	assert.ErrorIs(t, err, ErrUnknownChannel)
	assert.Nil(t, f)
}
