// Package notifykit builds matching families of notification templates,
// notifications and senders for one delivery channel at a time.
package notifykit

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownChannel is returned by ForChannel for unsupported channels.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Channel is a delivery channel.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// Template renders the body of a notification.
type Template interface {
	Apply() string
	Channel() Channel
}

// Notification is an addressed, templated message.
type Notification interface {
	Recipient() string
	Template() Template
	Channel() Channel
	Render(w io.Writer) error
}

// Sender dispatches a notification.
type Sender interface {
	Send(w io.Writer) error
	Notification() Notification
	Channel() Channel
}

// Factory creates products that all belong to one channel.
type Factory interface {
	Channel() Channel
	CreateTemplate(message string) Template
	CreateNotification(recipient, sender string, tmpl Template) Notification
	CreateSender(n Notification) Sender
}

// ForChannel returns the factory for c.
func ForChannel(c Channel) (Factory, error) {
	switch c {
	case ChannelEmail:
		return EmailFactory{}, nil
	case ChannelPush:
		return PushFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, c)
	}
}

type template struct {
	message string
	channel Channel
}

func (t template) Apply() string    { return t.message }
func (t template) Channel() Channel { return t.channel }

type sender struct {
	n Notification
}

func (s sender) Notification() Notification { return s.n }
func (s sender) Channel() Channel           { return s.n.Channel() }

func (s sender) Send(w io.Writer) error {
	label := "Email"
	if s.n.Channel() == ChannelPush {
		label = "Push"
	}
	if _, err := fmt.Fprintf(w, "Sending %s notification to %s\n", label, s.n.Recipient()); err != nil {
		return err
	}
	return s.n.Render(w)
}

// --- email ---

// EmailFactory produces email templates, notifications and senders.
type EmailFactory struct{}

func (EmailFactory) Channel() Channel { return ChannelEmail }

func (EmailFactory) CreateTemplate(message string) Template {
	return template{message: message, channel: ChannelEmail}
}

func (EmailFactory) CreateNotification(recipient, from string, tmpl Template) Notification {
	return &EmailNotification{recipient: recipient, sender: from, tmpl: tmpl}
}

func (EmailFactory) CreateSender(n Notification) Sender { return sender{n: n} }

// EmailNotification is addressed from one mailbox to another.
type EmailNotification struct {
	recipient string
	sender    string
	tmpl      Template
}

func (n *EmailNotification) Recipient() string  { return n.recipient }
func (n *EmailNotification) Sender() string     { return n.sender }
func (n *EmailNotification) Template() Template { return n.tmpl }
func (n *EmailNotification) Channel() Channel   { return ChannelEmail }

func (n *EmailNotification) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Email sent to %s from %s\nMessage: %s\n", n.recipient, n.sender, n.tmpl.Apply())
	return err
}

// --- push ---

// PushFactory produces push templates, notifications and senders.
type PushFactory struct{}

func (PushFactory) Channel() Channel { return ChannelPush }

func (PushFactory) CreateTemplate(message string) Template {
	return template{message: message, channel: ChannelPush}
}

// CreateNotification ignores the sender; push notifications have none.
func (PushFactory) CreateNotification(recipient, _ string, tmpl Template) Notification {
	return &PushNotification{recipient: recipient, tmpl: tmpl}
}

func (PushFactory) CreateSender(n Notification) Sender { return sender{n: n} }

// PushNotification is addressed to a device ID.
type PushNotification struct {
	recipient string
	tmpl      Template
}

func (n *PushNotification) Recipient() string  { return n.recipient }
func (n *PushNotification) Template() Template { return n.tmpl }
func (n *PushNotification) Channel() Channel   { return ChannelPush }

func (n *PushNotification) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Push notification sent to device %s\nMessage: %s\n", n.recipient, n.tmpl.Apply())
	return err
}
