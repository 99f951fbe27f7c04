// Package factory creates concrete notifications, audio players and shapes
// from a type tag, hiding the concrete types behind interfaces.
package factory

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownType is returned when a factory has no product for the requested tag.
var ErrUnknownType = errors.New("unknown product type")

// NotificationType selects a notification channel.
type NotificationType string

const (
	NotificationEmail NotificationType = "email"
	NotificationPush  NotificationType = "push"
	NotificationSMS   NotificationType = "sms"
)

// Notification is a message addressed to a single recipient.
type Notification interface {
	Recipient() string
	Message() string
	Type() NotificationType
	// Send delivers the notification by writing its transcript to w.
	Send(w io.Writer) error
}

// NewNotification returns the notification for type t. Sender is only used by email.
func NewNotification(t NotificationType, message, recipient, sender string) (Notification, error) {
	switch t {
	case NotificationEmail:
		return &EmailNotification{recipient: recipient, sender: sender, message: message}, nil
	case NotificationPush:
		return &PushNotification{recipient: recipient, message: message}, nil
	case NotificationSMS:
		return &SMSNotification{recipient: recipient, message: message}, nil
	default:
		return nil, fmt.Errorf("notification %q: %w", t, ErrUnknownType)
	}
}

// EmailNotification is sent from a sender address to a recipient address.
type EmailNotification struct {
	recipient string
	sender    string
	message   string
}

func (n *EmailNotification) Recipient() string      { return n.recipient }
func (n *EmailNotification) Sender() string         { return n.sender }
func (n *EmailNotification) Message() string        { return n.message }
func (n *EmailNotification) Type() NotificationType { return NotificationEmail }

func (n *EmailNotification) Send(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Email sent to %s from %s\nMessage: %s\n", n.recipient, n.sender, n.message)
	return err
}

// PushNotification targets a device ID.
type PushNotification struct {
	recipient string
	message   string
}

func (n *PushNotification) Recipient() string      { return n.recipient }
func (n *PushNotification) Message() string        { return n.message }
func (n *PushNotification) Type() NotificationType { return NotificationPush }

func (n *PushNotification) Send(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Push notification sent to device %s\nMessage: %s\n", n.recipient, n.message)
	return err
}

// SMSNotification targets a phone number.
type SMSNotification struct {
	recipient string
	message   string
}

func (n *SMSNotification) Recipient() string      { return n.recipient }
func (n *SMSNotification) Message() string        { return n.message }
func (n *SMSNotification) Type() NotificationType { return NotificationSMS }

func (n *SMSNotification) Send(w io.Writer) error {
	_, err := fmt.Fprintf(w, "SMS sent to %s\nMessage: %s\n", n.recipient, n.message)
	return err
}
