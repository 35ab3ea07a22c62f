package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/nmc-egov/civic-portal-api/internal/models"
)

type captureSender struct {
	messages []*gomail.Message
	sendErr  error
}

func (c *captureSender) DialAndSend(msgs ...*gomail.Message) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.messages = append(c.messages, msgs...)
	return nil
}

func messageBody(t *testing.T, msg *gomail.Message) string {
	t.Helper()
	buf := &bytes.Buffer{}
	_, err := msg.WriteTo(buf)
	require.NoError(t, err)
	return buf.String()
}

func TestNotificationRegistrationWelcome(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendRegistrationWelcome(&models.Citizen{
		FirstName: "Ravi",
		LastName:  "Kumar",
		Mobile:    "9999999999",
		Ward:      "12",
		Email:     "ravi@example.com",
	})

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, []string{"ravi@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Welcome to NMC! Citizen Registration Successful!"}, msg.GetHeader("Subject"))
	assert.Contains(t, messageBody(t, msg), "Ravi Kumar")
}

func TestNotificationComplaintStatusFallbackNote(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendComplaintStatus("ravi@example.com", "CMPT123456", "Resolved", "")

	require.Len(t, sender.messages, 1)
	body := messageBody(t, sender.messages[0])
	assert.Contains(t, body, "No additional notes.")
	assert.Contains(t, body, "CMPT123456")
	assert.Contains(t, body, "Resolved")
}

func TestNotificationHealthCampStatusFallbackNote(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendHealthCampStatus("ravi@example.com", "HCMP123456", "Approved", "")

	require.Len(t, sender.messages, 1)
	body := messageBody(t, sender.messages[0])
	assert.Contains(t, body, "No additional notes provided.")
	assert.Equal(t, []string{"Health Camp Permission Update - ID: HCMP123456"}, sender.messages[0].GetHeader("Subject"))
}

func TestNotificationStatusKeepsProvidedDescription(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendEventPermissionStatus("ravi@example.com", "EVNT123456", "Approved", "Permission granted")

	require.Len(t, sender.messages, 1)
	body := messageBody(t, sender.messages[0])
	assert.Contains(t, body, "Permission granted")
	assert.NotContains(t, body, "No additional notes")
}

func TestNotificationHealthCampAckIncludesCampTitle(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendHealthCampSubmitted("ravi@example.com", "HCMP123456", "Free Eye Checkup")

	require.Len(t, sender.messages, 1)
	body := messageBody(t, sender.messages[0])
	assert.Contains(t, body, "Free Eye Checkup")
}

func TestNotificationSendErrorSwallowed(t *testing.T) {
	sender := &captureSender{sendErr: errors.New("smtp unreachable")}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	// Failures are logged, never returned.
	svc.SendComplaintSubmitted("ravi@example.com", "CMPT123456")
	assert.Empty(t, sender.messages)
}

func TestNotificationNilSenderNoOp(t *testing.T) {
	svc := NewNotificationService(nil, "noreply@nmc.example", nil, nil)

	svc.SendComplaintSubmitted("ravi@example.com", "CMPT123456")
	svc.SendComplaintStatus("ravi@example.com", "CMPT123456", "Resolved", "")
}

func TestNotificationSkipsEmptyRecipient(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotificationService(sender, "noreply@nmc.example", nil, nil)

	svc.SendComplaintSubmitted("", "CMPT123456")
	assert.Empty(t, sender.messages)
}
