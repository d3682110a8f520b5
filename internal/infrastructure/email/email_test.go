package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSender struct {
	calls atomic.Int32
	err   error
}

func (s *countingSender) Send(ctx context.Context, req EmailRequest) error {
	s.calls.Add(1)
	return s.err
}

func TestBuildMessage(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := string(buildMessage("shop@example.com", EmailRequest{
		To:      []string{"a@example.com"},
		Subject: "You left something behind",
		Body:    "<p>hi</p>",
		IsHTML:  true,
	}, now))

	assert.Contains(t, msg, "From: shop@example.com\r\n")
	assert.Contains(t, msg, "To: a@example.com\r\n")
	assert.Contains(t, msg, "Subject: You left something behind\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>"))
}

func TestSMTPSender_Send(t *testing.T) {
	var gotAddr string
	var gotTo []string

	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: "1025", From: "shop@example.com"}).(*smtpSender)
	s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo = addr, to
		return nil
	}

	err := s.Send(context.Background(), EmailRequest{To: []string{"a@example.com"}, Subject: "s", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, []string{"a@example.com"}, gotTo)
}

func TestSMTPSender_Errors(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "localhost", Port: "1025"}).(*smtpSender)
	s.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	assert.ErrorIs(t, s.Send(context.Background(), EmailRequest{}), ErrNoRecipients)

	err := s.Send(context.Background(), EmailRequest{To: []string{"a@example.com"}})
	assert.ErrorContains(t, err, "connection refused")
}

func TestBreakerSender_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &countingSender{err: errors.New("relay down")}
	s := NewBreakerSender(inner, BreakerSettings{MaxConsecutiveFailures: 2, OpenTimeout: time.Minute})
	req := EmailRequest{To: []string{"a@example.com"}}

	assert.Error(t, s.Send(context.Background(), req))
	assert.Error(t, s.Send(context.Background(), req))

	err := s.Send(context.Background(), req)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), inner.calls.Load())
}

func TestBreakerSender_PassesThroughSuccess(t *testing.T) {
	inner := &countingSender{}
	s := NewBreakerSender(inner, DefaultBreakerSettings())

	require.NoError(t, s.Send(context.Background(), EmailRequest{To: []string{"a@example.com"}}))
	assert.Equal(t, int32(1), inner.calls.Load())
}
