// Package smtp delivers rating notifications by email.
package smtp

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/fwojciec/urlsum"
)

// Defaults match a Gmail submission server.
const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

// Subject is the subject line of every rating notification.
const Subject = "New Rating Received for URL Summarizer"

// Config holds the connection and addressing details for the notifier.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SendFunc sends a message. It matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Ensure Notifier implements urlsum.Notifier at compile time.
var _ urlsum.Notifier = (*Notifier)(nil)

// Notifier emails the author whenever a rating is submitted. Each rating is
// a single delivery attempt; STARTTLS is used when the server offers it.
type Notifier struct {
	config Config
	send   SendFunc
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithSendFunc replaces the function used to deliver mail.
func WithSendFunc(fn SendFunc) Option {
	return func(n *Notifier) {
		n.send = fn
	}
}

// NewNotifier creates a new Notifier. Missing host and port fall back to
// the defaults, the username to the sender and the recipient to the sender.
func NewNotifier(config Config, opts ...Option) (*Notifier, error) {
	if config.Host == "" {
		config.Host = DefaultHost
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.From == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "sender address required")
	}
	if config.To == "" {
		config.To = config.From
	}
	if config.Username == "" {
		config.Username = config.From
	}

	n := &Notifier{config: config, send: smtp.SendMail}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NotifyRating sends one email announcing the rating.
func (n *Notifier) NotifyRating(ctx context.Context, stars int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.config.Password != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}

	addr := net.JoinHostPort(n.config.Host, strconv.Itoa(n.config.Port))
	msg := BuildMessage(n.config.From, n.config.To, stars)
	if err := n.send(addr, auth, n.config.From, []string{n.config.To}, msg); err != nil {
		return fmt.Errorf("sending rating email: %w", err)
	}
	return nil
}

// BuildMessage renders the notification email with headers.
func BuildMessage(from, to string, stars int) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + Subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	fmt.Fprintf(&sb, "You received a new rating of %d stars for your URL Summarizer application!\r\n", stars)
	return []byte(sb.String())
}
