package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Logger is the logging interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client delivers notification mail over SMTP
type Client struct {
	host     string
	port     int
	from     string
	username string
	password string
	log      Logger
}

// NewClient creates a new SMTP mailer client. When username is empty the
// connection is unauthenticated (local relay setups).
func NewClient(host string, port int, from, username, password string, log Logger) *Client {
	return &Client{
		host:     host,
		port:     port,
		from:     from,
		username: username,
		password: password,
		log:      log,
	}
}

// Send delivers a plain-text message to a single recipient
func (c *Client) Send(to, subject, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrInvalidRecipient
	}

	msg := strings.Join([]string{
		"From: " + c.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", c.host, c.port)

	var auth smtp.Auth
	if c.username != "" {
		auth = smtp.PlainAuth("", c.username, c.password, c.host)
	}

	if err := smtp.SendMail(addr, auth, c.from, []string{to}, []byte(msg)); err != nil {
		c.log.Error("Send: delivery to %s failed: %v", to, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Send: delivered %q to %s", subject, to)
	return nil
}
