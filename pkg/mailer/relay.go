// Package mailer delivers pre-composed messages through an SMTP relay using
// STARTTLS and PLAIN authentication.
package mailer

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

const dialTimeout = 30 * time.Second

// Stage names the step of the SMTP session that failed.
type Stage string

const (
	StageDial     Stage = "dial"
	StageStartTLS Stage = "starttls"
	StageAuth     Stage = "auth"
	StageSend     Stage = "send"
)

// SendError reports which session step failed. Err is the relay's reply
// (*smtp.SMTPError) when the relay answered with an error code.
type SendError struct {
	Stage Stage
	Err   error
}

func (e *SendError) Error() string {
	return e.Err.Error()
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// IsAuthRejected reports whether the relay refused the credentials.
func IsAuthRejected(err error) bool {
	var se *SendError
	if !errors.As(err, &se) || se.Stage != StageAuth {
		return false
	}
	var reply *smtp.SMTPError
	return errors.As(se.Err, &reply)
}

// IsProtocolError reports whether the relay answered any step other than
// authentication with an SMTP error reply.
func IsProtocolError(err error) bool {
	var se *SendError
	if !errors.As(err, &se) || se.Stage == StageAuth {
		return false
	}
	var reply *smtp.SMTPError
	return errors.As(se.Err, &reply)
}

// Message is a fully composed RFC 5322 message and its envelope.
type Message struct {
	From string
	To   []string
	Data []byte
}

// Client is the subset of *smtp.Client a relay session needs once TLS is up.
type Client interface {
	Auth(a sasl.Client) error
	SendMail(from string, to []string, r io.Reader) error
	Quit() error
	Close() error
}

// DialFunc opens the plaintext connection to addr.
type DialFunc func(addr string) (net.Conn, error)

// StartTLSFunc greets the server on conn and upgrades it with STARTTLS.
type StartTLSFunc func(conn net.Conn, config *tls.Config) (Client, error)

// Relay sends messages through one SMTP server with fixed credentials.
type Relay struct {
	host      string
	port      int
	username  string
	password  string
	tlsConfig *tls.Config
	dial      DialFunc
	startTLS  StartTLSFunc
}

// NewRelay returns a Relay for host:port that logs in as username.
func NewRelay(host string, port int, username, password string) *Relay {
	return &Relay{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		tlsConfig: &tls.Config{ServerName: host},
		dial:      dialTCP,
		startTLS:  startTLS,
	}
}

// WithDialer replaces the function used to open connections.
func (r *Relay) WithDialer(dial DialFunc) *Relay {
	r.dial = dial
	return r
}

// WithStartTLS replaces the function that upgrades a connection to a session.
func (r *Relay) WithStartTLS(fn StartTLSFunc) *Relay {
	r.startTLS = fn
	return r
}

// WithTLSConfig sets the TLS configuration used for STARTTLS. ServerName
// defaults to the relay host.
func (r *Relay) WithTLSConfig(config *tls.Config) *Relay {
	config = config.Clone()
	if config.ServerName == "" {
		config.ServerName = r.host
	}
	r.tlsConfig = config
	return r
}

// Addr returns the relay address in host:port form.
func (r *Relay) Addr() string {
	return net.JoinHostPort(r.host, fmt.Sprint(r.port))
}

// Send delivers msg to every envelope recipient in one session. A failure on
// any recipient fails the whole send; there is no per-recipient report.
func (r *Relay) Send(msg *Message) error {
	conn, err := r.dial(r.Addr())
	if err != nil {
		return &SendError{Stage: StageDial, Err: err}
	}

	c, err := r.startTLS(conn, r.tlsConfig)
	if err != nil {
		_ = conn.Close()
		return &SendError{Stage: StageStartTLS, Err: err}
	}
	defer c.Close()

	if err := c.Auth(sasl.NewPlainClient("", r.username, r.password)); err != nil {
		return &SendError{Stage: StageAuth, Err: err}
	}

	if err := c.SendMail(msg.From, msg.To, bytes.NewReader(msg.Data)); err != nil {
		return &SendError{Stage: StageSend, Err: err}
	}

	if err := c.Quit(); err != nil {
		return &SendError{Stage: StageSend, Err: err}
	}

	return nil
}

func dialTCP(addr string) (net.Conn, error) {
	return net.DialTimeout("tcp", addr, dialTimeout)
}

func startTLS(conn net.Conn, config *tls.Config) (Client, error) {
	c, err := smtp.NewClientStartTLS(conn, config)
	if err != nil {
		return nil, err
	}
	return c, nil
}
