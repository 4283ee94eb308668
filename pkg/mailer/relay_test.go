package mailer

import (
	"crypto/tls"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	startTLSErr error
	authErr     error
	sendErr     error

	calls     []string
	tlsConfig *tls.Config
	authMech  string
	authIR    []byte
	from      string
	to        []string
	data      []byte
	closed    bool
}

func (f *fakeClient) Auth(a sasl.Client) error {
	f.calls = append(f.calls, "auth")
	mech, ir, err := a.Start()
	if err != nil {
		return err
	}
	f.authMech, f.authIR = mech, ir
	return f.authErr
}

func (f *fakeClient) SendMail(from string, to []string, r io.Reader) error {
	f.calls = append(f.calls, "send")
	f.from, f.to = from, to
	f.data, _ = io.ReadAll(r)
	return f.sendErr
}

func (f *fakeClient) Quit() error {
	f.calls = append(f.calls, "quit")
	return nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func newTestRelay(fc *fakeClient, dialErr error) (*Relay, *string) {
	var dialed string
	r := NewRelay("smtp.example.com", 587, "bot@example.com", "app-password").
		WithDialer(func(addr string) (net.Conn, error) {
			dialed = addr
			if dialErr != nil {
				return nil, dialErr
			}
			client, server := net.Pipe()
			_ = server.Close()
			return client, nil
		}).
		WithStartTLS(func(conn net.Conn, config *tls.Config) (Client, error) {
			fc.calls = append(fc.calls, "starttls")
			fc.tlsConfig = config
			if fc.startTLSErr != nil {
				return nil, fc.startTLSErr
			}
			return fc, nil
		})
	return r, &dialed
}

func TestRelaySendHappyPath(t *testing.T) {
	fc := &fakeClient{}
	relay, dialed := newTestRelay(fc, nil)

	err := relay.Send(&Message{
		From: "bot@example.com",
		To:   []string{"a@example.com", "b@example.com"},
		Data: []byte("Subject: hi\r\n\r\nbody"),
	})

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", *dialed)
	assert.Equal(t, []string{"starttls", "auth", "send", "quit"}, fc.calls)
	assert.Equal(t, "smtp.example.com", fc.tlsConfig.ServerName)
	assert.Equal(t, sasl.Plain, fc.authMech)
	assert.Equal(t, "\x00bot@example.com\x00app-password", string(fc.authIR))
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, fc.to)
	assert.Equal(t, "Subject: hi\r\n\r\nbody", string(fc.data))
	assert.True(t, fc.closed)
}

func TestRelaySendAuthRejected(t *testing.T) {
	fc := &fakeClient{authErr: &smtp.SMTPError{
		Code:         535,
		EnhancedCode: smtp.EnhancedCode{5, 7, 8},
		Message:      "Username and Password not accepted",
	}}
	relay, _ := newTestRelay(fc, nil)

	err := relay.Send(&Message{From: "bot@example.com", To: []string{"a@example.com"}})

	require.Error(t, err)
	assert.True(t, IsAuthRejected(err))
	assert.False(t, IsProtocolError(err))
	assert.Contains(t, err.Error(), "Username and Password not accepted")
	assert.NotContains(t, fc.calls, "send")
}

func TestRelaySendRecipientRefused(t *testing.T) {
	fc := &fakeClient{sendErr: &smtp.SMTPError{Code: 550, Message: "mailbox unavailable"}}
	relay, _ := newTestRelay(fc, nil)

	err := relay.Send(&Message{From: "bot@example.com", To: []string{"a@example.com", "nobody@example.com"}})

	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
	assert.False(t, IsAuthRejected(err))
}

func TestRelaySendStartTLSNotSupported(t *testing.T) {
	fc := &fakeClient{startTLSErr: &smtp.SMTPError{Code: 502, Message: "command not implemented"}}
	relay, _ := newTestRelay(fc, nil)

	err := relay.Send(&Message{})

	assert.True(t, IsProtocolError(err))
	assert.Equal(t, []string{"starttls"}, fc.calls)
}

func TestRelaySendDialFailure(t *testing.T) {
	relay, _ := newTestRelay(nil, errors.New("dial tcp: connection refused"))

	err := relay.Send(&Message{})

	require.Error(t, err)
	assert.False(t, IsAuthRejected(err))
	assert.False(t, IsProtocolError(err))

	var se *SendError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageDial, se.Stage)
}

func TestRelayAuthNetworkErrorIsNotRejection(t *testing.T) {
	fc := &fakeClient{authErr: io.ErrUnexpectedEOF}
	relay, _ := newTestRelay(fc, nil)

	err := relay.Send(&Message{})

	assert.False(t, IsAuthRejected(err))
	assert.False(t, IsProtocolError(err))
}

func TestRelayAddr(t *testing.T) {
	assert.Equal(t, "smtp.gmail.com:587", NewRelay("smtp.gmail.com", 587, "", "").Addr())
	assert.Equal(t, "[::1]:2525", NewRelay("::1", 2525, "", "").Addr())
}
