// Package session holds a single authenticated connection to one device:
// it runs a command and returns raw output, knowing the platform's command
// dialect. Grounded on the teacher's SSH tunnel (golang.org/x/crypto/ssh
// Dial/ClientConfig/CombinedOutput idiom), generalized from a single
// Redis-forwarding tunnel into a general-purpose command-sending session
// per spec.md §4.2.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/crypto/ssh"

	"github.com/meridian-net/netcollector/pkg/collectorerr"
	"github.com/meridian-net/netcollector/pkg/model"
	"github.com/meridian-net/netcollector/pkg/util"
)

// Options parameterizes session acquisition.
type Options struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	MaxRetries     uint64
	RetryDelay     time.Duration
}

// DefaultOptions returns the spec.md §5 default timeouts.
func DefaultOptions() Options {
	return Options{
		ConnectTimeout: 15 * time.Second,
		ReadTimeout:    30 * time.Second,
		MaxRetries:     2,
		RetryDelay:     2 * time.Second,
	}
}

// Session is a scoped acquisition of one authenticated SSH connection.
type Session struct {
	host     string
	platform model.Platform
	dialect  Dialect
	hostname string
	client   *ssh.Client
	opts     Options
}

// Open connects and authenticates to a device, identifies its hostname
// from the prompt, enters privileged mode if a secret is supplied, and
// disables paging. On timeout/transport error it retries up to
// opts.MaxRetries with a fixed delay; authentication failures are never
// retried (spec.md §4.2).
func Open(ctx context.Context, host string, platform model.Platform, creds model.Credentials, opts Options) (*Session, error) {
	dialect := DialectFor(platform)
	config := &ssh.ClientConfig{
		User: creds.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(creds.Password),
			ssh.KeyboardInteractive(func(name, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = creds.Password
				}
				return answers, nil
			}),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         opts.ConnectTimeout,
	}

	addr := fmt.Sprintf("%s:22", host)

	var client *ssh.Client
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(opts.RetryDelay), opts.MaxRetries)
	operation := func() error {
		c, err := ssh.Dial("tcp", addr, config)
		if err != nil {
			if isAuthError(err) {
				return backoff.Permanent(collectorerr.NewCollectorError(collectorerr.KindAuthentication, host, "", err))
			}
			return collectorerr.NewCollectorError(collectorerr.KindConnection, host, "", err)
		}
		client = c
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}

	s := &Session{host: host, platform: platform, dialect: dialect, client: client, opts: opts}

	prompt, err := s.send("")
	if err != nil {
		s.Close()
		return nil, collectorerr.NewCollectorError(collectorerr.KindConnection, host, "", err)
	}
	s.hostname = parseHostnameFromPrompt(prompt)

	if creds.Secret != "" {
		if _, err := s.send(enableCommand(dialect)); err != nil {
			util.WithDevice(host).WithField("err", err).Warn("enable failed, continuing unprivileged")
		}
	}

	if _, err := s.send(disablePagingCommand(dialect)); err != nil {
		util.WithDevice(host).WithField("err", err).Warn("disable paging failed")
	}

	return s, nil
}

// Hostname returns the canonical hostname identified at session open.
func (s *Session) Hostname() string { return s.hostname }

// Dialect returns the command dialect resolved for this session's platform.
func (s *Session) Dialect() Dialect { return s.dialect }

// Platform returns the device platform this session was opened against.
func (s *Session) Platform() model.Platform { return s.platform }

// Host returns the management address used to reach this device.
func (s *Session) Host() string { return s.host }

// Send runs a command against the device and returns its raw output.
// Command failures surface as a CommandError; the command is not retried
// within the session (retries are reserved for acquisition, per spec.md
// §4.2).
func (s *Session) Send(ctx context.Context, command string) (string, error) {
	output, err := s.send(command)
	if err != nil {
		return output, collectorerr.NewCommandError(s.host, command, output, err)
	}
	return output, nil
}

func (s *Session) send(command string) (string, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()

	output, err := sess.CombinedOutput(command)
	return string(output), err
}

// Close releases the underlying socket. Safe to call on every exit path —
// success, error, or cancellation (spec.md §4.2).
func (s *Session) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func isAuthError(err error) bool {
	if _, ok := err.(*ssh.ExitError); ok {
		return false
	}
	return err != nil && strings.Contains(err.Error(), "unable to authenticate")
}

func enableCommand(d Dialect) string {
	switch d {
	case DialectNXOS, DialectEOS:
		return "enable"
	default:
		return "enable"
	}
}

func parseHostnameFromPrompt(prompt string) string {
	// Best-effort: a bare send() typically returns the prompt text ending
	// in "hostname#" or "hostname>".
	trimmed := strings.TrimRight(strings.TrimSpace(prompt), "#>")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
