package registry

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/meridian-net/netcollector/pkg/model"
)

// EnvCredentialPrompt resolves per-run device credentials from
// NET_USERNAME/NET_PASSWORD/NET_SECRET (spec.md §6), falling back to an
// interactive terminal prompt with echo suppressed via golang.org/x/term
// when the environment variables are unset.
type EnvCredentialPrompt struct {
	// In/Out are overridable for tests; nil means os.Stdin/os.Stdout.
	In  *os.File
	Out *os.File
}

// Prompt implements registry.CredentialPrompt.
func (p EnvCredentialPrompt) Prompt(ctx context.Context, device model.Device) (model.Credentials, error) {
	creds := model.Credentials{
		Username: os.Getenv("NET_USERNAME"),
		Password: os.Getenv("NET_PASSWORD"),
		Secret:   os.Getenv("NET_SECRET"),
	}
	if creds.Username != "" && creds.Password != "" {
		return creds, nil
	}

	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	if creds.Username == "" {
		fmt.Fprintf(out, "username for %s: ", device.Name)
		if _, err := fmt.Fscanln(in, &creds.Username); err != nil {
			return creds, err
		}
	}
	if creds.Password == "" {
		fmt.Fprintf(out, "password for %s: ", device.Name)
		raw, err := term.ReadPassword(int(in.Fd()))
		if err != nil {
			return creds, err
		}
		fmt.Fprintln(out)
		creds.Password = string(raw)
	}
	return creds, nil
}
