package registry

import (
	"context"
	"testing"

	"github.com/meridian-net/netcollector/pkg/model"
)

func TestEnvCredentialPromptReadsFromEnvironment(t *testing.T) {
	t.Setenv("NET_USERNAME", "admin")
	t.Setenv("NET_PASSWORD", "hunter2")
	t.Setenv("NET_SECRET", "enablepw")

	p := EnvCredentialPrompt{}
	creds, err := p.Prompt(context.Background(), model.Device{Name: "sw1"})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if creds.Username != "admin" || creds.Password != "hunter2" || creds.Secret != "enablepw" {
		t.Errorf("creds = %+v, want admin/hunter2/enablepw", creds)
	}
}

func TestEnvCredentialPromptSkipsSecretWhenUnset(t *testing.T) {
	t.Setenv("NET_USERNAME", "admin")
	t.Setenv("NET_PASSWORD", "hunter2")
	t.Setenv("NET_SECRET", "")

	p := EnvCredentialPrompt{}
	creds, err := p.Prompt(context.Background(), model.Device{Name: "sw1"})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if creds.Secret != "" {
		t.Errorf("secret = %q, want empty", creds.Secret)
	}
}
