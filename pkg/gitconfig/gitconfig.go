// Package gitconfig is the optional git-backed configuration-push
// collaborator described in spec.md §6: rendered device configuration is
// committed to a local clone only when its content actually changed,
// never force-pushed, and never run as part of the core reconcile path.
// No go-git-style library appears anywhere in the example pack, so this
// shells out to the git binary the way the teacher shells out to ssh/scp
// (os/exec + captured combined output), rather than vendoring a fake.
package gitconfig

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/meridian-net/netcollector/pkg/util"
)

// Repo is a local clone of a configuration-backup repository.
type Repo struct {
	path string
}

// Open wraps an existing local clone at path. The caller is responsible
// for the clone existing and having a configured remote and identity.
func Open(path string) *Repo {
	return &Repo{path: path}
}

// WriteResult reports what PushConfig actually did, per spec.md §6's
// created/updated/unchanged trichotomy.
type WriteResult string

const (
	ResultCreated   WriteResult = "created"
	ResultUpdated   WriteResult = "updated"
	ResultUnchanged WriteResult = "unchanged"
)

// PushConfig writes the rendered configuration for device to
// <repo>/<device>.cfg, commits it only if the content hash differs from
// what's already on disk, and returns which of the three outcomes
// occurred. It never pushes to a remote; that's a separate, explicit
// step an operator triggers outside the collection run.
func (r *Repo) PushConfig(device, rendered string) (WriteResult, error) {
	relPath := device + ".cfg"
	fullPath := filepath.Join(r.path, relPath)

	existing, err := os.ReadFile(fullPath)
	existed := err == nil
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("reading existing config for %s: %w", device, err)
	}

	if existed && contentHash(existing) == contentHash([]byte(rendered)) {
		return ResultUnchanged, nil
	}

	if err := os.WriteFile(fullPath, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("writing config for %s: %w", device, err)
	}

	message := fmt.Sprintf("update %s", device)
	if !existed {
		message = fmt.Sprintf("add %s", device)
	}

	if err := r.run("add", relPath); err != nil {
		return "", err
	}
	if err := r.run("commit", "-m", message); err != nil {
		return "", err
	}

	if existed {
		return ResultUpdated, nil
	}
	return ResultCreated, nil
}

func contentHash(b []byte) string {
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

func (r *Repo) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.path
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		util.Logger.WithField("args", args).WithField("stderr", stderr.String()).Warn("git command failed")
		return fmt.Errorf("git %v: %w: %s", args, err, stderr.String())
	}
	return nil
}

// VerifySSLOption coerces an operator-supplied TLS-verification setting
// into the three shapes spec.md §6 allows: "true" (system trust store),
// "false" (disabled, for lab use only), or a filesystem path to a CA
// bundle.
type VerifySSLOption struct {
	Disabled bool
	CAPath   string
}

// CoerceVerifySSL interprets the raw configuration value for SSL
// verification per spec.md §6: "true"/"false" are parsed as booleans;
// anything else is treated as a CA bundle path.
func CoerceVerifySSL(raw string) VerifySSLOption {
	switch raw {
	case "", "true":
		return VerifySSLOption{}
	case "false":
		return VerifySSLOption{Disabled: true}
	default:
		return VerifySSLOption{CAPath: raw}
	}
}
