// Package gitutil clones remote repositories for loading.
package gitutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Cloner handles the temporary cloning of remote Git repositories.
type Cloner struct {
	Logger *slog.Logger
	// Depth limits history to the given number of commits. Zero clones the
	// full history.
	Depth int
	// Branch checks out the named branch instead of the remote HEAD.
	Branch string
}

// NewCloner creates a shallow Cloner.
func NewCloner(logger *slog.Logger) *Cloner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cloner{Logger: logger, Depth: 1}
}

// Clone checks out repoURL into a fresh temporary directory. The returned
// cleanup function removes it.
func (c *Cloner) Clone(ctx context.Context, repoURL string) (string, func(), error) {
	tempPath, err := os.MkdirTemp("", "codesplit-repo-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	c.Logger.InfoContext(ctx, "Cloning repository", "url", repoURL, "path", tempPath, "branch", c.Branch)

	cleanupFunc := func() {
		c.Logger.Info("Cleaning up temporary repository", "path", tempPath)
		_ = os.RemoveAll(tempPath)
	}

	opts := &git.CloneOptions{
		URL:   repoURL,
		Depth: c.Depth,
	}
	if c.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(c.Branch)
		opts.SingleBranch = true
	}

	if _, err = git.PlainCloneContext(ctx, tempPath, false, opts); err != nil {
		cleanupFunc()
		return "", nil, fmt.Errorf("failed to clone repo '%s': %w", repoURL, err)
	}

	c.Logger.InfoContext(ctx, "Repository cloned successfully", "path", tempPath)
	return tempPath, cleanupFunc, nil
}
