package documentloaders

import (
	"context"
	"log/slog"

	"github.com/sevigo/codesplit/gitutil"
	"github.com/sevigo/codesplit/parsers"
	"github.com/sevigo/codesplit/schema"
)

// RemoteGitRepoLoader clones a repository into a temporary directory and
// loads it with a GitLoader. The clone is removed once loading finishes.
type RemoteGitRepoLoader struct {
	RepoURL        string
	ParserRegistry parsers.ParserRegistry
	Logger         *slog.Logger

	cloner  *gitutil.Cloner
	options []GitLoaderOption
}

func NewRemoteGitRepoLoader(repoURL string, registry parsers.ParserRegistry, logger *slog.Logger, opts ...GitLoaderOption) *RemoteGitRepoLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &RemoteGitRepoLoader{
		RepoURL:        repoURL,
		ParserRegistry: registry,
		Logger:         logger,
		cloner:         gitutil.NewCloner(logger),
		options:        opts,
	}
}

// WithCloner replaces the default shallow cloner.
func (l *RemoteGitRepoLoader) WithCloner(cloner *gitutil.Cloner) *RemoteGitRepoLoader {
	l.cloner = cloner
	return l
}

func (l *RemoteGitRepoLoader) Load(ctx context.Context) ([]schema.Document, error) {
	tempPath, cleanup, err := l.cloner.Clone(ctx, l.RepoURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	opts := append([]GitLoaderOption{WithLogger(l.Logger)}, l.options...)
	localGitLoader, err := NewGit(tempPath, l.ParserRegistry, opts...)
	if err != nil {
		return nil, err
	}

	documents, err := localGitLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range documents {
		documents[i] = documents[i].WithMetadata(map[string]any{MetadataRepoURL: l.RepoURL})
	}
	return documents, nil
}
