// Package gitlog reads commit history from local git repositories.
package gitlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const (
	// DefaultLimit is how many commits are read unless WithLimit says otherwise.
	DefaultLimit = 20

	shortHashLen = 7
	dateFormat   = "2006-01-02"
)

// A Commit summarizes a single commit.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLimit sets the maximum number of commits to read. Zero or less means
// no limit.
func WithLimit(n int) Option {
	return func(r *Reader) {
		r.limit = n
	}
}

// WithLogger sets the logger for progress output. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// Reader reads commit history from a repository on disk. It never touches the
// network.
type Reader struct {
	path  string
	limit int
	log   *slog.Logger
}

// NewReader returns a Reader for the repository containing path.
func NewReader(path string, opts ...Option) *Reader {
	r := &Reader{path: path, limit: DefaultLimit, log: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Commits returns commits reachable from HEAD, newest first.
func (r *Reader) Commits(ctx context.Context) ([]Commit, error) {
	repo, err := git.PlainOpenWithOptions(r.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	r.log.Debug("Reading commits", "path", r.path, "head", head.Hash().String(), "limit", r.limit)

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var out []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.limit > 0 && len(out) >= r.limit {
			return storer.ErrStop
		}
		out = append(out, Commit{
			Hash:    c.Hash.String()[:shortHashLen],
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: subject(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}

	return out, nil
}

// Headers returns the column headers matching Rows.
func Headers() []string {
	return []string{"Hash", "Author", "Date", "Subject"}
}

// Rows renders commits as table rows.
func Rows(commits []Commit) [][]string {
	rows := make([][]string, len(commits))
	for i, c := range commits {
		rows[i] = []string{c.Hash, c.Author, c.When.UTC().Format(dateFormat), c.Subject}
	}
	return rows
}

// subject returns the first line of a commit message.
func subject(msg string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	return strings.TrimSpace(line)
}
