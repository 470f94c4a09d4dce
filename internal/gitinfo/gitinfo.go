// Package gitinfo attaches best-effort repository metadata to reports.
// Every lookup failure degrades to "no git info" rather than an error: the
// analysis itself never depends on the path being a repository.
package gitinfo

import (
	"github.com/go-git/go-git/v5"
)

// Info contains git repository information for the analyzed tree
type Info struct {
	Branch    string `json:"branch,omitempty"`
	Commit    string `json:"commit,omitempty"`
	IsDirty   bool   `json:"is_dirty"`
	RemoteURL string `json:"remote_url,omitempty"`
}

// Get retrieves repository information for the given path, or nil when the
// path is not inside a git repository
func Get(path string) *Info {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &Info{}

	head, err := repo.Head()
	if err == nil {
		// Short hash is plenty for report display
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD" // detached
		}
	}

	if worktree, err := repo.Worktree(); err == nil {
		if status, err := worktree.Status(); err == nil {
			info.IsDirty = !status.IsClean()
		}
	}

	if config, err := repo.Config(); err == nil {
		if origin := config.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = origin.URLs[0]
		}
	}

	return info
}
