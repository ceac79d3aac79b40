package config

import "strings"

// SplitRepos turns the stored comma-joined repository list into one entry per line.
func SplitRepos(stored string) string {
	if stored == "" {
		return ""
	}
	return strings.ReplaceAll(stored, ",", "\n")
}

// JoinRepos converts line-per-entry text back to the stored comma-joined form.
func JoinRepos(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", ",")
}

// RepoList returns the non-empty, trimmed repository identifiers of a stored list.
func RepoList(stored string) []string {
	var repos []string
	for _, repo := range strings.Split(stored, ",") {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}
		repos = append(repos, repo)
	}
	return repos
}
