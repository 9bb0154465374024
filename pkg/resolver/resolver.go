// Package resolver derives the local directory path for a repository locator.
package resolver

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Resolve maps a repository locator onto a directory path under root that
// mirrors the remote host and path structure. Locators come in two forms:
// URLs (scheme://[user@]host/path) and SCP-like shorthand ([user@]host:path).
// Resolution is a pure function of (root, locator): a trailing .git suffix
// and leading ~ markers collapse, so locators naming the same repository
// yield the same path.
func Resolve(root, locator string) (string, error) {
	host, repoPath, err := splitLocator(locator)
	if err != nil {
		return "", err
	}

	host = stripUserInfo(host)
	if host == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyHost, locator)
	}
	if strings.Contains(host, ":") {
		// A surviving colon means an embedded port or an ambiguous
		// host:path split, either of which would corrupt the tree.
		return "", fmt.Errorf("%w: %s", ErrHostContainsColon, locator)
	}

	dir, base := path.Split(repoPath)
	base = strings.TrimSuffix(base, ".git")

	return filepath.Join(root, host, stripTildes(dir), stripTildes(base)), nil
}

// splitLocator separates a locator into its host-with-userinfo and path
// parts. URL forms are recognized by their network location; anything else
// must be SCP shorthand with a colon between host and path.
func splitLocator(locator string) (host, repoPath string, err error) {
	if u, uerr := url.Parse(locator); uerr == nil && u.Host != "" {
		host = u.Host
		if u.User != nil {
			host = u.User.String() + "@" + u.Host
		}
		return host, u.Path, nil
	}

	host, repoPath, found := strings.Cut(locator, ":")
	if !found {
		return "", "", fmt.Errorf("%w: %s", ErrMissingColon, locator)
	}
	return host, repoPath, nil
}

// stripUserInfo discards everything up to and including the last @.
func stripUserInfo(host string) string {
	if i := strings.LastIndex(host, "@"); i >= 0 {
		return host[i+1:]
	}
	return host
}

// stripTildes removes leading ~ markers from every path segment, collapsing
// SCP home-directory shorthand like host:~user/repo to user/repo. Actual
// home directories are never resolved.
func stripTildes(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = strings.TrimLeft(segment, "~")
	}
	return strings.Join(segments, "/")
}
