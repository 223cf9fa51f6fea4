package api

import (
	"net/url"
	"strings"
)

// NormalizePath makes p absolute by prefixing "/" when missing.
func NormalizePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// escapePath percent-encodes every segment of p, keeping the separators.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func folderPath(id FolderID, suffix string) string {
	return "/api/files/" + url.PathEscape(string(id)) + suffix
}
