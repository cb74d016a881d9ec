package utils

import "strings"

// NormalizePath strips the versioned api prefix so casbin policies can be written
// against resource paths such as /companies/:company_id.
func NormalizePath(requestPath, endpointPrefix, version string) string {
	prefix := "/" + strings.Trim(endpointPrefix, "/") + "/" + strings.Trim(version, "/")
	path := strings.TrimPrefix(requestPath, prefix)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
