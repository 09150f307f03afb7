package zone

import "strings"

// Depth counts the path segments below the zone root, so
// "/zoneA/home/research-x/data" has depth 4. Trailing slashes are
// ignored.
func Depth(path string) int {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "/") + 1
}

func IsAbsolute(path string) bool {
	return strings.HasPrefix(path, "/")
}

// ContainsDotDot reports whether a path has a ".." segment. Such paths
// are rejected outright rather than normalized, for safety.
func ContainsDotDot(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// Join appends a child name to a collection path.
func Join(parent, name string) string {
	return strings.TrimSuffix(parent, "/") + "/" + name
}
