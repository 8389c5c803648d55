package docs

import "strings"

// ContentType classifies a documentation file by its name.
type ContentType string

const (
	TypeMarkdown ContentType = "markdown"
	TypeMermaid  ContentType = "mermaid"
	TypeSVG      ContentType = "svg"
	TypeOpenAPI  ContentType = "openapi"
	TypePostman  ContentType = "postman"
	TypeUnknown  ContentType = "unknown"
)

// DocFolderPrefix is the path prefix that defines membership in a
// repository's doc folder. Documentation is expected under a literal
// top-level "doc" directory; nested variants like docs/ are out of scope.
const DocFolderPrefix = "doc/"

// DetermineType maps a filename to its content type. Matching is
// case-sensitive and first-match-wins: the postman rule must be evaluated
// before the generic .json rule, or postman collections would classify as
// openapi.
func DetermineType(filename string) ContentType {
	switch {
	case strings.HasPrefix(filename, "postman") && strings.HasSuffix(filename, ".json"):
		return TypePostman
	case strings.HasSuffix(filename, ".yml"),
		strings.HasSuffix(filename, ".yaml"),
		strings.HasSuffix(filename, ".json"):
		return TypeOpenAPI
	case strings.HasSuffix(filename, ".md"):
		return TypeMarkdown
	case strings.HasSuffix(filename, ".mmd"),
		strings.HasSuffix(filename, ".mermaid"):
		return TypeMermaid
	case strings.HasSuffix(filename, ".svg"):
		return TypeSVG
	}
	return TypeUnknown
}

// InDocFolder reports whether a path sits inside the doc folder. This is
// the presence predicate: type does not matter, only the path prefix.
func InDocFolder(path string) bool {
	return strings.HasPrefix(path, DocFolderPrefix)
}

// IsDocFile reports whether a path belongs to the documentation set: inside
// the doc folder and of a recognized type. This is the stricter filtering
// predicate used for doc listings.
func IsDocFile(path string) bool {
	if !InDocFolder(path) {
		return false
	}
	name := path[strings.LastIndex(path, "/")+1:]
	return DetermineType(name) != TypeUnknown
}

// MIMEType returns the MIME type to serve a file of the given content type
// with. Unknown content is served as plain text.
func (t ContentType) MIMEType() string {
	switch t {
	case TypeMarkdown:
		return "text/markdown"
	case TypeMermaid:
		return "text/vnd.mermaid"
	case TypeSVG:
		return "image/svg+xml"
	case TypeOpenAPI, TypePostman:
		return "application/json"
	}
	return "text/plain"
}
