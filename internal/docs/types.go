// Package docs implements the documentation operations backed by the
// GitHub REST and Code-Search APIs: org-wide repository discovery, per-repo
// doc listing, file content fetching, and org-wide doc search.
package docs

// RepoSummary is one repository in an organization, annotated with whether
// it carries a top-level doc/ folder. hasDocFolder is always derived from
// the API, never user-supplied.
type RepoSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	HasDocFolder bool   `json:"hasDocFolder"`
}

// DocFile is one file inside a repository's doc/ folder.
type DocFile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	Type        ContentType `json:"type"`
	Size        int         `json:"size"`
	URL         string      `json:"url"`
	DownloadURL string      `json:"download_url"`
	SHA         string      `json:"sha"`
}

// FileContent is the decoded content of a single file. Content is the UTF-8
// decoding of the API's base64 payload; Encoding records the original
// encoding reported by the API.
type FileContent struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
	SHA      string `json:"sha"`
	Encoding string `json:"encoding"`
}

// SearchHit is one match from an org-wide doc search.
type SearchHit struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Repository string `json:"repository"`
	URL        string `json:"url"`
	SHA        string `json:"sha"`
}
