package docs

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/go-github/v81/github"
	"golang.org/x/sync/errgroup"

	ghclient "github.com/bull/github-docs-mcp/internal/github"
)

// listPageSize is the page size for repository listing and doc-folder
// search; codeSearchPageSize matches the free-text search tool.
const (
	listPageSize       = 100
	codeSearchPageSize = 50
)

// Service implements the four documentation operations. Every operation is
// a stateless request/response pipeline over the shared GitHub client; no
// result outlives the call that produced it.
type Service struct {
	client      *ghclient.Client
	log         *slog.Logger
	concurrency int
}

// NewService creates a Service. fallbackConcurrency bounds the parallel
// per-repo doc checks in the discovery fallback; values below 1 fall back
// to sequential checks.
func NewService(client *ghclient.Client, log *slog.Logger, fallbackConcurrency int) *Service {
	if log == nil {
		log = slog.Default()
	}
	if fallbackConcurrency < 1 {
		fallbackConcurrency = 1
	}
	return &Service{
		client:      client,
		log:         log,
		concurrency: fallbackConcurrency,
	}
}

// ListOrgRepos enumerates every repository in an organization, each
// annotated with whether it has a top-level doc/ folder.
//
// The search-first strategy costs one code-search call plus the listing
// pagination. When search is unavailable (typically 403, its quota is much
// lower than the REST API's) discovery falls back to checking each
// repository's doc path individually; the fallback is strictly a
// correctness path, one contents call per repository.
func (s *Service) ListOrgRepos(ctx context.Context, org string) ([]RepoSummary, error) {
	withDocs, err := s.searchDocRepos(ctx, org)
	if err != nil {
		s.log.Warn("code search unavailable, falling back to per-repo checks",
			"org", org, "error", err)
		return s.listReposWithFallback(ctx, org)
	}

	repos, err := s.listAllRepos(ctx, org)
	if err != nil {
		return nil, err
	}

	result := make([]RepoSummary, 0, len(repos))
	for _, repo := range repos {
		result = append(result, newRepoSummary(repo, withDocs[repo.GetName()]))
	}

	s.log.Info("discovered repositories via search",
		"org", org, "total", len(result), "with_docs", len(withDocs))
	return result, nil
}

// searchDocRepos returns the set of repository names in org that the code
// search reports as containing a doc path. Any failure here is recoverable:
// the caller retries via the fallback strategy.
func (s *Service) searchDocRepos(ctx context.Context, org string) (map[string]bool, error) {
	query := fmt.Sprintf("org:%s path:doc", org)
	result, _, err := s.client.Search.Code(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	})
	if err != nil {
		return nil, err
	}

	withDocs := make(map[string]bool)
	for _, item := range result.CodeResults {
		if name := item.GetRepository().GetName(); name != "" {
			withDocs[name] = true
		}
	}
	return withDocs, nil
}

// listReposWithFallback lists all org repositories and checks each one's
// doc path individually. A failed check degrades that one repository to
// hasDocFolder=false instead of aborting the whole operation. Checks fan
// out with bounded parallelism; results keep the original listing order.
func (s *Service) listReposWithFallback(ctx context.Context, org string) ([]RepoSummary, error) {
	repos, err := s.listAllRepos(ctx, org)
	if err != nil {
		return nil, err
	}

	result := make([]RepoSummary, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, repo := range repos {
		g.Go(func() error {
			result[i] = newRepoSummary(repo, s.hasDocFolder(gctx, org, repo.GetName()))
			return nil
		})
	}
	// Check goroutines never return errors, per-repo failures degrade
	// to hasDocFolder=false.
	_ = g.Wait()

	s.log.Info("discovered repositories via fallback", "org", org, "total", len(result))
	return result, nil
}

// listAllRepos fetches the full paginated repository listing for an
// organization, preserving API return order. A listing failure is fatal
// for the calling operation.
func (s *Service) listAllRepos(ctx context.Context, org string) ([]*github.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	var all []*github.Repository
	for {
		repos, resp, err := s.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, classifyError(err)
		}
		all = append(all, repos...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// hasDocFolder reports whether org/repo has a top-level doc path. This is
// the presence check only: any successful contents response counts,
// regardless of what the folder holds.
func (s *Service) hasDocFolder(ctx context.Context, org, repo string) bool {
	_, _, _, err := s.client.Repositories.GetContents(ctx, org, repo, "doc", nil)
	if err != nil {
		if !isNotFoundStatus(err) {
			s.log.Warn("doc folder check failed", "org", org, "repo", repo, "error", err)
		}
		return false
	}
	return true
}

// ListRepoDocs lists the recognized documentation files in a repository's
// doc/ folder. A missing doc folder yields an empty result; a missing
// repository is a NotFound error.
func (s *Service) ListRepoDocs(ctx context.Context, org, repo string) ([]DocFile, error) {
	_, dir, _, err := s.client.Repositories.GetContents(ctx, org, repo, "doc", nil)
	if err != nil {
		if isNotFoundStatus(err) {
			// 404 covers both "no doc folder" and "no such repo";
			// only the former is an empty success.
			if _, _, getErr := s.client.Repositories.Get(ctx, org, repo); getErr != nil {
				if isNotFoundStatus(getErr) {
					return nil, fmt.Errorf("%w: repository %s/%s", ErrNotFound, org, repo)
				}
				return nil, classifyError(getErr)
			}
			s.log.Info("no doc folder", "org", org, "repo", repo)
			return []DocFile{}, nil
		}
		return nil, classifyError(err)
	}
	if dir == nil {
		// doc exists but is a file, so there is no doc folder to list.
		return []DocFile{}, nil
	}

	files := make([]DocFile, 0, len(dir))
	skipped := 0
	for _, item := range dir {
		if item.GetType() != "file" {
			continue
		}
		if !IsDocFile(item.GetPath()) {
			skipped++
			continue
		}
		files = append(files, DocFile{
			ID:          item.GetSHA(),
			Name:        item.GetName(),
			Path:        item.GetPath(),
			Type:        DetermineType(item.GetName()),
			Size:        item.GetSize(),
			URL:         item.GetHTMLURL(),
			DownloadURL: item.GetDownloadURL(),
			SHA:         item.GetSHA(),
		})
	}

	s.log.Info("listed doc folder", "org", org, "repo", repo,
		"files", len(files), "skipped", skipped)
	return files, nil
}

// GetFileContent fetches a single file and decodes its content to UTF-8
// text. Directory paths are an error; binary content surfaces as a
// decoding error rather than a silent substitution.
func (s *Service) GetFileContent(ctx context.Context, org, repo, path string) (*FileContent, error) {
	file, dir, _, err := s.client.Repositories.GetContents(ctx, org, repo, path, nil)
	if err != nil {
		if isNotFoundStatus(err) {
			return nil, fmt.Errorf("%w: file %s in %s/%s", ErrNotFound, path, org, repo)
		}
		return nil, classifyError(err)
	}
	if dir != nil {
		return nil, &APIError{
			StatusCode: 0,
			Message:    fmt.Sprintf("path %q is a directory, not a file", path),
		}
	}
	if file == nil {
		return nil, &APIError{StatusCode: 0, Message: fmt.Sprintf("no content returned for %q", path)}
	}

	content, err := decodeContent(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.log.Info("fetched file content", "org", org, "repo", repo,
		"path", path, "bytes", len(content))
	return &FileContent{
		Name:     file.GetName(),
		Path:     file.GetPath(),
		Content:  content,
		Size:     file.GetSize(),
		SHA:      file.GetSHA(),
		Encoding: file.GetEncoding(),
	}, nil
}

// decodeContent decodes a contents-API payload to text. The API wraps
// base64 output in newlines, which must be stripped before decoding.
func decodeContent(file *github.RepositoryContent) (string, error) {
	if file.Content == nil || *file.Content == "" {
		return "", nil
	}
	if file.GetEncoding() != "base64" {
		return *file.Content, nil
	}

	raw := strings.ReplaceAll(*file.Content, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: binary content", ErrDecoding)
	}
	return string(decoded), nil
}

// SearchDocs searches doc folders across all repositories in an
// organization. There is no fallback: a search failure is terminal for the
// call, and a 403 surfaces as the rate-limited kind.
func (s *Service) SearchDocs(ctx context.Context, org, query string) ([]SearchHit, error) {
	q := fmt.Sprintf("org:%s path:doc %s", org, query)
	result, _, err := s.client.Search.Code(ctx, q, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: codeSearchPageSize},
	})
	if err != nil {
		return nil, classifySearchError(err)
	}

	hits := make([]SearchHit, 0, len(result.CodeResults))
	for _, item := range result.CodeResults {
		hits = append(hits, SearchHit{
			Name:       item.GetName(),
			Path:       item.GetPath(),
			Repository: item.GetRepository().GetName(),
			URL:        item.GetHTMLURL(),
			SHA:        item.GetSHA(),
		})
	}

	s.log.Info("searched documentation", "org", org, "query", query, "hits", len(hits))
	return hits, nil
}

func newRepoSummary(repo *github.Repository, hasDocFolder bool) RepoSummary {
	return RepoSummary{
		ID:           strconv.FormatInt(repo.GetID(), 10),
		Name:         repo.GetName(),
		Description:  repo.GetDescription(),
		URL:          repo.GetHTMLURL(),
		HasDocFolder: hasDocFolder,
	}
}
