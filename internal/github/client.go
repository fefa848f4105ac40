package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// ErrReadmeNotFound is returned when no README.md exists on the main or
// master branch of the repository, or the URL is not a GitHub repo URL.
var ErrReadmeNotFound = errors.New("readme not found")

var repoURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)(/|$)`)

// Client talks to GitHub's raw-content host and REST API. Base URLs are
// exported so tests can point them at a local server.
type Client struct {
	RawBaseURL string
	APIBaseURL string
	httpClient *http.Client
	token      string
}

// NewClient creates a GitHub client. The token is optional; when set it is
// sent on REST API calls for higher rate limits.
func NewClient(token string) *Client {
	return &Client{
		RawBaseURL: "https://raw.githubusercontent.com",
		APIBaseURL: "https://api.github.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
	}
}

// RepoMetadata is the subset of repository metadata surfaced to callers.
type RepoMetadata struct {
	Stars      int     `json:"stars"`
	WebsiteURL *string `json:"websiteUrl"`
	License    *string `json:"license"`
}

// RepoInfo combines repository metadata with the latest release tag.
type RepoInfo struct {
	Stars         *int    `json:"stars"`
	LatestVersion *string `json:"latestVersion"`
	WebsiteURL    *string `json:"websiteUrl"`
	License       *string `json:"license"`
}

// ParseRepoURL extracts the owner and repository name from a GitHub URL like
// https://github.com/owner/repo, with or without a trailing slash or path.
func ParseRepoURL(githubURL string) (owner, repo string, ok bool) {
	match := repoURLPattern.FindStringSubmatch(githubURL)
	if match == nil {
		return "", "", false
	}
	return match[1], match[2], true
}

// GetReadme fetches the repository's README.md as plain text, trying the
// main branch first and falling back to master.
func (c *Client) GetReadme(ctx context.Context, owner, repo string) (string, error) {
	for _, branch := range []string{"main", "master"} {
		rawURL := fmt.Sprintf("%s/%s/%s/%s/README.md", c.RawBaseURL, owner, repo, branch)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return "", errors.Wrap(err, "failed to create readme request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", errors.Wrap(err, "failed to fetch readme")
		}
		if resp.StatusCode == http.StatusOK {
			content, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return "", errors.Wrap(err, "failed to read readme body")
			}
			return string(content), nil
		}
		resp.Body.Close()
	}
	return "", ErrReadmeNotFound
}

// GetReadmeForURL parses the repository URL and fetches its README. An
// unparseable URL is reported the same way as a missing README.
func (c *Client) GetReadmeForURL(ctx context.Context, githubURL string) (string, error) {
	owner, repo, ok := ParseRepoURL(githubURL)
	if !ok {
		return "", ErrReadmeNotFound
	}
	return c.GetReadme(ctx, owner, repo)
}

func (c *Client) apiGet(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIBaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create api request")
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "github api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("github api returned status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetRepoMetadata fetches star count, homepage and license for a repository.
func (c *Client) GetRepoMetadata(ctx context.Context, owner, repo string) (*RepoMetadata, error) {
	var payload struct {
		StargazersCount int    `json:"stargazers_count"`
		Homepage        string `json:"homepage"`
		License         *struct {
			SpdxID string `json:"spdx_id"`
			Name   string `json:"name"`
		} `json:"license"`
	}
	if err := c.apiGet(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), &payload); err != nil {
		return nil, err
	}

	meta := &RepoMetadata{Stars: payload.StargazersCount}
	if payload.Homepage != "" {
		meta.WebsiteURL = &payload.Homepage
	}
	if payload.License != nil {
		license := payload.License.SpdxID
		if license == "" {
			license = payload.License.Name
		}
		if license != "" {
			meta.License = &license
		}
	}
	return meta, nil
}

// GetLatestVersion returns the latest release tag, falling back to the most
// recent tag when the repository has no releases.
func (c *Client) GetLatestVersion(ctx context.Context, owner, repo string) (string, error) {
	var release struct {
		TagName string `json:"tag_name"`
	}
	err := c.apiGet(ctx, fmt.Sprintf("/repos/%s/%s/releases/latest", owner, repo), &release)
	if err == nil && release.TagName != "" {
		return release.TagName, nil
	}

	var tags []struct {
		Name string `json:"name"`
	}
	if err := c.apiGet(ctx, fmt.Sprintf("/repos/%s/%s/tags", owner, repo), &tags); err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", errors.New("no releases or tags found")
	}
	return tags[0].Name, nil
}

// GetRepoInfo gathers metadata and the latest version for a repository URL.
// Individual lookup failures degrade to nil fields rather than failing the
// whole call; only an unparseable URL yields a nil result.
func (c *Client) GetRepoInfo(ctx context.Context, githubURL string) *RepoInfo {
	owner, repo, ok := ParseRepoURL(githubURL)
	if !ok {
		return nil
	}

	info := &RepoInfo{}
	if meta, err := c.GetRepoMetadata(ctx, owner, repo); err == nil {
		info.Stars = &meta.Stars
		info.WebsiteURL = meta.WebsiteURL
		info.License = meta.License
	}
	if version, err := c.GetLatestVersion(ctx, owner, repo); err == nil {
		info.LatestVersion = &version
	}
	return info
}
