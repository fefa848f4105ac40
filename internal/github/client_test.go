package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(raw, api *httptest.Server, token string) *Client {
	client := NewClient(token)
	if raw != nil {
		client.RawBaseURL = raw.URL
	}
	if api != nil {
		client.APIBaseURL = api.URL
	}
	return client
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{name: "plain repo url", url: "https://github.com/golang/go", wantOwner: "golang", wantRepo: "go", wantOK: true},
		{name: "trailing slash", url: "https://github.com/golang/go/", wantOwner: "golang", wantRepo: "go", wantOK: true},
		{name: "extra path segments", url: "https://github.com/golang/go/tree/master/src", wantOwner: "golang", wantRepo: "go", wantOK: true},
		{name: "not github", url: "https://gitlab.com/golang/go", wantOK: false},
		{name: "missing repo", url: "https://github.com/golang", wantOK: false},
		{name: "not a url", url: "golang/go", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := ParseRepoURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOwner, owner)
				assert.Equal(t, tt.wantRepo, repo)
			}
		})
	}
}

func TestGetReadme(t *testing.T) {
	t.Run("main branch readme is returned", func(t *testing.T) {
		raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/golang/go/main/README.md", r.URL.Path)
			w.Write([]byte("# The Go Programming Language"))
		}))
		defer raw.Close()

		content, err := newTestClient(raw, nil, "").GetReadme(context.Background(), "golang", "go")
		require.NoError(t, err)
		assert.Equal(t, "# The Go Programming Language", content)
	})

	t.Run("falls back to master when main is missing", func(t *testing.T) {
		raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/golang/go/main/README.md" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			assert.Equal(t, "/golang/go/master/README.md", r.URL.Path)
			w.Write([]byte("# master readme"))
		}))
		defer raw.Close()

		content, err := newTestClient(raw, nil, "").GetReadme(context.Background(), "golang", "go")
		require.NoError(t, err)
		assert.Equal(t, "# master readme", content)
	})

	t.Run("missing on both branches yields ErrReadmeNotFound", func(t *testing.T) {
		raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer raw.Close()

		_, err := newTestClient(raw, nil, "").GetReadme(context.Background(), "golang", "go")
		assert.ErrorIs(t, err, ErrReadmeNotFound)
	})
}

func TestGetReadmeForURL(t *testing.T) {
	t.Run("unparseable url reads as a missing readme", func(t *testing.T) {
		_, err := NewClient("").GetReadmeForURL(context.Background(), "https://example.com/not/github")
		assert.ErrorIs(t, err, ErrReadmeNotFound)
	})
}

func TestGetRepoMetadata(t *testing.T) {
	t.Run("full metadata", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/golang/go", r.URL.Path)
			assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
			w.Write([]byte(`{"stargazers_count": 120000, "homepage": "https://go.dev", "license": {"spdx_id": "BSD-3-Clause", "name": "BSD 3-Clause License"}}`))
		}))
		defer api.Close()

		meta, err := newTestClient(nil, api, "").GetRepoMetadata(context.Background(), "golang", "go")
		require.NoError(t, err)
		assert.Equal(t, 120000, meta.Stars)
		require.NotNil(t, meta.WebsiteURL)
		assert.Equal(t, "https://go.dev", *meta.WebsiteURL)
		require.NotNil(t, meta.License)
		assert.Equal(t, "BSD-3-Clause", *meta.License)
	})

	t.Run("missing homepage and license stay nil", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"stargazers_count": 5, "homepage": "", "license": null}`))
		}))
		defer api.Close()

		meta, err := newTestClient(nil, api, "").GetRepoMetadata(context.Background(), "someone", "tiny")
		require.NoError(t, err)
		assert.Equal(t, 5, meta.Stars)
		assert.Nil(t, meta.WebsiteURL)
		assert.Nil(t, meta.License)
	})

	t.Run("token is sent on api requests", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "token gh_token_123", r.Header.Get("Authorization"))
			w.Write([]byte(`{"stargazers_count": 1}`))
		}))
		defer api.Close()

		_, err := newTestClient(nil, api, "gh_token_123").GetRepoMetadata(context.Background(), "golang", "go")
		require.NoError(t, err)
	})
}

func TestGetLatestVersion(t *testing.T) {
	t.Run("release tag wins", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/golang/go/releases/latest", r.URL.Path)
			w.Write([]byte(`{"tag_name": "v1.22.0"}`))
		}))
		defer api.Close()

		version, err := newTestClient(nil, api, "").GetLatestVersion(context.Background(), "golang", "go")
		require.NoError(t, err)
		assert.Equal(t, "v1.22.0", version)
	})

	t.Run("falls back to tags when there are no releases", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/golang/go/releases/latest" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			assert.Equal(t, "/repos/golang/go/tags", r.URL.Path)
			w.Write([]byte(`[{"name": "go1.22.0"}, {"name": "go1.21.5"}]`))
		}))
		defer api.Close()

		version, err := newTestClient(nil, api, "").GetLatestVersion(context.Background(), "golang", "go")
		require.NoError(t, err)
		assert.Equal(t, "go1.22.0", version)
	})

	t.Run("no releases and no tags is an error", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/golang/go/releases/latest" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`[]`))
		}))
		defer api.Close()

		_, err := newTestClient(nil, api, "").GetLatestVersion(context.Background(), "golang", "go")
		assert.Error(t, err)
	})
}

func TestGetRepoInfo(t *testing.T) {
	t.Run("combines metadata and version", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/golang/go":
				w.Write([]byte(`{"stargazers_count": 120000, "homepage": "https://go.dev", "license": {"spdx_id": "BSD-3-Clause"}}`))
			case "/repos/golang/go/releases/latest":
				w.Write([]byte(`{"tag_name": "v1.22.0"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer api.Close()

		info := newTestClient(nil, api, "").GetRepoInfo(context.Background(), "https://github.com/golang/go")
		require.NotNil(t, info)
		require.NotNil(t, info.Stars)
		assert.Equal(t, 120000, *info.Stars)
		require.NotNil(t, info.LatestVersion)
		assert.Equal(t, "v1.22.0", *info.LatestVersion)
	})

	t.Run("metadata failures degrade to nil fields", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer api.Close()

		info := newTestClient(nil, api, "").GetRepoInfo(context.Background(), "https://github.com/golang/go")
		require.NotNil(t, info)
		assert.Nil(t, info.Stars)
		assert.Nil(t, info.LatestVersion)
	})

	t.Run("unparseable url yields nil", func(t *testing.T) {
		info := NewClient("").GetRepoInfo(context.Background(), "not-a-github-url")
		assert.Nil(t, info)
	})
}
