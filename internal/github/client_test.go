package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient() Client {
	return New(zap.NewNop().Sugar(), config.GitHubConfig{
		APIToken:       "secret",
		UserAgent:      "cla-bot-test",
		RequestTimeout: 5 * time.Second,
	})
}

func TestCommits(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[
			{"author": {"login": "brett"}, "committer": {"login": "web-flow"}},
			{"author": null, "committer": {"login": "web-flow"}}
		]`))
	}))
	defer srv.Close()

	commits, err := testClient().Commits(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	require.Equal(t, "brett", commits[0].Author.Login)
	require.Nil(t, commits[1].Author)
	require.Equal(t, "token secret", gotAuth)
	require.Equal(t, "cla-bot-test", gotAgent)
}

func TestIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"labels_url": "https://api.github.test/labels{/name}"}`))
	}))
	defer srv.Close()

	issue, err := testClient().Issue(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "https://api.github.test/labels{/name}", issue.LabelsURL)
}

func TestAddLabels(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := testClient().AddLabels(context.Background(), srv.URL, []string{entities.LabelNoCLA})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Contains(t, gotContentType, "application/json")

	var names []string
	require.NoError(t, json.Unmarshal(gotBody, &names))
	require.Equal(t, []string{entities.LabelNoCLA}, names)
}

func TestDeleteLabel(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, testClient().DeleteLabel(context.Background(), srv.URL))
	require.Equal(t, http.MethodDelete, gotMethod)
}

func TestCreateComment(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	require.NoError(t, testClient().CreateComment(context.Background(), srv.URL, "hello"))

	var payload struct {
		Body string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Equal(t, "hello", payload.Body)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient()

	_, err := c.Labels(context.Background(), srv.URL)
	require.ErrorIs(t, err, entities.ErrUnexpectedStatus)

	err = c.AddLabels(context.Background(), srv.URL, []string{entities.LabelCLAOK})
	require.ErrorIs(t, err, entities.ErrUnexpectedStatus)

	err = c.DeleteLabel(context.Background(), srv.URL)
	require.ErrorIs(t, err, entities.ErrUnexpectedStatus)
}
