package domain

import (
	"context"

	"github.com/brettcannon/the-knights-who-say-ni/internal/clarecords"
	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"
	"github.com/brettcannon/the-knights-who-say-ni/internal/github"

	"github.com/stretchr/testify/mock"
)

type ghMock struct{ mock.Mock }

var _ github.Client = (*ghMock)(nil)

func (m *ghMock) Commits(ctx context.Context, url string) ([]github.Commit, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]github.Commit), args.Error(1)
}

func (m *ghMock) Issue(ctx context.Context, url string) (*github.Issue, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Issue), args.Error(1)
}

func (m *ghMock) Labels(ctx context.Context, url string) ([]github.Label, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]github.Label), args.Error(1)
}

func (m *ghMock) AddLabels(ctx context.Context, url string, names []string) error {
	return m.Called(ctx, url, names).Error(0)
}

func (m *ghMock) DeleteLabel(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}

func (m *ghMock) CreateComment(ctx context.Context, url, body string) error {
	return m.Called(ctx, url, body).Error(0)
}

type recordsMock struct{ mock.Mock }

var _ clarecords.Records = (*recordsMock)(nil)

func (m *recordsMock) OnStart(_ context.Context) error { return nil }
func (m *recordsMock) OnStop(_ context.Context) error  { return nil }

func (m *recordsMock) Lookup(ctx context.Context, username string) (entities.CLAStatus, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(entities.CLAStatus), args.Error(1)
}
