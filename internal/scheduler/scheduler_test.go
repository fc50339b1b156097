package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReanalyzer is a mock implementation of Reanalyzer
type MockReanalyzer struct {
	mock.Mock
}

func (m *MockReanalyzer) ReanalyzeAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestRun_LogsOutcome(t *testing.T) {
	logger, hook := test.NewNullLogger()
	svc := new(MockReanalyzer)
	svc.On("ReanalyzeAll", mock.Anything).Return(4, nil).Once()
	svc.On("ReanalyzeAll", mock.Anything).Return(1, errors.New("database unavailable")).Once()
	s := New(context.Background(), svc, logger, time.Minute)

	s.Run()
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, 4, hook.LastEntry().Data["refreshed"])

	s.Run()
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "database unavailable")
	svc.AssertExpectations(t)
}

func TestRun_AppliesTimeout(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := new(MockReanalyzer)
	svc.On("ReanalyzeAll", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(0, nil)

	New(context.Background(), svc, logger, time.Second).Run()
	svc.AssertExpectations(t)
}

func TestSchedule(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := New(context.Background(), new(MockReanalyzer), logger, 0)

	_, err := s.Schedule("0 6 * * *")
	assert.NoError(t, err)
	_, err = s.Schedule("every morning")
	assert.Error(t, err)

	s.Start()
	s.Stop()
}
