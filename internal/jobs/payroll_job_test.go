package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPayrollHandler struct{ mock.Mock }

func (m *MockPayrollHandler) Handle(ctx context.Context, cmd commands.GeneratePayrollsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func forPeriod(period time.Time) any {
	return mock.MatchedBy(func(cmd commands.GeneratePayrollsCommand) bool {
		return cmd.Period().Equal(period)
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPayrollJob_Run(t *testing.T) {
	t.Run("should generate the payrolls of the previous month", func(t *testing.T) {
		// Given
		var logs bytes.Buffer
		handler := &MockPayrollHandler{}
		handler.On("Handle", mock.Anything, forPeriod(kernel.Date(2024, time.March, 1))).Return(4, nil).Once()
		job := jobs.NewPayrollJob(handler, "@monthly", slog.New(slog.NewTextHandler(&logs, nil)))

		// When
		count, err := job.Run(t.Context(), time.Date(2024, time.April, 1, 6, 0, 0, 0, time.UTC))

		// Then
		require.NoError(t, err)
		assert.Equal(t, 4, count)
		handler.AssertExpectations(t)
		assert.Contains(t, logs.String(), "component=payroll_job")
		assert.Contains(t, logs.String(), "period=2024-03")
	})

	t.Run("should roll back over the new year", func(t *testing.T) {
		handler := &MockPayrollHandler{}
		handler.On("Handle", mock.Anything, forPeriod(kernel.Date(2023, time.December, 1))).Return(0, nil).Once()
		job := jobs.NewPayrollJob(handler, "@monthly", discardLogger())

		_, err := job.Run(t.Context(), time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		handler.AssertExpectations(t)
	})

	t.Run("should wrap handler errors with the period", func(t *testing.T) {
		failure := errors.New("database is gone")
		handler := &MockPayrollHandler{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(0, failure).Once()
		job := jobs.NewPayrollJob(handler, "@monthly", discardLogger())

		count, err := job.Run(t.Context(), time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))

		require.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "2024-03")
		assert.Zero(t, count)
	})
}

func TestPayrollJob_Start(t *testing.T) {
	t.Run("should reject a malformed schedule", func(t *testing.T) {
		job := jobs.NewPayrollJob(&MockPayrollHandler{}, "every month", discardLogger())

		err := job.Start()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "every month")
	})

	t.Run("should run on schedule until stopped", func(t *testing.T) {
		// Given
		handler := &MockPayrollHandler{}
		ran := make(chan struct{}, 1)
		handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		})
		job := jobs.NewPayrollJob(handler, "* * * * * *", discardLogger())

		// When
		require.NoError(t, job.Start())
		defer job.Stop()

		// Then
		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("payroll job did not run")
		}
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should fail to start with a malformed schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockPayrollHandler{}, "0 0", discardLogger())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "payroll job")
	})

	t.Run("should start and stop every job", func(t *testing.T) {
		manager := jobs.NewJobManager(&MockPayrollHandler{}, "0 0 6 1 * *", discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
