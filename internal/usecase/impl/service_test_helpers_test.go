package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sellbase/internal/domain/repository"
	mockRepo "sellbase/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// testLogger returns a logger that discards everything.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction wires a transaction manager mock to run the callback
// against the given repository factory, mimicking a committed transaction.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
