package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/thenextech/shoploc-back-end/internal/domain/repository"
	mockRepo "github.com/thenextech/shoploc-back-end/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
