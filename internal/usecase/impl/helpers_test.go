package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"foodgram/config"
	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/repository"
	mockRepo "foodgram/internal/mocks/repository"
	mockSvc "foodgram/internal/mocks/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Pagination: &config.PaginationConfig{DefaultLimit: 6, MaxLimit: 100},
	}
}

func userActor(id int64) *entity.Actor {
	return &entity.Actor{UserID: id, Username: "user", Roles: entity.Roles{entity.RoleUser}}
}

func adminActor(id int64) *entity.Actor {
	return &entity.Actor{UserID: id, Username: "admin", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
}

// expectTx makes txManager run the transaction body against a factory prepared by setup.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// newURLImageStore returns an image store mock that only answers URL lookups.
func newURLImageStore(t *testing.T) *mockSvc.MockImageStore {
	images := mockSvc.NewMockImageStore(t)
	images.EXPECT().URL(mock.Anything).RunAndReturn(func(key string) string {
		if key == "" {
			return ""
		}

		return "http://media.test/" + key
	}).Maybe()

	return images
}
