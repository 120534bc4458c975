package unitofwork

import (
	"context"

	"style-weaver-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WardrobeItemRepository() contract.WardrobeItemRepository
}
