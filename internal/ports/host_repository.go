package ports

import (
	"context"

	"github.com/renato0307/shellbridge/internal/domain"
)

// HostProfileReader reads saved host profiles
type HostProfileReader interface {
	Get(ctx context.Context, name string) (*domain.HostProfile, error)
	List(ctx context.Context) ([]domain.HostProfile, error)
}

// HostProfileWriter creates, updates and deletes host profiles
type HostProfileWriter interface {
	Add(ctx context.Context, profile domain.HostProfile) error
	Delete(ctx context.Context, name string) error
	MarkUsed(ctx context.Context, name string) error
	Update(ctx context.Context, profile domain.HostProfile) error
}

// HostRepository is the composite interface
type HostRepository interface {
	HostProfileReader
	HostProfileWriter
	Close() error
}
