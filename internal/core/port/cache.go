package port

import (
	"context"

	"github.com/restocinta/orderdesk/internal/core/domain"
)

// MenuCache is a read-through cache for the menu list. Get returns
// domain.ErrDataNotFound on a miss.
//
//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type MenuCache interface {
	Get(ctx context.Context) ([]*domain.MenuItem, error)
	Set(ctx context.Context, items []*domain.MenuItem) error
}
