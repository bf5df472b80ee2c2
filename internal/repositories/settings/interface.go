// Package settings persists world settings such as the selected rule
// module for each category
package settings

import (
	"context"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/rules"
)

// Repository stores rule module selections. It satisfies
// rules.SelectionStore.
type Repository interface {
	rules.SelectionStore
	SetSelected(ctx context.Context, category rules.Category, moduleID string) error
	ClearSelected(ctx context.Context, category rules.Category) error
	Selections(ctx context.Context) (map[rules.Category]string, error)
}
