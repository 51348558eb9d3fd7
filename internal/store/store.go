package store

import (
	"context"

	"github.com/usingsystem/video-native-visualizer/pkg/deploy"
)

// Store is the tooling's view of externally stored deployment specs. The
// deployed visualizer reads its configuration from the same location.
type Store interface {
	// PutSpec stores the spec under its app config key.
	PutSpec(ctx context.Context, spec *deploy.Spec) error

	// GetSpec returns the stored spec for a deployment name.
	GetSpec(ctx context.Context, name string) (*deploy.Spec, error)

	// DeleteSpec removes the stored spec for a deployment name.
	DeleteSpec(ctx context.Context, name string) error

	// Close releases underlying resources.
	Close() error
}
