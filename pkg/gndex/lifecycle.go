package gndex

import (
	"context"
)

// SchemaManager creates dataset tables.
type SchemaManager interface {
	// Create creates all tables and indexes. If tables already exist
	// Create fails unless force is true, in which case the tables are
	// dropped first.
	Create(ctx context.Context, force bool) error
}

// Populator loads a dataset into an empty schema.
type Populator interface {
	// Populate reads a dataset dump from path and inserts all its
	// records. It also records the dataset version.
	Populate(ctx context.Context, path string) error
}

// Optimizer tidies a populated dataset.
type Optimizer interface {
	// Optimize removes rows that reference missing records and
	// refreshes statistics of the storage engine.
	Optimize(ctx context.Context) error
}
