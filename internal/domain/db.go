package domain

import "context"

// Database is the storage backend behind the closet. Implementations own their
// migrations and hand out the repositories the services are built from.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error

	Users() UserRepository
	Garments() GarmentRepository
	WashSessions() WashSessionRepository
	Appliances() ApplianceRepository
}
