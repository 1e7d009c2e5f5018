// Package constants defines shared provider and environment identifiers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// LockProviderMemory selects the in-process keyed mutex pair lock.
	LockProviderMemory = "memory"
	// LockProviderRedis selects the Redis-backed distributed pair lock.
	LockProviderRedis = "redis"
)
