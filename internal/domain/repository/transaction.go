package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
//
// Each domain merger runs its mutation step (transfer + delete) inside one
// transaction obtained here. There is deliberately no transaction spanning
// both domains; the orchestrator sequences two independent commits.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewSubscriptionRepository returns a SubscriptionRepository bound to the current transaction.
	NewSubscriptionRepository() SubscriptionRepository

	// NewInteractionRepository returns an InteractionRepository bound to the current transaction.
	NewInteractionRepository() InteractionRepository

	// NewMergeOperationRepository returns a MergeOperationRepository bound to the current transaction.
	NewMergeOperationRepository() MergeOperationRepository
}
