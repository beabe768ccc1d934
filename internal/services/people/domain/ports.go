package domain

import "context"

// ServicePort is the people service surface other modules consume
type ServicePort interface {
	// Create stores a new person, rejecting duplicate nicknames
	Create(ctx context.Context, in CreatePersonInput) (Person, error)
	// GetByID fetches one person by id
	GetByID(ctx context.Context, id int64) (Person, error)
	// Search returns people whose nickname, name, or stack contains term
	Search(ctx context.Context, term string) ([]Person, error)
	// Count returns the total number of stored people
	Count(ctx context.Context) (int64, error)
}
