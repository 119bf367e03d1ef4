package identity

import "context"

// AccountWithProfile pairs an account with its employee profile.
type AccountWithProfile struct {
	Account Account
	Profile Profile
}

// AccountStats holds per-role and per-status account counts for the
// admin dashboard.
type AccountStats struct {
	ActiveAccounts      int64
	DeactivatedAccounts int64
	Admins              int64
	Executives          int64
	OfficeCheckers      int64
	SiteCheckers        int64
	Encoders            int64
}

// AccountRepository defines persistence for accounts and profiles.
type AccountRepository interface {
	// Create persists a new account together with its profile.
	Create(ctx context.Context, account *Account, profile *Profile) error

	// CreateBatch persists many account/profile pairs in one transaction.
	CreateBatch(ctx context.Context, pairs []AccountWithProfile) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account *Account) error

	// FindByID finds an account by its ID.
	FindByID(ctx context.Context, accountID string) (*Account, error)

	// FindByEmail finds an account by email (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindProfile finds the profile attached to an account.
	FindProfile(ctx context.Context, accountID string) (*Profile, error)

	// FindAll returns all accounts joined to their profiles, most
	// recently updated first.
	FindAll(ctx context.Context) ([]AccountWithProfile, error)

	// ExistsByEmail checks whether an email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Stats returns account counts per role and status.
	Stats(ctx context.Context) (AccountStats, error)
}
