package api

import (
	"context"

	"github.com/dmitrijs2005/splits-cli/internal/client/models"
)

// Client is the API contract against the Splits backend. All methods honor
// context cancellation and timeouts.
type Client interface {
	Close() error

	// Login exchanges contact+password for a credential token.
	Login(ctx context.Context, contact, password string) (string, error)

	// Register creates an account and returns a credential token.
	Register(ctx context.Context, name, contact, password string) (string, error)

	// Groups lists the groups of the authenticated user.
	Groups(ctx context.Context) ([]models.Group, error)

	// GroupByID fetches one group including its members.
	GroupByID(ctx context.Context, groupID string) (*models.Group, error)

	// Expenses fetches the expense log, pending balance and settlement
	// history of a group.
	Expenses(ctx context.Context, groupID string) (*models.GroupActivity, error)

	// CreateGroup creates a group with the given member contact numbers.
	CreateGroup(ctx context.Context, groupName string, memberContacts []int64) error

	// AddExpense records an expense in a group.
	AddExpense(ctx context.Context, groupID string, expense models.NewExpense) error

	// AddMember adds a member to a group by contact number.
	AddMember(ctx context.Context, groupID, name, contact string) error

	// RemoveMember removes a member from a group by contact number.
	RemoveMember(ctx context.Context, groupID, contact string) error

	// AddSettlement records a settlement payment between two members.
	AddSettlement(ctx context.Context, groupID string, settlement models.NewSettlement) error
}
