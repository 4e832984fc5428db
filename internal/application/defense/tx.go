package defense

import (
	"context"

	"github.com/thesisdesk/backend/internal/domain/defense"
	"github.com/thesisdesk/backend/internal/domain/thesis"
)

// CascadeRepos bundles the repositories touched by a defense cascade,
// all bound to the same storage transaction.
type CascadeRepos struct {
	Defenses         defense.DefenseRepository
	LecturerDefenses defense.LecturerDefenseRepository
	Plans            defense.PlanRepository
	Groups           thesis.GroupRepository
}

// TransactionManager runs a function inside one storage transaction.
// A defense create or update touches defenses, groups, and lecturer
// assignments together; partial failure must roll back all of them.
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(repos CascadeRepos) error) error
}
