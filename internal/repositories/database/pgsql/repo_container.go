package pgsql

import (
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		BillRepo:        newPgxBillRepository(dbPool),
		GoalRepo:        newPgxGoalRepository(dbPool),
		NetWorthRepo:    newPgxNetWorthRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
