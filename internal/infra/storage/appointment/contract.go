package appointment

import (
	"context"
	"database/sql"

	"github.com/parisstyle/PS-SalonService/pkg/dbmetrics"
)

// Database interfaces shared with dbmetrics so repositories work over
// *sql.DB, *dbmetrics.DB and transaction executors alike
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *sql.DB and *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
