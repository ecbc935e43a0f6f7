package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/WebMTour-Service/pkg/dbmetrics"
	"github.com/m04kA/WebMTour-Service/pkg/txmanager"
)

// sqlBeginner адаптирует *sql.DB к txmanager.TxBeginner
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager менеджер транзакций для *sql.DB без метрик
func NewTransactionManager(db *sql.DB) *txmanager.Manager {
	return txmanager.NewTransactionManager(sqlBeginner{db: db})
}
