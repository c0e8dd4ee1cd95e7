package repository

import (
	"context"
	"errors"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// SafeRollback is deferred right after BeginTx. After a successful Commit
// the rollback reports domain.ErrTxClosed, which is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}

// LogMsgRollbackFailed is logged when a deferred rollback fails
const LogMsgRollbackFailed = "Failed to rollback transaction"
