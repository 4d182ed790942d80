package transaction

import (
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

func toResponseList(txs []*transaction.Transaction) []transaction.Snapshot {
	resp := make([]transaction.Snapshot, len(txs))
	for i, tx := range txs {
		resp[i] = tx.Snapshot()
	}

	return resp
}
