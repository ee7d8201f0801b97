package output

import "context"

// TxManager runs fn inside one storage transaction. Repositories called with the
// ctx handed to fn join that transaction; any error returned by fn rolls back
// every write made through it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
