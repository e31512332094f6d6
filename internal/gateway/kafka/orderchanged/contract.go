//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderchanged_test
package orderchanged

import (
	"context"
)

type producer interface {
	Send(ctx context.Context, key, value []byte) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
