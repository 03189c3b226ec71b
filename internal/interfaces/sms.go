package interfaces

import "context"

type SMSSender interface {
	SendCode(ctx context.Context, phone, code string) error
}
