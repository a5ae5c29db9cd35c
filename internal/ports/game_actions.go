package ports

import "context"

type GameActions interface {
	Explore(ctx context.Context) error
	Battle(ctx context.Context) error
	CloseDialogs(ctx context.Context) error
}
