package connectivity

import "context"

// Source reports network reachability to a [Monitor].
type Source interface {
	// Current returns the reachability observed right now.
	Current(ctx context.Context) (bool, error)

	// Subscribe registers fn to receive every observed value, repeated values
	// included. The returned function removes the subscription.
	Subscribe(fn func(online bool)) (unsubscribe func(), err error)
}
