package repository

import (
	"context"

	"github.com/erievs/FourthTube/domain/model"
)

// ISubscription stores the subscribed channel directory. Invalid channels
// (failed URL-shape checks) are retained in storage and only filtered from
// display lists, so a transient upstream glitch never destroys user data.
type ISubscription interface {
	// List returns every stored channel ordered by name, including invalid ones.
	List(ctx context.Context) ([]model.ChannelSummary, error)
	// ListValid returns only channels that pass validity checks.
	ListValid(ctx context.Context) ([]model.ChannelSummary, error)
	// Upsert inserts or replaces a channel by id.
	Upsert(ctx context.Context, channel model.ChannelSummary) error
	// Delete removes a channel by id.
	Delete(ctx context.Context, channelID string) error
	// IsSubscribed reports whether a valid channel with the id exists.
	IsSubscribed(ctx context.Context, channelID string) (bool, error)
}
