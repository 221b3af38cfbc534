package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/erievs/FourthTube/domain/model"
)

// SubscriptionRepository stores subscribed channels in PostgreSQL. The channel
// document is kept as JSONB so field evolution never needs a migration; only
// the id is relational. Validity is recomputed on load rather than stored,
// because the URL-shape rules may tighten between releases.
type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]model.ChannelSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM subscription_channel ORDER BY payload->>'name' ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.ChannelSummary
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var ch model.ChannelSummary
		if err := json.Unmarshal(raw, &ch); err != nil {
			return nil, err
		}
		ch.Valid = model.ValidateChannel(ch)
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

func (r *SubscriptionRepository) ListValid(ctx context.Context) ([]model.ChannelSummary, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	valid := make([]model.ChannelSummary, 0, len(all))
	for _, ch := range all {
		if ch.Valid {
			valid = append(valid, ch)
		}
	}
	return valid, nil
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, channel model.ChannelSummary) error {
	payload, err := json.Marshal(channel)
	if err != nil {
		return err
	}
	q := `INSERT INTO subscription_channel (channel_id, payload, updated_at)
	      VALUES ($1, $2, $3)
	      ON CONFLICT (channel_id) DO UPDATE SET
	        payload = EXCLUDED.payload,
	        updated_at = EXCLUDED.updated_at`
	_, err = r.db.ExecContext(ctx, q, channel.ID, payload, time.Now().UTC())
	return err
}

func (r *SubscriptionRepository) Delete(ctx context.Context, channelID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subscription_channel WHERE channel_id=$1`, channelID)
	return err
}

func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, channelID string) (bool, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM subscription_channel WHERE channel_id=$1`, channelID,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var ch model.ChannelSummary
	if err := json.Unmarshal(raw, &ch); err != nil {
		return false, err
	}
	return model.ValidateChannel(ch), nil
}
