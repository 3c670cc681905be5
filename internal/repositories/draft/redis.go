package draft

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	redisclient "github.com/KirkDiggler/character-builder/internal/redis"
)

const (
	draftKeyPrefix      = "draft:"
	playerMappingPrefix = "draft:player:"
	defaultTTL          = 24 * time.Hour

	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed character draft repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ttl, err := draftTTL(input.Draft)
	if err != nil {
		return nil, err
	}

	// One draft per player: find and drop any draft the player already has.
	playerKey := playerMappingPrefix + input.Draft.PlayerID
	existingDraftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing draft")
	}

	pipe := r.client.TxPipeline()

	if existingDraftID != "" && err != redis.Nil {
		pipe.Del(ctx, draftKeyPrefix+existingDraftID)
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	pipe.Set(ctx, draftKeyPrefix+input.Draft.ID, data, ttl)

	// Player mapping carries no TTL; a stale mapping is self-healed on read.
	pipe.Set(ctx, playerKey, input.Draft.ID, 0)

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	key := draftKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft entities.CharacterDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	playerKey := playerMappingPrefix + input.PlayerID
	draftID, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no draft found for player %s", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player draft mapping")
	}

	getOutput, err := r.Get(ctx, GetInput{ID: draftID})
	if err != nil {
		// The draft expired out from under the mapping; clean it up.
		if errors.IsNotFound(err) {
			r.client.Del(ctx, playerKey)
		}
		return nil, err
	}

	return &GetByPlayerIDOutput{Draft: getOutput.Draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	ttl, err := draftTTL(input.Draft)
	if err != nil {
		return nil, err
	}

	key := draftKeyPrefix + input.Draft.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKeyPrefix+input.ID)
	if getOutput.Draft.PlayerID != "" {
		pipe.Del(ctx, playerMappingPrefix+getOutput.Draft.PlayerID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

// draftTTL derives the key TTL from the draft's expiry, falling back
// to the default when no expiry is set.
func draftTTL(d *entities.CharacterDraft) (time.Duration, error) {
	if d.ExpiresAt <= 0 {
		return defaultTTL, nil
	}
	ttl := time.Until(time.Unix(d.ExpiresAt, 0))
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}
