// Package store はValkeyへのプロファイル永続化を提供する。
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/valkey"
)

// ProfileStore はプロファイルの読み書きを提供する。
// キー: profile:{ID}（ハッシュ）、idx:profiles（ID集合）
type ProfileStore struct {
	client redis.UniversalClient
}

// NewProfileStore は新しいProfileStoreを生成する。
func NewProfileStore(client redis.UniversalClient) *ProfileStore {
	return &ProfileStore{client: client}
}

// Get はプロファイルを取得する。存在しない場合はErrProfileNotFoundを返す。
func (s *ProfileStore) Get(ctx context.Context, id string) (*model.Profile, error) {
	key := ProfileKey(id)
	m, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, wrapErr("HGETALL", key, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: id=%s", apperr.ErrProfileNotFound, id)
	}
	p, err := decodeProfile(m)
	if err != nil {
		return nil, apperr.NewValkeyError("HGETALL", key, fmt.Errorf("%w: %v", apperr.ErrValkeyCommand, err))
	}
	return p, nil
}

// Exists はプロファイルの存在を確認する。
func (s *ProfileStore) Exists(ctx context.Context, id string) (bool, error) {
	key := ProfileKey(id)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, wrapErr("EXISTS", key, err)
	}
	return n > 0, nil
}

// Save はプロファイル全体を1つのトランザクションで書き込む。
// 既存のハッシュは置き換えられ、古いフィールドは残らない。
func (s *ProfileStore) Save(ctx context.Context, p *model.Profile) error {
	key := ProfileKey(p.ID)
	fields, err := encodeProfile(p)
	if err != nil {
		return apperr.NewValkeyError("HSET", key, fmt.Errorf("%w: %v", apperr.ErrValkeyCommand, err))
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.SAdd(ctx, config.KeyProfileIndex, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return wrapErr("MULTI", key, err)
	}
	return nil
}

// Delete はプロファイルを削除する。存在しない場合はErrProfileNotFoundを返す。
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	key := ProfileKey(id)
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, key)
	pipe.SRem(ctx, config.KeyProfileIndex, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return wrapErr("MULTI", key, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: id=%s", apperr.ErrProfileNotFound, id)
	}
	return nil
}

// List は登録済みプロファイルのIDを昇順で返す。
func (s *ProfileStore) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, config.KeyProfileIndex).Result()
	if err != nil {
		return nil, wrapErr("SMEMBERS", config.KeyProfileIndex, err)
	}
	slices.Sort(ids)
	return ids, nil
}

// wrapErr はValkeyエラーを接続エラーとコマンドエラーに分類して包む。
func wrapErr(op, key string, err error) error {
	if valkey.IsConnectionError(err) || errors.Is(err, redis.ErrClosed) {
		return apperr.NewValkeyError(op, key, fmt.Errorf("%w: %v", apperr.ErrValkeyConnection, err))
	}
	return apperr.NewValkeyError(op, key, fmt.Errorf("%w: %v", apperr.ErrValkeyCommand, err))
}
