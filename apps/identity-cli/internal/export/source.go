// Package export は相関グループ一式をまとめて生成し、CSVに書き出す。
package export

import (
	"context"
	"fmt"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/client"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

// Source は相関グループ一式の取得元。
// Bundleは複数のgoroutineから同時に呼ばれる。
type Source interface {
	Bundle(ctx context.Context, g model.CorrelationGroup) (map[model.SpoofType]string, error)
}

// EngineSource はローカルのEngineで生成する取得元。
type EngineSource struct {
	engine *engine.Engine
	ref    *engine.Reference
}

// NewEngineSource は新しいEngineSourceを生成する。
func NewEngineSource(eng *engine.Engine, ref *engine.Reference) *EngineSource {
	return &EngineSource{engine: eng, ref: ref}
}

// Bundle はEngineで相関グループ一式を生成する。
func (s *EngineSource) Bundle(ctx context.Context, g model.CorrelationGroup) (map[model.SpoofType]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.engine.GenerateBundle(g, s.ref)
}

// BundleClient はIdentity APIからバンドルを取得するクライアント。
type BundleClient interface {
	Bundle(ctx context.Context, group string, ref *client.Reference) (*client.BundleResponse, error)
}

// APISource はIdentity APIから取得する取得元。
type APISource struct {
	client BundleClient
	ref    *client.Reference
}

// NewAPISource は新しいAPISourceを生成する。
func NewAPISource(c BundleClient, ref *client.Reference) *APISource {
	return &APISource{client: c, ref: ref}
}

// Bundle はIdentity APIから相関グループ一式を取得する。
func (s *APISource) Bundle(ctx context.Context, g model.CorrelationGroup) (map[model.SpoofType]string, error) {
	resp, err := s.client.Bundle(ctx, string(g), s.ref)
	if err != nil {
		return nil, err
	}
	values := make(map[model.SpoofType]string, len(resp.Values))
	for name, value := range resp.Values {
		t, err := model.ParseSpoofType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", client.ErrInvalidResponse, err)
		}
		if t.Group() != g {
			return nil, fmt.Errorf("%w: %s does not belong to %s", client.ErrInvalidResponse, t, g)
		}
		values[t] = value
	}
	return values, nil
}
