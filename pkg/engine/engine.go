// Package engine は相関した偽装識別子の生成窓口と、相関グループ単位の再生成ポリシーを提供する。
package engine

import (
	"fmt"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/profile"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// bundle は相関グループの生成結果。
type bundle interface {
	Anchor() string
	Values() map[model.SpoofType]string
	Validate(reg *refdata.Registry) error
}

// Engine は参照データと乱数源を束ねた生成エンジン。
// 生成処理は参照データを読むだけで、乱数源以外の共有状態を持たない。
type Engine struct {
	reg *refdata.Registry
	gen *generator.Generator
	sim *profile.SIMGenerator
	hw  *profile.HardwareGenerator
	loc *profile.LocationGenerator
}

// New は新しいEngineを生成する。
// regがnilの場合は組み込み参照データ、rndがnilの場合は暗号論的に安全な乱数源を使う。
func New(reg *refdata.Registry, rnd *generator.Rand) *Engine {
	gen := generator.New(reg, rnd)
	return &Engine{
		reg: gen.Registry(),
		gen: gen,
		sim: profile.NewSIMGenerator(gen),
		hw:  profile.NewHardwareGenerator(gen),
		loc: profile.NewLocationGenerator(gen),
	}
}

// NewDefault は組み込み参照データを使うEngineを生成する。
func NewDefault() *Engine {
	return New(nil, nil)
}

// Registry は参照データを返す。
func (e *Engine) Registry() *refdata.Registry {
	return e.reg
}

// Generate は識別子を1つ生成する。
// 相関グループに属する種別は、refの参照オブジェクト（未指定ならランダムに選んだもの）に整合する値を返す。
func (e *Engine) Generate(t model.SpoofType, ref *Reference) (string, error) {
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %s", apperr.ErrUnknownSpoofType, t)
	}

	switch t.Group() {
	case model.GroupSIMCard:
		c, err := e.resolveCarrier(ref)
		if err != nil {
			return "", err
		}
		v, _ := e.sim.Field(t, c)
		return v, nil
	case model.GroupDeviceHardware:
		p, err := e.resolvePresetFor(t, ref)
		if err != nil {
			return "", err
		}
		v, _ := e.hw.Field(t, p)
		return v, nil
	case model.GroupLocation:
		b, err := e.loc.Generate(isoOf(ref.country()))
		if err != nil {
			return "", err
		}
		return b.Values()[t], nil
	default:
		return e.independent(t), nil
	}
}

// GenerateBundle は相関グループの全フィールドを1つの参照オブジェクトから生成する。
// 生成結果は返す前に検証される。
func (e *Engine) GenerateBundle(g model.CorrelationGroup, ref *Reference) (map[model.SpoofType]string, error) {
	b, err := e.build(g, ref)
	if err != nil {
		return nil, err
	}
	return b.Values(), nil
}

// RegenerateFieldPreservingContext は既存の参照オブジェクトを保ったまま1フィールドだけを再生成する。
// 相関グループに属する種別でrefに参照オブジェクトがない場合はErrMissingReferenceを返す。
func (e *Engine) RegenerateFieldPreservingContext(t model.SpoofType, ref *Reference) (string, error) {
	return e.regenerateField(t, ref, nil)
}

// regenerateField は1フィールドを再生成する。currentは位置情報の現在値で、緯度・経度の再生成時に
// 現在の座標を含む矩形を保つために使う。nilの場合は参照国内の新しい座標を返す。
func (e *Engine) regenerateField(t model.SpoofType, ref *Reference, current *profile.LocationBundle) (string, error) {
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %s", apperr.ErrUnknownSpoofType, t)
	}
	g := t.Group()
	if !ref.Has(g) {
		return "", missingReference(t)
	}

	switch g {
	case model.GroupSIMCard:
		v, _ := e.sim.Field(t, *ref.Carrier)
		return v, nil
	case model.GroupDeviceHardware:
		v, _ := e.hw.Field(t, *ref.Preset)
		return v, nil
	case model.GroupLocation:
		iso := ref.Country.ISO
		if current != nil {
			v, ok, err := e.loc.Field(t, iso, *current)
			if err != nil {
				return "", err
			}
			if ok {
				return v, nil
			}
		}
		if t == model.TypeTimezone || t == model.TypeLocale {
			v, _, err := e.loc.Field(t, iso, profile.LocationBundle{})
			return v, err
		}
		b, err := e.loc.Generate(iso)
		if err != nil {
			return "", err
		}
		return b.Values()[t], nil
	default:
		return e.independent(t), nil
	}
}

// build は相関グループのバンドルを生成し検証する。
func (e *Engine) build(g model.CorrelationGroup, ref *Reference) (bundle, error) {
	var (
		b   bundle
		err error
	)
	switch g {
	case model.GroupSIMCard:
		var c refdata.Carrier
		if c, err = e.resolveCarrier(ref); err == nil {
			b, err = e.sim.Generate(&c)
		}
	case model.GroupDeviceHardware:
		var p refdata.DeviceProfilePreset
		if p, err = e.resolvePreset(ref); err == nil {
			b, err = e.hw.Generate(&p)
		}
	case model.GroupLocation:
		b, err = e.loc.Generate(isoOf(ref.country()))
	case model.GroupNone:
		b = e.independentBundle()
	default:
		return nil, fmt.Errorf("%w: %s", apperr.ErrUnknownGroup, g)
	}
	if err != nil {
		return nil, err
	}
	if err := b.Validate(e.reg); err != nil {
		return nil, err
	}
	return b, nil
}

// resolveCarrier は参照キャリアを返す。未指定の場合は参照国（あれば）のキャリアからランダムに選ぶ。
func (e *Engine) resolveCarrier(ref *Reference) (refdata.Carrier, error) {
	if c := ref.carrier(); c != nil {
		return *c, nil
	}
	if country := ref.country(); country != nil {
		return e.reg.RandomCarrierIn(e.gen.Rand(), country.ISO)
	}
	return e.reg.RandomCarrier(e.gen.Rand())
}

// resolvePreset は参照プリセットを返す。未指定の場合はメーカーのプリセット（なければ全体）からランダムに選ぶ。
func (e *Engine) resolvePreset(ref *Reference) (refdata.DeviceProfilePreset, error) {
	if p := ref.preset(); p != nil {
		return *p, nil
	}
	if m := ref.manufacturer(); m.IsKnown() {
		if ps := e.reg.PresetsByManufacturer(m); len(ps) > 0 {
			return generator.Pick(e.gen.Rand(), ps), nil
		}
	}
	return e.reg.RandomPreset(e.gen.Rand())
}

// resolvePresetFor は単一フィールド生成用の参照プリセットを返す。
// プリセット未指定でメーカーだけが指定された場合、DEVICE_PROFILE以外はメーカーのプール全体から生成する。
func (e *Engine) resolvePresetFor(t model.SpoofType, ref *Reference) (refdata.DeviceProfilePreset, error) {
	if ref.preset() == nil && t != model.TypeDeviceProfile {
		if m := ref.manufacturer(); m.IsKnown() {
			return refdata.DeviceProfilePreset{Manufacturer: m}, nil
		}
	}
	return e.resolvePreset(ref)
}

func isoOf(c *refdata.Country) string {
	if c == nil {
		return ""
	}
	return c.ISO
}
