package engine

import (
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// independent は相関グループに属さない識別子を生成する。
func (e *Engine) independent(t model.SpoofType) string {
	switch t {
	case model.TypeAndroidID:
		return e.gen.AndroidID()
	case model.TypeGSFID:
		return e.gen.GSFID()
	case model.TypeAdvertisingID:
		return e.gen.AdvertisingID()
	case model.TypeMediaDRMID:
		return e.gen.MediaDRMID()
	case model.TypeInstanceID:
		return e.gen.InstanceID()
	case model.TypeWifiSSID:
		return e.gen.WifiSSID()
	case model.TypeWifiBSSID:
		return e.gen.WifiBSSID()
	default:
		return ""
	}
}

// independentValues は独立グループの全識別子の値。
type independentValues map[model.SpoofType]string

func (v independentValues) Anchor() string { return "" }

func (v independentValues) Values() map[model.SpoofType]string { return v }

func (v independentValues) Validate(*refdata.Registry) error { return nil }

func (e *Engine) independentBundle() independentValues {
	types := model.GroupNone.Types()
	v := make(independentValues, len(types))
	for _, t := range types {
		v[t] = e.independent(t)
	}
	return v
}
