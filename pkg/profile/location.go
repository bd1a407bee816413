package profile

import (
	"slices"
	"strconv"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// 位置情報が1件も登録されていない場合の既定値
const (
	FallbackTimezone = "UTC"
	FallbackLocale   = "en_US"
)

// LocationBundle は国に相関した位置情報。
type LocationBundle struct {
	CountryISO string  `json:"country_iso"`
	Region     string  `json:"region"`
	Timezone   string  `json:"timezone"`
	Locale     string  `json:"locale"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Anchor は参照国のISOコードを返す。
func (b LocationBundle) Anchor() string {
	return b.CountryISO
}

// Values は識別子種別ごとの値を返す。
func (b LocationBundle) Values() map[model.SpoofType]string {
	return map[model.SpoofType]string{
		model.TypeTimezone:          b.Timezone,
		model.TypeLocale:            b.Locale,
		model.TypeLocationLatitude:  FormatCoordinate(b.Latitude),
		model.TypeLocationLongitude: FormatCoordinate(b.Longitude),
	}
}

// FormatCoordinate は座標を小数点以下6桁の10進表記にする。
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Validate は全フィールドが参照国と整合しているかを検証する。
func (b LocationBundle) Validate(reg *refdata.Registry) error {
	var loc refdata.LocationData
	var ok bool
	if reg != nil && b.CountryISO != "" {
		loc, ok = reg.LocationFor(b.CountryISO)
		if !ok {
			return apperr.NewInvariantError("COUNTRY", b.CountryISO, "country has no location data")
		}
	}

	regions := []refdata.Region{refdata.GlobalRegion}
	if ok && len(loc.Regions) > 0 {
		regions = loc.Regions
	}
	inside := false
	for _, r := range regions {
		if r.Contains(b.Latitude, b.Longitude) {
			inside = true
			break
		}
	}
	if !inside {
		return apperr.NewInvariantError(string(model.TypeLocationLatitude),
			FormatCoordinate(b.Latitude)+","+FormatCoordinate(b.Longitude), "outside registered regions")
	}

	if ok {
		if !slices.Contains(loc.Timezones, b.Timezone) {
			return apperr.NewInvariantError(string(model.TypeTimezone), b.Timezone, "not registered for "+b.CountryISO)
		}
		if !slices.Contains(loc.Locales, b.Locale) {
			return apperr.NewInvariantError(string(model.TypeLocale), b.Locale, "not registered for "+b.CountryISO)
		}
	}
	return nil
}

// LocationGenerator は国に相関した位置情報バンドルを生成する。
type LocationGenerator struct {
	gen *generator.Generator
}

// NewLocationGenerator はLocationGeneratorを生成する。
func NewLocationGenerator(gen *generator.Generator) *LocationGenerator {
	return &LocationGenerator{gen: gen}
}

// Generate は国に相関した位置情報バンドルを生成する。
// isoが空の場合は位置情報が登録された国から一様に選び、
// 登録が1件もない場合は地球全体の範囲と既定のタイムゾーン・ロケールを用いる。
func (g *LocationGenerator) Generate(iso string) (LocationBundle, error) {
	reg := g.gen.Registry()
	if iso == "" {
		picked, ok := reg.RandomLocationCountry(g.gen.Rand())
		if !ok {
			lat, lon := g.pointIn(refdata.GlobalRegion)
			return LocationBundle{
				Region:    refdata.GlobalRegion.Name,
				Timezone:  FallbackTimezone,
				Locale:    FallbackLocale,
				Latitude:  lat,
				Longitude: lon,
			}, nil
		}
		iso = picked
	}

	loc, ok := reg.LocationFor(iso)
	if !ok {
		return LocationBundle{}, apperr.NewLookupError("locations", "country="+iso, apperr.ErrEmptyResultSet)
	}
	region := g.region(loc)
	lat, lon := g.pointIn(region)
	return LocationBundle{
		CountryISO: loc.CountryISO,
		Region:     region.Name,
		Timezone:   generator.Pick(g.gen.Rand(), loc.Timezones),
		Locale:     generator.Pick(g.gen.Rand(), loc.Locales),
		Latitude:   lat,
		Longitude:  lon,
	}, nil
}

func (g *LocationGenerator) region(loc refdata.LocationData) refdata.Region {
	if len(loc.Regions) == 0 {
		return refdata.GlobalRegion
	}
	return generator.Pick(g.gen.Rand(), loc.Regions)
}

func (g *LocationGenerator) pointIn(r refdata.Region) (float64, float64) {
	rnd := g.gen.Rand()
	lat := r.MinLat + rnd.Float64()*(r.MaxLat-r.MinLat)
	lon := r.MinLon + rnd.Float64()*(r.MaxLon-r.MinLon)
	return lat, lon
}

// Field は参照国を保ったまま1フィールドだけを生成する。
// 緯度・経度は現在の座標を含む矩形内で再生成し、含む矩形がない場合はfalseを返す。
func (g *LocationGenerator) Field(t model.SpoofType, iso string, current LocationBundle) (string, bool, error) {
	loc, ok := g.gen.Registry().LocationFor(iso)
	if !ok {
		return "", false, apperr.NewLookupError("locations", "country="+iso, apperr.ErrEmptyResultSet)
	}
	switch t {
	case model.TypeTimezone:
		return generator.Pick(g.gen.Rand(), loc.Timezones), true, nil
	case model.TypeLocale:
		return generator.Pick(g.gen.Rand(), loc.Locales), true, nil
	case model.TypeLocationLatitude, model.TypeLocationLongitude:
		region, found := regionContaining(loc, current.Latitude, current.Longitude)
		if !found {
			return "", false, nil
		}
		lat, lon := g.pointIn(region)
		if t == model.TypeLocationLatitude {
			return FormatCoordinate(lat), true, nil
		}
		return FormatCoordinate(lon), true, nil
	default:
		return "", false, nil
	}
}

func regionContaining(loc refdata.LocationData, lat, lon float64) (refdata.Region, bool) {
	if len(loc.Regions) == 0 {
		return refdata.GlobalRegion, refdata.GlobalRegion.Contains(lat, lon)
	}
	for _, r := range loc.Regions {
		if r.Contains(lat, lon) {
			return r, true
		}
	}
	return refdata.Region{}, false
}
