package refdata

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

// fileFormat は参照データYAMLファイルの構造。
// メーカー名のキーは文字列で受け取り、ParseManufacturerで変換する。
//
// serial_templatesとroutersのssid_templatesでは次の記号がランダムな文字に置き換わる。
//
//	# 数字, @ 英大文字(I/O/Q除く), * 英数字(I/O/Q除く), % 16進大文字, ~ 16進小文字
//
// 英字はすべてそのまま出力される。記号を文字として使う場合は \# のように\を前に置く
// （YAMLの二重引用符内では "\\#" と書く）。
type fileFormat struct {
	Countries       []Country             `yaml:"countries"`
	Locations       []LocationData        `yaml:"locations"`
	Carriers        []Carrier             `yaml:"carriers"`
	Presets         []DeviceProfilePreset `yaml:"presets"`
	TACs            map[string][]string   `yaml:"tacs"`
	OUIs            map[string][]string   `yaml:"ouis"`
	SerialTemplates map[string][]string   `yaml:"serial_templates"`
	Routers         []RouterVendor        `yaml:"routers"`
}

// LoadYAML はYAMLから参照データを読み込む。
// 読み込んだデータは単体では不完全でもよく、Mergeで組み込みテーブルに重ねて使う。
func LoadYAML(r io.Reader) (Data, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return Data{}, nil
		}
		return Data{}, fmt.Errorf("%w: decode reference data: %v", apperr.ErrInvalidRequest, err)
	}

	return Data{
		Countries:       f.Countries,
		Locations:       f.Locations,
		Carriers:        f.Carriers,
		Presets:         f.Presets,
		TACs:            byManufacturer(f.TACs),
		OUIs:            byManufacturer(f.OUIs),
		SerialTemplates: byManufacturer(f.SerialTemplates),
		Routers:         f.Routers,
	}, nil
}

// LoadYAMLFile はファイルから参照データを読み込む。
func LoadYAMLFile(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("open reference data: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadRegistry は組み込みテーブルにpathのYAMLを重ねたRegistryを返す。
// pathが空の場合は組み込みのRegistryを返す。
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	overlay, err := LoadYAMLFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := NewRegistry(Builtin().Merge(overlay))
	if err != nil {
		return nil, fmt.Errorf("invalid reference data in %s: %w", path, err)
	}
	return reg, nil
}

func byManufacturer(in map[string][]string) map[Manufacturer][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[Manufacturer][]string, len(in))
	for name, values := range in {
		m := ParseManufacturer(name)
		out[m] = append(out[m], values...)
	}
	return out
}

// Merge はoverlayをdに重ねた新しいDataを返す。
// 同じキー（ISO、MCC/MNC、プリセットID、ベンダー名）のエントリは置き換え、
// 新しいキーは末尾に追加する。TAC・OUI・シリアルテンプレートはメーカー単位で置き換える。
func (d Data) Merge(overlay Data) Data {
	return Data{
		Countries:       mergeBy(d.Countries, overlay.Countries, func(c Country) string { return c.ISO }),
		Locations:       mergeBy(d.Locations, overlay.Locations, func(l LocationData) string { return l.CountryISO }),
		Carriers:        mergeBy(d.Carriers, overlay.Carriers, func(c Carrier) string { return c.MCCMNC }),
		Presets:         mergeBy(d.Presets, overlay.Presets, func(p DeviceProfilePreset) string { return p.ID }),
		TACs:            mergeMap(d.TACs, overlay.TACs),
		OUIs:            mergeMap(d.OUIs, overlay.OUIs),
		SerialTemplates: mergeMap(d.SerialTemplates, overlay.SerialTemplates),
		Routers:         mergeBy(d.Routers, overlay.Routers, func(r RouterVendor) string { return r.Name }),
	}
}

func mergeBy[T any](base, overlay []T, key func(T) string) []T {
	out := make([]T, 0, len(base)+len(overlay))
	pos := make(map[string]int, len(base))
	for _, v := range base {
		pos[key(v)] = len(out)
		out = append(out, v)
	}
	for _, v := range overlay {
		if i, ok := pos[key(v)]; ok {
			out[i] = v
			continue
		}
		pos[key(v)] = len(out)
		out = append(out, v)
	}
	return out
}

func mergeMap(base, overlay map[Manufacturer][]string) map[Manufacturer][]string {
	out := make(map[Manufacturer][]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
