package store

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

// 識別子フィールドのハッシュフィールド名プレフィックス
const identFieldPrefix = "ident:"

// profileRecord はプロファイルハッシュのメタデータ部分。
// 識別子はident:{TYPE}フィールドにmsgpackで格納する。
type profileRecord struct {
	ID            string `redis:"id"`
	Name          string `redis:"name"`
	CarrierMCCMNC string `redis:"anchor_carrier"`
	PresetID      string `redis:"anchor_preset"`
	CountryISO    string `redis:"anchor_country"`
	SIMState      string `redis:"state_sim"`
	HardwareState string `redis:"state_hardware"`
	LocationState string `redis:"state_location"`
	CreatedAt     int64  `redis:"created_at"`
	UpdatedAt     int64  `redis:"updated_at"`
}

// encodeProfile はプロファイルをHSET用のフィールドマップに変換する。
func encodeProfile(p *model.Profile) (map[string]any, error) {
	rec := profileRecord{
		ID:            p.ID,
		Name:          p.Name,
		CarrierMCCMNC: p.Anchors.CarrierMCCMNC,
		PresetID:      p.Anchors.PresetID,
		CountryISO:    p.Anchors.CountryISO,
		SIMState:      string(p.GroupState(model.GroupSIMCard)),
		HardwareState: string(p.GroupState(model.GroupDeviceHardware)),
		LocationState: string(p.GroupState(model.GroupLocation)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	fields := StructToMap(&rec)
	for t, d := range p.Identifiers {
		b, err := msgpack.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", t, err)
		}
		fields[identFieldPrefix+string(t)] = b
	}
	return fields, nil
}

// decodeProfile はHGETALLの結果からプロファイルを復元する。
// 未知の識別子種別のフィールドは無視する。
func decodeProfile(m map[string]string) (*model.Profile, error) {
	var rec profileRecord
	if err := MapToStruct(m, &rec); err != nil {
		return nil, err
	}

	p := model.NewProfile(rec.ID, rec.Name)
	p.CreatedAt = rec.CreatedAt
	p.UpdatedAt = rec.UpdatedAt
	p.Anchors = model.Anchors{
		CarrierMCCMNC: rec.CarrierMCCMNC,
		PresetID:      rec.PresetID,
		CountryISO:    rec.CountryISO,
	}
	p.GroupStates[model.GroupSIMCard] = decodeState(rec.SIMState)
	p.GroupStates[model.GroupDeviceHardware] = decodeState(rec.HardwareState)
	p.GroupStates[model.GroupLocation] = decodeState(rec.LocationState)

	for field, raw := range m {
		name, ok := strings.CutPrefix(field, identFieldPrefix)
		if !ok {
			continue
		}
		t, err := model.ParseSpoofType(name)
		if err != nil {
			continue
		}
		var d model.DeviceIdentifier
		if err := msgpack.Unmarshal([]byte(raw), &d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t, err)
		}
		d.Type = t
		p.Identifiers[t] = d
	}
	return p, nil
}

func decodeState(s string) model.GroupState {
	if model.GroupState(s) == model.GroupSynced {
		return model.GroupSynced
	}
	return model.GroupDirty
}

// StructToMap はredisタグ付き構造体をmap[string]anyに変換する。
// redis:"-"タグおよびタグなしフィールドはスキップする。
func StructToMap(v any) map[string]any {
	result := make(map[string]any)
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("redis")
		if tag == "" || tag == "-" {
			continue
		}
		result[tag] = val.Field(i).Interface()
	}
	return result
}

// MapToStruct はmap[string]stringからredisタグ付き構造体にデシリアライズする。
func MapToStruct(m map[string]string, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("MapToStruct: pointer required")
	}
	val = val.Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("redis")
		if tag == "" || tag == "-" {
			continue
		}
		strVal, ok := m[tag]
		if !ok {
			continue
		}
		if err := setFieldValue(val.Field(i), strVal); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// setFieldValue は文字列値を対象フィールドの型に変換して設定する。
func setFieldValue(field reflect.Value, strVal string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(strVal)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(strVal, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", strVal, err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(strVal)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", strVal, err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type: %s", field.Kind())
	}
	return nil
}
