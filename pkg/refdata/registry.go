package refdata

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
)

// RandSource はランダム選択に用いる乱数源。
type RandSource interface {
	IntN(n int) int
}

const (
	tacLength    = 8
	issuerMinLen = 2
	issuerMaxLen = 4
)

var (
	ouiPattern = regexp.MustCompile(`^[0-9A-F]{2}:[0-9A-F]{2}:[0-9A-F]{2}$`)
	isoPattern = regexp.MustCompile(`^[A-Z]{2}$`)

	defaultRegistry = sync.OnceValue(func() *Registry { return MustNewRegistry(Builtin()) })
)

// Registry は索引付きの参照テーブル。構築後は不変で、並行読み取りに安全。
type Registry struct {
	carriers     []Carrier
	byMCCMNC     map[string]int
	byCountry    map[string][]int
	countries    []Country
	countryByISO map[string]int
	locations    map[string]LocationData
	locationISOs []string
	presets      []DeviceProfilePreset
	presetByID   map[string]int
	presetsByMfr map[Manufacturer][]int
	tacs         map[Manufacturer][]string
	allTACs      []string
	ouis         map[Manufacturer][]string
	serials      map[Manufacturer][]string
	routers      []RouterVendor
}

// Default は組み込みテーブルから構築したRegistryを返す。初回呼び出し時に一度だけ構築される。
func Default() *Registry {
	return defaultRegistry()
}

// MustNewRegistry はNewRegistryを呼び出し、エラーの場合はパニックする。
func MustNewRegistry(d Data) *Registry {
	r, err := NewRegistry(d)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry は参照テーブルを検証し、索引を構築する。
func NewRegistry(d Data) (*Registry, error) {
	r := &Registry{
		byMCCMNC:     make(map[string]int, len(d.Carriers)),
		byCountry:    make(map[string][]int),
		countryByISO: make(map[string]int, len(d.Countries)),
		locations:    make(map[string]LocationData, len(d.Locations)),
		presetByID:   make(map[string]int, len(d.Presets)),
		presetsByMfr: make(map[Manufacturer][]int),
		tacs:         make(map[Manufacturer][]string, len(d.TACs)),
		ouis:         make(map[Manufacturer][]string, len(d.OUIs)),
		serials:      make(map[Manufacturer][]string, len(d.SerialTemplates)),
	}

	if err := r.indexCountries(d.Countries); err != nil {
		return nil, err
	}
	if err := r.indexLocations(d.Locations); err != nil {
		return nil, err
	}
	if err := r.indexCarriers(d.Carriers); err != nil {
		return nil, err
	}
	if err := r.indexHardware(d); err != nil {
		return nil, err
	}
	if err := r.indexPresets(d.Presets); err != nil {
		return nil, err
	}
	return r, nil
}

func invariant(table, key, reason string) error {
	return fmt.Errorf("%w: table=%s, key=%s: %s", apperr.ErrInvariantViolation, table, key, reason)
}

func (r *Registry) indexCountries(countries []Country) error {
	for _, c := range countries {
		c.ISO = strings.ToUpper(c.ISO)
		if !isoPattern.MatchString(c.ISO) {
			return invariant("countries", c.ISO, "ISO code must be 2 letters")
		}
		if _, dup := r.countryByISO[c.ISO]; dup {
			return invariant("countries", c.ISO, "duplicate ISO code")
		}
		if !luhn.IsDigits(c.PhoneCode) || len(c.PhoneCode) > 3 {
			return invariant("countries", c.ISO, "phone code must be 1-3 digits")
		}
		if c.Emoji == "" {
			c.Emoji = FlagEmoji(c.ISO)
		}
		r.countryByISO[c.ISO] = len(r.countries)
		r.countries = append(r.countries, c)
	}
	return nil
}

func (r *Registry) indexLocations(locations []LocationData) error {
	for _, l := range locations {
		l.CountryISO = strings.ToUpper(l.CountryISO)
		if _, ok := r.countryByISO[l.CountryISO]; !ok {
			return invariant("locations", l.CountryISO, "unknown country")
		}
		if len(l.Timezones) == 0 || len(l.Locales) == 0 {
			return invariant("locations", l.CountryISO, "timezones and locales must not be empty")
		}
		for _, reg := range l.Regions {
			if reg.MinLat > reg.MaxLat || reg.MinLon > reg.MaxLon ||
				!GlobalRegion.Contains(reg.MinLat, reg.MinLon) || !GlobalRegion.Contains(reg.MaxLat, reg.MaxLon) {
				return invariant("locations", l.CountryISO, "malformed region "+reg.Name)
			}
		}
		l.Regions = slices.Clone(l.Regions)
		l.Timezones = slices.Clone(l.Timezones)
		l.Locales = slices.Clone(l.Locales)
		if _, dup := r.locations[l.CountryISO]; !dup {
			r.locationISOs = append(r.locationISOs, l.CountryISO)
		}
		r.locations[l.CountryISO] = l
	}
	sort.Strings(r.locationISOs)
	return nil
}

func (r *Registry) indexCarriers(carriers []Carrier) error {
	for _, c := range carriers {
		c.CountryISO = strings.ToUpper(c.CountryISO)
		if !luhn.IsDigits(c.MCCMNC) || len(c.MCCMNC) < 5 || len(c.MCCMNC) > 6 {
			return invariant("carriers", c.MCCMNC, "MCC/MNC must be 5 or 6 digits")
		}
		if _, dup := r.byMCCMNC[c.MCCMNC]; dup {
			return invariant("carriers", c.MCCMNC, "duplicate MCC/MNC")
		}
		idx, ok := r.countryByISO[c.CountryISO]
		if !ok {
			return invariant("carriers", c.MCCMNC, "unknown country "+c.CountryISO)
		}
		if c.CountryCode == "" {
			c.CountryCode = r.countries[idx].PhoneCode
		}
		if c.CountryCode != r.countries[idx].PhoneCode {
			return invariant("carriers", c.MCCMNC, "country code does not match country")
		}
		if !luhn.IsDigits(c.ICCIDIssuerCode) || len(c.ICCIDIssuerCode) < issuerMinLen || len(c.ICCIDIssuerCode) > issuerMaxLen {
			return invariant("carriers", c.MCCMNC, "ICCID issuer code must be 2-4 digits")
		}
		r.byMCCMNC[c.MCCMNC] = len(r.carriers)
		r.byCountry[c.CountryISO] = append(r.byCountry[c.CountryISO], len(r.carriers))
		r.carriers = append(r.carriers, c)
	}
	return nil
}

func (r *Registry) indexHardware(d Data) error {
	seen := make(map[string]struct{})
	for _, m := range sortedManufacturers(d.TACs) {
		for _, tac := range d.TACs[m] {
			if len(tac) != tacLength || !luhn.IsDigits(tac) {
				return invariant("tacs", tac, "TAC must be 8 digits")
			}
			if _, dup := seen[tac]; !dup {
				seen[tac] = struct{}{}
				r.allTACs = append(r.allTACs, tac)
			}
		}
		r.tacs[m] = slices.Clone(d.TACs[m])
	}
	for m, ouis := range d.OUIs {
		for _, oui := range ouis {
			if !ouiPattern.MatchString(oui) {
				return invariant("ouis", oui, "OUI must be XX:XX:XX uppercase hex")
			}
		}
		r.ouis[m] = slices.Clone(ouis)
	}
	for m, tmpls := range d.SerialTemplates {
		r.serials[m] = slices.Clone(tmpls)
	}
	for _, rv := range d.Routers {
		for _, oui := range rv.OUIs {
			if !ouiPattern.MatchString(oui) {
				return invariant("routers", oui, "OUI must be XX:XX:XX uppercase hex")
			}
		}
		r.routers = append(r.routers, rv)
	}
	return nil
}

func (r *Registry) indexPresets(presets []DeviceProfilePreset) error {
	for _, p := range presets {
		if p.ID == "" {
			return invariant("presets", p.Name, "preset ID must not be empty")
		}
		if _, dup := r.presetByID[p.ID]; dup {
			return invariant("presets", p.ID, "duplicate preset ID")
		}
		pool := r.TACsFor(p.Manufacturer)
		for _, tac := range p.TACPrefixes {
			if !slices.Contains(pool, tac) {
				return invariant("presets", p.ID, "TAC "+tac+" is not in the "+p.Manufacturer.String()+" pool")
			}
		}
		for _, oui := range p.OUIHints {
			if !ouiPattern.MatchString(oui) {
				return invariant("presets", p.ID, "malformed OUI hint "+oui)
			}
		}
		p.TACPrefixes = slices.Clone(p.TACPrefixes)
		p.OUIHints = slices.Clone(p.OUIHints)
		r.presetByID[p.ID] = len(r.presets)
		r.presetsByMfr[p.Manufacturer] = append(r.presetsByMfr[p.Manufacturer], len(r.presets))
		r.presets = append(r.presets, p)
	}
	return nil
}

func sortedManufacturers(m map[Manufacturer][]string) []Manufacturer {
	keys := make([]Manufacturer, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Carriers は全キャリアを返す。
func (r *Registry) Carriers() []Carrier {
	return slices.Clone(r.carriers)
}

// CarrierByMCCMNC はMCC/MNCからキャリアを検索する。
func (r *Registry) CarrierByMCCMNC(mccmnc string) (Carrier, error) {
	idx, ok := r.byMCCMNC[mccmnc]
	if !ok {
		return Carrier{}, fmt.Errorf("%w: mccmnc=%s", apperr.ErrCarrierNotFound, mccmnc)
	}
	return r.carriers[idx], nil
}

// CarriersByCountry は国のキャリア一覧を返す。該当なしの場合は空スライス。
func (r *Registry) CarriersByCountry(iso string) []Carrier {
	idxs := r.byCountry[strings.ToUpper(iso)]
	out := make([]Carrier, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.carriers[i])
	}
	return out
}

// CarriersByName は表示名に部分一致（大文字小文字無視）するキャリアを返す。
func (r *Registry) CarriersByName(name string) []Carrier {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return []Carrier{}
	}
	out := make([]Carrier, 0)
	for _, c := range r.carriers {
		if strings.Contains(strings.ToLower(c.DisplayName), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Countries は全ての国を返す。
func (r *Registry) Countries() []Country {
	return slices.Clone(r.countries)
}

// CountryByISO はISOコードから国を検索する。
func (r *Registry) CountryByISO(iso string) (Country, error) {
	idx, ok := r.countryByISO[strings.ToUpper(iso)]
	if !ok {
		return Country{}, fmt.Errorf("%w: iso=%s", apperr.ErrCountryNotFound, iso)
	}
	return r.countries[idx], nil
}

// LocationFor は国の位置情報参照データを返す。
func (r *Registry) LocationFor(iso string) (LocationData, bool) {
	l, ok := r.locations[strings.ToUpper(iso)]
	return l, ok
}

// LocationCountries は位置情報が登録された国のISOコードを昇順で返す。
func (r *Registry) LocationCountries() []string {
	return slices.Clone(r.locationISOs)
}

// Presets は全ての端末プリセットを返す。
func (r *Registry) Presets() []DeviceProfilePreset {
	return slices.Clone(r.presets)
}

// PresetByID はIDから端末プリセットを検索する。
func (r *Registry) PresetByID(id string) (DeviceProfilePreset, error) {
	idx, ok := r.presetByID[id]
	if !ok {
		return DeviceProfilePreset{}, fmt.Errorf("%w: id=%s", apperr.ErrPresetNotFound, id)
	}
	return r.presets[idx], nil
}

// PresetsByManufacturer はメーカーの端末プリセット一覧を返す。
func (r *Registry) PresetsByManufacturer(m Manufacturer) []DeviceProfilePreset {
	idxs := r.presetsByMfr[m]
	out := make([]DeviceProfilePreset, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.presets[i])
	}
	return out
}

// TACsFor はメーカーのTACプールを返す。未知のメーカーまたは空のプールは全TACを返す。
func (r *Registry) TACsFor(m Manufacturer) []string {
	if tacs := r.tacs[m]; len(tacs) > 0 {
		return slices.Clone(tacs)
	}
	return r.AllTACs()
}

// AllTACs は全メーカーのTACを返す。
func (r *Registry) AllTACs() []string {
	return slices.Clone(r.allTACs)
}

// OUIsFor はメーカーのOUI一覧を返す。未知のメーカーはnil。
func (r *Registry) OUIsFor(m Manufacturer) []string {
	return slices.Clone(r.ouis[m])
}

// SerialTemplatesFor はメーカーのシリアル番号テンプレートを返す。
// 未知のメーカーは汎用テンプレートのみを返す。
func (r *Registry) SerialTemplatesFor(m Manufacturer) []string {
	if tmpls := r.serials[m]; len(tmpls) > 0 {
		return slices.Clone(tmpls)
	}
	return []string{GenericSerialTemplate}
}

// Routers はWi-Fiルーターベンダー一覧を返す。
func (r *Registry) Routers() []RouterVendor {
	return slices.Clone(r.routers)
}

func emptyResult(table, query string) error {
	return apperr.NewLookupError(table, query, apperr.ErrEmptyResultSet)
}

// RandomCarrier は全キャリアから一様に1件選ぶ。
func (r *Registry) RandomCarrier(rnd RandSource) (Carrier, error) {
	if len(r.carriers) == 0 {
		return Carrier{}, emptyResult("carriers", "all")
	}
	return r.carriers[rnd.IntN(len(r.carriers))], nil
}

// RandomCarrierIn は指定国のキャリアから一様に1件選ぶ。
func (r *Registry) RandomCarrierIn(rnd RandSource, iso string) (Carrier, error) {
	cs := r.CarriersByCountry(iso)
	if len(cs) == 0 {
		return Carrier{}, emptyResult("carriers", "country="+iso)
	}
	return cs[rnd.IntN(len(cs))], nil
}

// RandomCarrierNamed は表示名に部分一致するキャリアから一様に1件選ぶ。
func (r *Registry) RandomCarrierNamed(rnd RandSource, name string) (Carrier, error) {
	cs := r.CarriersByName(name)
	if len(cs) == 0 {
		return Carrier{}, emptyResult("carriers", "name="+name)
	}
	return cs[rnd.IntN(len(cs))], nil
}

// RandomPreset は全端末プリセットから一様に1件選ぶ。
func (r *Registry) RandomPreset(rnd RandSource) (DeviceProfilePreset, error) {
	if len(r.presets) == 0 {
		return DeviceProfilePreset{}, emptyResult("presets", "all")
	}
	return r.presets[rnd.IntN(len(r.presets))], nil
}

// RandomLocationCountry は位置情報が登録された国から一様に1件選ぶ。
// 登録がない場合は空文字列とfalseを返す。
func (r *Registry) RandomLocationCountry(rnd RandSource) (string, bool) {
	if len(r.locationISOs) == 0 {
		return "", false
	}
	return r.locationISOs[rnd.IntN(len(r.locationISOs))], true
}
