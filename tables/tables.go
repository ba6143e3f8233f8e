package tables

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
)

// Kind identifies one of the code tables.
type Kind uint8

const (
	KindLanguage Kind = iota + 1
	KindCountry
	KindCivicType
	KindImageType
	KindMapDatum
)

func (k Kind) String() string {
	switch k {
	case KindLanguage:
		return "language"
	case KindCountry:
		return "country"
	case KindCivicType:
		return "civic address type"
	case KindImageType:
		return "image type"
	case KindMapDatum:
		return "map datum"
	default:
		return "unknown"
	}
}

// ParseKind parses a table name as accepted on the command line.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "language", "languages":
		return KindLanguage, nil
	case "country", "countries":
		return KindCountry, nil
	case "civic", "civic-type", "civic-types":
		return KindCivicType, nil
	case "image", "image-type", "image-types":
		return KindImageType, nil
	case "datum", "datums", "map-datum":
		return KindMapDatum, nil
	default:
		return 0, fmt.Errorf("%w: table %q", errs.ErrUnknownKey, name)
	}
}

// Code is the result of a generic table lookup.
//
// Language and country codes are carried in Text; civic types, image types and
// map datums are carried in Value.
type Code struct {
	Kind  Kind
	Name  string
	Text  string
	Value uint8
}

// Tables is an immutable set of code tables.
type Tables struct {
	languages     map[string]string
	languageNames map[string]string
	countries     map[string]string
	countryNames  map[string]string
	civicTypes    map[string]uint8
	imageTypes    map[string]format.MapType
	datums        map[string]format.MapDatum
}

var defaultTables = sync.OnceValue(New)

// Default returns the process-wide tables, building them on first use.
func Default() *Tables {
	return defaultTables()
}

// New builds a fresh set of tables.
//
// Most callers should use Default; New exists for tests and for hosts that
// prefer to own the instance they pass around.
func New() *Tables {
	t := &Tables{
		languages:     languageCodes,
		languageNames: invert(languageCodes),
		countries:     countryCodes,
		countryNames:  invert(countryCodes),
		civicTypes:    civicTypes,
		imageTypes:    make(map[string]format.MapType),
		datums:        make(map[string]format.MapDatum),
	}

	for m := format.MapURLDefined; m.IsValid(); m++ {
		t.imageTypes[m.String()] = m
	}
	for d := format.DatumWGS84; d.IsValid(); d++ {
		t.datums[d.String()] = d
	}

	return t
}

// Lookup resolves name in the table identified by kind.
//
// Returns:
//   - Code: The resolved code
//   - error: ErrUnknownKey if name has no entry or kind is not a table
func (t *Tables) Lookup(kind Kind, name string) (Code, error) {
	code := Code{Kind: kind, Name: name}

	var err error
	switch kind {
	case KindLanguage:
		code.Text, err = t.Language(name)
	case KindCountry:
		code.Text, err = t.Country(name)
	case KindCivicType:
		code.Value, err = t.CivicType(name)
	case KindImageType:
		var m format.MapType
		m, err = t.ImageType(name)
		code.Value = uint8(m)
	case KindMapDatum:
		var d format.MapDatum
		d, err = t.MapDatum(name)
		code.Value = uint8(d)
	default:
		err = fmt.Errorf("%w: table kind %d", errs.ErrUnknownKey, uint8(kind))
	}
	if err != nil {
		return Code{}, err
	}

	return code, nil
}

// Language returns the ISO 639-1 code of a language name.
func (t *Tables) Language(name string) (string, error) {
	return lookup(t.languages, KindLanguage, name)
}

// Country returns the ISO 3166-1 alpha-2 code of a country name.
func (t *Tables) Country(name string) (string, error) {
	return lookup(t.countries, KindCountry, name)
}

// CivicType returns the CA type of a civic address element name.
func (t *Tables) CivicType(name string) (uint8, error) {
	return lookup(t.civicTypes, KindCivicType, name)
}

// ImageType returns the map type of an image type name.
func (t *Tables) ImageType(name string) (format.MapType, error) {
	return lookup(t.imageTypes, KindImageType, name)
}

// MapDatum returns the datum of a map datum name.
func (t *Tables) MapDatum(name string) (format.MapDatum, error) {
	return lookup(t.datums, KindMapDatum, name)
}

// LanguageName returns the language name for an ISO 639-1 code, case-insensitive.
func (t *Tables) LanguageName(code string) (string, bool) {
	name, ok := t.languageNames[strings.ToLower(code)]
	return name, ok
}

// CountryName returns the country name for an ISO 3166-1 alpha-2 code, case-insensitive.
func (t *Tables) CountryName(code string) (string, bool) {
	name, ok := t.countryNames[strings.ToUpper(code)]
	return name, ok
}

// Names returns the sorted names of a table, as offered by a form.
func (t *Tables) Names(kind Kind) []string {
	var names []string
	switch kind {
	case KindLanguage:
		names = keys(t.languages)
	case KindCountry:
		names = keys(t.countries)
	case KindCivicType:
		names = keys(t.civicTypes)
	case KindImageType:
		names = keys(t.imageTypes)
	case KindMapDatum:
		names = keys(t.datums)
	}
	slices.Sort(names)

	return names
}

// Len returns the number of entries of a table.
func (t *Tables) Len(kind Kind) int {
	switch kind {
	case KindLanguage:
		return len(t.languages)
	case KindCountry:
		return len(t.countries)
	case KindCivicType:
		return len(t.civicTypes)
	case KindImageType:
		return len(t.imageTypes)
	case KindMapDatum:
		return len(t.datums)
	default:
		return 0
	}
}

func lookup[V any](m map[string]V, kind Kind, name string) (V, error) {
	v, ok := m[name]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %s %q", errs.ErrUnknownKey, kind, name)
	}

	return v, nil
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for name, code := range m {
		out[code] = name
	}

	return out
}
