package subelem

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/lcikit/encoding"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
	"github.com/arloliu/lcikit/tables"
)

// CivicElement is one civic address element, named the way a user enters it.
type CivicElement struct {
	// Name is the element value, e.g. "Berlin".
	Name string
	// Language is the language name, e.g. "German".
	Language string
	// Type is the civic address type name, e.g. "City".
	Type string
}

// CivicRecord is a civic address: a country and its address elements.
type CivicRecord struct {
	// Country is the country name, e.g. "Germany".
	Country  string
	Elements []CivicElement
}

// Kind implements Record.
func (CivicRecord) Kind() format.Kind { return format.KindCivic }

func (CivicRecord) subelement() {}

type resolvedElement struct {
	language string
	caType   uint8
	name     string
}

func compareResolved(a, b resolvedElement) int {
	return cmp.Or(
		cmp.Compare(a.language, b.language),
		cmp.Compare(a.caType, b.caType),
		cmp.Compare(a.name, b.name),
	)
}

// EncodeCivic encodes a location civic subelement.
//
// Elements are grouped by language code, groups ascending by code. Each group
// starts with a language element (CA type 0) and continues with its elements
// ascending by CA type, ties broken by name. The output therefore depends only on
// the set of elements, not on their order in rec.
//
// Payload layout:
//
//	country code (2 bytes)
//	per language group:
//	    00 02 <language code>
//	    per element: <CA type> <length> <UTF-8 name>
//
// Returns:
//   - []byte: The framed subelement
//   - error: ErrUnknownKey for an unknown country, language or CA type,
//     ErrLengthOverflow if the payload exceeds 255 bytes
func EncodeCivic(rec CivicRecord, tbl *tables.Tables) ([]byte, error) {
	tbl = tablesOrDefault(tbl)

	country, err := tbl.Country(rec.Country)
	if err != nil {
		return nil, err
	}

	elements := make([]resolvedElement, 0, len(rec.Elements))
	for i, el := range rec.Elements {
		lang, err := tbl.Language(el.Language)
		if err != nil {
			return nil, fmt.Errorf("civic element %d: %w", i, err)
		}
		caType, err := tbl.CivicType(el.Type)
		if err != nil {
			return nil, fmt.Errorf("civic element %d: %w", i, err)
		}
		elements = append(elements, resolvedElement{language: lang, caType: caType, name: el.Name})
	}
	slices.SortFunc(elements, compareResolved)

	enc := encoding.NewCivicEncoder(section.MaxPayloadSize)
	defer enc.Finish()

	if err := enc.WriteRaw([]byte(country)); err != nil {
		return nil, err
	}

	current := ""
	for _, el := range elements {
		if el.language != current {
			if err := enc.WriteElement(tables.LanguageCAType, el.language); err != nil {
				return nil, err
			}
			current = el.language
		}
		if err := enc.WriteElement(el.caType, el.name); err != nil {
			return nil, err
		}
	}

	return section.Frame(format.IDCivic, enc.Bytes())
}
