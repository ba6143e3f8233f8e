package subelem

import (
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
	"github.com/arloliu/lcikit/tables"
)

// MapImageRecord references a map of the site.
type MapImageRecord struct {
	// ImageType is the image type name, e.g. "PNG" or "URL Defined".
	ImageType string
	// URL may be empty.
	URL string
}

// Kind implements Record.
func (MapImageRecord) Kind() format.Kind { return format.KindMapImage }

func (MapImageRecord) subelement() {}

// EncodeMapImage encodes a map image subelement: the image type byte followed by
// the raw URL bytes. The URL carries no length of its own.
//
// Returns:
//   - []byte: The framed subelement
//   - error: ErrUnknownKey for an unknown image type, ErrLengthOverflow if the
//     payload exceeds 255 bytes
func EncodeMapImage(rec MapImageRecord, tbl *tables.Tables) ([]byte, error) {
	mapType, err := tablesOrDefault(tbl).ImageType(rec.ImageType)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, section.MapTypeSize+len(rec.URL))
	payload = append(payload, uint8(mapType))
	payload = append(payload, rec.URL...)

	return section.Frame(format.IDMapImage, payload)
}
