package format

import "fmt"

type (
	Kind            uint8
	Family          uint8
	AltitudeType    uint8
	MapDatum        uint8
	MovementClass   uint8
	MapType         uint8
	CompressionType uint8
)

// Subelement kinds. The values are local ordinals; use ID for the wire identifier.
const (
	KindLCI      Kind = iota // KindLCI is the geodetic LCI subelement.
	KindZ                    // KindZ is the vertical (floor/height) subelement.
	KindUsage                // KindUsage is the usage rules/policy subelement.
	KindBSSID                // KindBSSID is the co-located BSSID list subelement.
	KindCivic                // KindCivic is the location civic (LCR) subelement.
	KindMapImage             // KindMapImage is the map image subelement.
)

// Report families. Subelements of different families travel in different reports.
const (
	FamilyLCI Family = 0x1 // FamilyLCI is the LCI report (LCI, Z, Usage, BSSID list).
	FamilyLCR Family = 0x2 // FamilyLCR is the location civic report (Civic, Map image).
)

// Subelement identifiers as written in the first header byte.
const (
	IDLCI      uint8 = 0 // IDLCI is the LCI subelement ID within the LCI report.
	IDZ        uint8 = 4 // IDZ is the Z subelement ID within the LCI report.
	IDUsage    uint8 = 6 // IDUsage is the usage rules/policy subelement ID within the LCI report.
	IDBSSID    uint8 = 7 // IDBSSID is the co-located BSSID list subelement ID within the LCI report.
	IDCivic    uint8 = 0 // IDCivic is the location civic subelement ID within the LCR.
	IDMapImage uint8 = 5 // IDMapImage is the map image subelement ID within the LCR.
)

const (
	AltitudeUnknown AltitudeType = 0 // AltitudeUnknown means no altitude is reported.
	AltitudeMeters  AltitudeType = 1 // AltitudeMeters reports altitude in meters.
	AltitudeFloors  AltitudeType = 2 // AltitudeFloors reports altitude in floors.

	DatumWGS84       MapDatum = 1 // DatumWGS84 is the World Geodetic System 1984.
	DatumNAD83NAVD88 MapDatum = 2 // DatumNAD83NAVD88 is NAD83 with NAVD88 vertical datum.
	DatumNAD83MLLW   MapDatum = 3 // DatumNAD83MLLW is NAD83 with mean lower low water vertical datum.

	MovementStationary MovementClass = 0 // MovementStationary means the STA is not expected to move.
	MovementMobile     MovementClass = 1 // MovementMobile means the STA is expected to move.
	MovementUnknown    MovementClass = 2 // MovementUnknown means the movement pattern is unknown.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Map image types.
const (
	MapURLDefined MapType = iota
	MapPNG
	MapGIF
	MapJPEG
	MapSVG
	MapDXF
	MapDWG
	MapDWF
	MapCAD
	MapTIFF
	MapGML
	MapKML
	MapBMP
	MapPGM
	MapPPM
	MapXBM
	MapXPM
	MapICO
)

// ID returns the subelement identifier written on the wire.
func (k Kind) ID() uint8 {
	switch k {
	case KindLCI:
		return IDLCI
	case KindZ:
		return IDZ
	case KindUsage:
		return IDUsage
	case KindBSSID:
		return IDBSSID
	case KindCivic:
		return IDCivic
	case KindMapImage:
		return IDMapImage
	default:
		panic(fmt.Sprintf("format: unknown subelement kind %d", uint8(k)))
	}
}

// Family returns the report family the subelement belongs to.
func (k Kind) Family() Family {
	if k == KindCivic || k == KindMapImage {
		return FamilyLCR
	}

	return FamilyLCI
}

func (k Kind) String() string {
	switch k {
	case KindLCI:
		return "LCI"
	case KindZ:
		return "Z"
	case KindUsage:
		return "Usage"
	case KindBSSID:
		return "BSSID"
	case KindCivic:
		return "Civic"
	case KindMapImage:
		return "MapImage"
	default:
		return "Unknown"
	}
}

func (f Family) String() string {
	switch f {
	case FamilyLCI:
		return "LCI"
	case FamilyLCR:
		return "LCR"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the altitude type is one of the defined values.
func (a AltitudeType) IsValid() bool {
	return a <= AltitudeFloors
}

func (a AltitudeType) String() string {
	switch a {
	case AltitudeUnknown:
		return "unknown"
	case AltitudeMeters:
		return "meters"
	case AltitudeFloors:
		return "floors"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the datum is one of the defined values.
func (d MapDatum) IsValid() bool {
	return d >= DatumWGS84 && d <= DatumNAD83MLLW
}

func (d MapDatum) String() string {
	switch d {
	case DatumWGS84:
		return "WGS84"
	case DatumNAD83NAVD88:
		return "NAD83-NAVD88"
	case DatumNAD83MLLW:
		return "NAD83-MLLW"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the movement class is one of the defined values.
func (m MovementClass) IsValid() bool {
	return m <= MovementUnknown
}

func (m MovementClass) String() string {
	switch m {
	case MovementStationary:
		return "stationary"
	case MovementMobile:
		return "mobile"
	case MovementUnknown:
		return "unknown"
	default:
		return "Unknown"
	}
}

var mapTypeNames = [...]string{
	"URL Defined", "PNG", "GIF", "JPEG", "SVG", "DXF", "DWG", "DWF", "CAD",
	"TIFF", "GML", "KML", "BMP", "PGM", "PPM", "XBM", "XPM", "ICO",
}

// IsValid reports whether the map type is one of the defined values.
func (m MapType) IsValid() bool {
	return int(m) < len(mapTypeNames)
}

func (m MapType) String() string {
	if !m.IsValid() {
		return "Unknown"
	}

	return mapTypeNames[m]
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression parses a case-sensitive lower-case compression name.
func ParseCompression(name string) (CompressionType, error) {
	switch name {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
