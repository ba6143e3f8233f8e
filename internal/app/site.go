package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/position"
	"github.com/arloliu/lcikit/subelem"
	"github.com/arloliu/lcikit/tables"
)

// Site describes the location of one access point, as read from a YAML site file.
// Every section is optional.
type Site struct {
	LCI      *LCISection      `yaml:"lci"`
	Z        *ZSection        `yaml:"z"`
	Usage    *UsageSection    `yaml:"usage"`
	BSSID    *BSSIDSection    `yaml:"bssid"`
	Civic    *CivicSection    `yaml:"civic"`
	MapImage *MapImageSection `yaml:"map_image"`

	// baseDir resolves relative paths such as lci.source.geojson.
	baseDir string
}

// LCISection is the geodetic position. When Source is set, it overrides
// latitude, longitude and (if the source has one) altitude.
type LCISection struct {
	Latitude             float64        `yaml:"latitude"`
	LatitudeUncertainty  float64        `yaml:"latitude_uncertainty"`
	Longitude            float64        `yaml:"longitude"`
	LongitudeUncertainty float64        `yaml:"longitude_uncertainty"`
	Altitude             float64        `yaml:"altitude"`
	AltitudeUncertainty  float64        `yaml:"altitude_uncertainty"`
	AltitudeType         string         `yaml:"altitude_type"`
	Datum                string         `yaml:"datum"`
	RegLocAgreement      bool           `yaml:"regloc_agreement"`
	RegLocDSE            bool           `yaml:"regloc_dse"`
	DependentSTA         bool           `yaml:"dependent_sta"`
	Source               *SourceSection `yaml:"source"`
}

// SourceSection names exactly one position source.
type SourceSection struct {
	NMEA    string      `yaml:"nmea"`
	GeoJSON string      `yaml:"geojson"`
	UTM     *UTMSection `yaml:"utm"`
	MGRS    string      `yaml:"mgrs"`
}

type UTMSection struct {
	Zone     int     `yaml:"zone"`
	Band     string  `yaml:"band"`
	Easting  float64 `yaml:"easting"`
	Northing float64 `yaml:"northing"`
}

type ZSection struct {
	Floor             int     `yaml:"floor"`
	Height            float64 `yaml:"height"`
	HeightUncertainty float64 `yaml:"height_uncertainty"`
	Movement          string  `yaml:"movement"`
}

type UsageSection struct {
	RetransmissionAllowed bool   `yaml:"retransmission_allowed"`
	RetentionExpires      bool   `yaml:"retention_expires"`
	ExpireHours           uint32 `yaml:"expire_hours"`
	STALocationPolicy     bool   `yaml:"sta_location_policy"`
}

type BSSIDSection struct {
	MaxIndicator uint8    `yaml:"max_indicator"`
	Addresses    []string `yaml:"addresses"`
}

type CivicSection struct {
	Country  string         `yaml:"country"`
	Elements []CivicElement `yaml:"elements"`
}

type CivicElement struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
	Type     string `yaml:"type"`
}

type MapImageSection struct {
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
}

// LoadSite reads and parses a site file.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}

	return ParseSite(data, filepath.Dir(path))
}

// ParseSite parses a YAML site description. Relative paths inside it are
// resolved against baseDir.
func ParseSite(data []byte, baseDir string) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site file: %w", err)
	}
	site.baseDir = baseDir

	return &site, nil
}

// Records converts the site into subelement records, in site file order.
func (s *Site) Records(tbl *tables.Tables) ([]subelem.Record, error) {
	var records []subelem.Record

	if s.LCI != nil {
		rec, err := s.LCI.record(tbl, s.baseDir)
		if err != nil {
			return nil, fmt.Errorf("lci: %w", err)
		}
		records = append(records, rec)
	}

	if s.Z != nil {
		movement, err := parseMovement(s.Z.Movement)
		if err != nil {
			return nil, fmt.Errorf("z: %w", err)
		}
		records = append(records, subelem.ZRecord{
			Floor:             s.Z.Floor,
			HeightAboveFloor:  s.Z.Height,
			HeightUncertainty: s.Z.HeightUncertainty,
			Movement:          movement,
		})
	}

	if s.Usage != nil {
		records = append(records, subelem.UsageRecord{
			RetransmissionAllowed: s.Usage.RetransmissionAllowed,
			RetentionExpires:      s.Usage.RetentionExpires,
			ExpireHours:           s.Usage.ExpireHours,
			STALocationPolicy:     s.Usage.STALocationPolicy,
		})
	}

	if s.BSSID != nil {
		rec, err := subelem.NewBSSIDRecord(s.BSSID.MaxIndicator)
		if err != nil {
			return nil, fmt.Errorf("bssid: %w", err)
		}
		for _, addr := range s.BSSID.Addresses {
			if err := rec.AddString(addr); err != nil {
				return nil, fmt.Errorf("bssid: %w", err)
			}
		}
		records = append(records, rec)
	}

	if s.Civic != nil {
		rec := subelem.CivicRecord{Country: s.Civic.Country}
		for _, e := range s.Civic.Elements {
			rec.Elements = append(rec.Elements, subelem.CivicElement{
				Name:     e.Name,
				Language: e.Language,
				Type:     e.Type,
			})
		}
		records = append(records, rec)
	}

	if s.MapImage != nil {
		records = append(records, subelem.MapImageRecord{
			ImageType: s.MapImage.Type,
			URL:       s.MapImage.URL,
		})
	}

	return records, nil
}

func (l *LCISection) record(tbl *tables.Tables, baseDir string) (subelem.LCIRecord, error) {
	rec := subelem.DefaultLCIRecord()
	rec.Latitude = l.Latitude
	rec.LatitudeUncertainty = l.LatitudeUncertainty
	rec.Longitude = l.Longitude
	rec.LongitudeUncertainty = l.LongitudeUncertainty
	rec.Altitude = l.Altitude
	rec.AltitudeUncertainty = l.AltitudeUncertainty
	rec.RegLocAgreement = l.RegLocAgreement
	rec.RegLocDSE = l.RegLocDSE
	rec.DependentSTA = l.DependentSTA

	altType, err := parseAltitudeType(l.AltitudeType)
	if err != nil {
		return rec, err
	}
	rec.AltitudeType = altType

	if l.Datum != "" {
		datum, err := tbl.MapDatum(l.Datum)
		if err != nil {
			return rec, err
		}
		rec.MapDatum = datum
	}

	if l.Source != nil {
		fix, err := l.Source.fix(baseDir)
		if err != nil {
			return rec, err
		}
		fix.Apply(&rec)

		// Explicit uncertainties in the site file win over the source estimate.
		if l.LatitudeUncertainty > 0 {
			rec.LatitudeUncertainty = l.LatitudeUncertainty
		}
		if l.LongitudeUncertainty > 0 {
			rec.LongitudeUncertainty = l.LongitudeUncertainty
		}
	}

	return rec, nil
}

func (s *SourceSection) fix(baseDir string) (position.Fix, error) {
	switch {
	case s.NMEA != "":
		return position.FromNMEA(s.NMEA)
	case s.GeoJSON != "":
		path := s.GeoJSON
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return position.Fix{}, fmt.Errorf("failed to read GeoJSON source: %w", err)
		}

		return position.FromGeoJSON(data)
	case s.UTM != nil:
		var band rune
		if s.UTM.Band != "" {
			band = []rune(s.UTM.Band)[0]
		}

		return position.FromUTM(s.UTM.Zone, band, s.UTM.Easting, s.UTM.Northing)
	case s.MGRS != "":
		return position.FromMGRS(s.MGRS)
	default:
		return position.Fix{}, errors.New("source names no nmea, geojson, utm or mgrs position")
	}
}

func parseAltitudeType(name string) (format.AltitudeType, error) {
	if name == "" {
		return format.AltitudeUnknown, nil
	}
	for a := format.AltitudeUnknown; a.IsValid(); a++ {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("unknown altitude type %q (want unknown, meters or floors)", name)
}

func parseMovement(name string) (format.MovementClass, error) {
	if name == "" {
		return format.MovementUnknown, nil
	}
	for m := format.MovementStationary; m.IsValid(); m++ {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown movement %q (want stationary, mobile or unknown)", name)
}
