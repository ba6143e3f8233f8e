// Package position turns external position sources into LCI records.
//
// Each source produces a Fix, which Apply copies into a subelem.LCIRecord:
//
//	fix, err := position.FromNMEA("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47")
//	if err != nil {
//	    return err
//	}
//	rec := subelem.DefaultLCIRecord()
//	fix.Apply(&rec)
//
// Supported sources are NMEA 0183 GGA sentences, GeoJSON Point features, UTM
// coordinates and MGRS grid references. Every fix is checked to lie within
// valid latitude and longitude bounds.
package position
