package tables

// LanguageCAType is the civic address type that introduces a language group.
const LanguageCAType uint8 = 0

// civicTypes maps civic address element names to RFC 4776 / RFC 5139 CA types.
var civicTypes = map[string]uint8{
	"State":                           1,
	"County":                          2,
	"City":                            3,
	"City Division":                   4,
	"Neighborhood":                    5,
	"Group of Streets":                6,
	"Leading Street Direction":        16,
	"Trailing Street Suffix":          17,
	"Street Suffix":                   18,
	"House Number":                    19,
	"House Number Suffix":             20,
	"Landmark":                        21,
	"Additional Location Information": 22,
	"Name":                            23,
	"Postal Code":                     24,
	"Building":                        25,
	"Unit":                            26,
	"Floor":                           27,
	"Room":                            28,
	"Type of Place":                   29,
	"Postal Community Name":           30,
	"Post Office Box":                 31,
	"Additional Code":                 32,
	"Seat":                            33,
	"Primary Road Name":               34,
	"Road Section":                    35,
	"Road Branch":                     36,
	"Road Sub-branch":                 37,
	"Road Pre-modifier":               38,
	"Road Post-modifier":              39,
	"Script":                          128,
}
