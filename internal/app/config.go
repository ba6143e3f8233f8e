package app

// Default configuration constants
const (
	DefaultCompression = "zstd"
	DefaultSiteFile    = "site.yaml"
)

// Config holds application configuration
type Config struct {
	SiteFile    string
	Legacy      bool
	Dump        bool
	ArchivePath string
	Compression string
	Verbose     bool
	ShowVersion bool
}
