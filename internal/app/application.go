package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/report"
	"github.com/arloliu/lcikit/subelem"
	"github.com/arloliu/lcikit/tables"
)

// ArchiveExt is the file extension of packed reports written under Config.ArchivePath.
const ArchiveExt = ".lrz"

// Application represents the main application
type Application struct {
	config Config
	logger *logrus.Logger
	out    io.Writer
	tbl    *tables.Tables
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
		out:    os.Stdout,
		tbl:    tables.Default(),
	}
}

// SetOutput redirects report output, stdout by default. Log output is not affected.
func (app *Application) SetOutput(w io.Writer) {
	app.out = w
}

// Logger returns the application logger
func (app *Application) Logger() *logrus.Logger {
	return app.logger
}

// Encode reads the site file, encodes its reports and prints them. One report
// is produced per report family present in the site file.
func (app *Application) Encode() error {
	app.logger.WithFields(logrus.Fields{
		"version":   Version,
		"site_file": app.config.SiteFile,
		"legacy":    app.config.Legacy,
	}).Debug("Encoding site")

	site, err := LoadSite(app.config.SiteFile)
	if err != nil {
		return err
	}

	reports, err := app.BuildReports(site)
	if err != nil {
		app.logger.WithError(err).Error("Failed to encode site")
		return err
	}

	for _, r := range reports {
		app.printReport(r)
	}

	if app.config.ArchivePath != "" {
		if err := app.writeArchives(reports); err != nil {
			app.logger.WithError(err).Error("Failed to write archive")
			return err
		}
	}

	return nil
}

// BuildReports encodes every record of site, grouped into one report per family.
// LCI reports come before LCR reports.
func (app *Application) BuildReports(site *Site) ([]*report.Report, error) {
	records, err := site.Records(app.tbl)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("site file %q describes no subelements", app.config.SiteFile)
	}

	builders := make(map[format.Family]*report.Builder)
	for _, rec := range records {
		family := rec.Kind().Family()
		b, ok := builders[family]
		if !ok {
			b = report.NewBuilder(app.tbl, subelem.WithLegacyCompatibility(app.config.Legacy))
			builders[family] = b
		}

		if err := b.Add(rec); err != nil {
			return nil, fmt.Errorf("%s subelement: %w", rec.Kind(), err)
		}
		app.logger.WithFields(logrus.Fields{
			"kind":   rec.Kind().String(),
			"family": family.String(),
		}).Debug("Encoded subelement")
	}

	var reports []*report.Report
	for _, family := range []format.Family{format.FamilyLCI, format.FamilyLCR} {
		b, ok := builders[family]
		if !ok {
			continue
		}

		r, err := b.Build()
		if err != nil {
			return nil, err
		}
		app.logger.WithFields(logrus.Fields{
			"family":      family.String(),
			"subelements": len(r.Subelements()),
			"bytes":       r.Len(),
			"fingerprint": fmt.Sprintf("%016x", r.Fingerprint()),
		}).Info("Built report")
		reports = append(reports, r)
	}

	return reports, nil
}

func (app *Application) printReport(r *report.Report) {
	if app.config.Dump {
		fmt.Fprintf(app.out, "%s report, %d bytes\n%s\n", r.Family(), r.Len(), r.Dump())
		return
	}

	fmt.Fprintf(app.out, "%s %s\n", strings.ToLower(r.Family().String()), r.Hex())
}

// writeArchives packs each report into <ArchivePath>/<family>.lrz.
func (app *Application) writeArchives(reports []*report.Report) error {
	compression, err := format.ParseCompression(app.config.Compression)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(app.config.ArchivePath, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	for _, r := range reports {
		data, err := r.Pack(compression)
		if err != nil {
			return err
		}

		path := filepath.Join(app.config.ArchivePath, strings.ToLower(r.Family().String())+ArchiveExt)
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("failed to write archive: %w", err)
		}

		app.logger.WithFields(logrus.Fields{
			"path":        path,
			"compression": compression.String(),
			"raw_bytes":   r.Len(),
			"bytes":       len(data),
		}).Info("Wrote report archive")
	}

	return nil
}

// ListTable writes every entry of the named code table, one "name<TAB>code" per line.
func (app *Application) ListTable(name string) error {
	kind, err := tables.ParseKind(name)
	if err != nil {
		return err
	}

	for _, n := range app.tbl.Names(kind) {
		code, err := app.tbl.Lookup(kind, n)
		if err != nil {
			return err
		}

		if kind == tables.KindLanguage || kind == tables.KindCountry {
			fmt.Fprintf(app.out, "%s\t%s\n", n, code.Text)
		} else {
			fmt.Fprintf(app.out, "%s\t%d\n", n, code.Value)
		}
	}

	return nil
}

// Unpack reads an archive written by Encode and prints the report it holds.
func (app *Application) Unpack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	raw, header, err := report.Unpack(data)
	if err != nil {
		return err
	}

	app.logger.WithFields(logrus.Fields{
		"compression": header.Compression.String(),
		"raw_bytes":   header.RawLength,
		"checksum":    fmt.Sprintf("%016x", header.Checksum),
	}).Debug("Unpacked report archive")

	if app.config.Dump {
		fmt.Fprintln(app.out, report.Dump(raw))
	} else {
		fmt.Fprintln(app.out, report.Hex(raw))
	}

	return nil
}
