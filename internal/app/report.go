package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/ui/output"
	"go.trai.ch/jmod/internal/ui/style"
	"go.trai.ch/zerr"
)

// writeResolutions prints one "<root>\t<module>" line per resolution.
func writeResolutions(w io.Writer, results []Resolution) error {
	out := output.NewReport(w)
	for _, r := range results {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", r.Root, moduleCell(out, r.Module)); err != nil {
			return zerr.Wrap(err, "failed to write results")
		}
	}
	return nil
}

// writeRecords prints one "<source>\t<module>" line per index record.
func writeRecords(w io.Writer, records []domain.IndexRecord) error {
	out := output.NewReport(w)
	for _, rec := range records {
		module := rec.Attributes[domain.AttrModuleName]
		if _, err := fmt.Fprintf(out, "%s\t%s\n", rec.SourceRoot, moduleCell(out, module)); err != nil {
			return zerr.Wrap(err, "failed to write index records")
		}
	}
	return nil
}

func moduleCell(out *termenv.Output, module string) termenv.Style {
	if module == "" {
		return out.String(style.Unnamed).Foreground(out.Color(string(style.Slate)))
	}
	return out.String(module).Foreground(out.Color(string(style.Green)))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
