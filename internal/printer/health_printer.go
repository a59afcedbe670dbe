package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jvr-guru/actuatord/internal/api"
	"github.com/jvr-guru/actuatord/internal/cmd/output"
)

var _ output.Printer[api.Health] = (*HealthPrinter)(nil)

// HealthPrinter prints one health result per line, followed by its details sorted by code.
type HealthPrinter struct {
	headerFunc output.WriteFunc[api.Health]
	footerFunc output.WriteFunc[api.Health]
}

func (p *HealthPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *HealthPrinter) SetHeader(fn output.WriteFunc[api.Health]) {
	p.headerFunc = fn
}

func (p *HealthPrinter) Item(w io.Writer, elem api.Health) error {
	if _, err := fmt.Fprintf(w, "%s\n", elem.Status); err != nil {
		return err
	}

	for _, code := range slices.Sorted(maps.Keys(elem.Details)) {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", code, elem.Details[code]); err != nil {
			return err
		}
	}

	return nil
}

func (p *HealthPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *HealthPrinter) SetFooter(fn output.WriteFunc[api.Health]) {
	p.footerFunc = fn
}
