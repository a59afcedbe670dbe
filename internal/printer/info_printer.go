package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jvr-guru/actuatord/internal/cmd/output"
	"github.com/jvr-guru/actuatord/internal/domain"
)

var _ output.Printer[domain.Info] = (*InfoPrinter)(nil)

// InfoPrinter prints an info document as 'key: value' lines sorted by key.
type InfoPrinter struct {
	headerFunc output.WriteFunc[domain.Info]
	footerFunc output.WriteFunc[domain.Info]
}

func (p *InfoPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *InfoPrinter) SetHeader(fn output.WriteFunc[domain.Info]) {
	p.headerFunc = fn
}

func (p *InfoPrinter) Item(w io.Writer, elem domain.Info) error {
	if len(elem) == 0 {
		_, err := io.WriteString(w, "No info available\n")
		return err
	}

	for _, k := range slices.Sorted(maps.Keys(elem)) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, elem[k]); err != nil {
			return err
		}
	}

	return nil
}

func (p *InfoPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *InfoPrinter) SetFooter(fn output.WriteFunc[domain.Info]) {
	p.footerFunc = fn
}
