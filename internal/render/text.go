package render

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/vk/protgraph/internal/engine"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var (
	headingStyle = color.Style{color.FgCyan, color.OpBold}
	idStyle      = color.Style{color.FgGreen}
	mutedStyle   = color.Style{color.FgGray}
)

// writeText renders the result types of the query commands. Colors are only
// applied to whole lines so that tabwriter alignment is not thrown off by
// escape sequences.
func writeText(w io.Writer, v any) error {
	p := &printer{w: w}
	switch r := v.(type) {
	case []string:
		p.resolved(r)
	case engine.ProteinDetails:
		p.details(r)
	case []engine.Annotation:
		p.annotations(r)
	case []engine.Interaction:
		p.interactions(r)
	case []engine.ProteinSummary:
		p.matches(r)
	case *engine.GoTermDetails:
		p.goTerm(r)
	case engine.Stats:
		p.stats(r)
	default:
		return fmt.Errorf("no text rendering for %T", v)
	}
	return p.err
}

// printer remembers the first write error so that rendering code can stay
// linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) heading(format string, args ...any) {
	p.line(headingStyle.Sprintf(format, args...))
}

func (p *printer) muted(s string) {
	p.line(mutedStyle.Sprint(s))
}

// table writes tab-separated rows with aligned columns, indented by two
// spaces.
func (p *printer) table(rows [][]string) {
	if p.err != nil || len(rows) == 0 {
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprint(tw, "  ")
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	p.err = tw.Flush()
}

func (p *printer) resolved(ids []string) {
	if len(ids) == 0 {
		p.muted("no matching proteins")
		return
	}
	for _, id := range ids {
		p.line(idStyle.Sprint(id))
	}
}

func (p *printer) details(d engine.ProteinDetails) {
	p.line(idStyle.Sprint(d.ID) + "  " + name(d.Name))
	if d.UUID != "" {
		p.table([][]string{{"uuid", d.UUID}})
	}
	if len(d.Attributes) > 0 {
		rows := make([][]string, 0, len(d.Attributes))
		for _, k := range slices.Sorted(maps.Keys(d.Attributes)) {
			rows = append(rows, []string{k, attribute(d.Attributes[k])})
		}
		p.table(rows)
	}
	p.annotations(d.FunctionalAnnotations)
	p.interactions(d.ProteinInteractions)
}

func (p *printer) annotations(as []engine.Annotation) {
	p.heading("Functional annotations (%d)", len(as))
	rows := make([][]string, 0, len(as))
	for _, a := range as {
		rows = append(rows, []string{a.GoID, a.Name, string(a.Namespace), score(a.Score)})
	}
	p.table(rows)
}

func (p *printer) interactions(is []engine.Interaction) {
	p.heading("Protein interactions (%d)", len(is))
	rows := make([][]string, 0, len(is))
	for _, in := range is {
		arrow := "->"
		if in.Direction == engine.DirectionSource {
			arrow = "<-"
		}
		rows = append(rows, []string{arrow, in.ProteinID, name(in.Name), score(in.Score)})
	}
	p.table(rows)
}

func (p *printer) matches(ps []engine.ProteinSummary) {
	if len(ps) == 0 {
		p.muted("no matching proteins")
		return
	}
	p.heading("Matching proteins (%d)", len(ps))
	rows := make([][]string, 0, len(ps))
	for _, s := range ps {
		uuid := s.UUID
		if uuid == "" {
			uuid = "-"
		}
		rows = append(rows, []string{s.ProteinID, name(s.Name), uuid})
	}
	p.table(rows)
}

func (p *printer) summaries(ps []engine.ProteinSummary) {
	p.heading("Annotated proteins (%d)", len(ps))
	rows := make([][]string, 0, len(ps))
	for _, s := range ps {
		rows = append(rows, []string{s.ProteinID, name(s.Name), score(s.Score)})
	}
	p.table(rows)
}

func (p *printer) goTerm(t *engine.GoTermDetails) {
	if t == nil {
		p.muted("no such GO term")
		return
	}
	p.line(idStyle.Sprint(t.ExternalID) + "  " + t.Name)
	p.table([][]string{{"id", t.ID}, {"namespace", t.Namespace}})
	p.summaries(t.Proteins)
}

func (p *printer) stats(s engine.Stats) {
	p.heading("Tables")
	p.table([][]string{
		{"protein_nodes", strconv.Itoa(s.ProteinNodes)},
		{"go_term_nodes", strconv.Itoa(s.GoTermNodes)},
		{"edges", strconv.Itoa(s.Edges)},
		{"identifier_records", strconv.Itoa(s.IdentifierRecords)},
	})
	p.heading("Indices")
	p.table([][]string{
		{"details", strconv.Itoa(s.DetailsEntries)},
		{"uuids", strconv.Itoa(s.UUIDEntries)},
		{"aliases", strconv.Itoa(s.AliasEntries)},
		{"names", strconv.Itoa(s.NameEntries)},
	})
}

func name(n *string) string {
	if n == nil || *n == "" {
		return "-"
	}
	return *n
}

// attribute formats a protein attribute cell. Collections are shown as
// compact JSON.
func attribute(v cty.Value) string {
	switch {
	case v.IsNull():
		return "-"
	case v.Type().Equals(cty.String):
		return v.AsString()
	case v.Type().Equals(cty.Number):
		return v.AsBigFloat().Text('g', -1)
	case v.Type().Equals(cty.Bool):
		return strconv.FormatBool(v.True())
	}
	raw, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "?"
	}
	return string(raw)
}

func score(s *float64) string {
	if s == nil {
		return "-"
	}
	return strconv.FormatFloat(*s, 'g', -1, 64)
}
