// Package diagnostic renders human-readable summaries of a mesh's entity
// families for interactive debugging, the way core's PrintState dumps
// register/buffer tables.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sarchlab/ume/mesh"
)

var titleCaser = cases.Title(language.English)

// toTitleCase converts a shouting enum label ("CARTESIAN", "GHOST") to
// Title case ("Cartesian", "Ghost").
func toTitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// familyRow summarizes one entity family's size and comm-type breakdown.
func familyRow(name string, e *mesh.Entity) table.Row {
	counts := map[mesh.CommType]int{}
	for _, c := range e.CommType {
		counts[c]++
	}
	return table.Row{
		toTitleCase(name),
		e.Lsize,
		e.Size(),
		counts[mesh.Source],
		counts[mesh.Copy],
		counts[mesh.Ghost],
		len(e.Subsets),
	}
}

// SummaryTable renders a per-family entity-count table: reals, total size,
// and the source/copy/ghost comm-type split, plus a header line naming the
// mesh's rank, peer count, and geometry.
func SummaryTable(m *mesh.Mesh) string {
	var b strings.Builder

	b.WriteString("Mesh PE ")
	b.WriteString(toTitleCase(m.Geo.String()))
	b.WriteString(" geometry, rank ")
	b.WriteString(strconv.Itoa(m.Mype))
	b.WriteString(" of ")
	b.WriteString(strconv.Itoa(m.Numpe))
	b.WriteString("\n")

	t := table.NewWriter()
	t.SetTitle("Entity Families")
	t.AppendHeader(table.Row{"Family", "Reals", "Size", "Sources", "Copies", "Ghosts", "Subsets"})
	t.AppendRow(familyRow("points", m.Points.Entity))
	t.AppendRow(familyRow("edges", m.Edges.Entity))
	t.AppendRow(familyRow("faces", m.Faces.Entity))
	t.AppendRow(familyRow("sides", m.Sides.Entity))
	t.AppendRow(familyRow("corners", m.Corners.Entity))
	t.AppendRow(familyRow("zones", m.Zones.Entity))
	if m.Iotas != nil {
		t.AppendRow(familyRow("iotas", m.Iotas.Entity))
	}

	b.WriteString(t.Render())
	return b.String()
}
