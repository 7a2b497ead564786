// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// render writes p in the requested format.
func render(w io.Writer, format string, p *prediction) error {
	switch format {
	case formatTable, "":
		return renderTable(w, p)
	case formatJSON:
		return renderJSON(w, p)
	}

	return fmt.Errorf("output format %q: want %s or %s", format, formatTable, formatJSON)
}

func renderTable(w io.Writer, p *prediction) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	head := []string{"r[Mpc/h]"}
	for _, c := range p.Columns {
		head = append(head, c.Name)
	}
	fmt.Fprintln(tw, strings.Join(head, "\t"))

	for i, r := range p.Radii {
		row := []string{formatValue(r)}
		for _, c := range p.Columns {
			row = append(row, formatValue(c.Values[i]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// number encodes non-finite values as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func numbers(v []float64) []number {
	out := make([]number, len(v))
	for i, f := range v {
		out[i] = number(f)
	}

	return out
}

type jsonColumn struct {
	Name   string   `json:"name"`
	Unit   string   `json:"unit,omitempty"`
	Values []number `json:"values"`
}

type jsonPrediction struct {
	Backend  string       `json:"backend"`
	ZCluster float64      `json:"z_cluster"`
	ZSource  []float64    `json:"z_source"`
	Radii    []number     `json:"radii"`
	Columns  []jsonColumn `json:"columns"`
}

func renderJSON(w io.Writer, p *prediction) error {
	out := jsonPrediction{
		Backend:  p.Backend,
		ZCluster: p.ZCluster,
		ZSource:  p.ZSource,
		Radii:    numbers(p.Radii),
	}
	for _, c := range p.Columns {
		out.Columns = append(out.Columns, jsonColumn{Name: c.Name, Unit: c.Unit, Values: numbers(c.Values)})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
