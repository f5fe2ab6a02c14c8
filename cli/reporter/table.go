// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/policyops/gporeport/gpo/report"
)

func newTable(out io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(headers)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetCenterSeparator(" ")
	table.SetColumnSeparator(" ")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	return table
}

func recordsToTable(records []report.Record, out io.Writer) error {
	table := newTable(out, []string{"GPO", "Scope", "Extension", "Setting", "State", "Value"})
	for i := range records {
		r := &records[i]
		table.Append([]string{r.GPO, r.Scope, r.Extension, r.Name, r.State, r.Value})
	}
	table.Render()
	return nil
}

func gposToTable(gpos []GPOSummary, out io.Writer) error {
	table := newTable(out, []string{"Name", "ID", "Domain", "Status", "Modified"})
	for i := range gpos {
		g := &gpos[i]
		table.Append([]string{g.Name, g.ID, g.Domain, g.Status, g.Modified})
	}
	table.Render()
	return nil
}
