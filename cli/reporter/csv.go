// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"encoding/csv"
	"io"

	"github.com/policyops/gporeport/gpo/report"
)

type recordCsv struct {
	GPO       string
	GPOID     string
	Scope     string
	Extension string
	Name      string
	State     string
	Value     string
}

func (c recordCsv) toSlice() []string {
	return []string{c.GPO, c.GPOID, c.Scope, c.Extension, c.Name, c.State, c.Value}
}

func recordsToCSV(records []report.Record, out io.Writer) error {
	w := csv.NewWriter(out)

	// write header
	err := w.Write(recordCsv{
		"GPO",
		"GPO ID",
		"Scope",
		"Extension",
		"Setting",
		"State",
		"Value",
	}.toSlice())
	if err != nil {
		return err
	}

	for i := range records {
		r := &records[i]
		err := w.Write(recordCsv{
			GPO:       r.GPO,
			GPOID:     r.GPOID,
			Scope:     r.Scope,
			Extension: r.Extension,
			Name:      r.Name,
			State:     r.State,
			Value:     r.Value,
		}.toSlice())
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

type gpoCsv struct {
	ID       string
	Name     string
	Domain   string
	Status   string
	Created  string
	Modified string
}

func (c gpoCsv) toSlice() []string {
	return []string{c.ID, c.Name, c.Domain, c.Status, c.Created, c.Modified}
}

func gposToCSV(gpos []GPOSummary, out io.Writer) error {
	w := csv.NewWriter(out)

	err := w.Write(gpoCsv{
		"ID",
		"Name",
		"Domain",
		"Status",
		"Created",
		"Modified",
	}.toSlice())
	if err != nil {
		return err
	}

	for i := range gpos {
		g := &gpos[i]
		err := w.Write(gpoCsv{
			ID:       g.ID,
			Name:     g.Name,
			Domain:   g.Domain,
			Status:   g.Status,
			Created:  g.Created,
			Modified: g.Modified,
		}.toSlice())
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
