// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package reporter renders flattened GPO settings and GPO listings in the
// output formats of the cli.
package reporter

import (
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/policyops/gporeport/gpo/report"
)

type Format byte

const (
	FormatTable Format = iota + 1
	FormatCSV
	FormatJSON
	FormatYAML
)

// Formats that are supported by the reporter
var Formats = map[string]Format{
	"table": FormatTable,
	"csv":   FormatCSV,
	"json":  FormatJSON,
	"yaml":  FormatYAML,
}

func AllFormats() string {
	var res []string
	for k := range Formats {
		res = append(res, k)
	}
	sort.Strings(res)
	return strings.Join(res, ", ")
}

type Reporter struct {
	Format Format
	Out    io.Writer
}

func New(format string, out io.Writer) (*Reporter, error) {
	f, ok := Formats[strings.ToLower(format)]
	if !ok {
		return nil, errors.Newf("'%s' is not a valid output format, available formats are: %s", format, AllFormats())
	}
	return &Reporter{Format: f, Out: out}, nil
}

// WriteRecords renders flattened GPO settings
func (r *Reporter) WriteRecords(records []report.Record) error {
	switch r.Format {
	case FormatCSV:
		return recordsToCSV(records, r.Out)
	case FormatJSON:
		return toJSON(records, r.Out)
	case FormatYAML:
		return toYAML(records, r.Out)
	default:
		return recordsToTable(records, r.Out)
	}
}

// GPOSummary is one row of a GPO listing, independent of whether the
// listing came from the directory or the report generator
type GPOSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Domain   string `json:"domain,omitempty"`
	Status   string `json:"status,omitempty"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
}

// WriteGPOs renders a GPO listing
func (r *Reporter) WriteGPOs(gpos []GPOSummary) error {
	switch r.Format {
	case FormatCSV:
		return gposToCSV(gpos, r.Out)
	case FormatJSON:
		return toJSON(gpos, r.Out)
	case FormatYAML:
		return toYAML(gpos, r.Out)
	default:
		return gposToTable(gpos, r.Out)
	}
}
