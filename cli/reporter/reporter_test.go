// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package reporter_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/policyops/gporeport/cli/reporter"
	"github.com/policyops/gporeport/gpo/report"
)

var testRecords = []report.Record{
	{
		GPO:       "Workstation User Preferences",
		GPOID:     "8a2c58d1-9b7f-4f4e-a1c2-0d9e6b1f3a77",
		Scope:     "User",
		Extension: "Drive Maps",
		Name:      "S:",
		State:     "Update",
		Value:     `\\fs01.corp.example.com\shared`,
	},
	{
		GPO:       "Workstation User Preferences",
		GPOID:     "8a2c58d1-9b7f-4f4e-a1c2-0d9e6b1f3a77",
		Scope:     "User",
		Extension: "Scripts",
		Name:      "logon.bat",
		State:     "Logon",
		Value:     "order=0",
	},
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := reporter.New("xlsx", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv, json, table, yaml")
}

func TestRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	r, err := reporter.New("csv", &buf)
	require.NoError(t, err)

	require.NoError(t, r.WriteRecords(testRecords))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "GPO,GPO ID,Scope,Extension,Setting,State,Value", lines[0])
	assert.Contains(t, lines[1], "Drive Maps,S:,Update")
	assert.Contains(t, lines[2], "logon.bat,Logon,order=0")
}

func TestRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := reporter.New("json", &buf)
	require.NoError(t, err)

	require.NoError(t, r.WriteRecords(testRecords))

	var decoded []report.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testRecords, decoded)
}

func TestRecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := reporter.New("yaml", &buf)
	require.NoError(t, err)

	require.NoError(t, r.WriteRecords(testRecords))
	assert.Contains(t, buf.String(), "extension: Drive Maps")
}

func TestRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	r, err := reporter.New("table", &buf)
	require.NoError(t, err)

	require.NoError(t, r.WriteRecords(testRecords))
	out := buf.String()
	assert.Contains(t, out, "EXTENSION")
	assert.Contains(t, out, "logon.bat")
}

func TestGPOListing(t *testing.T) {
	gpos := []reporter.GPOSummary{
		{
			ID:       "31b2f340-016d-11d2-945f-00c04fb984f9",
			Name:     "Default Domain Policy",
			Domain:   "corp.example.com",
			Status:   "AllSettingsEnabled",
			Modified: "2024-11-02T09:30:41Z",
		},
	}

	var buf bytes.Buffer
	r, err := reporter.New("csv", &buf)
	require.NoError(t, err)
	require.NoError(t, r.WriteGPOs(gpos))
	assert.Contains(t, buf.String(), "Default Domain Policy,corp.example.com,AllSettingsEnabled")

	buf.Reset()
	r, err = reporter.New("table", &buf)
	require.NoError(t, err)
	require.NoError(t, r.WriteGPOs(gpos))
	assert.Contains(t, buf.String(), "Default Domain Policy")
}
