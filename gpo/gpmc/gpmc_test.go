// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package gpmc_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/policyops/gporeport/gpo/gpmc"
	"github.com/policyops/gporeport/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestEnv()
	os.Exit(m.Run())
}

// runnerFunc adapts a function to the gpmc.Runner interface
type runnerFunc func(ctx context.Context, cmd string) ([]byte, error)

func (f runnerFunc) RunCommand(ctx context.Context, cmd string) ([]byte, error) {
	return f(ctx, cmd)
}

// decodeCmd recovers the script from a powershell -EncodedCommand invocation
func decodeCmd(t *testing.T, cmd string) string {
	t.Helper()
	parts := strings.Fields(cmd)
	require.Equal(t, "powershell.exe", parts[0])
	raw, err := base64.StdEncoding.DecodeString(parts[len(parts)-1])
	require.NoError(t, err)
	return string(bytes.ReplaceAll(raw, []byte{0}, nil))
}

func TestParseGPOList(t *testing.T) {
	r, err := os.Open("./testdata/get-gpo.json")
	require.NoError(t, err)
	defer r.Close()

	gpos, err := gpmc.ParseGPOList(r)
	require.NoError(t, err)
	require.Len(t, gpos, 2)
	assert.Equal(t, "Default Domain Policy", gpos[0].DisplayName)
	assert.Equal(t, "31b2f340-016d-11d2-945f-00c04fb984f9", gpos[0].ID)
	assert.Equal(t, "ComputerSettingsDisabled", gpos[1].GpoStatus)
}

func TestParseGPOListSingleObject(t *testing.T) {
	r, err := os.Open("./testdata/get-gpo-single.json")
	require.NoError(t, err)
	defer r.Close()

	gpos, err := gpmc.ParseGPOList(r)
	require.NoError(t, err)
	require.Len(t, gpos, 1)
	assert.Equal(t, "Default Domain Policy", gpos[0].DisplayName)
}

func TestParseGPOListEmpty(t *testing.T) {
	gpos, err := gpmc.ParseGPOList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, gpos)
}

func TestList(t *testing.T) {
	runner := runnerFunc(func(ctx context.Context, cmd string) ([]byte, error) {
		script := decodeCmd(t, cmd)
		assert.Contains(t, script, "Get-GPO -All -Domain 'corp.example.com'")
		assert.Contains(t, script, "ConvertTo-Json")
		return os.ReadFile("./testdata/get-gpo.json")
	})

	svc := gpmc.NewService(runner, "corp.example.com", 0)
	gpos, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, gpos, 2)
}

func TestGenerate(t *testing.T) {
	runner := runnerFunc(func(ctx context.Context, cmd string) ([]byte, error) {
		script := decodeCmd(t, cmd)
		assert.Contains(t, script, "Get-GPOReport -Guid '31b2f340-016d-11d2-945f-00c04fb984f9' -ReportType Xml")
		return os.ReadFile("./testdata/report.xml")
	})

	svc := gpmc.NewService(runner, "", 0)
	r, err := svc.Generate(context.Background(), "31b2f340-016d-11d2-945f-00c04fb984f9")
	require.NoError(t, err)
	assert.Equal(t, "Default Domain Policy", r.Name)
	assert.Len(t, r.Computer.ExtensionData, 1)
}

func TestGenerateAllSkipsFailures(t *testing.T) {
	runner := runnerFunc(func(ctx context.Context, cmd string) ([]byte, error) {
		script := decodeCmd(t, cmd)
		if strings.Contains(script, "deadbeef") {
			return nil, errors.New("gpo not found")
		}
		return os.ReadFile("./testdata/report.xml")
	})

	svc := gpmc.NewService(runner, "", 2)
	gpos := []gpmc.GPO{
		{DisplayName: "Default Domain Policy", ID: "31b2f340-016d-11d2-945f-00c04fb984f9"},
		{DisplayName: "Broken", ID: "deadbeef-0000-0000-0000-000000000000"},
		{DisplayName: "Default Domain Policy", ID: "31b2f340-016d-11d2-945f-00c04fb984f9"},
	}

	reports := svc.GenerateAll(context.Background(), gpos)
	assert.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, "Default Domain Policy", r.Name)
	}
}

func TestGenerateAllStableOrder(t *testing.T) {
	gpos := []gpmc.GPO{
		{DisplayName: "Workstation User Preferences", ID: "8a2c58d1-9b7f-4f4e-a1c2-0d9e6b1f3a77"},
		{DisplayName: "Default Domain Policy", ID: "31b2f340-016d-11d2-945f-00c04fb984f9"},
		{DisplayName: "Branch Office Baseline", ID: "5e7f9a21-4c3d-4b8e-9f10-6a2b8c4d7e90"},
	}

	names := map[string]string{}
	for _, g := range gpos {
		names[g.ID] = g.DisplayName
	}

	runner := runnerFunc(func(ctx context.Context, cmd string) ([]byte, error) {
		script := decodeCmd(t, cmd)
		for guid, name := range names {
			if strings.Contains(script, guid) {
				return []byte(minimalReport(guid, name)), nil
			}
		}
		return nil, errors.New("unexpected gpo")
	})

	svc := gpmc.NewService(runner, "", 3)
	for i := 0; i < 5; i++ {
		reports := svc.GenerateAll(context.Background(), gpos)
		require.Len(t, reports, 3)
		assert.Equal(t, "Branch Office Baseline", reports[0].Name)
		assert.Equal(t, "Default Domain Policy", reports[1].Name)
		assert.Equal(t, "Workstation User Preferences", reports[2].Name)
	}
}

func minimalReport(guid, name string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<GPO xmlns="http://www.microsoft.com/GroupPolicy/Settings">
  <Identifier>
    <Identifier xmlns="http://www.microsoft.com/GroupPolicy/Types">{` + strings.ToUpper(guid) + `}</Identifier>
    <Domain xmlns="http://www.microsoft.com/GroupPolicy/Types">corp.example.com</Domain>
  </Identifier>
  <Name>` + name + `</Name>
</GPO>`
}
