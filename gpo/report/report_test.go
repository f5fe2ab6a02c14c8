// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/policyops/gporeport/gpo/report"
)

func TestParseComputerSettings(t *testing.T) {
	r, err := report.ParseFile("./testdata/default-domain-policy.xml")
	require.NoError(t, err)

	assert.Equal(t, "Default Domain Policy", r.Name)
	assert.Equal(t, "31b2f340-016d-11d2-945f-00c04fb984f9", r.GUID())
	assert.Equal(t, "corp.example.com", r.Identifier.Domain)
	assert.True(t, r.Computer.Enabled)
	assert.Equal(t, uint32(34), r.Computer.VersionDirectory)
	assert.Len(t, r.Computer.ExtensionData, 3)
	assert.Empty(t, r.User.ExtensionData)

	require.Len(t, r.Links, 1)
	assert.Equal(t, "corp.example.com", r.Links[0].SOMPath)

	security := r.Computer.ExtensionData[0].Extension
	assert.Equal(t, "q1:SecuritySettings", security.Type)
	assert.Len(t, security.Accounts, 2)
	assert.Len(t, security.SecurityOptions, 2)
	require.Len(t, security.UserRights, 1)
	assert.Equal(t, "SeRemoteInteractiveLogonRight", security.UserRights[0].Name)
	require.Len(t, security.UserRights[0].Members, 2)
	assert.Equal(t, "S-1-5-32-555", security.UserRights[0].Members[0].SID)

	registry := r.Computer.ExtensionData[1].Extension
	require.Len(t, registry.Policies, 3)
	assert.Equal(t, "Turn off Autoplay", registry.Policies[0].Name)
	assert.Equal(t, "Enabled", registry.Policies[0].State)
	require.Len(t, registry.Policies[0].DropDownLists, 1)
	assert.Equal(t, "All drives", registry.Policies[0].DropDownLists[0].Value.Name)

	scripts := r.Computer.ExtensionData[2].Extension
	require.Len(t, scripts.Scripts, 1)
	assert.Equal(t, "Startup", scripts.Scripts[0].Type)
}

func TestParseUserSettings(t *testing.T) {
	r, err := report.ParseFile("./testdata/user-preferences.xml")
	require.NoError(t, err)

	assert.Equal(t, "Workstation User Preferences", r.Name)
	assert.False(t, r.Computer.Enabled)
	assert.True(t, r.User.Enabled)
	assert.Len(t, r.User.ExtensionData, 5)

	drives := r.User.ExtensionData[0].Extension
	require.Len(t, drives.DriveMaps, 1)
	require.Len(t, drives.DriveMaps[0].Drives, 2)
	assert.Equal(t, "U", drives.DriveMaps[0].Drives[0].Properties.Action)
	assert.Equal(t, `\\fs01.corp.example.com\shared`, drives.DriveMaps[0].Drives[0].Properties.Path)
	require.Len(t, drives.DriveMaps[0].Drives[1].Filters, 1)
	assert.Equal(t, "CORP\\Finance", drives.DriveMaps[0].Drives[1].Filters[0].Name)

	scripts := r.User.ExtensionData[1].Extension
	require.Len(t, scripts.Scripts, 2)
	assert.Equal(t, "/quiet", scripts.Scripts[0].Parameters)

	folders := r.User.ExtensionData[2].Extension
	require.Len(t, folders.Folders, 2)
	assert.True(t, folders.Folders[0].GrantExclusiveRights)
	require.Len(t, folders.Folders[0].Locations, 1)
	assert.Equal(t, "CORP\\Domain Users", folders.Folders[0].Locations[0].SecurityGroup.Name)

	registry := r.User.ExtensionData[3].Extension
	require.Len(t, registry.RegistryItems, 1)
	require.Len(t, registry.RegistryItems[0].Registries, 1)
	assert.Equal(t, "REG_SZ", registry.RegistryItems[0].Registries[0].Properties.Type)

	// unknown extension decodes to an empty payload but keeps its name
	unknown := r.User.ExtensionData[4]
	assert.Equal(t, "Deployed Printer Connections", unknown.Name)
	assert.Empty(t, unknown.Extension.Scripts)
}

func TestParseUtf16Report(t *testing.T) {
	r, err := report.ParseFile("./testdata/user-preferences-utf16.xml")
	require.NoError(t, err)
	assert.Equal(t, "Workstation User Preferences", r.Name)
	assert.Len(t, r.User.ExtensionData, 5)
}

func TestMatches(t *testing.T) {
	r, err := report.ParseFile("./testdata/default-domain-policy.xml")
	require.NoError(t, err)

	assert.True(t, r.Matches("default domain policy"))
	assert.True(t, r.Matches("{31B2F340-016D-11D2-945F-00C04FB984F9}"))
	assert.True(t, r.Matches("31b2f340-016d-11d2-945f-00c04fb984f9"))
	assert.False(t, r.Matches("Workstation User Preferences"))
}

func TestNormalizeGUID(t *testing.T) {
	assert.Equal(t, "31b2f340-016d-11d2-945f-00c04fb984f9", report.NormalizeGUID("{31B2F340-016D-11D2-945F-00C04FB984F9}"))
	assert.Equal(t, "31b2f340-016d-11d2-945f-00c04fb984f9", report.NormalizeGUID("31b2f340-016d-11d2-945f-00c04fb984f9"))
}
