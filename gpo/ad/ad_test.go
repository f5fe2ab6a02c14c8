// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package ad

import (
	"testing"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
)

func TestBaseDNForDomain(t *testing.T) {
	assert.Equal(t, "DC=corp,DC=example,DC=com", BaseDNForDomain("corp.example.com"))
	assert.Equal(t, "DC=local", BaseDNForDomain("local"))
	assert.Equal(t, "", BaseDNForDomain(""))
}

func TestSplitVersion(t *testing.T) {
	user, computer := SplitVersion(0)
	assert.Equal(t, uint16(0), user)
	assert.Equal(t, uint16(0), computer)

	// computer version 34, user version 7
	user, computer = SplitVersion(7<<16 | 34)
	assert.Equal(t, uint16(7), user)
	assert.Equal(t, uint16(34), computer)
}

func TestStatusFromFlags(t *testing.T) {
	assert.Equal(t, "AllSettingsEnabled", StatusFromFlags(0))
	assert.Equal(t, "UserSettingsDisabled", StatusFromFlags(1))
	assert.Equal(t, "ComputerSettingsDisabled", StatusFromFlags(2))
	assert.Equal(t, "AllSettingsDisabled", StatusFromFlags(3))
	assert.Equal(t, "Unknown(7)", StatusFromFlags(7))
}

func TestGpoFromEntry(t *testing.T) {
	entry := ldap.NewEntry(
		"CN={31B2F340-016D-11D2-945F-00C04FB984F9},CN=Policies,CN=System,DC=corp,DC=example,DC=com",
		map[string][]string{
			"cn":             {"{31B2F340-016D-11D2-945F-00C04FB984F9}"},
			"displayName":    {"Default Domain Policy"},
			"gPCFileSysPath": {`\\corp.example.com\sysvol\corp.example.com\Policies\{31B2F340-016D-11D2-945F-00C04FB984F9}`},
			"versionNumber":  {"458786"}, // user 7, computer 34
			"flags":          {"0"},
			"whenCreated":    {"20190507120000.0Z"},
			"whenChanged":    {"20241102093041.0Z"},
		},
	)

	gpo := gpoFromEntry(entry)
	assert.Equal(t, "31B2F340-016D-11D2-945F-00C04FB984F9", gpo.ID)
	assert.Equal(t, "Default Domain Policy", gpo.DisplayName)
	assert.Equal(t, uint16(7), gpo.UserVersion)
	assert.Equal(t, uint16(34), gpo.ComputerVersion)
	assert.Equal(t, "AllSettingsEnabled", gpo.Status)
	assert.Equal(t, time.Date(2024, 11, 2, 9, 30, 41, 0, time.UTC), gpo.Changed)
}

func TestGpoFromEntryMissingAttributes(t *testing.T) {
	entry := ldap.NewEntry(
		"CN={8A2C58D1-9B7F-4F4E-A1C2-0D9E6B1F3A77},CN=Policies,CN=System,DC=corp,DC=example,DC=com",
		map[string][]string{
			"cn": {"{8A2C58D1-9B7F-4F4E-A1C2-0D9E6B1F3A77}"},
		},
	)

	gpo := gpoFromEntry(entry)
	assert.Equal(t, "8A2C58D1-9B7F-4F4E-A1C2-0D9E6B1F3A77", gpo.ID)
	assert.Empty(t, gpo.DisplayName)
	assert.Equal(t, "AllSettingsEnabled", gpo.Status)
	assert.True(t, gpo.Created.IsZero())
}
