// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"strings"
)

// Script is one entry of the Scripts extension, e.g. a logon or shutdown
// script
type Script struct {
	Command    string `xml:"Command"`
	Parameters string `xml:"Parameters"`
	Type       string `xml:"Type"`
	Order      uint32 `xml:"Order"`
	RunOrder   string `xml:"RunOrder"`
}

// script run order values use the PowerShell-first naming of the schema
var scriptRunOrder = map[string]string{
	"PSNotConfigured": "Not configured",
	"RunPSFirst":      "PowerShell scripts first",
	"RunPSLast":       "PowerShell scripts last",
}

// ScriptRunOrder translates a RunOrder code into its display text
func ScriptRunOrder(code string) string {
	if display, ok := scriptRunOrder[code]; ok {
		return display
	}
	return code
}

func scriptRecords(ext *Extension) []Record {
	records := make([]Record, 0, len(ext.Scripts))
	for i := range ext.Scripts {
		s := &ext.Scripts[i]

		var value strings.Builder
		value.WriteString(fmt.Sprintf("order=%d", s.Order))
		if s.Parameters != "" {
			value.WriteString(" parameters=" + s.Parameters)
		}
		if s.RunOrder != "" && s.RunOrder != "PSNotConfigured" {
			value.WriteString(" runOrder=" + ScriptRunOrder(s.RunOrder))
		}

		records = append(records, Record{
			Extension: "Scripts",
			Name:      s.Command,
			State:     s.Type,
			Value:     value.String(),
		})
	}
	return records
}
