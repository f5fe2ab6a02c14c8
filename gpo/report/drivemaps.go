// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import "strings"

// DriveMapSettings is the container element of the Drive Maps preference
// extension
type DriveMapSettings struct {
	CLSID  string  `xml:"clsid,attr"`
	Drives []Drive `xml:"Drive"`
}

// Drive is one mapped drive preference item
type Drive struct {
	Name         string          `xml:"name,attr"`
	Status       string          `xml:"status,attr"`
	Changed      string          `xml:"changed,attr"`
	UID          string          `xml:"uid,attr"`
	Disabled     bool            `xml:"disabled,attr"`
	BypassErrors bool            `xml:"bypassErrors,attr"`
	Properties   DriveProperties `xml:"Properties"`
	Filters      []FilterGroup   `xml:"Filters>FilterGroup"`
}

type DriveProperties struct {
	Action     string `xml:"action,attr"`
	ThisDrive  string `xml:"thisDrive,attr"`
	AllDrives  string `xml:"allDrives,attr"`
	UserName   string `xml:"userName,attr"`
	Path       string `xml:"path,attr"`
	Label      string `xml:"label,attr"`
	Persistent string `xml:"persistent,attr"`
	UseLetter  string `xml:"useLetter,attr"`
	Letter     string `xml:"letter,attr"`
}

// FilterGroup is a security group item-level targeting filter
type FilterGroup struct {
	Bool        string `xml:"bool,attr"`
	Not         string `xml:"not,attr"`
	Name        string `xml:"name,attr"`
	SID         string `xml:"sid,attr"`
	UserContext string `xml:"userContext,attr"`
}

// preference action codes shared by all Group Policy Preferences items
var prefActions = map[string]string{
	"C": "Create",
	"R": "Replace",
	"U": "Update",
	"D": "Delete",
}

// PrefAction translates a preference action code (C/R/U/D) into its
// display name. Unknown codes pass through.
func PrefAction(code string) string {
	if display, ok := prefActions[code]; ok {
		return display
	}
	return code
}

// drive letter visibility flags
var driveVisibility = map[string]string{
	"NOCHANGE": "No change",
	"SHOW":     "Show",
	"HIDE":     "Hide",
}

// DriveVisibility translates a thisDrive/allDrives flag into its display
// name
func DriveVisibility(code string) string {
	if display, ok := driveVisibility[code]; ok {
		return display
	}
	return code
}

func driveMapRecords(ext *Extension) []Record {
	var records []Record
	for i := range ext.DriveMaps {
		for j := range ext.DriveMaps[i].Drives {
			d := &ext.DriveMaps[i].Drives[j]
			p := &d.Properties

			var value strings.Builder
			value.WriteString(p.Path)
			if p.Label != "" {
				value.WriteString(" label=" + p.Label)
			}
			if p.Persistent == "1" {
				value.WriteString(" persistent=reconnect")
			}
			if p.UserName != "" {
				value.WriteString(" connectAs=" + p.UserName)
			}
			if p.ThisDrive != "" && p.ThisDrive != "NOCHANGE" {
				value.WriteString(" thisDrive=" + DriveVisibility(p.ThisDrive))
			}
			if p.AllDrives != "" && p.AllDrives != "NOCHANGE" {
				value.WriteString(" allDrives=" + DriveVisibility(p.AllDrives))
			}
			if len(d.Filters) > 0 {
				groups := make([]string, 0, len(d.Filters))
				for _, f := range d.Filters {
					groups = append(groups, f.Name)
				}
				value.WriteString(" targetGroups=" + strings.Join(groups, ","))
			}

			name := d.Name
			if p.UseLetter == "1" && p.Letter != "" {
				name = p.Letter + ":"
			}

			records = append(records, Record{
				Extension: "Drive Maps",
				Name:      name,
				State:     PrefAction(p.Action),
				Value:     value.String(),
			})
		}
	}
	return records
}
