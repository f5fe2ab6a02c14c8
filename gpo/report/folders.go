// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import "strings"

// Folder is one redirected folder of the folder redirection extension
type Folder struct {
	ID                   string         `xml:"Id"`
	GrantExclusiveRights bool           `xml:"GrantExclusiveRights"`
	MoveContents         bool           `xml:"MoveContents"`
	FollowParent         bool           `xml:"FollowParent"`
	ApplyToDownLevel     bool           `xml:"ApplyToDownLevel"`
	RemovalBehavior      string         `xml:"RemovalBehavior"`
	Locations            []FolderTarget `xml:"Location"`
}

// FolderTarget is one redirection target; basic redirection has a single
// target, advanced redirection one per security group
type FolderTarget struct {
	DestinationPath string        `xml:"DestinationPath"`
	SecurityGroup   SecurityGroup `xml:"SecurityGroup"`
}

type SecurityGroup struct {
	Name string `xml:"http://www.microsoft.com/GroupPolicy/Types Name"`
	SID  string `xml:"http://www.microsoft.com/GroupPolicy/Types SID"`
}

// known folder ids as used by folder redirection
var knownFolders = map[string]string{
	"{FDD39AD0-238F-46AF-ADB4-6C85480369C7}": "Documents",
	"{B4BFCC3A-DB2C-424C-B029-7FE99A87C641}": "Desktop",
	"{3EB685DB-65F9-4CF6-A03A-E3EF65729F3D}": "AppData(Roaming)",
	"{625B53C3-AB48-4EC1-BA1F-A1EF4146FC19}": "Start Menu",
	"{33E28130-4E1E-4676-835A-98395C3BC3BB}": "Pictures",
	"{4BD8D571-6D19-48D3-BE97-422220080E43}": "Music",
	"{18989B1D-99B5-455B-841C-AB7C74E4DDFC}": "Videos",
	"{1777F761-68AD-4D8A-87BD-30B759FA33DD}": "Favorites",
	"{56784854-C6CB-462B-8169-88E350ACB882}": "Contacts",
	"{374DE290-123F-4565-9164-39C4925E467B}": "Downloads",
	"{BFB9D5E0-C6A9-404C-B2B2-AE6DB6AF4968}": "Links",
	"{7D1D3A04-DEBB-4115-95CF-2F29DA2920DA}": "Searches",
	"{4C5C32FF-BB9D-43B0-B5B4-2D72E54EAAA4}": "Saved Games",
}

// KnownFolderName translates a known folder guid into its display name.
// Unknown guids pass through.
func KnownFolderName(id string) string {
	if name, ok := knownFolders[strings.ToUpper(id)]; ok {
		return name
	}
	return id
}

// folder redirection policy removal behavior codes
var removalBehavior = map[string]string{
	"LeaveContents":   "Leave contents",
	"RedirectToLocal": "Redirect back to local profile",
}

// RemovalBehavior translates a policy removal behavior code into its
// display text
func RemovalBehavior(code string) string {
	if display, ok := removalBehavior[code]; ok {
		return display
	}
	return code
}

func folderRecords(ext *Extension) []Record {
	var records []Record
	for i := range ext.Folders {
		f := &ext.Folders[i]

		for j := range f.Locations {
			target := &f.Locations[j]

			var value strings.Builder
			value.WriteString(target.DestinationPath)
			if group := target.SecurityGroup.Name; group != "" {
				value.WriteString(" group=" + group)
			}
			if f.GrantExclusiveRights {
				value.WriteString(" exclusiveRights=true")
			}
			if f.MoveContents {
				value.WriteString(" moveContents=true")
			}
			if f.RemovalBehavior != "" {
				value.WriteString(" onRemoval=" + RemovalBehavior(f.RemovalBehavior))
			}

			records = append(records, Record{
				Extension: "Folder Redirection",
				Name:      KnownFolderName(f.ID),
				State:     "Redirect",
				Value:     value.String(),
			})
		}
	}
	return records
}
