// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"strconv"
	"strings"
)

// SecurityOption is a registry-backed security option of the security
// settings extension
type SecurityOption struct {
	KeyName        string   `xml:"KeyName"`
	SettingNumber  *int64   `xml:"SettingNumber"`
	SettingString  string   `xml:"SettingString"`
	SettingStrings []string `xml:"SettingStrings>Value"`
	Display        Display  `xml:"Display"`
}

type Display struct {
	Name           string   `xml:"Name"`
	Units          string   `xml:"Units"`
	DisplayBoolean *bool    `xml:"DisplayBoolean"`
	DisplayString  string   `xml:"DisplayString"`
	DisplayStrings []string `xml:"DisplayStrings>Value"`
}

// Account is a system access setting, e.g. MinimumPasswordLength
type Account struct {
	Name           string `xml:"Name"`
	SettingNumber  *int64 `xml:"SettingNumber"`
	SettingBoolean *bool  `xml:"SettingBoolean"`
	Type           string `xml:"Type"`
}

// UserRight is one privilege assignment with its members
type UserRight struct {
	Name    string   `xml:"Name"`
	Members []Member `xml:"Member"`
}

type Member struct {
	Name string `xml:"http://www.microsoft.com/GroupPolicy/Types Name"`
	SID  string `xml:"http://www.microsoft.com/GroupPolicy/Types SID"`
}

func (m Member) display() string {
	if m.Name != "" {
		return m.Name
	}
	return m.SID
}

func securityRecords(ext *Extension) []Record {
	var records []Record

	for i := range ext.SecurityOptions {
		o := &ext.SecurityOptions[i]

		name := o.Display.Name
		if name == "" {
			name = o.KeyName
		}

		var state string
		if o.Display.DisplayBoolean != nil {
			state = "Disabled"
			if *o.Display.DisplayBoolean {
				state = "Enabled"
			}
		}

		var value string
		switch {
		case o.Display.DisplayString != "":
			value = o.Display.DisplayString
		case len(o.Display.DisplayStrings) > 0:
			value = strings.Join(o.Display.DisplayStrings, ", ")
		case o.SettingString != "":
			value = o.SettingString
		case len(o.SettingStrings) > 0:
			value = strings.Join(o.SettingStrings, ", ")
		case o.SettingNumber != nil:
			value = strconv.FormatInt(*o.SettingNumber, 10)
			if o.Display.Units != "" {
				value += " " + o.Display.Units
			}
		}

		records = append(records, Record{
			Extension: "Security Options",
			Name:      name,
			State:     state,
			Value:     value,
		})
	}

	for i := range ext.Accounts {
		a := &ext.Accounts[i]

		var value string
		switch {
		case a.SettingNumber != nil:
			value = strconv.FormatInt(*a.SettingNumber, 10)
		case a.SettingBoolean != nil:
			value = strconv.FormatBool(*a.SettingBoolean)
		}

		records = append(records, Record{
			Extension: "Security Options",
			Name:      a.Name,
			Value:     value,
		})
	}

	for i := range ext.UserRights {
		u := &ext.UserRights[i]

		members := make([]string, 0, len(u.Members))
		for _, m := range u.Members {
			members = append(members, m.display())
		}

		records = append(records, Record{
			Extension: "User Rights Assignment",
			Name:      u.Name,
			Value:     strings.Join(members, ", "),
		})
	}

	return records
}
