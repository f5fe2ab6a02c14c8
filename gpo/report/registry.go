// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import "strings"

// AdmPolicy is one administrative template policy of the Registry extension
type AdmPolicy struct {
	Name      string `xml:"Name"`
	State     string `xml:"State"`
	Explain   string `xml:"Explain"`
	Supported string `xml:"Supported"`
	Category  string `xml:"Category"`

	EditTexts     []PolicyPart `xml:"EditText"`
	DropDownLists []PolicyPart `xml:"DropDownList"`
	Numerics      []PolicyPart `xml:"Numeric"`
	CheckBoxes    []PolicyPart `xml:"CheckBox"`
	ListBoxes     []PolicyPart `xml:"ListBox"`
	Texts         []PolicyPart `xml:"Text"`
}

// PolicyPart is a named sub-value of an administrative template policy.
// The value is plain text for EditText/Numeric parts, a nested Name element
// for DropDownList parts, and absent for CheckBox parts where only the
// state matters.
type PolicyPart struct {
	Name  string    `xml:"Name"`
	State string    `xml:"State"`
	Value PartValue `xml:"Value"`
}

type PartValue struct {
	Text string `xml:",chardata"`
	Name string `xml:"Name"`
}

func (p PolicyPart) display() string {
	value := strings.TrimSpace(p.Value.Text)
	if value == "" {
		value = p.Value.Name
	}
	if value == "" {
		value = p.State
	}
	if p.Name == "" {
		return value
	}
	return p.Name + ": " + value
}

// RegistryPrefSettings is the container element of the Registry preference
// extension
type RegistryPrefSettings struct {
	CLSID      string             `xml:"clsid,attr"`
	Registries []RegistryPrefItem `xml:"Registry"`
}

// RegistryPrefItem is one registry preference item
type RegistryPrefItem struct {
	Name       string             `xml:"name,attr"`
	Status     string             `xml:"status,attr"`
	Changed    string             `xml:"changed,attr"`
	UID        string             `xml:"uid,attr"`
	Properties RegistryProperties `xml:"Properties"`
}

type RegistryProperties struct {
	Action  string `xml:"action,attr"`
	Hive    string `xml:"hive,attr"`
	Key     string `xml:"key,attr"`
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Value   string `xml:"value,attr"`
	Default string `xml:"default,attr"`
}

func admPolicyRecords(ext *Extension) []Record {
	records := make([]Record, 0, len(ext.Policies))
	for i := range ext.Policies {
		p := &ext.Policies[i]

		var parts []string
		for _, group := range [][]PolicyPart{
			p.EditTexts, p.DropDownLists, p.Numerics, p.CheckBoxes, p.ListBoxes, p.Texts,
		} {
			for _, part := range group {
				if display := part.display(); display != "" {
					parts = append(parts, display)
				}
			}
		}

		name := p.Name
		if p.Category != "" {
			name = p.Category + "/" + p.Name
		}

		value := strings.Join(parts, "; ")
		if p.Supported != "" {
			if value != "" {
				value += " "
			}
			value += "supportedOn=" + p.Supported
		}

		records = append(records, Record{
			Extension: "Administrative Templates",
			Name:      name,
			State:     p.State,
			Value:     value,
		})
	}
	return records
}

func registryPrefRecords(ext *Extension) []Record {
	var records []Record
	for i := range ext.RegistryItems {
		for j := range ext.RegistryItems[i].Registries {
			item := &ext.RegistryItems[i].Registries[j]
			p := &item.Properties

			name := p.Hive + "\\" + p.Key
			if p.Name != "" {
				name += "\\" + p.Name
			}

			var value strings.Builder
			if p.Type != "" {
				value.WriteString("type=" + p.Type)
			}
			if p.Value != "" {
				if value.Len() > 0 {
					value.WriteString(" ")
				}
				value.WriteString("data=" + p.Value)
			}

			records = append(records, Record{
				Extension: "Registry",
				Name:      name,
				State:     PrefAction(p.Action),
				Value:     value.String(),
			})
		}
	}
	return records
}
