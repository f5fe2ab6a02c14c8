// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

// Scope names as they appear in records
const (
	ComputerScope = "Computer"
	UserScope     = "User"
)

// Record is one flattened GPO setting. Flattening is pure and keeps the
// document order of the extension blocks; enum codes that are not
// understood pass through verbatim.
type Record struct {
	GPO       string `json:"gpo"`
	GPOID     string `json:"gpoId"`
	Scope     string `json:"scope"`
	Extension string `json:"extension"`
	Name      string `json:"name"`
	State     string `json:"state,omitempty"`
	Value     string `json:"value,omitempty"`
}

// Records flattens all supported extensions of both scopes into one record
// per setting
func (r *Report) Records() []Record {
	var records []Record
	records = append(records, r.scopeRecords(ComputerScope, &r.Computer)...)
	records = append(records, r.scopeRecords(UserScope, &r.User)...)
	return records
}

func (r *Report) scopeRecords(scope string, s *Scope) []Record {
	var records []Record
	for i := range s.ExtensionData {
		ext := &s.ExtensionData[i].Extension

		var flattened []Record
		flattened = append(flattened, admPolicyRecords(ext)...)
		flattened = append(flattened, registryPrefRecords(ext)...)
		flattened = append(flattened, scriptRecords(ext)...)
		flattened = append(flattened, driveMapRecords(ext)...)
		flattened = append(flattened, securityRecords(ext)...)
		flattened = append(flattened, folderRecords(ext)...)

		for j := range flattened {
			flattened[j].GPO = r.Name
			flattened[j].GPOID = r.GUID()
			flattened[j].Scope = scope
		}
		records = append(records, flattened...)
	}
	return records
}
