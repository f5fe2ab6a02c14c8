// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package report decodes Group Policy Settings report XML, as produced by
// Get-GPOReport -ReportType Xml, and flattens the supported extensions into
// tabular records.
package report

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Namespaces of the Group Policy Settings report schema. Each extension
// carries its settings in its own sub-namespace, referenced from the report
// root via q1..qN prefixes.
const (
	SettingsNS          = "http://www.microsoft.com/GroupPolicy/Settings"
	TypesNS             = "http://www.microsoft.com/GroupPolicy/Types"
	SecurityNS          = "http://www.microsoft.com/GroupPolicy/Settings/Security"
	RegistryNS          = "http://www.microsoft.com/GroupPolicy/Settings/Registry"
	ScriptsNS           = "http://www.microsoft.com/GroupPolicy/Settings/Scripts"
	DriveMapsNS         = "http://www.microsoft.com/GroupPolicy/Settings/DriveMaps"
	RegistryPrefNS      = "http://www.microsoft.com/GroupPolicy/Settings/RegistrySettings"
	FolderRedirectionNS = "http://www.microsoft.com/GroupPolicy/Settings/fdeploy1"
)

// Report is the root node of a rendered GPO report
type Report struct {
	XMLName             xml.Name   `xml:"http://www.microsoft.com/GroupPolicy/Settings GPO"`
	Identifier          Identifier `xml:"Identifier"`
	Name                string     `xml:"Name"`
	IncludeComments     bool       `xml:"IncludeComments"`
	CreatedTime         string     `xml:"CreatedTime"`
	ModifiedTime        string     `xml:"ModifiedTime"`
	ReadTime            string     `xml:"ReadTime"`
	FilterDataAvailable bool       `xml:"FilterDataAvailable"`
	Computer            Scope      `xml:"Computer"`
	User                Scope      `xml:"User"`
	Links               []SOMLink  `xml:"LinksTo"`
}

type Identifier struct {
	ID     string `xml:"http://www.microsoft.com/GroupPolicy/Types Identifier"`
	Domain string `xml:"http://www.microsoft.com/GroupPolicy/Types Domain"`
}

// SOMLink is a scope-of-management link (site, domain or OU)
type SOMLink struct {
	SOMName    string `xml:"SOMName"`
	SOMPath    string `xml:"SOMPath"`
	Enabled    bool   `xml:"Enabled"`
	NoOverride bool   `xml:"NoOverride"`
}

// Scope holds the settings of one half of a GPO, either Computer or User
type Scope struct {
	Enabled          bool            `xml:"Enabled"`
	VersionDirectory uint32          `xml:"VersionDirectory"`
	VersionSysvol    uint32          `xml:"VersionSysvol"`
	ExtensionData    []ExtensionData `xml:"ExtensionData"`
}

type ExtensionData struct {
	Name      string    `xml:"Name"`
	Extension Extension `xml:"Extension"`
}

// Extension is the union of all extension payloads this tool understands.
// The report declares the concrete type via xsi:type; since every payload
// lives in its own namespace we can decode them side by side and only the
// elements present in the document are filled.
type Extension struct {
	Type string `xml:"http://www.w3.org/2001/XMLSchema-instance type,attr"`

	// Administrative template policies (Registry extension)
	Policies []AdmPolicy `xml:"http://www.microsoft.com/GroupPolicy/Settings/Registry Policy"`

	// Registry preference items
	RegistryItems []RegistryPrefSettings `xml:"http://www.microsoft.com/GroupPolicy/Settings/RegistrySettings RegistrySettings"`

	// Logon/Logoff/Startup/Shutdown scripts
	Scripts []Script `xml:"http://www.microsoft.com/GroupPolicy/Settings/Scripts Script"`

	// Drive map preference items
	DriveMaps []DriveMapSettings `xml:"http://www.microsoft.com/GroupPolicy/Settings/DriveMaps DriveMapSettings"`

	// Security settings
	SecurityOptions []SecurityOption `xml:"http://www.microsoft.com/GroupPolicy/Settings/Security SecurityOptions"`
	Accounts        []Account        `xml:"http://www.microsoft.com/GroupPolicy/Settings/Security Account"`
	UserRights      []UserRight      `xml:"http://www.microsoft.com/GroupPolicy/Settings/Security UserRightsAssignment"`

	// Folder redirection
	Folders []Folder `xml:"http://www.microsoft.com/GroupPolicy/Settings/fdeploy1 Folder"`
}

// Parse decodes a GPO report. Reports exported on Windows are usually
// UTF-16LE with a byte order mark, so the input is normalized to UTF-8
// before the XML decoder sees it.
func Parse(input io.Reader) (*Report, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	enc, name, _ := charset.DetermineEncoding(data, "")
	log.Trace().Str("encoding", name).Msg("detected gpo report charset")
	utf8data, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrap(err, "could not convert gpo report to utf-8")
	}

	decoder := xml.NewDecoder(bytes.NewReader(utf8data))
	// the prolog may still declare utf-16, the payload is utf-8 at this point
	decoder.CharsetReader = func(label string, r io.Reader) (io.Reader, error) {
		return r, nil
	}

	var r Report
	if err := decoder.Decode(&r); err != nil {
		return nil, errors.Wrap(err, "could not parse gpo report xml")
	}
	return &r, nil
}

// ParseFile reads a GPO report from an exported xml file
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// GUID returns the GPO identifier without braces, lower-cased
func (r *Report) GUID() string {
	return NormalizeGUID(r.Identifier.ID)
}

// Matches reports whether the given selector identifies this GPO. A selector
// is either a display name (case-insensitive) or a GUID with or without
// braces.
func (r *Report) Matches(selector string) bool {
	if strings.EqualFold(selector, r.Name) {
		return true
	}
	return NormalizeGUID(selector) == r.GUID()
}

// NormalizeGUID strips braces and lower-cases a GPO guid
func NormalizeGUID(guid string) string {
	guid = strings.TrimPrefix(guid, "{")
	guid = strings.TrimSuffix(guid, "}")
	return strings.ToLower(guid)
}
