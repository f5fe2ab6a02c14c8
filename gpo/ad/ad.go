// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ad enumerates Group Policy Objects from Active Directory. GPOs
// live as groupPolicyContainer objects under the domain's
// CN=Policies,CN=System container.
package ad

import (
	"crypto/tls"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-ldap/ldap/v3"
	"github.com/rs/zerolog/log"
)

const gpoFilter = "(objectClass=groupPolicyContainer)"

var gpoAttributes = []string{
	"cn",
	"displayName",
	"gPCFileSysPath",
	"versionNumber",
	"flags",
	"whenCreated",
	"whenChanged",
}

// Options configure the directory connection
type Options struct {
	// URL of the directory, e.g. ldap://dc01.corp.example.com or ldaps://...
	URL    string
	Domain string
	// BaseDN overrides the base derived from Domain
	BaseDN       string
	BindUser     string
	BindPassword string
	StartTLS     bool
	// Insecure skips the server certificate check
	Insecure bool
	Timeout  time.Duration
}

// GPO is one groupPolicyContainer object
type GPO struct {
	DN              string    `json:"dn"`
	ID              string    `json:"id"`
	DisplayName     string    `json:"displayName"`
	Path            string    `json:"path"`
	UserVersion     uint16    `json:"userVersion"`
	ComputerVersion uint16    `json:"computerVersion"`
	Status          string    `json:"status"`
	Created         time.Time `json:"created"`
	Changed         time.Time `json:"changed"`
}

// List searches the domain for all GPOs
func List(opts Options) ([]GPO, error) {
	conn, err := connect(opts)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	base := opts.BaseDN
	if base == "" {
		base = BaseDNForDomain(opts.Domain)
	}
	base = "CN=Policies,CN=System," + base

	req := ldap.NewSearchRequest(
		base,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		gpoFilter,
		gpoAttributes,
		nil,
	)

	res, err := conn.SearchWithPaging(req, 100)
	if err != nil {
		return nil, errors.Wrap(err, "could not search for group policy containers")
	}

	gpos := make([]GPO, 0, len(res.Entries))
	for _, entry := range res.Entries {
		gpos = append(gpos, gpoFromEntry(entry))
	}
	log.Debug().Int("gpos", len(gpos)).Str("base", base).Msg("enumerated group policy containers")
	return gpos, nil
}

func connect(opts Options) (*ldap.Conn, error) {
	if opts.URL == "" {
		return nil, errors.New("no directory url configured")
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: opts.Insecure}
	conn, err := ldap.DialURL(opts.URL, ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to directory")
	}

	if opts.Timeout > 0 {
		conn.SetTimeout(opts.Timeout)
	}

	if opts.StartTLS {
		if err := conn.StartTLS(tlsConfig); err != nil {
			conn.Close()
			return nil, errors.Wrap(err, "could not negotiate starttls")
		}
	}

	if opts.BindUser != "" {
		err = conn.Bind(opts.BindUser, opts.BindPassword)
	} else {
		err = conn.UnauthenticatedBind("")
	}
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "could not bind to directory")
	}
	return conn, nil
}

func gpoFromEntry(entry *ldap.Entry) GPO {
	rawVersion := entry.GetAttributeValue("versionNumber")
	version, err := strconv.ParseUint(rawVersion, 10, 32)
	if err != nil && rawVersion != "" {
		log.Warn().Str("dn", entry.DN).Msg("gpo carries an unparsable version number")
	}
	userVersion, computerVersion := SplitVersion(uint32(version))

	flags, _ := strconv.Atoi(entry.GetAttributeValue("flags"))

	return GPO{
		DN:              entry.DN,
		ID:              strings.Trim(entry.GetAttributeValue("cn"), "{}"),
		DisplayName:     entry.GetAttributeValue("displayName"),
		Path:            entry.GetAttributeValue("gPCFileSysPath"),
		UserVersion:     userVersion,
		ComputerVersion: computerVersion,
		Status:          StatusFromFlags(flags),
		Created:         parseGeneralizedTime(entry.GetAttributeValue("whenCreated")),
		Changed:         parseGeneralizedTime(entry.GetAttributeValue("whenChanged")),
	}
}

// BaseDNForDomain derives the default naming context from a dns domain
// name, e.g. corp.example.com -> DC=corp,DC=example,DC=com
func BaseDNForDomain(domain string) string {
	if domain == "" {
		return ""
	}
	parts := strings.Split(domain, ".")
	for i, part := range parts {
		parts[i] = "DC=" + part
	}
	return strings.Join(parts, ",")
}

// SplitVersion splits the AD versionNumber attribute into its user half
// (upper 16 bits) and computer half (lower 16 bits)
func SplitVersion(version uint32) (user uint16, computer uint16) {
	return uint16(version >> 16), uint16(version & 0xffff)
}

// StatusFromFlags translates the gpo flags attribute into the status names
// used by the GroupPolicy module
func StatusFromFlags(flags int) string {
	switch flags {
	case 0:
		return "AllSettingsEnabled"
	case 1:
		return "UserSettingsDisabled"
	case 2:
		return "ComputerSettingsDisabled"
	case 3:
		return "AllSettingsDisabled"
	default:
		return fmt.Sprintf("Unknown(%d)", flags)
	}
}

// parseGeneralizedTime parses the AD generalized time format, e.g.
// 20240912160210.0Z. A zero time is returned for values that do not parse.
func parseGeneralizedTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("20060102150405.0Z", value)
	if err != nil {
		log.Trace().Str("value", value).Msg("could not parse generalized time")
		return time.Time{}
	}
	return t
}
