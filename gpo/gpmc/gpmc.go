// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package gpmc drives the platform report generator. All the heavy lifting
// happens inside the GroupPolicy PowerShell module, this package only builds
// the pipelines, runs them and decodes the output.
package gpmc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/policyops/gporeport/gpo/powershell"
	"github.com/policyops/gporeport/gpo/report"
	"github.com/policyops/gporeport/internal/workerpool"
)

// Runner executes a command on the target host and returns its stdout
type Runner interface {
	RunCommand(ctx context.Context, cmd string) ([]byte, error)
}

const defaultWorkers = 4

// Service wraps the GroupPolicy module cmdlets
type Service struct {
	runner  Runner
	domain  string
	workers int
}

// NewService creates a gpmc service. If runner is nil, commands run on the
// local host. domain may be empty, in which case the cmdlets use the
// current user's domain.
func NewService(runner Runner, domain string, workers int) *Service {
	if runner == nil {
		runner = &LocalRunner{}
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{runner: runner, domain: domain, workers: workers}
}

// GPO is one entry of Get-GPO -All
type GPO struct {
	DisplayName      string `json:"DisplayName"`
	ID               string `json:"Id"`
	DomainName       string `json:"DomainName"`
	Owner            string `json:"Owner"`
	GpoStatus        string `json:"GpoStatus"`
	CreationTime     string `json:"CreationTime"`
	ModificationTime string `json:"ModificationTime"`
}

func (s *Service) listScript() string {
	cmd := "Get-GPO -All"
	if s.domain != "" {
		cmd += fmt.Sprintf(" -Domain '%s'", s.domain)
	}
	return cmd + " | Select-Object DisplayName," +
		"@{Name='Id';Expression={$_.Id.ToString()}}," +
		"DomainName,Owner," +
		"@{Name='GpoStatus';Expression={$_.GpoStatus.ToString()}}," +
		"@{Name='CreationTime';Expression={$_.CreationTime.ToString('o')}}," +
		"@{Name='ModificationTime';Expression={$_.ModificationTime.ToString('o')}}" +
		" | ConvertTo-Json"
}

func (s *Service) reportScript(guid string) string {
	cmd := fmt.Sprintf("Get-GPOReport -Guid '%s' -ReportType Xml", guid)
	if s.domain != "" {
		cmd += fmt.Sprintf(" -Domain '%s'", s.domain)
	}
	return cmd
}

// List enumerates all GPOs of the domain via Get-GPO -All
func (s *Service) List(ctx context.Context) ([]GPO, error) {
	out, err := s.runner.RunCommand(ctx, powershell.Encode(s.listScript()))
	if err != nil {
		return nil, errors.Wrap(err, "could not run Get-GPO")
	}

	data, err := toUtf8(out)
	if err != nil {
		return nil, err
	}
	return ParseGPOList(strings.NewReader(data))
}

// ParseGPOList decodes the json output of Get-GPO -All. ConvertTo-Json
// collapses a single-element result into a plain object.
func ParseGPOList(input io.Reader) ([]GPO, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, err
	}

	// for empty result set do not get the '[]', therefore lets abort here
	if len(bytes.TrimSpace(data)) == 0 {
		return []GPO{}, nil
	}

	var gpos []GPO
	if err := json.Unmarshal(data, &gpos); err != nil {
		var single GPO
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, errors.Wrap(err, "could not parse Get-GPO output")
		}
		gpos = []GPO{single}
	}
	return gpos, nil
}

// Generate renders the settings report of one GPO as xml and parses it
func (s *Service) Generate(ctx context.Context, guid string) (*report.Report, error) {
	out, err := s.runner.RunCommand(ctx, powershell.Encode(s.reportScript(guid)))
	if err != nil {
		return nil, errors.Wrapf(err, "could not generate report for gpo %s", guid)
	}
	return report.Parse(bytes.NewReader(out))
}

// GenerateAll renders the reports of the given GPOs in parallel. A GPO
// whose report cannot be generated or parsed is logged and skipped, the
// remaining reports are still returned, sorted by name and guid so the
// output is stable across runs.
func (s *Service) GenerateAll(ctx context.Context, gpos []GPO) []*report.Report {
	pool := workerpool.New[*report.Report](s.workers)
	pool.Start()
	defer pool.Close()

	for i := range gpos {
		gpo := gpos[i]
		pool.Submit(func() (*report.Report, error) {
			r, err := s.Generate(ctx, gpo.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "gpo %s", gpo.DisplayName)
			}
			return r, nil
		})
	}

	pool.Wait()
	if err := pool.GetErrors(); err != nil {
		log.Warn().Err(err).Msg("some gpo reports could not be generated")
	}

	// the collector returns results in completion order
	reports := pool.GetResults()
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Name != reports[j].Name {
			return reports[i].Name < reports[j].Name
		}
		return reports[i].GUID() < reports[j].GUID()
	})
	return reports
}

// toUtf8 converts powershell output from the console codepage to utf-8
func toUtf8(out []byte) (string, error) {
	enc, name, _ := charset.DetermineEncoding(out, "")
	log.Trace().Str("encoding", name).Msg("check powershell results charset")
	utf8out, err := io.ReadAll(transform.NewReader(bytes.NewReader(out), enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(utf8out), nil
}
