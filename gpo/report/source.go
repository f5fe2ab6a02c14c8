// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadDir parses all exported report xml files of a directory. Files that
// cannot be parsed are logged and skipped.
func LoadDir(dir string) ([]*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var reports []*Report
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		r, err := ParseFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("could not parse gpo report, skipping")
			continue
		}
		reports = append(reports, r)
	}
	return reports, nil
}
