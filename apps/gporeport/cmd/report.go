// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/policyops/gporeport/cli/config"
	"github.com/policyops/gporeport/cli/reporter"
	"github.com/policyops/gporeport/gpo/gpmc"
	"github.com/policyops/gporeport/gpo/report"
)

func init() {
	reportCmd.Flags().String("from-file", "", "parse a previously exported report xml file instead of generating it")
	reportCmd.Flags().String("from-dir", "", "parse all exported report xml files of a directory")
	reportCmd.Flags().StringP("output", "o", "", "set output format: "+reporter.AllFormats())
	reportCmd.Flags().String("file", "", "write the output to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [gpo...]",
	Short: "Flatten GPO settings into one record per setting",
	Long: `Renders the settings reports of the selected GPOs and flattens the supported
extensions (administrative templates, security settings, scripts, drive maps,
registry preferences and folder redirection) into one record per setting.

GPOs are selected by display name or GUID; without arguments all GPOs are
reported. Reports are generated via the GroupPolicy module, or read from
previously exported xml files with --from-file / --from-dir.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Read()
		if err != nil {
			log.Fatal().Err(err).Msg("could not load configuration")
		}
		config.DisplayUsedConfig()

		reports := gatherReports(cmd, args, cfg)
		if len(reports) == 0 {
			log.Warn().Msg("no gpo reports matched the selection")
		}

		var records []report.Record
		for _, r := range reports {
			records = append(records, r.Records()...)
		}
		log.Info().Int("gpos", len(reports)).Int("settings", len(records)).Msg("flattened gpo reports")

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("file"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				log.Fatal().Err(err).Msg("could not create output file")
			}
			defer f.Close()
			out = f
		}

		r, err := reporter.New(outputFormat(cmd, cfg), out)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		if err := r.WriteRecords(records); err != nil {
			log.Fatal().Err(err).Msg("could not render settings report")
		}
	},
}

func gatherReports(cmd *cobra.Command, selectors []string, cfg *config.Config) []*report.Report {
	fromFile, _ := cmd.Flags().GetString("from-file")
	fromDir, _ := cmd.Flags().GetString("from-dir")

	var reports []*report.Report
	switch {
	case fromFile != "":
		r, err := report.ParseFile(fromFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", fromFile).Msg("could not parse gpo report")
		}
		reports = []*report.Report{r}
	case fromDir != "":
		var err error
		reports, err = report.LoadDir(fromDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", fromDir).Msg("could not read report directory")
		}
	default:
		svc := gpmc.NewService(nil, cfg.Domain, cfg.Workers)
		gpos, err := svc.List(cmd.Context())
		if err != nil {
			log.Fatal().Err(err).Msg("could not enumerate GPOs via Get-GPO")
		}
		gpos = selectGPOs(gpos, selectors)
		reports = svc.GenerateAll(cmd.Context(), gpos)
	}

	if len(selectors) == 0 {
		return reports
	}

	var matched []*report.Report
	for _, r := range reports {
		for _, selector := range selectors {
			if r.Matches(selector) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

func selectGPOs(gpos []gpmc.GPO, selectors []string) []gpmc.GPO {
	if len(selectors) == 0 {
		return gpos
	}

	var selected []gpmc.GPO
	for _, g := range gpos {
		for _, selector := range selectors {
			if strings.EqualFold(selector, g.DisplayName) ||
				report.NormalizeGUID(selector) == report.NormalizeGUID(g.ID) {
				selected = append(selected, g)
				break
			}
		}
	}
	return selected
}
