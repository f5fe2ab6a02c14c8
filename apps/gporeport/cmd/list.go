// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/policyops/gporeport/cli/config"
	"github.com/policyops/gporeport/cli/reporter"
	"github.com/policyops/gporeport/gpo/ad"
	"github.com/policyops/gporeport/gpo/gpmc"
)

func init() {
	listCmd.Flags().String("source", "", "where to enumerate GPOs from: ldap or gpmc (default: ldap if an ldap url is configured)")
	listCmd.Flags().StringP("output", "o", "", "set output format: "+reporter.AllFormats())
	viper.BindPFlag("source", listCmd.Flags().Lookup("source"))
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the GPOs of the domain",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Read()
		if err != nil {
			log.Fatal().Err(err).Msg("could not load configuration")
		}
		config.DisplayUsedConfig()

		source := viper.GetString("source")
		if source == "" {
			source = "gpmc"
			if cfg.LdapURL != "" {
				source = "ldap"
			}
		}

		var summaries []reporter.GPOSummary
		switch source {
		case "ldap":
			gpos, err := ad.List(ad.Options{
				URL:          cfg.LdapURL,
				Domain:       cfg.Domain,
				BaseDN:       cfg.LdapBaseDN,
				BindUser:     cfg.LdapUser,
				BindPassword: cfg.LdapPassword,
				StartTLS:     cfg.StartTLS,
				Insecure:     cfg.Insecure,
				Timeout:      30 * time.Second,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("could not enumerate GPOs from the directory")
			}
			for _, g := range gpos {
				summaries = append(summaries, reporter.GPOSummary{
					ID:       g.ID,
					Name:     g.DisplayName,
					Domain:   cfg.Domain,
					Status:   g.Status,
					Created:  formatTime(g.Created),
					Modified: formatTime(g.Changed),
				})
			}
		case "gpmc":
			svc := gpmc.NewService(nil, cfg.Domain, cfg.Workers)
			gpos, err := svc.List(cmd.Context())
			if err != nil {
				log.Fatal().Err(err).Msg("could not enumerate GPOs via Get-GPO")
			}
			for _, g := range gpos {
				summaries = append(summaries, reporter.GPOSummary{
					ID:       g.ID,
					Name:     g.DisplayName,
					Domain:   g.DomainName,
					Status:   g.GpoStatus,
					Created:  g.CreationTime,
					Modified: g.ModificationTime,
				})
			}
		default:
			log.Fatal().Str("source", source).Msg("unknown GPO source, use ldap or gpmc")
		}

		r, err := reporter.New(outputFormat(cmd, cfg), os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		if err := r.WriteGPOs(summaries); err != nil {
			log.Fatal().Err(err).Msg("could not render GPO listing")
		}
	},
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// outputFormat resolves the output format from the flag, the config file
// and the default, in that order
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = cfg.Output
	}
	if format == "" {
		format = "table"
	}
	return format
}
