// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/policyops/gporeport"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the gporeport version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gporeport " + gporeport.GetVersion() + " (" + gporeport.GetBuild() + ")")
	},
}
