// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/policyops/gporeport/apps/gporeport/cmd"
)

func main() {
	cmd.Execute()
}
