// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package colors

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DefaultColorTheme is initialized from the detected terminal profile. On a
// non-TTY output it degrades to the Ascii profile, which renders no colors.
var DefaultColorTheme Theme

func init() {
	profile := termenv.ColorProfile()
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		profile = termenv.Ascii
	}

	DefaultColorTheme = Theme{
		Primary:   profile.Color("13"),
		Secondary: profile.Color("12"),
		Disabled:  profile.Color("8"),
		Error:     profile.Color("9"),
		Success:   profile.Color("10"),

		Critical: profile.Color("13"),
		High:     profile.Color("9"),
		Medium:   profile.Color("11"),
		Low:      profile.Color("14"),
		Good:     profile.Color("10"),
		Unknown:  profile.Color("8"),
	}
}
