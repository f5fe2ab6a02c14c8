// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package powershell builds self-contained powershell invocations.
package powershell

import (
	"encoding/base64"
	"encoding/binary"
	"unicode/utf16"
)

// Encode wraps a script for powershell.exe -EncodedCommand. The encoded form
// is base64 over UTF-16LE, which keeps quotes, pipes and newlines intact
// regardless of the invoking shell. Progress output is silenced, it would
// otherwise end up interleaved with the collected report on some hosts.
func Encode(cmd string) string {
	script := "$ProgressPreference='SilentlyContinue';" + cmd

	codes := utf16.Encode([]rune(script))
	raw := make([]byte, 2*len(codes))
	for i, c := range codes {
		binary.LittleEndian.PutUint16(raw[2*i:], c)
	}

	return "powershell.exe -NoProfile -EncodedCommand " + base64.StdEncoding.EncodeToString(raw)
}
