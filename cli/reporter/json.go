// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"encoding/json"
	"io"
)

func toJSON(data interface{}, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
