// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"io"

	"sigs.k8s.io/yaml"
)

func toYAML(data interface{}, out io.Writer) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}
