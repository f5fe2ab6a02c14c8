// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package gpmc

import (
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// LocalRunner executes commands on the local host. The commands produced by
// powershell.Encode are self-contained, the arguments carry no spaces.
type LocalRunner struct{}

func (r *LocalRunner) RunCommand(ctx context.Context, cmd string) ([]byte, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}

	log.Debug().Str("executable", parts[0]).Msg("run local command")
	c := exec.CommandContext(ctx, parts[0], parts[1:]...)
	out, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, errors.Newf("command failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}
