// SPDX-FileCopyrightText: 2022 Utrecht University
// SPDX-License-Identifier: GPL-3.0-only

package config

import (
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
)

func Test_config(t *testing.T) {
	testgroup.RunInParallel(t, &configTests{})
}

type configTests struct{}

func (*configTests) Empty_input_yields_defaults(t *testgroup.T) {
	cfg, err := parse(strings.NewReader(""))

	t.Require.NoError(err)
	t.Equal("", cfg.API)
	t.Nil(cfg.MinDepth)
	t.Equal(DefaultMinDepth, cfg.EffectiveMinDepth())
	t.Empty(cfg.CleanupPatterns)
}

func (*configTests) Decode_full_config(t *testgroup.T) {
	cfg, err := parse(strings.NewReader(`
api: http
min_depth: 4
cleanup_patterns:
  - "*.tmp"
  - "~$*"
`))

	t.Require.NoError(err)
	t.Equal("http", cfg.API)
	t.Equal(4, cfg.EffectiveMinDepth())
	t.Equal([]string{"*.tmp", "~$*"}, cfg.CleanupPatterns)
}

func (*configTests) Unknown_api_is_rejected(t *testgroup.T) {
	_, err := parse(strings.NewReader("api: carrier-pigeon\n"))

	t.Require.Error(err)
	t.Contains(err.Error(), "unknown api")
}

func (*configTests) Negative_min_depth_is_rejected(t *testgroup.T) {
	_, err := parse(strings.NewReader("min_depth: -1\n"))

	t.Require.Error(err)
	t.Contains(err.Error(), "min_depth")
}

func (*configTests) Unknown_keys_are_rejected(t *testgroup.T) {
	_, err := parse(strings.NewReader("mindepth: 4\n"))

	t.Require.Error(err)
}

func (*configTests) Zero_min_depth_is_allowed(t *testgroup.T) {
	cfg, err := parse(strings.NewReader("min_depth: 0\n"))

	t.Require.NoError(err)
	t.Equal(0, cfg.EffectiveMinDepth())
}
