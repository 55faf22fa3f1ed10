package config

import (
	"github.com/google/go-cmp/cmp"

	"github.com/vmodem/vmodem99a/internal/domain"
)

// Diff describes how cfg differs from the factory defaults. It returns an
// empty string when the two are identical.
func Diff(cfg domain.Config) string {
	return cmp.Diff(domain.DefaultConfig(), cfg.Hydrate())
}
