package sweepctl

import (
	"fmt"

	"github.com/sweepproject/sweeprunner/internal/sweep/specs"
)

// Validate checks the configuration and, when a data directory is
// configured, that the specs file resolves and parses. All violations are
// reported together.
func (a *App) Validate() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.Config.DataDir != "" {
		s, err := specs.Load(a.Config.DataDir, a.Config.SpecsFile)
		if err != nil {
			return err
		}
		if _, err := s.Grid(); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.Out, "Configuration is valid")
	return nil
}
