package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/linegrep/pkg/config"
	"github.com/yaklabco/linegrep/pkg/reporter"
	"github.com/yaklabco/linegrep/pkg/runner"
)

// Run executes one search: read the file, print its content, then print every
// matching line with the query highlighted. A read failure is returned as
// *runner.IOError before anything is written to w.
func Run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	result, err := runner.New().Run(ctx, cfg)
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.OptionsFromConfig(cfg, w))
	if err != nil {
		return err
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}
