package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/linegrep/internal/cli"
	"github.com/yaklabco/linegrep/pkg/config"
	"github.com/yaklabco/linegrep/pkg/fsutil"
	"github.com/yaklabco/linegrep/pkg/runner"
)

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{
			name: "configuration error",
			err:  &config.ConfigurationError{Field: "query", Message: "didn't get a query"},
			want: cli.ExitInvalidUsage,
		},
		{
			name: "wrapped configuration error",
			err:  errors.Join(errors.New("failed to load configuration"), &config.ConfigurationError{Message: "bad"}),
			want: cli.ExitInvalidUsage,
		},
		{
			name: "io error",
			err:  &runner.IOError{Path: "poem.txt", Err: fsutil.ErrNotFound},
			want: cli.ExitIOError,
		},
		{
			name: "wrapped io error",
			err:  fmt.Errorf("search: %w", &runner.IOError{Path: "poem.txt", Err: fsutil.ErrPermissionDenied}),
			want: cli.ExitIOError,
		},
		{name: "anything else", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}
