package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"fetch", fmt.Errorf("%w: nse http 404", ErrFetch), "fetch"},
		{"extract", fmt.Errorf("%w: entry missing", ErrExtract), "extract"},
		{"parse", fmt.Errorf("%w: row 1", ErrParse), "parse"},
		{"dispatch", fmt.Errorf("%w: %w", ErrDispatch, context.DeadlineExceeded), "dispatch"},
		{"config", fmt.Errorf("%w: NSE_TIMEOUT", ErrConfig), "config"},
		{"unknown", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Stage(tt.err))
		})
	}
}
