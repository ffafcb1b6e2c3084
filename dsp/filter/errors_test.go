package filter_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/filter"
)

func TestErrInvalidConfigurationWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fir: coefficients must not be empty: %w", filter.ErrInvalidConfiguration)

	if !errors.Is(wrapped, filter.ErrInvalidConfiguration) {
		t.Fatal("wrapped error does not match sentinel")
	}
	if errors.Is(errors.New("unrelated"), filter.ErrInvalidConfiguration) {
		t.Fatal("unrelated error matched sentinel")
	}
}
