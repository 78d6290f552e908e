package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anovainvest/allocations/internal/domain"
)

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{domain.ErrOrderNotFound, true},
		{domain.ErrClientNotFound, true},
		{domain.ErrAssetNotFound, true},
		{domain.ErrAnnotationNotFound, true},
		{fmt.Errorf("lookup: %w", domain.ErrOrderNotFound), true},
		{domain.ErrOutboxPublish, false},
		{errors.New("other"), false},
		{nil, false},
	}

	for _, tc := range cases {
		if got := domain.IsNotFound(tc.err); got != tc.want {
			t.Fatalf("IsNotFound(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
