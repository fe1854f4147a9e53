package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrappers(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name string
		wrap func(string, error) error
		want string
	}{
		{"load", WrapLoadError, "failed to load x: permission denied"},
		{"write", WrapWriteError, "failed to write x: permission denied"},
		{"process", WrapProcessError, "failed to process x: permission denied"},
		{"create", WrapCreateError, "failed to create x: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wrap("x", cause)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, cause)
		})
	}
}
