package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCourseCode(t *testing.T) {
	for _, tc := range []struct {
		code  string
		valid bool
	}{
		{"CS101", true},
		{"MATH1001", true},
		{"PHYS20", true},
		{"cs101", false},
		{"CS", false},
		{"101", false},
		{"C101", false},
		{"CS101 ", false},
		{"", false},
	} {
		assert.Equal(t, tc.valid, IsValidCourseCode(tc.code), "code %q", tc.code)
	}
}
