package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutOfRange(t *testing.T) {
	cases := []struct {
		result    string
		reference string
		flagged   bool
	}{
		{"15", "10 - 14", true},
		{"12", "10 - 14", false},
		{"10", "10 - 14", false},
		{"14", "10 - 14", false},
		{"5", "< 10", false},
		{"15", "< 10", true},
		{"10", "<= 10", false},
		{"11", "<= 10", true},
		{"0.6", ">= 0.5", false},
		{"0.4", ">= 0.5", true},
		{"7", "= 7", false},
		{"8", "= 7", true},
		{"20", "> 15", false},
		{"12", "> 15", true},

		// decimal comma and compact ranges
		{"0,45", "0,1 - 0,5", false},
		{"0,55", "0,1 - 0,5", true},
		{"15", "10-14", true},

		// fail open: non-numeric results or unparseable references never flag
		{"negative", "10 - 14", false},
		{"15", "abnormal", false},
		{"15", "", false},
		{"", "10 - 14", false},
		{"15", "see note", false},
		{"15", "< abnormal", false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_in_%s", tc.result, tc.reference), func(t *testing.T) {
			require.Equal(t, tc.flagged, OutOfRange(tc.result, tc.reference),
				"result %q against range %q", tc.result, tc.reference)
		})
	}
}

func TestOutOfRangeNegativeLowerBound(t *testing.T) {
	req := require.New(t)

	req.False(OutOfRange("0", "-2 - 4"))
	req.True(OutOfRange("-3", "-2 - 4"))
	req.True(OutOfRange("5", "-2 - 4"))
}
