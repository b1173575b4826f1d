package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRefID(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{8}$`)

	for i := 0; i < 1000; i++ {
		refID, err := GenerateRefID()
		require.NoError(t, err)
		require.True(t, pattern.MatchString(refID), "unexpected refId %q", refID)
	}
}
