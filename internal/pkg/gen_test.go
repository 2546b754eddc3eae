package pkg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportID(t *testing.T) {
	// When: a report ID is generated
	id, err := GenerateReportID()

	// Then: it is a non-negative number below the upper bound
	require.NoError(t, err)
	require.NotEmpty(t, id)

	n, err := strconv.Atoi(id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, maxReportID)
}
