package railway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTravelDate(t *testing.T) {
	day, month, year, err := ParseTravelDate("15-12-2024")
	require.NoError(t, err)
	assert.Equal(t, 15, day)
	assert.Equal(t, 12, month)
	assert.Equal(t, 2024, year)

	for _, malformed := range []string{"", "15/12/2024", "15-12-24", "1-2-2024", "ab-12-2024", "15-xy-2024", "15-12-20zz"} {
		_, _, _, err := ParseTravelDate(malformed)
		assert.Error(t, err, "%q should not parse", malformed)
	}
}

func TestValidateTravelDate(t *testing.T) {
	assert.NoError(t, ValidateTravelDate("01-01-2024"))
	assert.NoError(t, ValidateTravelDate("31-12-2030"))

	assert.Error(t, ValidateTravelDate("00-06-2025"), "day too low")
	assert.Error(t, ValidateTravelDate("32-06-2025"), "day too high")
	assert.Error(t, ValidateTravelDate("15-00-2025"), "month too low")
	assert.Error(t, ValidateTravelDate("15-13-2025"), "month too high")
	assert.Error(t, ValidateTravelDate("15-06-2023"), "year too early")
	assert.Error(t, ValidateTravelDate("15-06-2031"), "year too late")
}
