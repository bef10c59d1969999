package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeServiceDaysRoundTrip(t *testing.T) {
	encoded := EncodeHomeServiceDays([]int{1, 2, 3})
	assert.Equal(t, "[1,2,3]", encoded)
	assert.Equal(t, []int{1, 2, 3}, ParseHomeServiceDays(encoded))
}

func TestParseHomeServiceDays_FallbackOnGarbage(t *testing.T) {
	assert.Equal(t, []int{1, 2}, ParseHomeServiceDays(""))
	assert.Equal(t, []int{1, 2}, ParseHomeServiceDays("não é json"))
	assert.Equal(t, []int{1, 2}, ParseHomeServiceDays("{\"a\":1}"))
}

func TestParseHomeServiceDays_DropsOutOfRange(t *testing.T) {
	assert.Equal(t, []int{0, 6}, ParseHomeServiceDays("[0,6,7,-1]"))
}

func TestParseFollowupDays(t *testing.T) {
	assert.Equal(t, 60, parseFollowupDays("60"))
	assert.Equal(t, 45, parseFollowupDays(""))
	assert.Equal(t, 45, parseFollowupDays("abc"))
	assert.Equal(t, 45, parseFollowupDays("0"))
	assert.Equal(t, 45, parseFollowupDays("400"))
	assert.Equal(t, 1, parseFollowupDays("1"))
	assert.Equal(t, 365, parseFollowupDays("365"))
}
