package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("12345678-abcd-efgh"))
	assert.Equal(t, "short", TruncID("short"))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mon, Aug 4 2025", HumanDate("2025-08-04"))
	assert.Equal(t, "not-a-date", HumanDate("not-a-date"))
}

func TestFormatVolume_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "1250 kg", FormatVolume(1250, "kg"))
	assert.Equal(t, "1237.5 kg", FormatVolume(1237.5, "kg"))
	assert.Equal(t, "0 lbs", FormatVolume(0, "lbs"))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "62.5kg", FormatWeight(62.5, "kg"))
	assert.Equal(t, "100lbs", FormatWeight(100, "lbs"))
}

func TestRenderBox_ContainsTitleAndContent(t *testing.T) {
	out := RenderBox("Sessions", "hello")
	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, "hello")
}
