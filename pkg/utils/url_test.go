package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCrawlURL(t *testing.T) {
	u, err := ParseCrawlURL(" https://www.moneycontrol.com/ ")
	require.NoError(t, err)
	assert.Equal(t, "www.moneycontrol.com", u.Host)

	for _, raw := range []string{"", "moneycontrol.com", "ftp://example.com/file", "/relative/path"} {
		_, err := ParseCrawlURL(raw)
		assert.ErrorIs(t, err, ErrInvalidCrawlURL, raw)
	}
}

func TestDomain(t *testing.T) {
	assert.Equal(t, "www.moneycontrol.com", Domain("https://www.moneycontrol.com/markets"))
	assert.Equal(t, "unknown", Domain("::not a url"))
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "*****c123", MaskToken("fc-abc123"))
	assert.Equal(t, "***", MaskToken("abc"))
	assert.Equal(t, "", MaskToken(""))
}
