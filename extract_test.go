package linkprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	cells := []string{
		"go to http://a.com/x.mp4 now",
		"see http://a.com/x.mp4 and http://b.com/y",
	}
	urls := ExtractURLs(cells)
	assert.Equal(t, []string{"http://a.com/x.mp4", "http://b.com/y"}, urls)
}

func TestExtractURLsIsIdempotent(t *testing.T) {
	cells := []string{
		"https://cdn.example.com/v/1.mp4?token=abc#t=10",
		"",
		"no link here",
		"two https://a.io/1 in https://a.io/2 one cell",
	}
	first := ExtractURLs(cells)
	second := ExtractURLs(cells)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestExtractURLsNoNormalization(t *testing.T) {
	urls := ExtractURLs([]string{"http://a.com/x http://a.com/x/"})
	// trailing slash differences are distinct entries
	assert.Equal(t, []string{"http://a.com/x", "http://a.com/x/"}, urls)
}

func TestExtractURLsRejectsNonURLs(t *testing.T) {
	assert.Empty(t, ExtractURLs([]string{"ftp://a.com/x", "http://", "www.a.com", "http://localhost/x"}))
}

func TestExtractURLsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractURLs(nil))
	assert.Empty(t, ExtractURLs([]string{"", ""}))
}
