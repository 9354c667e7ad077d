package linkprobe

import "regexp"

// scheme, one or more domain labels, a 2+ letter top level label and an
// optional non-whitespace tail
var urlPattern = regexp.MustCompile(`https?://[A-Za-z0-9.-]+\.[A-Za-z]{2,}\S*`)

// ExtractURLs scans every cell for URLs and returns the distinct matches in
// first-seen order. URLs are compared by their exact string value, no
// normalization happens here: http://a.com and http://a.com/ are two entries.
func ExtractURLs(cells []string) []string {
	seen := map[string]bool{}
	urls := []string{}
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		for _, match := range urlPattern.FindAllString(cell, -1) {
			if !seen[match] {
				seen[match] = true
				urls = append(urls, match)
			}
		}
	}
	return urls
}
