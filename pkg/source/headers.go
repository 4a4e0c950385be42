package source

import (
	"math/rand"
	"net/http"
)

var acceptLanguages = []string{
	"tr-TR,tr;q=0.9,en;q=0.8",
	"tr-TR,tr;q=0.9",
	"tr,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,tr;q=0.8",
}

// setBrowserHeaders makes requests look like a regular browser, some sites refuse bare clients
func setBrowserHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,application/rss+xml,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}
