package helpers

import (
	"fmt"
	"net/url"
)

// Host extracts the lowercase host part of a URL, used as the per-site
// cooldown key.
func Host(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("no host in url: %s", rawURL)
	}
	return u.Hostname(), nil
}
