package spotify

import (
	"path"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// trackID extracts the track identifier out of any of the forms
// the fingerprinting service may cross-reference it with:
// - ID: 1234567890123456789012
// - URI: spotify:track:1234567890123456789012
// - URL: https://open.spotify.com/track/1234567890123456789012?si=abcdefghijklmnop
func trackID(target string) (spotify.ID, bool) {
	target = strings.TrimSpace(target)
	uriParts := strings.Split(target, ":")
	target = path.Base(uriParts[len(uriParts)-1])
	target = strings.Split(target, "?")[0]

	if target == "" || target == "." || target == "/" {
		return "", false
	}
	return spotify.ID(target), true
}
