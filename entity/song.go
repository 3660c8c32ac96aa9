package entity

import (
	"fmt"
	"strings"
)

type Song struct {
	Title      string
	Artist     string
	Album      string
	YoutubeID  string
	SpotifyID  string
	ArtworkURL string
	Mock       bool // canned descriptor, not a provider match
}

func (song *Song) Query() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", song.Title, song.Artist))
}

// WithArtwork returns a copy of the song carrying the given artwork URL
func (song Song) WithArtwork(url string) *Song {
	song.ArtworkURL = url
	return &song
}

func (song *Song) String() string {
	if song.Artist == "" {
		return song.Title
	}
	return fmt.Sprintf("%s by %s", song.Title, song.Artist)
}
