package acrcloud

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/entity"
)

var mockSong = entity.Song{
	Title:     "Bohemian Rhapsody",
	Artist:    "Queen",
	Album:     "A Night at the Opera",
	YoutubeID: "fJ9rUzIMcZQ",
	Mock:      true,
}

type mock struct {
	log *logrus.Entry
}

func (identifier *mock) Identify(context.Context, entity.Sample) (*entity.Song, error) {
	identifier.log.Warn("using mock identification, credentials are not set")
	song := mockSong
	return &song, nil
}
