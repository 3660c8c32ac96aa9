package acrcloud

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
)

const statusSuccess = 0

type identifyResponse struct {
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"msg"`
	} `json:"status"`
	Metadata struct {
		Music []music `json:"music"`
	} `json:"metadata"`
}

type artist struct {
	Name string `json:"name"`
}

type music struct {
	Title   string `json:"title"`
	Artists []artist `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Covers []struct {
			URL string `json:"url"`
		} `json:"covers"`
	} `json:"album"`
	ExternalMetadata struct {
		Youtube struct {
			Vid string `json:"vid"`
		} `json:"youtube"`
		Spotify struct {
			Track struct {
				ID string `json:"id"`
			} `json:"track"`
			Album struct {
				ID string `json:"id"`
			} `json:"album"`
		} `json:"spotify"`
	} `json:"external_metadata"`
}

func parse(body []byte) (*identifyResponse, error) {
	var response identifyResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &response); err != nil {
		return nil, &entity.ParseError{Raw: string(body), Err: err}
	}
	return &response, nil
}

// song projects the first match onto a descriptor,
// or reports nil if the response holds no match
func (response *identifyResponse) song() *entity.Song {
	if response.Status.Code != statusSuccess || len(response.Metadata.Music) == 0 {
		return nil
	}

	match := response.Metadata.Music[0]
	song := &entity.Song{
		Title:     match.Title,
		Artist:    util.First(match.Artists, artist{}).Name,
		Album:     match.Album.Name,
		YoutubeID: match.ExternalMetadata.Youtube.Vid,
		SpotifyID: match.ExternalMetadata.Spotify.Track.ID,
	}
	for _, cover := range match.Album.Covers {
		if cover.URL != "" {
			song.ArtworkURL = cover.URL
			break
		}
	}
	return song
}
