package server

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyrika/acrcloud"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/gemini"
)

const messageNotJSON = "Request must be JSON"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// bind decodes the JSON request body into request
func bind(c *gin.Context, request interface{}) error {
	if c.ContentType() != gin.MIMEJSON {
		return fmt.Errorf("unexpected content type %q", c.ContentType())
	}
	return json.NewDecoder(c.Request.Body).Decode(request)
}

// decodeAudio accepts both bare base64 and data URLs
func decodeAudio(data string) ([]byte, error) {
	if strings.HasPrefix(data, "data:") {
		if _, encoded, ok := strings.Cut(data, ","); ok {
			data = encoded
		}
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(data))
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, errorResponse{Status: statusError, Message: message})
}

// respondFailure maps err onto the response the client gets:
// missing answers and unparsable payloads are not server failures
func (server *Server) respondFailure(c *gin.Context, err error, subject, notFound, failure string) {
	var parseErr *entity.ParseError
	switch {
	case errors.As(err, &parseErr):
		server.log.WithError(err).Warn("unparsable provider response")
		c.JSON(http.StatusOK, errorResponse{
			Status:      statusError,
			Message:     fmt.Sprintf("Failed to parse %s data", subject),
			RawResponse: parseErr.Raw,
			APIUsed:     gemini.APIUsedParseError,
		})
	case errors.Is(err, entity.ErrNotFound):
		respondError(c, http.StatusOK, notFound)
	default:
		server.log.WithError(err).WithField("request_id", c.GetString(headerRequestID)).Error(failure)
		respondError(c, http.StatusInternalServerError, failure)
	}
}

func (server *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:       statusSuccess,
		Message:      "Lyrika API is running",
		GeminiStatus: server.status.Tag(),
	})
}

func (server *Server) handleIdentify(c *gin.Context) {
	var request identifyRequest
	if err := bind(c, &request); err != nil {
		server.log.WithError(err).Debug("malformed request")
		respondError(c, http.StatusBadRequest, messageNotJSON)
		return
	}
	if request.AudioData == "" {
		respondError(c, http.StatusBadRequest, "Missing audio data")
		return
	}

	data, err := decodeAudio(request.AudioData)
	if err != nil || len(data) == 0 {
		respondError(c, http.StatusBadRequest, "Invalid audio data")
		return
	}

	resolution, err := server.service.ResolveSongAndLyrics(c.Request.Context(), entity.Sample{Data: data})
	if err != nil {
		server.respondFailure(c, err, "identification", acrcloud.MessageNoMatch, "Failed to process audio")
		return
	}

	response := identifyResponse{
		Status:       statusSuccess,
		Title:        resolution.Song.Title,
		Artist:       resolution.Song.Artist,
		Album:        resolution.Song.Album,
		YoutubeID:    resolution.Song.YoutubeID,
		SpotifyID:    resolution.Song.SpotifyID,
		AlbumArtwork: resolution.Song.ArtworkURL,
		LyricsSource: resolution.LyricsSource,
		Formatting:   resolution.Formatting,
		Mock:         resolution.Song.Mock,
	}
	if resolution.Lyrics != nil {
		response.Lyrics = resolution.Lyrics.Text
		response.SourceURL = resolution.Lyrics.SourceURL
	}
	c.JSON(http.StatusOK, response)
}

func (server *Server) handleLyrics(c *gin.Context) {
	title, artist := strings.TrimSpace(c.Query("title")), strings.TrimSpace(c.Query("artist"))
	if title == "" {
		respondError(c, http.StatusBadRequest, "Missing song title")
		return
	}

	lyrics, err := server.service.FetchLyrics(c.Request.Context(), title, artist)
	if err != nil {
		song := &entity.Song{Title: title, Artist: artist}
		server.respondFailure(c, err, "lyrics", fmt.Sprintf("Could not find lyrics for %s", song), "Failed to fetch lyrics")
		return
	}

	c.JSON(http.StatusOK, lyricsResponse{
		Status:       statusSuccess,
		Title:        title,
		Artist:       artist,
		Lyrics:       lyrics.Text,
		SourceURL:    lyrics.SourceURL,
		LyricsSource: entity.LyricsSource(lyrics),
		Formatting:   entity.FormattingTag(lyrics),
		Note:         lyrics.Note,
	})
}

func (server *Server) handleTranslate(c *gin.Context) {
	var request translateRequest
	if err := bind(c, &request); err != nil {
		server.log.WithError(err).Debug("malformed request")
		respondError(c, http.StatusBadRequest, messageNotJSON)
		return
	}
	if request.Lyrics == "" || request.TargetLang == "" {
		respondError(c, http.StatusBadRequest, "Missing lyrics or target language")
		return
	}
	if request.SourceLang == "" {
		request.SourceLang = "auto"
	}

	translation, err := server.service.Translate(c.Request.Context(), request.Lyrics, request.SourceLang, request.TargetLang)
	if err != nil {
		server.respondFailure(c, err, "translation", "No translation available", "Failed to translate lyrics")
		return
	}

	c.JSON(http.StatusOK, translateResponse{
		Status:           statusSuccess,
		OriginalLyrics:   translation.Original,
		TranslatedLyrics: translation.Translated,
		SourceLanguage:   translation.SourceLanguage,
		TargetLanguage:   translation.TargetLanguage,
		APIUsed:          gemini.APIUsed(translation.Mock, nil),
		Note:             translation.Note,
	})
}

func (server *Server) handleExplainMeaning(c *gin.Context) {
	var request songRequest
	if err := bind(c, &request); err != nil {
		server.log.WithError(err).Debug("malformed request")
		respondError(c, http.StatusBadRequest, messageNotJSON)
		return
	}
	if request.Title == "" || request.Artist == "" || request.Lyrics == "" {
		respondError(c, http.StatusBadRequest, "Missing title, artist or lyrics")
		return
	}

	meaning, err := server.service.ExplainMeaning(c.Request.Context(), request.Title, request.Artist, request.Lyrics)
	if err != nil {
		server.respondFailure(c, err, "meaning", "No explanation available", "Failed to explain meaning")
		return
	}

	c.JSON(http.StatusOK, meaningResponse{
		Status:  statusSuccess,
		Title:   meaning.Title,
		Artist:  meaning.Artist,
		Meaning: meaning.Text,
		APIUsed: gemini.APIUsed(meaning.Mock, nil),
		Note:    meaning.Note,
	})
}

func (server *Server) handleSimilarSongs(c *gin.Context) {
	var request songRequest
	if err := bind(c, &request); err != nil {
		server.log.WithError(err).Debug("malformed request")
		respondError(c, http.StatusBadRequest, messageNotJSON)
		return
	}
	if request.Title == "" || request.Artist == "" || request.Lyrics == "" {
		respondError(c, http.StatusBadRequest, "Missing title, artist or lyrics")
		return
	}

	recommendations, err := server.service.RecommendSimilar(c.Request.Context(), request.Title, request.Artist, request.Lyrics)
	if err != nil {
		server.respondFailure(c, err, "recommendations", "No recommendations available", "Failed to get recommendations")
		return
	}

	c.JSON(http.StatusOK, similarResponse{
		Status:          statusSuccess,
		Title:           recommendations.Title,
		Artist:          recommendations.Artist,
		Recommendations: recommendations.Items,
		APIUsed:         gemini.APIUsed(recommendations.Mock, nil),
		Note:            recommendations.Note,
	})
}

func (server *Server) handleGeminiStatus(c *gin.Context) {
	c.JSON(http.StatusOK, geminiStatusResponse{
		Status:        statusSuccess,
		Configured:    server.status.Configured,
		Model:         server.status.Model,
		APIKeyPresent: server.status.KeyPresent,
		APIKeyLength:  server.status.KeyLength,
		APIKeyPrefix:  server.status.KeyPrefix,
	})
}
