package server

import "github.com/streambinder/lyrika/entity"

const (
	statusSuccess = "success"
	statusError   = "error"
)

type identifyRequest struct {
	AudioData string `json:"audio_data"`
}

type translateRequest struct {
	Lyrics     string `json:"lyrics"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// songRequest is the body shared by the annotation routes
type songRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Lyrics string `json:"lyrics"`
}

type errorResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	RawResponse string `json:"raw_response,omitempty"`
	APIUsed     string `json:"api_used,omitempty"`
}

type healthResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	GeminiStatus string `json:"gemini_status"`
}

type identifyResponse struct {
	Status       string `json:"status"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	Lyrics       string `json:"lyrics"`
	YoutubeID    string `json:"youtubeId"`
	SpotifyID    string `json:"spotifyId"`
	AlbumArtwork string `json:"albumArtwork"`
	LyricsSource string `json:"lyrics_source"`
	Formatting   string `json:"formatting"`
	SourceURL    string `json:"source_url,omitempty"`
	Mock         bool   `json:"mock,omitempty"`
}

type lyricsResponse struct {
	Status       string `json:"status"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Lyrics       string `json:"lyrics"`
	SourceURL    string `json:"source_url,omitempty"`
	LyricsSource string `json:"lyrics_source"`
	Formatting   string `json:"formatting"`
	Note         string `json:"note,omitempty"`
}

type translateResponse struct {
	Status           string `json:"status"`
	OriginalLyrics   string `json:"original_lyrics"`
	TranslatedLyrics string `json:"translated_lyrics"`
	SourceLanguage   string `json:"source_language"`
	TargetLanguage   string `json:"target_language"`
	APIUsed          string `json:"api_used"`
	Note             string `json:"note,omitempty"`
}

type meaningResponse struct {
	Status  string `json:"status"`
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Meaning string `json:"meaning"`
	APIUsed string `json:"api_used"`
	Note    string `json:"note,omitempty"`
}

type similarResponse struct {
	Status          string                  `json:"status"`
	Title           string                  `json:"title"`
	Artist          string                  `json:"artist"`
	Recommendations []entity.Recommendation `json:"recommendations"`
	APIUsed         string                  `json:"api_used"`
	Note            string                  `json:"note,omitempty"`
}

type geminiStatusResponse struct {
	Status        string `json:"status"`
	Configured    bool   `json:"configured"`
	Model         string `json:"model"`
	APIKeyPresent bool   `json:"api_key_present"`
	APIKeyLength  int    `json:"api_key_length"`
	APIKeyPrefix  string `json:"api_key_prefix"`
}
