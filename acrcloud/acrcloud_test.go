package acrcloud

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
	"github.com/stretchr/testify/assert"
)

const (
	responseMatch = `{
		"status": {"code": 0, "msg": "Success"},
		"metadata": {"music": [{
			"title": "Paranoid Android",
			"artists": [{"name": "Radiohead"}, {"name": "Someone Else"}],
			"album": {"name": "OK Computer", "covers": [{"url": ""}, {"url": "https://covers.test/ok.jpg"}]},
			"external_metadata": {
				"youtube": {"vid": "fHiGbolFFGw"},
				"spotify": {"track": {"id": "6LgJvl0Xdtc73RJ1mmpotq"}, "album": {"id": "6dVIqQ8qmQ5GBnJ9shOYGE"}}
			}
		}]}
	}`
	responsePartial = `{"status": {"code": 0}, "metadata": {"music": [{"title": "Untitled"}]}}`
	responseNoMatch = `{"status": {"code": 1001, "msg": "No result"}}`
)

type normalizerFunc func(ctx context.Context, data []byte) entity.Sample

func (f normalizerFunc) Normalize(ctx context.Context, data []byte) entity.Sample {
	return f(ctx, data)
}

func testIdentifier(t *testing.T, handler http.HandlerFunc) (Identifier, func()) {
	server := httptest.NewServer(handler)
	identifier := New(config.ACRCloudConfig{
		Host:         "acr.test",
		AccessKey:    "access-key",
		AccessSecret: "access-secret",
		Timeout:      2,
	}, nil, nil).(*live)
	identifier.endpoint = server.URL + httpURI
	identifier.now = func() time.Time { return time.Unix(1700000000, 0) }
	return identifier, server.Close
}

func BenchmarkACRCloud(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestSign(&testing.T{})
		TestIdentify(&testing.T{})
	}
}

func TestSign(t *testing.T) {
	assert.Equal(t, "/1PZykzJhC4XsbAgPRMZryuKAmI=",
		Sign("POST", "/v1/identify", "access-key", "audio", "1", "1700000000", "access-secret"))
	assert.Equal(t, "spBpNEdJi2vJy6Vt372YFGo4kGY=",
		Sign("POST", "/v1/identify", "", "audio", "1", "0", ""))
	assert.NotEqual(t,
		Sign("POST", "/v1/identify", "access-key", "audio", "1", "1700000000", "access-secret"),
		Sign("POST", "/v1/identify", "access-key", "audio", "1", "1700000001", "access-secret"))
}

func TestNewMock(t *testing.T) {
	_, isMock := New(config.ACRCloudConfig{AccessKey: "only-key"}, nil, nil).(*mock)
	assert.True(t, isMock)
	_, isLive := New(config.ACRCloudConfig{AccessKey: "key", AccessSecret: "secret"}, nil, nil).(*live)
	assert.True(t, isLive)
}

func TestIdentifyMock(t *testing.T) {
	identifier := New(config.ACRCloudConfig{}, nil, nil)
	song, err := identifier.Identify(context.Background(), entity.Sample{})
	assert.Nil(t, err)
	assert.Equal(t, "Bohemian Rhapsody", song.Title)
	assert.Equal(t, "Queen", song.Artist)
	assert.Equal(t, "A Night at the Opera", song.Album)
	assert.Equal(t, "fJ9rUzIMcZQ", song.YoutubeID)
	assert.True(t, song.Mock)

	// results must not alias the canned descriptor
	song.Title = "altered"
	again, _ := identifier.Identify(context.Background(), entity.Sample{})
	assert.Equal(t, "Bohemian Rhapsody", again.Title)
}

func TestIdentify(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, httpURI, r.URL.Path)
		assert.Nil(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "access-key", r.FormValue("access_key"))
		assert.Equal(t, "audio", r.FormValue("data_type"))
		assert.Equal(t, "1", r.FormValue("signature_version"))
		assert.Equal(t, "1700000000", r.FormValue("timestamp"))
		assert.Equal(t, "/1PZykzJhC4XsbAgPRMZryuKAmI=", r.FormValue("signature"))
		assert.Equal(t, "5", r.FormValue("sample_bytes"))
		file, _, err := r.FormFile("sample")
		assert.Nil(t, err)
		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte("audio"), data)
		_, _ = w.Write([]byte(responseMatch))
	})
	defer closer()

	// testing
	song, err := identifier.Identify(context.Background(), entity.Sample{Data: []byte("audio")})
	assert.Nil(t, err)
	assert.Equal(t, &entity.Song{
		Title:      "Paranoid Android",
		Artist:     "Radiohead",
		Album:      "OK Computer",
		YoutubeID:  "fHiGbolFFGw",
		SpotifyID:  "6LgJvl0Xdtc73RJ1mmpotq",
		ArtworkURL: "https://covers.test/ok.jpg",
	}, song)
}

func TestIdentifyNormalized(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Nil(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "10", r.FormValue("sample_bytes"))
		_, header, err := r.FormFile("sample")
		assert.Nil(t, err)
		assert.Equal(t, "sample.wav", header.Filename)
		assert.Equal(t, "audio/wav", header.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(responsePartial))
	})
	defer closer()
	identifier.(*live).normalizer = normalizerFunc(func(_ context.Context, data []byte) entity.Sample {
		return entity.Sample{Data: []byte("normalized"), Encoding: entity.EncodingWAV}
	})

	// testing
	song, err := identifier.Identify(context.Background(), entity.Sample{Data: []byte("webm")})
	assert.Nil(t, err)
	assert.Equal(t, &entity.Song{Title: "Untitled"}, song)
}

func TestIdentifyNoMatch(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(responseNoMatch))
	})
	defer closer()

	// testing
	song, err := identifier.Identify(context.Background(), entity.Sample{Data: []byte("audio")})
	assert.Nil(t, song)
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Contains(t, err.Error(), MessageNoMatch)
}

func TestIdentifyEmptyMatch(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": {"code": 0}, "metadata": {"music": []}}`))
	})
	defer closer()

	// testing
	assert.ErrorIs(t, util.ErrOnly(identifier.Identify(context.Background(), entity.Sample{})), entity.ErrNotFound)
}

func TestIdentifyStatusFailure(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer closer()

	// testing
	err := util.ErrOnly(identifier.Identify(context.Background(), entity.Sample{}))
	assert.ErrorIs(t, err, entity.ErrTransport)
	assert.Contains(t, err.Error(), "502")
}

func TestIdentifyMalformed(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "broken"`))
	})
	defer closer()

	// testing
	var parseErr *entity.ParseError
	err := util.ErrOnly(identifier.Identify(context.Background(), entity.Sample{}))
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, `{"status": "broken"`, parseErr.Raw)
}

func TestIdentifyRequestFailure(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {})
	defer closer()

	// monkey patching
	defer gomonkey.ApplyFunc(util.HttpRequest, func() (*http.Response, error) {
		return nil, errors.New("connection refused")
	}).Reset()

	// testing
	err := util.ErrOnly(identifier.Identify(context.Background(), entity.Sample{}))
	assert.ErrorIs(t, err, entity.ErrTransport)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIdentifyCanceled(t *testing.T) {
	identifier, closer := testIdentifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(responseMatch))
	})
	defer closer()

	// testing
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := util.ErrOnly(identifier.Identify(ctx, entity.Sample{}))
	assert.ErrorIs(t, err, entity.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
