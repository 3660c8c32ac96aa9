package spotify

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	*spotify.Client
	log *logrus.Entry
}

type options struct {
	apiURL   string
	tokenURL string
	timeout  time.Duration
}

type Option func(*options)

// WithEndpoints points the client to alternative API and token URLs
func WithEndpoints(apiURL, tokenURL string) Option {
	return func(o *options) {
		o.apiURL = apiURL
		o.tokenURL = tokenURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// New returns a client authenticated through the client credentials flow:
// the token is only requested on the first API call
func New(cfg config.SpotifyConfig, log *logrus.Entry, opts ...Option) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	o := options{tokenURL: spotifyauth.TokenURL, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ID,
		ClientSecret: cfg.Key,
		TokenURL:     o.tokenURL,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: o.timeout})
	httpClient := credentials.Client(ctx)
	httpClient.Timeout = o.timeout

	clientOpts := []spotify.ClientOption{}
	if o.apiURL != "" {
		clientOpts = append(clientOpts, spotify.WithBaseURL(o.apiURL))
	}
	return &Client{spotify.New(httpClient, clientOpts...), log}
}

// Artwork returns the album cover URL of the song's track,
// or an empty string if the song has no track reference
func (c *Client) Artwork(ctx context.Context, song *entity.Song) (string, error) {
	id, ok := trackID(song.SpotifyID)
	if !ok {
		return "", nil
	}

	track, err := c.GetTrack(ctx, id)
	if err != nil {
		var apiErr spotify.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			c.log.Debugf("track %s not found", id)
			return "", nil
		}
		return "", entity.Transport("spotify track", err)
	}

	// images come sorted by size, widest first
	for _, image := range track.Album.Images {
		if image.URL != "" {
			return image.URL, nil
		}
	}
	return "", nil
}
