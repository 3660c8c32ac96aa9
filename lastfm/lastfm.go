package lastfm

import (
	"context"
	"errors"

	"github.com/shkh/lastfm-go/lastfm"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
)

const (
	errorTrackNotFound = 6
	maxInflight        = 4
)

// ErrBusy is returned while too many lookups are still pending
var ErrBusy = errors.New("too many pending lookups")

var sizeRank = map[string]int{
	"small":      1,
	"medium":     2,
	"large":      3,
	"extralarge": 4,
	"mega":       5,
}

type trackInfo interface {
	GetInfo(args map[string]interface{}) (lastfm.TrackGetInfo, error)
}

type Client struct {
	track    trackInfo
	inflight chan struct{}
	log      *logrus.Entry
}

type result struct {
	info lastfm.TrackGetInfo
	err  error
}

func New(cfg config.LastfmConfig, log *logrus.Entry) *Client {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Client{lastfm.New(cfg.APIKey, cfg.APISecret).Track, make(chan struct{}, maxInflight), log}
}

// Artwork returns the URL of the widest album cover
// Last.fm knows for the song, if any
func (c *Client) Artwork(ctx context.Context, song *entity.Song) (string, error) {
	if song.Title == "" || song.Artist == "" {
		return "", nil
	}

	// the library takes neither a context nor an http client: the call
	// is abandoned rather than interrupted once ctx is done, and the
	// abandoned ones are capped to maxInflight
	select {
	case c.inflight <- struct{}{}:
	default:
		c.log.Warnf("skipping artwork lookup for %s, %d lookups pending", song, maxInflight)
		return "", entity.Transport("lastfm track info", ErrBusy)
	}

	ch := make(chan result, 1)
	go func() {
		defer func() { <-c.inflight }()
		info, err := c.track.GetInfo(map[string]interface{}{
			"track":       song.Title,
			"artist":      song.Artist,
			"autocorrect": 1,
		})
		ch <- result{info, err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return "", entity.Transport("lastfm track info", ctx.Err())
	case res = <-ch:
	}

	if res.err != nil {
		var apiErr *lastfm.LastfmError
		if errors.As(res.err, &apiErr) && apiErr.Code == errorTrackNotFound {
			c.log.Debugf("%s not found", song)
			return "", nil
		}
		return "", entity.Transport("lastfm track info", res.err)
	}

	var (
		url  string
		rank int
	)
	for _, image := range res.info.Album.Images {
		if image.Url != "" && sizeRank[image.Size] >= rank {
			url, rank = image.Url, sizeRank[image.Size]
		}
	}
	return url, nil
}
