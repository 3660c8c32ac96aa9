package lyrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
	"github.com/bradfitz/slice"
	jsoniter "github.com/json-iterator/go"
	"github.com/kennygrant/sanitize"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/sys"
	"github.com/streambinder/lyrika/util"
	"golang.org/x/net/html"
)

const (
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"
	maxDistance = 50
)

var containerClass = regexp.MustCompile(`(^|\s)Lyrics__Container`)

type Genius struct {
	apiURL string
	token  string
	client *http.Client
	log    *logrus.Entry
}

type geniusSearch struct {
	Response struct {
		Hits []geniusHit
	}
}

type geniusHit struct {
	Result struct {
		URL    string
		Title  string
		Artist struct {
			Name string
		} `json:"primary_artist"`
	}
}

func NewGenius(cfg config.GeniusConfig, log *logrus.Entry) *Genius {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Genius{
		apiURL: strings.TrimSuffix(cfg.APIURL, "/"),
		token:  cfg.AccessToken,
		client: &http.Client{Timeout: config.Seconds(cfg.Timeout)},
		log:    log,
	}
}

// Find returns the page URL of the first search hit for query,
// or an empty string if nothing matched
func (genius *Genius) Find(ctx context.Context, query string) (string, error) {
	hits, err := genius.search(ctx, query)
	if err != nil {
		return "", err
	}
	for _, hit := range hits {
		if hit.Result.URL != "" {
			return hit.Result.URL, nil
		}
	}
	return "", nil
}

// FindBest returns the page URL of the search hit for query which
// most closely resembles the given title and artist
func (genius *Genius) FindBest(ctx context.Context, query, title, artist string) (string, error) {
	hits, err := genius.search(ctx, query)
	if err != nil {
		return "", err
	}

	var (
		target    = util.UniqueFields(fmt.Sprintf("%s %s", title, artist))
		distances = make([]int, len(hits))
		ranking   = make([]int, len(hits))
	)
	for i, hit := range hits {
		ranking[i] = i
		distances[i] = levenshtein.ComputeDistance(target,
			util.UniqueFields(fmt.Sprintf("%s %s", hit.Result.Title, hit.Result.Artist.Name)))
	}
	slice.Sort(ranking, func(i, j int) bool {
		if distances[ranking[i]] == distances[ranking[j]] {
			return ranking[i] < ranking[j]
		}
		return distances[ranking[i]] < distances[ranking[j]]
	})

	for _, i := range ranking {
		if hits[i].Result.URL != "" && distances[i] < maxDistance {
			return hits[i].Result.URL, nil
		}
	}
	return "", nil
}

// Extract scrapes and cleans the lyrics held by the page at the given URL,
// returning an empty string if the page holds no lyrics container
func (genius *Genius) Extract(ctx context.Context, url string) (string, error) {
	response, err := genius.get(ctx, "fetch lyrics page", url, nil, "User-Agent: "+userAgent)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return "", &entity.ParseError{Err: err}
	}

	containers := document.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return containerClass.MatchString(s.AttrOr("class", "")) ||
			s.AttrOr("data-lyrics-container", "") == "true"
	})
	containers.Find(".InlineAnnotation__Container, .ReferentFragmentVariantdesktop__Container").Remove()

	var data strings.Builder
	containers.Each(func(_ int, s *goquery.Selection) {
		s.Contents().Each(documentParser(&data))
		data.WriteByte('\n')
	})

	if containers.Length() == 0 {
		fallback := document.Find("div.lyrics").First()
		if fallback.Length() == 0 {
			genius.log.Debugf("no lyrics container found at %s", url)
			return "", nil
		}
		fallback.Find(".InlineAnnotation__Container, .ReferentFragmentVariantdesktop__Container").Remove()
		markup, err := fallback.Html()
		if err != nil {
			return "", &entity.ParseError{Err: err}
		}
		data.WriteString(sanitize.HTML(markup))
	}

	return Clean(data.String()), nil
}

func (genius *Genius) search(ctx context.Context, query string) ([]geniusHit, error) {
	response, err := genius.get(ctx, "search lyrics", genius.apiURL+"/search", url.Values{"q": {query}},
		"Authorization: Bearer "+genius.token)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, entity.Transport("search lyrics", err)
	}

	var data geniusSearch
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &data); err != nil {
		return nil, &entity.ParseError{Raw: string(body), Err: err}
	}
	genius.log.Debugf("%d hits for %q", len(data.Response.Hits), query)
	return data.Response.Hits, nil
}

// get performs the request, waiting out a single throttled response
func (genius *Genius) get(ctx context.Context, op, url string, query url.Values, headers ...string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		response, err := util.HttpRequest(ctx, genius.client, http.MethodGet, url, query, nil, headers...)
		if err != nil {
			return nil, entity.Transport(op, err)
		}

		switch {
		case response.StatusCode == http.StatusOK:
			return response, nil
		case response.StatusCode == http.StatusTooManyRequests && attempt == 0:
			response.Body.Close()
			genius.log.Warnf("throttled, retrying in %s", sys.RetryAfter(response.Header))
			if err := sys.SleepUntilRetry(ctx, response.Header); err != nil {
				return nil, entity.Transport(op, err)
			}
		default:
			response.Body.Close()
			return nil, entity.Transport(op, errors.New(response.Status))
		}
	}
}

func documentParser(data *strings.Builder) func(int, *goquery.Selection) {
	return func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		switch {
		case node.Type == html.TextNode:
			data.WriteString(node.Data)
		case node.Type != html.ElementNode:
		case node.Data == "br":
			data.WriteByte('\n')
		default:
			s.Contents().Each(documentParser(data))
			if node.Data == "div" || node.Data == "p" {
				data.WriteByte('\n')
			}
		}
	}
}
