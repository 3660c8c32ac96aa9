package acrcloud

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/config"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
)

// MessageNoMatch is the user-facing explanation of an unidentified sample
const MessageNoMatch = "Could not identify song. Please ensure music is playing clearly."

// ErrNoMatch is returned when the service answered without any match
var ErrNoMatch = fmt.Errorf("%w: %s", entity.ErrNotFound, MessageNoMatch)

type Identifier interface {
	Identify(ctx context.Context, sample entity.Sample) (*entity.Song, error)
}

type Normalizer interface {
	Normalize(ctx context.Context, data []byte) entity.Sample
}

type live struct {
	config     config.ACRCloudConfig
	endpoint   string
	client     *http.Client
	normalizer Normalizer
	log        *logrus.Entry
	now        func() time.Time
}

// New returns an identifier backed by the fingerprinting service,
// or a mock one if credentials are missing
func New(cfg config.ACRCloudConfig, log *logrus.Entry, normalizer Normalizer) Identifier {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.AccessKey == "" || cfg.AccessSecret == "" {
		log.Warn("credentials not set, identification will return mock data")
		return &mock{log}
	}
	return &live{
		config:     cfg,
		endpoint:   fmt.Sprintf("https://%s%s", cfg.Host, httpURI),
		client:     &http.Client{Timeout: config.Seconds(cfg.Timeout)},
		normalizer: normalizer,
		log:        log,
		now:        time.Now,
	}
}

func (identifier *live) Identify(ctx context.Context, sample entity.Sample) (*entity.Song, error) {
	if identifier.normalizer != nil {
		sample = identifier.normalizer.Normalize(ctx, sample.Data)
	}

	var (
		timestamp = strconv.FormatInt(identifier.now().Unix(), 10)
		signature = Sign(httpMethod, httpURI, identifier.config.AccessKey, dataType, signatureVersion,
			timestamp, identifier.config.AccessSecret)
	)
	body, contentType, err := identifier.form(sample, signature, timestamp)
	if err != nil {
		return nil, fmt.Errorf("build identify form: %w", err)
	}

	identifier.log.WithField("size", humanize.Bytes(uint64(len(sample.Data)))).
		Debugf("submitting %s sample", sample.Encoding)
	response, err := util.HttpRequest(ctx, identifier.client, http.MethodPost, identifier.endpoint, nil, body,
		"Content-Type: "+contentType)
	if err != nil {
		identifier.log.WithError(err).Error("identification request failed")
		return nil, entity.Transport("identify", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		identifier.log.Errorf("identification request answered %s", response.Status)
		return nil, entity.Transport("identify", errors.New(response.Status))
	}

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, entity.Transport("identify", err)
	}

	parsed, err := parse(payload)
	if err != nil {
		return nil, err
	}

	song := parsed.song()
	if song == nil {
		identifier.log.WithField("code", parsed.Status.Code).Infof("no match: %s", parsed.Status.Message)
		return nil, ErrNoMatch
	}
	identifier.log.Infof("identified %s", song)
	return song, nil
}

func (identifier *live) form(sample entity.Sample, signature, timestamp string) (io.Reader, string, error) {
	var (
		buffer bytes.Buffer
		writer = multipart.NewWriter(&buffer)
	)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="sample"; filename="sample.%s"`, sample.Encoding.Extension()))
	header.Set("Content-Type", sample.Encoding.MimeType())
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(sample.Data); err != nil {
		return nil, "", err
	}

	for _, field := range [][2]string{
		{"access_key", identifier.config.AccessKey},
		{"data_type", dataType},
		{"signature", signature},
		{"signature_version", signatureVersion},
		{"timestamp", timestamp},
		{"sample_bytes", strconv.Itoa(len(sample.Data))},
	} {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buffer, writer.FormDataContentType(), nil
}
