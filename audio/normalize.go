package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/sys/cmd"
	"github.com/thanhpk/randstr"
)

const transcodeTimeout = 10 * time.Second

type Transcoder interface {
	Transcode(ctx context.Context, input, output string) error
}

type Normalizer struct {
	transcoder Transcoder
	log        *logrus.Entry
	timeout    time.Duration
}

func NewNormalizer(transcoder Transcoder, log *logrus.Entry) *Normalizer {
	if transcoder == nil {
		transcoder = cmd.FFmpeg()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Normalizer{transcoder, log, transcodeTimeout}
}

// Normalize returns a sample the fingerprinting service accepts:
// unsupported containers get transcoded to PCM WAV, falling back
// to the original bytes whenever the conversion fails
func (normalizer *Normalizer) Normalize(ctx context.Context, data []byte) entity.Sample {
	sample := entity.Sample{Data: data, Encoding: Sniff(data)}
	if Accepted(sample.Encoding) {
		return sample
	}

	normalizer.log.WithField("size", humanize.Bytes(uint64(len(data)))).
		Debugf("transcoding %s sample", sample.Encoding)
	converted, err := normalizer.transcode(ctx, sample)
	if err != nil {
		normalizer.log.WithError(err).Warn("cannot transcode sample, forwarding it unchanged")
		return sample
	}
	return entity.Sample{Data: converted, Encoding: entity.EncodingWAV}
}

func (normalizer *Normalizer) transcode(ctx context.Context, sample entity.Sample) ([]byte, error) {
	var (
		basename = filepath.Join(os.TempDir(), "lyrika-"+randstr.Hex(8))
		input    = basename + "." + sample.Encoding.Extension()
		output   = basename + ".wav"
	)
	defer os.Remove(input)
	defer os.Remove(output)

	if err := os.WriteFile(input, sample.Data, 0o600); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, normalizer.timeout)
	defer cancel()
	if err := normalizer.transcoder.Transcode(ctx, input, output); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(output)
	if err != nil {
		return nil, err
	}
	if encoding := Sniff(data); encoding != entity.EncodingWAV {
		return nil, fmt.Errorf("transcoder produced %s data", encoding)
	}
	return data, nil
}
