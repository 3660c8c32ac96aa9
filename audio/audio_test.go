package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/streambinder/lyrika/entity"
	"github.com/stretchr/testify/assert"
)

type transcoderFunc func(ctx context.Context, input, output string) error

func (f transcoderFunc) Transcode(ctx context.Context, input, output string) error {
	return f(ctx, input, output)
}

func wavFixture(samples int) []byte {
	var (
		buffer bytes.Buffer
		data   = make([]byte, samples*4)
	)
	buffer.WriteString("RIFF")
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(36+len(data)))
	buffer.WriteString("WAVEfmt ")
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(1))      // pcm
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(2))      // channels
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(44100))  // sample rate
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(176400)) // byte rate
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(4))      // block align
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(16))     // bit depth
	buffer.WriteString("data")
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(len(data)))
	buffer.Write(data)
	return buffer.Bytes()
}

var (
	fixtureWAV  = wavFixture(4410)
	fixtureWebM = append([]byte{0x1a, 0x45, 0xdf, 0xa3, 0x9f, 0x42, 0x86, 0x81, 0x01, 0x42, 0xf7, 0x81}, make([]byte, 64)...)
	fixtureMP3  = append([]byte("ID3\x04\x00\x00\x00\x00\x00\x00"), make([]byte, 256)...)
	fixtureFLAC = append([]byte("fLaC"), make([]byte, 64)...)
	fixtureOGG  = append([]byte("OggS"), make([]byte, 64)...)
	fixtureMPEG = append([]byte{0xff, 0xfb, 0x90, 0x64}, make([]byte, 64)...)
	fixtureJunk = []byte("definitely not an audio stream")
)

func BenchmarkAudio(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestSniff(&testing.T{})
	}
}

func TestSniff(t *testing.T) {
	assert.Equal(t, entity.EncodingWAV, Sniff(fixtureWAV))
	assert.Equal(t, entity.EncodingWebM, Sniff(fixtureWebM))
	assert.Equal(t, entity.EncodingMP3, Sniff(fixtureMP3))
	assert.Equal(t, entity.EncodingFLAC, Sniff(fixtureFLAC))
	assert.Equal(t, entity.EncodingOGG, Sniff(fixtureOGG))
	assert.Equal(t, entity.EncodingMP3, Sniff(fixtureMPEG))
	assert.Equal(t, entity.EncodingUnknown, Sniff(fixtureJunk))
	assert.Equal(t, entity.EncodingUnknown, Sniff([]byte("RIFF")))
	assert.Equal(t, entity.EncodingUnknown, Sniff(nil))
}

func TestSniffBrokenWAV(t *testing.T) {
	broken := append([]byte{}, fixtureWAV[:12]...)
	broken = append(broken, make([]byte, 32)...)
	assert.Equal(t, entity.EncodingUnknown, Sniff(broken))
}

func TestAccepted(t *testing.T) {
	for _, encoding := range []entity.Encoding{
		entity.EncodingWAV, entity.EncodingMP3, entity.EncodingFLAC, entity.EncodingOGG, entity.EncodingMP4,
	} {
		assert.True(t, Accepted(encoding), encoding)
	}
	assert.False(t, Accepted(entity.EncodingWebM))
	assert.False(t, Accepted(entity.EncodingUnknown))
}

func TestNormalizePassthrough(t *testing.T) {
	called := false
	normalizer := NewNormalizer(transcoderFunc(func(context.Context, string, string) error {
		called = true
		return nil
	}), nil)

	// testing
	sample := normalizer.Normalize(context.Background(), fixtureWAV)
	assert.False(t, called)
	assert.Equal(t, entity.EncodingWAV, sample.Encoding)
	assert.Equal(t, fixtureWAV, sample.Data)
}

func TestNormalizeTranscode(t *testing.T) {
	var input string
	normalizer := NewNormalizer(transcoderFunc(func(ctx context.Context, in, out string) error {
		input = in
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return os.WriteFile(out, fixtureWAV, 0o600)
	}), nil)

	// testing
	sample := normalizer.Normalize(context.Background(), fixtureWebM)
	assert.Equal(t, entity.EncodingWAV, sample.Encoding)
	assert.Equal(t, fixtureWAV, sample.Data)
	assert.Contains(t, input, ".webm")
	assert.NoFileExists(t, input)
}

func TestNormalizeTranscodeFailure(t *testing.T) {
	normalizer := NewNormalizer(transcoderFunc(func(context.Context, string, string) error {
		return errors.New("ffmpeg exploded")
	}), nil)

	// testing
	sample := normalizer.Normalize(context.Background(), fixtureJunk)
	assert.Equal(t, entity.EncodingUnknown, sample.Encoding)
	assert.Equal(t, fixtureJunk, sample.Data)
}

func TestNormalizeTranscodeGarbage(t *testing.T) {
	normalizer := NewNormalizer(transcoderFunc(func(_ context.Context, _, out string) error {
		return os.WriteFile(out, fixtureJunk, 0o600)
	}), nil)

	// testing
	sample := normalizer.Normalize(context.Background(), fixtureWebM)
	assert.Equal(t, entity.EncodingWebM, sample.Encoding)
	assert.Equal(t, fixtureWebM, sample.Data)
}

func TestNormalizeWriteFailure(t *testing.T) {
	// monkey patching
	defer gomonkey.ApplyFunc(os.WriteFile, func() error {
		return errors.New("disk full")
	}).Reset()

	// testing
	sample := NewNormalizer(nil, nil).Normalize(context.Background(), fixtureWebM)
	assert.Equal(t, entity.EncodingWebM, sample.Encoding)
}
