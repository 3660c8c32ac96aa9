package audio

import (
	"bytes"

	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
	"github.com/streambinder/lyrika/entity"
)

var magicEBML = []byte{0x1a, 0x45, 0xdf, 0xa3}

// Sniff guesses the container of the given audio bytes
func Sniff(data []byte) entity.Encoding {
	if len(data) < 12 {
		return entity.EncodingUnknown
	}

	switch {
	case bytes.HasPrefix(data, magicEBML):
		return entity.EncodingWebM
	case string(data[0:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		if wav.NewDecoder(bytes.NewReader(data)).IsValidFile() {
			return entity.EncodingWAV
		}
		return entity.EncodingUnknown
	}

	format, fileType, err := tag.Identify(bytes.NewReader(data))
	if err == nil {
		switch {
		case fileType == tag.MP3:
			return entity.EncodingMP3
		case fileType == tag.FLAC:
			return entity.EncodingFLAC
		case fileType == tag.OGG:
			return entity.EncodingOGG
		case format == tag.MP4:
			return entity.EncodingMP4
		}
	}

	// untagged MPEG audio frame
	if data[0] == 0xff && data[1]&0xe0 == 0xe0 {
		return entity.EncodingMP3
	}
	return entity.EncodingUnknown
}

// Accepted reports whether the fingerprinting service takes the encoding as-is
func Accepted(encoding entity.Encoding) bool {
	switch encoding {
	case entity.EncodingWAV, entity.EncodingMP3, entity.EncodingFLAC,
		entity.EncodingOGG, entity.EncodingMP4:
		return true
	default:
		return false
	}
}
