package entity

type Encoding string

const (
	EncodingWAV     Encoding = "wav"
	EncodingMP3     Encoding = "mp3"
	EncodingFLAC    Encoding = "flac"
	EncodingOGG     Encoding = "ogg"
	EncodingMP4     Encoding = "mp4"
	EncodingWebM    Encoding = "webm"
	EncodingUnknown Encoding = "unknown"
)

type Sample struct {
	Data     []byte
	Encoding Encoding
}

func (encoding Encoding) Extension() string {
	switch encoding {
	case EncodingUnknown, "":
		return "bin"
	case EncodingMP4:
		return "m4a"
	default:
		return string(encoding)
	}
}

func (encoding Encoding) MimeType() string {
	switch encoding {
	case EncodingWAV:
		return "audio/wav"
	case EncodingMP3:
		return "audio/mpeg"
	case EncodingFLAC:
		return "audio/flac"
	case EncodingOGG:
		return "audio/ogg"
	case EncodingMP4:
		return "audio/mp4"
	case EncodingWebM:
		return "audio/webm"
	default:
		return "application/octet-stream"
	}
}
