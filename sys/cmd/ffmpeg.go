package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

const (
	PCMSampleRate = 44100
	PCMChannels   = 2
)

type FFmpegCmd struct{}

func FFmpeg() FFmpegCmd {
	return FFmpegCmd{}
}

// Transcode converts input into a 16-bit little-endian PCM WAV file
// at 44.1kHz stereo, written to output
func (FFmpegCmd) Transcode(ctx context.Context, input, output string) error {
	var (
		buffer bytes.Buffer
		cmd    = exec.CommandContext(ctx, "ffmpeg", // nolint:gosec
			"-y",
			"-v", "error",
			"-i", input,
			"-vn",
			"-acodec", "pcm_s16le",
			"-ar", strconv.Itoa(PCMSampleRate),
			"-ac", strconv.Itoa(PCMChannels),
			"-f", "wav",
			output,
		)
	)
	cmd.Stdout = &buffer
	cmd.Stderr = &buffer
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if message := strings.TrimSpace(buffer.String()); message != "" {
			return errors.New(message)
		}
		return err
	}
	return nil
}
