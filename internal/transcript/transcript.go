// Package transcript resolves the raw text a lesson is generated from: an
// uploaded file or a (mocked) video lookup.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Source identifies where a transcript came from.
type Source string

const (
	SourceFile  Source = "file"
	SourceVideo Source = "video"
)

// WordsPerSecond is the assumed speaking rate (150 words per minute).
const WordsPerSecond = 2.5

// ErrNoInput is returned when neither a file nor a video URL is given.
var ErrNoInput = errors.New("no transcript input: provide a file or a video URL")

// ErrTooLong is returned when a transcript exceeds the duration limit.
var ErrTooLong = errors.New("transcript exceeds maximum duration")

// ErrEmpty is returned when the resolved transcript has no text.
var ErrEmpty = errors.New("transcript is empty")

// ReadError wraps a failure to read an uploaded transcript.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "failed to read transcript file"
}

func (e *ReadError) Unwrap() error { return e.Err }

// Transcript is resolved transcript text with its origin.
type Transcript struct {
	Text    string
	Source  Source
	URL     string
	VideoID string
}

// Input names the candidate transcript sources. FilePath wins when both
// are set.
type Input struct {
	FilePath string
	VideoURL string
}

// ReadFile reads an uploaded transcript from disk.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()
	text, err := Read(f)
	if err != nil {
		var re *ReadError
		if errors.As(err, &re) {
			re.Path = path
		}
		return "", err
	}
	return text, nil
}

// Read reads transcript text from r.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ReadError{Err: err}
	}
	return string(data), nil
}

// EstimateDurationSeconds approximates the spoken length of text.
func EstimateDurationSeconds(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) / WordsPerSecond))
}

// CheckDuration returns ErrTooLong when text would take longer than
// maxSeconds to speak. A non-positive limit disables the check.
func CheckDuration(text string, maxSeconds int) error {
	if maxSeconds <= 0 {
		return nil
	}
	if d := EstimateDurationSeconds(text); d > maxSeconds {
		return fmt.Errorf("%w: about %ds, limit %ds", ErrTooLong, d, maxSeconds)
	}
	return nil
}

// Resolver turns an Input into a Transcript.
type Resolver struct {
	videos *VideoLookup
}

// NewResolver returns a resolver that uses videos for URL inputs.
func NewResolver(videos *VideoLookup) *Resolver {
	if videos == nil {
		videos = NewVideoLookup(nil)
	}
	return &Resolver{videos: videos}
}

// Resolve reads the transcript named by in.
func (r *Resolver) Resolve(ctx context.Context, in Input) (Transcript, error) {
	var t Transcript
	switch {
	case in.FilePath != "":
		text, err := ReadFile(in.FilePath)
		if err != nil {
			return Transcript{}, err
		}
		t = Transcript{Text: text, Source: SourceFile}
	case in.VideoURL != "":
		text, err := r.videos.Lookup(ctx, in.VideoURL)
		if err != nil {
			return Transcript{}, fmt.Errorf("lookup video transcript: %w", err)
		}
		t = Transcript{Text: text, Source: SourceVideo, URL: in.VideoURL, VideoID: ExtractVideoID(in.VideoURL)}
	default:
		return Transcript{}, ErrNoInput
	}
	if strings.TrimSpace(t.Text) == "" {
		return Transcript{}, ErrEmpty
	}
	return t, nil
}
