// Package video re-encodes uploaded promotional videos with ffmpeg into one of
// two device profiles.
package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brightofhouse/site/internal/logger"
	"github.com/google/uuid"
)

var (
	// ErrInvalidUpload means the input was missing or empty.
	ErrInvalidUpload = errors.New("video: missing or empty upload")
	// ErrTranscodeFailed means ffmpeg could not start, exited nonzero, or
	// was stopped by a deadline.
	ErrTranscodeFailed = errors.New("video: transcoding failed")
	// ErrStorageIO means staging or reading back a temp file failed.
	ErrStorageIO = errors.New("video: temp file i/o failed")
)

// commandContext is swapped in tests to fake ffmpeg and ffprobe.
var commandContext = exec.CommandContext

const (
	DefaultCRF          = 28
	DefaultAudioBitrate = "128k"
	videoCodec          = "libx264"
	audioCodec          = "aac"
)

type Config struct {
	FFmpegPath   string
	FFprobePath  string
	TempDir      string
	CRF          int
	AudioBitrate string
	// Timeout bounds a single ffmpeg run. Zero means only the caller's
	// context applies.
	Timeout time.Duration
}

type Output struct {
	Data        []byte
	Ext         string
	ContentType string
	Profile     Profile
	Metadata    *Metadata
	Elapsed     time.Duration
}

func (o *Output) Size() int64 {
	return int64(len(o.Data))
}

type Transcoder struct {
	cfg Config
}

func NewTranscoder(cfg Config) *Transcoder {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = "ffmpeg"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if cfg.CRF <= 0 {
		cfg.CRF = DefaultCRF
	}
	if cfg.AudioBitrate == "" {
		cfg.AudioBitrate = DefaultAudioBitrate
	}
	return &Transcoder{cfg: cfg}
}

// job holds the staging paths owned by one Transcode call.
type job struct {
	id         string
	inputPath  string
	outputPath string
}

func (t *Transcoder) newJob() *job {
	id := uuid.NewString()
	return &job{
		id:         id,
		inputPath:  filepath.Join(t.cfg.TempDir, id+"_original.mp4"),
		outputPath: filepath.Join(t.cfg.TempDir, id+"_compressed.mp4"),
	}
}

func (j *job) cleanup() {
	_ = os.Remove(j.inputPath)
	_ = os.Remove(j.outputPath)
}

// Transcode stages r on disk, runs ffmpeg with the profile's parameters, and
// returns the encoded file. Both temp files are removed on every return path.
// The call blocks for as long as ffmpeg runs and is never retried.
func (t *Transcoder) Transcode(ctx context.Context, r io.Reader, profile Profile) (*Output, error) {
	if profile.Width() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	if r == nil {
		return nil, ErrInvalidUpload
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	if err := os.MkdirAll(t.cfg.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %v", ErrStorageIO, err)
	}

	j := t.newJob()
	defer j.cleanup()

	if err := t.stage(j, r); err != nil {
		return nil, err
	}

	log.Info("transcoding video", "job", j.id, "profile", profile, "scale", profile.ScaleFilter())

	if err := t.run(ctx, j, profile); err != nil {
		log.Error("video transcode failed", "job", j.id, "profile", profile, "error", err)
		return nil, err
	}

	data, err := t.readBack(j)
	if err != nil {
		return nil, err
	}

	out := &Output{
		Data:        data,
		Ext:         ".mp4",
		ContentType: "video/mp4",
		Profile:     profile,
		Elapsed:     time.Since(start),
	}

	if t.cfg.FFprobePath != "" {
		md, err := Probe(ctx, t.cfg.FFprobePath, j.outputPath)
		if err != nil {
			log.Warn("probe of transcoded video failed", "job", j.id, "error", err)
		} else {
			out.Metadata = md
		}
	}

	log.Info("video transcoded", "job", j.id, "profile", profile, "size", len(data), "duration_ms", out.Elapsed.Milliseconds())
	return out, nil
}

func (t *Transcoder) stage(j *job, r io.Reader) error {
	f, err := os.OpenFile(j.inputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("%w: create input file: %v", ErrStorageIO, err)
	}
	defer func() { _ = f.Close() }()

	written, err := io.Copy(f, r)
	if err != nil {
		return fmt.Errorf("%w: write input file: %v", ErrStorageIO, err)
	}
	if written == 0 {
		return ErrInvalidUpload
	}
	return nil
}

// Args returns the ffmpeg argument list for one run.
func (t *Transcoder) Args(inputPath, outputPath string, profile Profile) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-vf", profile.ScaleFilter(),
		"-c:v", videoCodec,
		"-crf", strconv.Itoa(t.cfg.CRF),
		"-c:a", audioCodec,
		"-b:a", t.cfg.AudioBitrate,
		"-movflags", "+faststart",
		outputPath,
	}
}

func (t *Transcoder) run(ctx context.Context, j *job, profile Profile) error {
	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	cmd := commandContext(ctx, t.cfg.FFmpegPath, t.Args(j.inputPath, j.outputPath, profile)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ErrTranscodeFailed, ctxErr)
		}
		return fmt.Errorf("%w: %v, stderr: %s", ErrTranscodeFailed, err, tail(stderr.Bytes(), 2048))
	}
	return nil
}

func (t *Transcoder) readBack(j *job) ([]byte, error) {
	data, err := os.ReadFile(j.outputPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: no output written", ErrTranscodeFailed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read output file: %v", ErrStorageIO, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrTranscodeFailed)
	}
	return data, nil
}

// Available reports whether the configured ffmpeg binary can be found.
func (t *Transcoder) Available() error {
	if _, err := exec.LookPath(t.cfg.FFmpegPath); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}

func tail(b []byte, n int) string {
	if len(b) > n {
		b = b[len(b)-n:]
	}
	return string(b)
}
