package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type recordedCall struct {
	name string
	args []string
}

type fakeExec struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeExec) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

// fakeBinaries routes ffmpeg and ffprobe to TestHelperProcess. The ffmpeg
// fake behaves according to mode; ffprobe reports probeWidth.
func fakeBinaries(t *testing.T, mode string, probeWidth int) *fakeExec {
	t.Helper()
	f := &fakeExec{}
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		f.mu.Lock()
		f.calls = append(f.calls, recordedCall{name: name, args: append([]string(nil), args...)})
		f.mu.Unlock()

		helperMode := mode
		if strings.Contains(name, "ffprobe") {
			helperMode = "probe"
		}
		out := ""
		if len(args) > 0 {
			out = args[len(args)-1]
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			"FFMPEG_HELPER_MODE="+helperMode,
			"FFMPEG_HELPER_OUT="+out,
			fmt.Sprintf("FFMPEG_HELPER_WIDTH=%d", probeWidth),
		)
		return cmd
	}
	t.Cleanup(func() { commandContext = original })
	return f
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("FFMPEG_HELPER_MODE") {
	case "success":
		_ = os.WriteFile(os.Getenv("FFMPEG_HELPER_OUT"), []byte("\x00\x00\x00\x18ftypmp42transcoded"), 0o600)
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "moov atom not found")
		os.Exit(1)
	case "noout":
		os.Exit(0)
	case "slow":
		time.Sleep(30 * time.Second)
		os.Exit(0)
	case "probe":
		fmt.Printf(`{"streams":[{"codec_type":"video","codec_name":"h264","width":%s,"height":406},{"codec_type":"audio","codec_name":"aac"}],"format":{"duration":"12.5"}}`,
			os.Getenv("FFMPEG_HELPER_WIDTH"))
		os.Exit(0)
	default:
		os.Exit(0)
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("temp files left behind: %v", names)
	}
}

func findArg(args []string, target string) int {
	for i, arg := range args {
		if arg == target {
			return i
		}
	}
	return -1
}

func TestTranscode_Args(t *testing.T) {
	for _, profile := range []Profile{Desktop, Mobile} {
		t.Run(string(profile), func(t *testing.T) {
			fx := fakeBinaries(t, "success", profile.Width())
			dir := t.TempDir()
			tr := NewTranscoder(Config{FFmpegPath: "ffmpeg", TempDir: dir})

			out, err := tr.Transcode(context.Background(), strings.NewReader("raw-mp4-bytes"), profile)
			if err != nil {
				t.Fatalf("Transcode() error = %v", err)
			}
			if out.ContentType != "video/mp4" || out.Ext != ".mp4" {
				t.Errorf("content type/ext = %q/%q", out.ContentType, out.Ext)
			}
			if !bytes.Contains(out.Data, []byte("transcoded")) {
				t.Errorf("Data = %q, want transcoded output", out.Data)
			}

			calls := fx.recorded()
			if len(calls) != 1 {
				t.Fatalf("got %d exec calls, want 1 (no ffprobe configured)", len(calls))
			}
			args := calls[0].args

			want := map[string]string{
				"-vf":  profile.ScaleFilter(),
				"-c:v": "libx264",
				"-crf": "28",
				"-c:a": "aac",
				"-b:a": "128k",
			}
			for flag, value := range want {
				i := findArg(args, flag)
				if i < 0 || i+1 >= len(args) || args[i+1] != value {
					t.Errorf("flag %s = %v, want %q", flag, args, value)
				}
			}

			in := args[findArg(args, "-i")+1]
			outPath := args[len(args)-1]
			if filepath.Dir(in) != dir || filepath.Dir(outPath) != dir {
				t.Errorf("staging outside temp dir: %s, %s", in, outPath)
			}
			if !strings.HasSuffix(in, "_original.mp4") || !strings.HasSuffix(outPath, "_compressed.mp4") {
				t.Errorf("unexpected staging names %s, %s", in, outPath)
			}
			if strings.Contains(in, "raw") {
				t.Errorf("staging name should not derive from content: %s", in)
			}

			assertEmptyDir(t, dir)
		})
	}
}

func TestTranscode_ProbesOutput(t *testing.T) {
	fx := fakeBinaries(t, "success", 720)
	dir := t.TempDir()
	tr := NewTranscoder(Config{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", TempDir: dir})

	out, err := tr.Transcode(context.Background(), strings.NewReader("raw"), Mobile)
	if err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}
	if out.Metadata == nil || out.Metadata.Width != 720 || out.Metadata.Duration != 12.5 {
		t.Errorf("Metadata = %+v", out.Metadata)
	}
	if len(fx.recorded()) != 2 {
		t.Errorf("expected ffmpeg and ffprobe calls, got %d", len(fx.recorded()))
	}
	assertEmptyDir(t, dir)
}

func TestTranscode_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		input   func() *strings.Reader
		timeout time.Duration
		wantErr error
	}{
		{"empty input", "success", func() *strings.Reader { return strings.NewReader("") }, 0, ErrInvalidUpload},
		{"corrupt input", "failure", func() *strings.Reader { return strings.NewReader("not a video") }, 0, ErrTranscodeFailed},
		{"no output written", "noout", func() *strings.Reader { return strings.NewReader("raw") }, 0, ErrTranscodeFailed},
		{"timeout", "slow", func() *strings.Reader { return strings.NewReader("raw") }, 200 * time.Millisecond, ErrTranscodeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := fakeBinaries(t, tt.mode, 0)
			dir := t.TempDir()
			tr := NewTranscoder(Config{TempDir: dir, Timeout: tt.timeout})

			_, err := tr.Transcode(context.Background(), tt.input(), Mobile)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Transcode() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == ErrInvalidUpload && len(fx.recorded()) != 0 {
				t.Error("ffmpeg must not run for empty input")
			}
			assertEmptyDir(t, dir)
		})
	}
}

func TestTranscode_CanceledContextStopsFFmpeg(t *testing.T) {
	fakeBinaries(t, "slow", 0)
	dir := t.TempDir()
	tr := NewTranscoder(Config{TempDir: dir})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := tr.Transcode(ctx, strings.NewReader("raw"), Desktop)
	if !errors.Is(err, ErrTranscodeFailed) {
		t.Fatalf("Transcode() error = %v, want ErrTranscodeFailed", err)
	}
	if time.Since(start) > 10*time.Second {
		t.Error("cancellation did not stop the external process")
	}
	assertEmptyDir(t, dir)
}

func TestTranscode_UnknownProfile(t *testing.T) {
	_, err := NewTranscoder(Config{TempDir: t.TempDir()}).Transcode(context.Background(), strings.NewReader("x"), Profile("tv"))
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Transcode() error = %v, want ErrUnknownProfile", err)
	}
}

func TestTranscode_ConcurrentJobsUseDistinctFiles(t *testing.T) {
	fx := fakeBinaries(t, "success", 0)
	dir := t.TempDir()
	tr := NewTranscoder(Config{TempDir: dir})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.Transcode(context.Background(), strings.NewReader("same name upload"), Mobile); err != nil {
				t.Errorf("Transcode() error = %v", err)
			}
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, c := range fx.recorded() {
		in := c.args[findArg(c.args, "-i")+1]
		if seen[in] {
			t.Errorf("staging path reused: %s", in)
		}
		seen[in] = true
	}
	assertEmptyDir(t, dir)
}

func TestTranscode_RealFFmpeg(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	ctx := context.Background()
	src := filepath.Join(t.TempDir(), "source.mp4")
	gen := exec.CommandContext(ctx, "ffmpeg", "-hide_banner", "-loglevel", "error", "-y",
		"-f", "lavfi", "-i", "testsrc=size=1921x1081:rate=10",
		"-f", "lavfi", "-i", "sine=frequency=440",
		"-t", "1", "-pix_fmt", "yuv420p", "-shortest", src)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Skipf("could not generate source video: %v: %s", err, out)
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}

	for _, profile := range []Profile{Desktop, Mobile} {
		t.Run(string(profile), func(t *testing.T) {
			dir := t.TempDir()
			tr := NewTranscoder(Config{TempDir: dir, FFprobePath: "ffprobe"})

			out, err := tr.Transcode(ctx, bytes.NewReader(raw), profile)
			if err != nil {
				t.Fatalf("Transcode() error = %v", err)
			}
			if out.Metadata == nil {
				t.Fatal("expected probe metadata")
			}
			if out.Metadata.Width != profile.Width() {
				t.Errorf("width = %d, want %d", out.Metadata.Width, profile.Width())
			}
			if out.Metadata.Height%2 != 0 {
				t.Errorf("height %d is not even", out.Metadata.Height)
			}
			assertEmptyDir(t, dir)
		})
	}

	t.Run("corrupt mp4", func(t *testing.T) {
		dir := t.TempDir()
		tr := NewTranscoder(Config{TempDir: dir})
		_, err := tr.Transcode(ctx, strings.NewReader("\x00\x00\x00\x18ftypmp42 garbage"), Mobile)
		if !errors.Is(err, ErrTranscodeFailed) {
			t.Errorf("Transcode() error = %v, want ErrTranscodeFailed", err)
		}
		assertEmptyDir(t, dir)
	})
}
