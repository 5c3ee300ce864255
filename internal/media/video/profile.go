package video

import (
	"errors"
	"fmt"
	"strings"
)

// Profile selects the encoding target for the device a video is shown on.
type Profile string

const (
	Desktop Profile = "desktop"
	Mobile  Profile = "mobile"
)

var ErrUnknownProfile = errors.New("video: unknown device profile")

var profileWidths = map[Profile]int{
	Desktop: 1280,
	Mobile:  720,
}

// ParseProfile accepts the device names used by the admin forms ("pc",
// "mobile") as well as the canonical profile names.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pc", "desktop":
		return Desktop, nil
	case "mobile", "sp":
		return Mobile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}

func (p Profile) Width() int {
	return profileWidths[p]
}

// DeviceType is the value persisted on video records.
func (p Profile) DeviceType() string {
	if p == Desktop {
		return "pc"
	}
	return string(p)
}

// ScaleFilter pins the width and lets ffmpeg pick an even height that keeps
// the aspect ratio, which libx264 requires.
func (p Profile) ScaleFilter() string {
	return fmt.Sprintf("scale=%d:-2", p.Width())
}
