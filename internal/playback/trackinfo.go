package playback

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
)

// TrackInfo holds song information read from tags.
type TrackInfo struct {
	Title    string
	Artist   string
	Album    string
	BPM      float64
	Duration time.Duration
}

// ReadTrackInfo reads ID3v2 tags from an MP3 file, falling back to the
// filename for the title. Tempo comes from TBPM and length from TLEN
// (milliseconds); either is zero when absent or malformed.
func ReadTrackInfo(path string) TrackInfo {
	var info TrackInfo
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err == nil {
		defer tag.Close()
		info = TrackInfo{
			Title:    strings.TrimSpace(tag.Title()),
			Artist:   strings.TrimSpace(tag.Artist()),
			Album:    strings.TrimSpace(tag.Album()),
			BPM:      parseBPM(tag.GetTextFrame("TBPM").Text),
			Duration: parseTLEN(tag.GetTextFrame("TLEN").Text),
		}
	}

	if info.Title == "" {
		base := filepath.Base(path)
		info.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return info
}

func parseBPM(s string) float64 {
	bpm, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || bpm <= 0 {
		return 0
	}
	return bpm
}

func parseTLEN(s string) time.Duration {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
