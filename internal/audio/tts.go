package audio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// TTSService fetches Korean speech audio for dictation playback and
// caches it as MP3 files. Playback itself is fire-and-forget from the
// quiz's point of view: grading never waits on audio.
type TTSService struct {
	audioDir string
	lang     string
}

const ttsRequestTimeout = 10 * time.Second

// Narration rate is clamped to the window the player controls.
const (
	MinRate = 0.6
	MaxRate = 1.4
)

// NewTTSService creates a new TTS service caching under audioDir.
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
		lang:     "ko",
	}
}

// ClampRate bounds a narration rate to [MinRate, MaxRate].
func ClampRate(rate float64) float64 {
	if rate < MinRate {
		return MinRate
	}
	if rate > MaxRate {
		return MaxRate
	}
	return rate
}

// AudioFile returns the cached MP3 filename for the sentence at the
// given rate, fetching and caching it first if absent.
func (s *TTSService) AudioFile(text string, rate float64) (string, error) {
	rate = ClampRate(rate)
	filename := cacheFilename(text, s.lang, rate)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}
	if err := s.fetchGoogleTTS(text, rate, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return filename, nil
}

// cacheFilename derives a stable name from the sentence and voice
// parameters. Korean sentences make poor filenames, so hash instead of
// sanitizing.
func cacheFilename(text, lang string, rate float64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%.2f", text, lang, rate)))
	return fmt.Sprintf("tts_%s.mp3", hex.EncodeToString(sum[:8]))
}

// fetchGoogleTTS uses Google Translate's text-to-speech endpoint.
// Free and keyless; rates below 1.0 map onto its slow-speech switch.
func (s *TTSService) fetchGoogleTTS(text string, rate float64, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", s.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))
	if rate < 1.0 {
		params.Set("ttsspeed", "0.24")
	}

	fullURL := baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Required by the endpoint.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}
