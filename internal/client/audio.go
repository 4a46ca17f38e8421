package client

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
)

// DefaultVoiceID is the backend voice used when none is requested.
const DefaultVoiceID = "Joanna"

type speechResponse struct {
	Success     bool   `json:"success"`
	AudioData   string `json:"audio_data"`
	ContentType string `json:"content_type"`
	Error       string `json:"error,omitempty"`
}

// TextToSpeech synthesizes speech for the given text and returns the path of
// a temporary audio file holding the decoded payload. The caller owns the
// file; PlayAudio removes it after playback, callers that skip playback must
// remove it themselves.
func (c *Client) TextToSpeech(text, voiceID string) (string, error) {
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	payload := map[string]string{
		"text":    text,
		"voiceId": voiceID,
	}

	attempt := func() (speechResponse, error) {
		var resp speechResponse
		err := c.doJSON(http.MethodPost, "audio/", payload, &resp)
		return resp, err
	}

	resp, err := attempt()
	if err != nil {
		retried, ok, rerr := callWithRefresh(c, err, attempt)
		if rerr != nil {
			return "", fmt.Errorf("text to speech failed: %w", rerr)
		}
		if !ok {
			if statusOf(err) == http.StatusUnauthorized {
				return "", ErrSessionExpired
			}
			return "", fmt.Errorf("text to speech failed: %w", err)
		}
		resp = retried
	}

	if !resp.Success || resp.AudioData == "" {
		if resp.Error != "" {
			return "", fmt.Errorf("text to speech failed: %s", resp.Error)
		}
		return "", errors.New("text to speech failed: empty response")
	}
	return writeAudioFile(resp.AudioData, resp.ContentType)
}

func writeAudioFile(data, contentType string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decoding audio payload: %w", err)
	}

	f, err := os.CreateTemp("", "vocabloom-*"+audioExtension(contentType))
	if err != nil {
		return "", err
	}
	if _, err := f.Write(decoded); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func audioExtension(contentType string) string {
	switch contentType {
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	default:
		return ".mp3"
	}
}

// findPlayer locates a command-line audio player. Overridable in tests.
var findPlayer = func() (string, []string, error) {
	if runtime.GOOS == "darwin" {
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil, nil
		}
	}
	candidates := []struct {
		name string
		args []string
	}{
		{"mpg123", []string{"-q"}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
		{"mplayer", []string{"-really-quiet"}},
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c.name); err == nil {
			return path, c.args, nil
		}
	}
	return "", nil, errors.New("no audio player found on PATH")
}

// PlayAudio plays the audio file produced by TextToSpeech and blocks until
// playback finishes. The file is removed when playback ends or errors, so
// the handle is released on both paths.
func PlayAudio(path string) error {
	defer os.Remove(path)

	player, args, err := findPlayer()
	if err != nil {
		return fmt.Errorf("failed to play audio: %w", err)
	}
	cmd := exec.Command(player, append(args, path)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to play audio: %w", err)
	}
	return nil
}
