// Package voice wraps Groq's audio endpoints: Whisper transcription for
// spoken answers and text-to-speech for exemplar playback.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"pageant-coach-be/pkg/llm"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

type Client struct {
	BaseURL  string
	APIKey   string
	STTModel string
	TTSModel string
	TTSVoice string
	Client   *http.Client
}

func NewClient(apiKey, baseURL, sttModel, ttsModel, ttsVoice string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		STTModel: sttModel,
		TTSModel: ttsModel,
		TTSVoice: ttsVoice,
		Client:   &http.Client{Timeout: 120 * time.Second},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe sends audio bytes to the Whisper endpoint and returns the
// transcript. The filename is only a format hint for the API.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if filename == "" {
		filename = "answer.wav"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("building upload: %w", err))
	}
	if _, err := part.Write(audio); err != nil {
		return "", llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("building upload: %w", err))
	}
	_ = writer.WriteField("model", c.STTModel)
	_ = writer.WriteField("language", "en")
	if err := writer.Close(); err != nil {
		return "", llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("building upload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", llm.NewGenerationError(llm.KindBadResponse, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", llm.NewGenerationError(llm.ClassifyTransportError(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", llm.NewGenerationError(llm.ClassifyHTTPStatus(resp.StatusCode),
			fmt.Errorf("transcription returned status %d: %s", resp.StatusCode, string(payload)))
	}

	var parsed transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("decoding transcription: %w", err))
	}
	return parsed.Text, nil
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize converts text to WAV audio. An empty voice uses the
// configured default.
func (c *Client) Synthesize(ctx context.Context, text, voiceName string) ([]byte, error) {
	if voiceName == "" {
		voiceName = c.TTSVoice
	}

	payload, err := json.Marshal(speechRequest{
		Model:          c.TTSModel,
		Voice:          voiceName,
		Input:          text,
		ResponseFormat: "wav",
	})
	if err != nil {
		return nil, llm.NewGenerationError(llm.KindBadResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, llm.NewGenerationError(llm.KindBadResponse, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, llm.NewGenerationError(llm.ClassifyTransportError(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, llm.NewGenerationError(llm.ClassifyHTTPStatus(resp.StatusCode),
			fmt.Errorf("speech synthesis returned status %d: %s", resp.StatusCode, string(body)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, llm.NewGenerationError(llm.KindBadResponse, fmt.Errorf("reading audio: %w", err))
	}
	return audio, nil
}
