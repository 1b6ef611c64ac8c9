package service

import (
	"context"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/pkg/voice"
)

type IVoiceService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (*dto.TranscriptionResponse, error)
	Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, error)
}

type voiceService struct {
	client *voice.Client
}

func NewVoiceService(client *voice.Client) IVoiceService {
	return &voiceService{client: client}
}

func (s *voiceService) Transcribe(ctx context.Context, audio []byte, filename string) (*dto.TranscriptionResponse, error) {
	text, err := s.client.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	return &dto.TranscriptionResponse{Text: text}, nil
}

func (s *voiceService) Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, error) {
	return s.client.Synthesize(ctx, req.Text, req.Voice)
}
