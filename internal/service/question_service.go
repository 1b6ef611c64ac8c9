package service

import (
	"context"

	"github.com/google/uuid"

	"pageant-coach-be/internal/dto"
	"pageant-coach-be/internal/repository/memory"
	"pageant-coach-be/pkg/question"
)

type IQuestionService interface {
	Random(ctx context.Context, req *dto.RandomQuestionRequest) (*dto.QuestionResponse, error)
	Options(ctx context.Context) map[string][]question.FilterOption
}

type questionService struct {
	bank     *question.Bank
	sessions *memory.SessionRepository
}

func NewQuestionService(bank *question.Bank, sessions *memory.SessionRepository) IQuestionService {
	return &questionService{bank: bank, sessions: sessions}
}

// Random draws a question matching the filters, avoiding repeats within
// a session until the filtered pool is exhausted. A missing session id
// starts a new session.
func (s *questionService) Random(ctx context.Context, req *dto.RandomQuestionRequest) (*dto.QuestionResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	asked := map[string]bool{}
	session, found := s.sessions.Get(sessionID)
	if !found {
		session = &memory.PracticeSession{ID: sessionID}
	}
	for _, id := range session.AskedIDs {
		asked[id] = true
	}

	q := s.bank.Random(req.Pageant, req.QuestionType, req.Difficulty, asked)

	if asked[q.ID] {
		// Pool was exhausted and reset: start tracking over.
		session.AskedIDs = []string{q.ID}
	} else {
		session.AskedIDs = append(session.AskedIDs, q.ID)
	}
	s.sessions.Save(session)

	return &dto.QuestionResponse{
		ID:           q.ID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		Difficulty:   q.Difficulty,
		Pageant:      q.PageantType,
		ThemeTags:    q.Tags,
		SessionID:    sessionID,
	}, nil
}

func (s *questionService) Options(ctx context.Context) map[string][]question.FilterOption {
	return question.FilterOptions()
}
