// Seeds the starter data catalogs: rubric, exemplar library, question
// bank and a sample persona. Existing files are left untouched.
package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"pageant-coach-be/internal/config"
	"pageant-coach-be/internal/model"
	"pageant-coach-be/pkg/exemplar"
	"pageant-coach-be/pkg/question"
	"pageant-coach-be/pkg/rubric"
)

func main() {
	cfg := config.Load()

	color.Cyan("Seeding starter catalogs...\n")

	seedJSON(filepath.Join(cfg.Data.RubricsDir, cfg.Data.DefaultRubric+".json"), starterRubric())
	seedJSON(cfg.Data.ExemplarsFile, starterExemplars())
	seedJSON(cfg.Data.QuestionsFile, starterQuestions())
	seedJSON(filepath.Join(cfg.Data.PersonasDir, "sample-persona.json"), starterPersona())
	seedEnvTemplate(".env.example")

	color.Green("\nSeeding completed!")
}

func seedEnvTemplate(path string) {
	if _, err := os.Stat(path); err == nil {
		color.Yellow("Skipping %s (already exists)", path)
		return
	}

	template := `APP_PORT=3000
GO_ENV=development
LOG_FILE_PATH=logs/app.log
CORS_ALLOWED_ORIGINS=http://localhost:5173

GROQ_API_KEY=
LLM_PROVIDER=groq
LLM_MODEL=llama-3.3-70b-versatile
LLM_MAX_RETRIES=3

RUBRICS_DIR=data/rubrics
EXEMPLARS_FILE=data/exemplars/exemplar_library.json
QUESTIONS_FILE=data/questions/question_bank.json
PERSONAS_DIR=data/personas
DEFAULT_RUBRIC=miss_universe
DEFAULT_PAGEANT=Miss Universe

STT_MODEL=whisper-large-v3-turbo
TTS_MODEL=canopylabs/orpheus-v1-english
TTS_VOICE=hannah
`
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
	color.Green("Created %s", path)
}

func seedJSON(path string, payload interface{}) {
	if _, err := os.Stat(path); err == nil {
		color.Yellow("Skipping %s (already exists)", path)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("Error creating directory for %s: %v", path, err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Error writing %s: %v", path, err)
	}
	color.Green("Created %s", path)
}

func starterRubric() rubric.Rubric {
	return rubric.Rubric{
		PageantName: "Miss Universe",
		Version:     "2025.1",
		Dimensions: []rubric.Dimension{
			{Name: "Directness & Clarity", Weight: 1.0, Description: "First sentence answers the question directly."},
			{Name: "Structure & Flow", Weight: 1.0, Description: "Logical arc from answer to close."},
			{Name: "Authenticity & Specificity", Weight: 1.2, Description: "Personal and specific, not generic."},
			{Name: "Leadership & Agency", Weight: 1.0, Description: "Shows vision or action."},
			{Name: "Worldview & Relevance", Weight: 0.8, Description: "Global framing when appropriate."},
			{Name: "Closing Strength", Weight: 1.0, Description: "Memorable, quotable close."},
			{Name: "Conciseness & Time-Fit", Weight: 1.0, Description: "Within word budget."},
			{Name: "Credibility & Safety", Weight: 0.8, Description: "No unsupported claims."},
		},
		CapRules: []rubric.CapRule{
			{IfDimension: "Directness & Clarity", Below: 4, ThenMaxOverall: 6},
			{IfDimension: "Authenticity & Specificity", Below: 3, ThenMaxOverall: 5},
		},
		GenericnessSignals: []string{
			"world peace",
			"be the change",
			"everything happens for a reason",
			"follow your dreams",
			"at the end of the day",
		},
	}
}

func starterExemplars() map[string][]exemplar.Record {
	return map[string][]exemplar.Record{
		"exemplars": {
			{
				ID:              "mu-2018-confidence",
				Pageant:         "Miss Universe",
				QuestionType:    "personal",
				Year:            2018,
				WinnerName:      "Catriona Gray",
				ThemeTags:       []string{"resilience", "gratitude", "perspective"},
				StructuralNotes: "Opens with a direct reframe of the question, anchors in one specific childhood scene, closes by turning the personal lesson outward to others.",
			},
			{
				ID:              "mu-2015-advocacy",
				Pageant:         "Miss Universe",
				QuestionType:    "advocacy",
				Year:            2015,
				WinnerName:      "Pia Wurtzbach",
				ThemeTags:       []string{"advocacy", "service", "hiv-awareness"},
				StructuralNotes: "Names the cause in the first sentence, gives one concrete action already taken, ends with a forward-looking commitment.",
			},
			{
				ID:              "mu-2021-issues",
				Pageant:         "Miss Universe",
				QuestionType:    "issues_based",
				Year:            2021,
				WinnerName:      "Harnaaz Sandhu",
				ThemeTags:       []string{"youth", "mental-health", "self-belief"},
				StructuralNotes: "Acknowledges the issue's scale in one line, pivots immediately to an actionable stance, closes with a direct address to the audience.",
			},
			{
				ID:              "mw-2017-leadership",
				Pageant:         "Miss World",
				QuestionType:    "leadership",
				Year:            2017,
				WinnerName:      "Manushi Chhillar",
				ThemeTags:       []string{"leadership", "motherhood", "respect"},
				StructuralNotes: "Redefines the premise of the question, supports with a single universal example, lands on a one-sentence quotable close.",
			},
		},
	}
}

func starterQuestions() map[string][]question.Question {
	return map[string][]question.Question{
		"questions": {
			{ID: "q-001", Text: "What cause are you most passionate about, and why?", PageantType: "general", QuestionType: "advocacy", Difficulty: "beginner", Tags: []string{"advocacy", "values"}},
			{ID: "q-002", Text: "Tell us about a moment that changed how you see yourself.", PageantType: "general", QuestionType: "personal", Difficulty: "beginner", Tags: []string{"resilience", "growth"}},
			{ID: "q-003", Text: "What does leadership mean to you?", PageantType: "general", QuestionType: "leadership", Difficulty: "intermediate", Tags: []string{"leadership"}},
			{ID: "q-004", Text: "If you could change one thing about how young people use social media, what would it be?", PageantType: "miss_universe", QuestionType: "issues_based", Difficulty: "intermediate", Tags: []string{"youth", "technology"}},
			{ID: "q-005", Text: "Should governments regulate artificial intelligence? Why or why not?", PageantType: "miss_universe", QuestionType: "issues_based", Difficulty: "advanced", Tags: []string{"technology", "policy"}},
			{ID: "q-006", Text: "If you could have dinner with anyone in history, who would it be and why?", PageantType: "general", QuestionType: "fun_creative", Difficulty: "beginner", Tags: []string{"creativity"}},
			{ID: "q-007", Text: "What would you tell your sixteen-year-old self?", PageantType: "miss_world", QuestionType: "personal", Difficulty: "intermediate", Tags: []string{"growth", "self-belief"}},
			{ID: "q-008", Text: "How would you use your title to make a difference in your community?", PageantType: "miss_usa", QuestionType: "advocacy", Difficulty: "intermediate", Tags: []string{"advocacy", "service", "community"}},
		},
	}
}

func starterPersona() model.Persona {
	return model.Persona{
		ID:       "sample-persona",
		Name:     "Maya Santos",
		Country:  "Philippines",
		Platform: "Literacy access for rural communities",
		Values:   []string{"service", "perseverance", "empathy"},
		PersonalStories: []model.PersonalStory{
			{
				Title:     "Teaching in Batangas",
				Text:      "Spent two summers running a reading program for fishing-village kids, starting with six students and ending with forty.",
				KeyLesson: "Small consistent effort compounds into community change.",
			},
		},
	}
}
