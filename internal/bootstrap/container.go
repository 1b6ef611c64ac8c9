package bootstrap

import (
	"log"

	"pageant-coach-be/internal/config"
	"pageant-coach-be/internal/controller"
	"pageant-coach-be/internal/pkg/logger"
	filerepo "pageant-coach-be/internal/repository/file"
	"pageant-coach-be/internal/repository/memory"
	"pageant-coach-be/internal/service"
	"pageant-coach-be/pkg/exemplar"
	"pageant-coach-be/pkg/llm/factory"
	"pageant-coach-be/pkg/question"
	"pageant-coach-be/pkg/refiner"
	"pageant-coach-be/pkg/rubric"
	"pageant-coach-be/pkg/voice"
)

type Container struct {
	// Controllers
	CoachController    controller.ICoachController
	PersonaController  controller.IPersonaController
	QuestionController controller.IQuestionController
	VoiceController    controller.IVoiceController

	// Exposed for cmd/practice and shutdown
	CoachService service.ICoachService
	Logger       logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Generation provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Keys.Groq,
		cfg.Ai.BaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 3. Catalogs and stores
	rubricStore := rubric.NewStore(cfg.Data.RubricsDir)
	exemplarLib := exemplar.NewLibrary(cfg.Data.ExemplarsFile)
	questionBank := question.NewBank(cfg.Data.QuestionsFile)
	personaRepo := filerepo.NewPersonaRepository(cfg.Data.PersonasDir, sysLogger)
	sessionRepo := memory.NewSessionRepository()

	// 4. Pipeline engine
	engine := refiner.NewEngine(llmProvider, rubricStore, exemplarLib, refiner.Config{
		RubricName:   cfg.Data.DefaultRubric,
		Pageant:      cfg.Data.Pageant,
		Temperatures: cfg.Ai.Temperatures,
	}, sysLogger)

	voiceClient := voice.NewClient(cfg.Keys.Groq, cfg.Ai.BaseURL, cfg.Voice.STTModel, cfg.Voice.TTSModel, cfg.Voice.TTSVoice)

	// 5. Services
	personaService := service.NewPersonaService(personaRepo)
	coachService := service.NewCoachService(engine, personaService, sysLogger)
	questionService := service.NewQuestionService(questionBank, sessionRepo)
	voiceService := service.NewVoiceService(voiceClient)

	// 6. Controllers
	return &Container{
		CoachController:    controller.NewCoachController(coachService),
		PersonaController:  controller.NewPersonaController(personaService),
		QuestionController: controller.NewQuestionController(questionService),
		VoiceController:    controller.NewVoiceController(voiceService),
		CoachService:       coachService,
		Logger:             sysLogger,
	}
}
