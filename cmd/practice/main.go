// One-shot coaching run from the terminal, for trying the pipeline
// without standing up the REST server.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/fatih/color"

	"pageant-coach-be/internal/bootstrap"
	"pageant-coach-be/internal/config"
	"pageant-coach-be/internal/dto"
)

func main() {
	question := flag.String("question", "", "interview question to practice")
	answer := flag.String("answer", "", "your raw answer attempt")
	timeLimit := flag.Int("time", 30, "answer time limit in seconds (20, 30 or 40)")
	style := flag.String("style", "structured_narrative", "style preset: structured_narrative or values_shared_agency")
	personaID := flag.String("persona", "", "persona id to ground the answer in")
	flag.Parse()

	if *question == "" || *answer == "" {
		log.Fatal("Error: -question and -answer are required")
	}

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	color.Cyan("Running coaching pipeline...\n")
	started := time.Now()

	res, err := container.CoachService.Refine(ctx, &dto.RefineAnswerRequest{
		Question:    *question,
		RawAnswer:   *answer,
		TimeLimit:   *timeLimit,
		StylePreset: *style,
		PersonaID:   *personaID,
		InputMode:   "text",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		return
	}

	color.Yellow("\n=== REFINED ANSWER (%d iteration(s), %ds) ===", res.Iterations, res.TimeLimit)
	color.White("%s", res.RefinedAnswer)

	color.Yellow("\n=== COACH REPORT ===")
	color.White("%s", res.CoachReport)

	color.Yellow("\n=== EXEMPLAR ANSWER ===")
	color.White("%s", res.ExemplarAnswer)

	if res.CriticScores != nil {
		color.Green("\nOverall score: %.1f/10", res.CriticScores.OverallScore)
	}
	color.Cyan("\nDone in %s", time.Since(started).Round(time.Millisecond))
}
