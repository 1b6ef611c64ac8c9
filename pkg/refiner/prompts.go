package refiner

import (
	"fmt"
	"strings"
)

// styleInstructions are injected into the drafting, rewrite and exemplar
// prompts. Keys are the style presets.
var styleInstructions = map[string]string{
	StyleStructuredNarrative: `Style: Structured Narrative
- Answer the question directly first, then ground it with a specific personal anchor (a credible story in one line).
- Translate the anchor to a lesson or value.
- Apply it to leadership (as a titleholder, what would you do).
- Close with a vivid, hopeful vision — a line worth quoting.
- Sentence rhythm: medium-length, steady pacing, purposeful.`,

	StyleValuesSharedAgency: `Style: Values + Shared Agency
- Lead with a clear stance (with measured nuance, not extremes).
- Frame shared responsibility (individuals AND institutions).
- Name what needs to happen and who should act.
- Close with moral urgency and empowerment — make the audience feel called to act.
- Sentence rhythm: shorter punchy sentences mixed with one longer reflective line.`,
}

func styleFor(preset string) string {
	if s, ok := styleInstructions[preset]; ok {
		return s
	}
	return styleInstructions[StyleStructuredNarrative]
}

func buildQuestionAnalysisPrompt(question string) string {
	var b strings.Builder
	b.WriteString("You are a pageant interview analyst. Your job is to break down the question ")
	b.WriteString("so the contestant knows exactly what judges are looking for.\n\n")
	b.WriteString("Analyze the following question and return:\n")
	b.WriteString("1. **Question type**: personal, issues-based, advocacy, leadership, or fun/creative.\n")
	b.WriteString("2. **What judges are really testing**: the underlying quality being assessed ")
	b.WriteString("(e.g., composure under pressure, global awareness, authenticity).\n")
	b.WriteString("3. **Common traps**: what weak answers typically do wrong with this question.\n")
	b.WriteString("4. **Recommended structure**: how to organize a strong answer.\n\n")
	b.WriteString("Question: " + question + "\n\n")
	b.WriteString("Be concise — this analysis is for internal use, not the audience.")
	return b.String()
}

func buildDraftingPrompt(st *State, wordBudget int) string {
	var b strings.Builder
	b.WriteString("You are a world-class pageant speech coach. Generate a strong first draft ")
	b.WriteString("answer for the contestant.\n\n")
	b.WriteString("CONTEXT:\n")
	b.WriteString("- Question: " + st.Question + "\n")
	b.WriteString("- Contestant's raw answer: " + st.RawAnswer + "\n")
	b.WriteString("- Question analysis: " + st.QuestionAnalysis + "\n")
	fmt.Fprintf(&b, "- Time limit: %d seconds (~%d words)\n", st.TimeLimit, wordBudget)
	if st.PersonaContext != "" {
		b.WriteString("\n" + st.PersonaContext + "\n")
	}
	b.WriteString("\nCRITICAL: The very first sentence of the answer MUST directly answer the question. ")
	b.WriteString("No stories, no setup, no context before the answer. Answer first, then elaborate.\n\n")
	b.WriteString("ANSWER TEMPLATE (4-6 sentences, adapt to question type):\n")
	b.WriteString("1. Direct answer (1 sentence — the FIRST sentence, always. Never dodge or delay.)\n")
	b.WriteString("2. Meaning/value (1 sentence — why this matters)\n")
	b.WriteString("3. Personal anchor (1 sentence — a specific experience, not a generic claim)\n")
	b.WriteString("4. Leadership/application (1 sentence — what you would do or stand for)\n")
	b.WriteString("5. Memorable close (1 sentence — a values-led line that sticks)\n\n")
	b.WriteString("RULES:\n")
	fmt.Fprintf(&b, "- Stay within ~%d words.\n", wordBudget)
	b.WriteString("- Preserve the contestant's authentic voice and ideas from their raw answer.\n")
	b.WriteString("- Do NOT add facts, statistics, or claims the contestant did not provide.\n")
	b.WriteString("- Avoid filler phrases: \"I believe that\", \"As a woman\", \"In today's world\".\n")
	b.WriteString("- The answer must sound spoken, not written.\n\n")
	b.WriteString("STYLE INSTRUCTIONS:\n" + styleFor(st.StylePreset) + "\n\n")
	b.WriteString("Write only the answer. No commentary.")
	return b.String()
}

func buildCriticPrompt(st *State, answer, rubricText string, wordBudget int) string {
	var b strings.Builder
	b.WriteString("You are a tough but fair pageant Q&A judge and scoring critic. Evaluate the ")
	b.WriteString("draft answer against the rubric below.\n\n")
	b.WriteString("QUESTION: " + st.Question + "\n")
	b.WriteString("DRAFT ANSWER: " + answer + "\n")
	fmt.Fprintf(&b, "TIME LIMIT: %d seconds (~%d words)\n\n", st.TimeLimit, wordBudget)
	b.WriteString(rubricText + "\n\n")
	b.WriteString("First write a short prose critique: score each dimension with a one-line ")
	b.WriteString("justification, state the **Overall score** (weighted mean of the dimension ")
	b.WriteString("scores, respecting the cap rules), call out genericness, and give your top 3 ")
	b.WriteString("specific fixes (concrete, actionable edits — not vague advice).\n\n")
	b.WriteString("Then append a fenced JSON block with this exact shape:\n")
	b.WriteString("```json\n")
	b.WriteString(`{
  "overall_score": 0.0,
  "dimension_scores": [{"name": "", "score": 0.0, "reason": ""}],
  "time_fit_estimate_words": 0,
  "top_fixes": [{"type": "", "target": "", "instruction": ""}],
  "genericness_flags": [],
  "risk_flags": []
}` + "\n")
	b.WriteString("```\n")
	b.WriteString("All scores are 0-10. dimension_scores must follow the rubric order, ")
	b.WriteString("top_fixes must contain exactly 3 entries, and overall_score must be the ")
	b.WriteString("weighted mean of the dimension scores.")
	return b.String()
}

func buildRewritePrompt(st *State, answer string, wordBudget int) string {
	var b strings.Builder
	b.WriteString("You are the final polish pass. Take the draft answer and the critic's feedback, ")
	b.WriteString("and produce a refined answer ready for the stage.\n\n")
	b.WriteString("QUESTION: " + st.Question + "\n")
	b.WriteString("DRAFT ANSWER: " + answer + "\n")
	b.WriteString("CRITIC FEEDBACK: " + st.Critique + "\n")
	fmt.Fprintf(&b, "TIME LIMIT: %d seconds (~%d words)\n\n", st.TimeLimit, wordBudget)
	b.WriteString("STYLE INSTRUCTIONS:\n" + styleFor(st.StylePreset) + "\n\n")
	b.WriteString("STRUCTURE (preserve this order):\n")
	b.WriteString("1. Direct answer first (1 sentence — the very first sentence MUST answer the question)\n")
	b.WriteString("2. Meaning/value\n")
	b.WriteString("3. Personal anchor\n")
	b.WriteString("4. Leadership/application\n")
	b.WriteString("5. Memorable close\n\n")
	b.WriteString("RULES:\n")
	b.WriteString("- The first sentence MUST directly answer the question. Never bury the answer.\n")
	b.WriteString("- Apply the critic's top fixes.\n")
	b.WriteString("- Keep the contestant's personal anchor intact — do not remove or genericize it.\n")
	b.WriteString("- Tighten language: cut filler, sharpen verbs, strengthen the close.\n")
	fmt.Fprintf(&b, "- Stay within ~%d words. If over, cut the weakest sentence.\n", wordBudget)
	b.WriteString("- The answer must sound spoken, not written. Read it aloud in your head.\n\n")
	b.WriteString("Write only the refined answer. No commentary.")
	return b.String()
}

func buildCoachReportPrompt(st *State) string {
	var b strings.Builder
	b.WriteString("You are a pageant coaching analyst. Produce a concise coach report comparing ")
	b.WriteString("the contestant's original answer to the refined version.\n\n")
	b.WriteString("QUESTION: " + st.Question + "\n")
	b.WriteString("ORIGINAL ANSWER: " + st.RawAnswer + "\n")
	b.WriteString("REFINED ANSWER: " + st.RefinedAnswer + "\n")
	b.WriteString("CRITIC SCORES: " + st.Critique + "\n\n")
	b.WriteString("Produce a report with these sections:\n\n")
	b.WriteString("## Rubric Score\n")
	b.WriteString("Restate the dimension scores and overall score from the critique.\n\n")
	b.WriteString("## What Changed\n")
	b.WriteString("3-4 bullet points explaining the key improvements made.\n\n")
	b.WriteString("## Practice Notes\n")
	b.WriteString("- Where to pause for emphasis (mark with [PAUSE])\n")
	b.WriteString("- Which words or phrases to stress (mark with *emphasis*)\n")
	b.WriteString("- If the answer is still too long, suggest what to cut first.\n")
	b.WriteString("- One tip for body language or delivery.")
	return b.String()
}

func buildExemplarPrompt(st *State, reference string, wordBudget int) string {
	var b strings.Builder
	b.WriteString("You are a pageant speech-writing expert who has coached dozens of titleholders. ")
	b.WriteString("Write a model winning answer to the following question — the kind of answer ")
	b.WriteString("that would earn a standing ovation from judges.\n\n")
	b.WriteString("QUESTION: " + st.Question + "\n")
	b.WriteString("QUESTION ANALYSIS: " + st.QuestionAnalysis + "\n")
	fmt.Fprintf(&b, "TIME LIMIT: %d seconds (~%d words)\n\n", st.TimeLimit, wordBudget)
	if reference != "" {
		b.WriteString(reference + "\n")
		b.WriteString("Follow this structure. Never copy this wording.\n\n")
	}
	b.WriteString("STYLE INSTRUCTIONS:\n" + styleFor(st.StylePreset) + "\n\n")
	b.WriteString("GUIDELINES:\n")
	b.WriteString("- This is a reference exemplar, NOT the contestant's answer. Create a fresh, ")
	b.WriteString("original answer with a fictional but realistic personal anchor.\n")
	b.WriteString("- The very first sentence MUST directly answer the question.\n")
	b.WriteString("- Follow the analysis — address what the judges are really testing.\n")
	b.WriteString("- Apply the answer template: direct answer, meaning, personal anchor, ")
	b.WriteString("leadership application, memorable close.\n")
	b.WriteString("- Use vivid, specific language — no filler phrases or generic platitudes.\n")
	b.WriteString("- The answer must sound spoken aloud, not written. Natural rhythm, no jargon.\n")
	fmt.Fprintf(&b, "- Stay within ~%d words. Every sentence must earn its place.\n", wordBudget)
	b.WriteString("- End with a line worth quoting — something a viewer would remember.\n\n")
	b.WriteString("Write only the model answer. No commentary, no labels, no preamble.")
	return b.String()
}
