// Package coaching turns workout data into coaching text via the LLM
// client. Failures never propagate: a missing API key is surfaced as its
// own message and anything else degrades to a static fallback line.
package coaching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ppltrack/internal/domain"
	"ppltrack/internal/llm"
)

const (
	tipFallback        = "Could not fetch tip. Please check your API key and network connection."
	suggestionFallback = "Could not fetch suggestion. Please check your API key and network connection."
)

// historyLimit caps how many recent sessions go into the suggestion
// prompt, keeping it concise.
const historyLimit = 5

type Coach struct {
	client llm.Client
}

func NewCoach(client llm.Client) *Coach {
	return &Coach{client: client}
}

// ExerciseTip asks for a short form cue for the named exercise. Always
// returns displayable text, never an error.
func (c *Coach) ExerciseTip(ctx context.Context, exerciseName string) string {
	prompt := fmt.Sprintf(`Provide a concise, actionable tip for performing the %q exercise correctly. Focus on the most common mistake or the most important form cue. Maximum 2-3 sentences.`, exerciseName)

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskTip,
		Prompt: prompt,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return err.Error()
		}
		return tipFallback
	}
	return resp.Text
}

// ImprovementSuggestion asks for a progression suggestion based on the
// most recent sessions of one template. sessions are expected
// newest-first, as returned by the session store.
func (c *Coach) ImprovementSuggestion(ctx context.Context, sessions []*domain.Session, templateTitle string) string {
	summary := summarizeHistory(sessions)
	historyJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return suggestionFallback
	}

	prompt := fmt.Sprintf(`Based on the following workout history for %q, provide a concise and actionable suggestion for improvement.
Focus on potential plateaus (stagnant weight/reps) or opportunities for progressive overload.
The user wants to know what to improve. Be specific but brief (3-4 sentences).

Workout History (last %d sessions):
%s`, templateTitle, len(summary), historyJSON)

	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:   llm.TaskSuggestion,
		Prompt: prompt,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return err.Error()
		}
		return suggestionFallback
	}
	return resp.Text
}

type sessionSummary struct {
	Date        string            `json:"date"`
	TotalVolume float64           `json:"totalVolume"`
	Exercises   []exerciseSummary `json:"exercises"`
}

type exerciseSummary struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
}

// summarizeHistory condenses up to historyLimit sessions into the
// prompt payload, oldest first.
func summarizeHistory(sessions []*domain.Session) []sessionSummary {
	if len(sessions) > historyLimit {
		sessions = sessions[:historyLimit]
	}

	out := make([]sessionSummary, 0, len(sessions))
	// Reverse into chronological order for the model.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		summary := sessionSummary{
			Date:        s.Date,
			TotalVolume: s.TotalVolume,
		}
		for _, ex := range s.Exercises {
			sets := make([]string, 0, len(ex.Sets))
			for _, set := range ex.Sets {
				sets = append(sets, fmt.Sprintf("Reps: %d, Weight: %g%s", set.Reps, set.Weight, s.Unit))
			}
			summary.Exercises = append(summary.Exercises, exerciseSummary{
				Name: ex.Name,
				Sets: strings.Join(sets, "; "),
			})
		}
		out = append(out, summary)
	}
	return out
}
