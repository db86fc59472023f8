// Package coach produces motivational messages, study questions, tips and material
// feedback from a chat completion model. Every call degrades to canned Dutch content
// when the model is unavailable or answers with something unusable.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vytor/studybuddy/internal/logger"
)

// Difficulty labels as the model is asked to use them.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "makkelijk"
	DifficultyMedium Difficulty = "gemiddeld"
	DifficultyHard   Difficulty = "moeilijk"
)

// MessageContext is the moment a motivational message is written for.
type MessageContext string

const (
	ContextSessionStart MessageContext = "session_start"
	ContextSessionEnd   MessageContext = "session_end"
	ContextLevelUp      MessageContext = "level_up"
	ContextStreak       MessageContext = "streak"
	ContextStruggle     MessageContext = "struggle"
)

type UserStats struct {
	Level       int    `json:"level"`
	Streak      int    `json:"streak"`
	Subject     string `json:"subject,omitempty"`
	SessionTime int    `json:"sessionTime,omitempty"`
}

type StudyAnalysis struct {
	Feedback      string     `json:"feedback"`
	Tips          []string   `json:"tips"`
	Strengths     []string   `json:"strengths"`
	Improvements  []string   `json:"improvements"`
	StudyPlan     []string   `json:"study_plan"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime int        `json:"estimated_time"`
	Fallback      bool       `json:"fallback"`
}

type StudyQuestions struct {
	Questions  []string   `json:"questions"`
	Difficulty Difficulty `json:"difficulty"`
	Fallback   bool       `json:"fallback"`
}

// MaterialRequest describes uploaded study material.
type MaterialRequest struct {
	Subject     string `json:"subject"`
	StudyType   string `json:"study_type"` // huiswerk, toets, examen, herhaling
	Description string `json:"description"`
	Level       int    `json:"level"`
}

// QuestionsRequest asks for practice questions on a topic.
type QuestionsRequest struct {
	Subject    string     `json:"subject"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

// TipsRequest is the student profile tips are personalized for.
type TipsRequest struct {
	Subjects   []string `json:"subjects"`
	Habits     []string `json:"habits"`
	Weaknesses []string `json:"weaknesses"`
	Level      int      `json:"level"`
}

type Config struct {
	Model     string
	FastModel string
}

// Coach wraps a Completer. A nil Completer means every call returns fallbacks.
type Coach struct {
	llm       Completer
	model     string
	fastModel string
	log       *logger.Logger
}

func New(llm Completer, cfg Config) *Coach {
	if cfg.Model == "" {
		cfg.Model = "llama-3.3-70b-versatile"
	}
	if cfg.FastModel == "" {
		cfg.FastModel = "llama-3.1-8b-instant"
	}
	return &Coach{
		llm:       llm,
		model:     cfg.Model,
		fastModel: cfg.FastModel,
		log:       logger.Default().WithPrefix("coach"),
	}
}

// Enabled reports whether a model is configured at all.
func (c *Coach) Enabled() bool {
	return c.llm != nil
}

func (c *Coach) complete(ctx context.Context, req CompletionRequest) (string, bool) {
	if c.llm == nil {
		return "", false
	}
	out, err := c.llm.Complete(ctx, req)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("coach").Warn("using fallback: %v", err)
		return "", false
	}
	return out, true
}

// MotivationalMessage returns a short pep talk for the given moment.
func (c *Coach) MotivationalMessage(ctx context.Context, mc MessageContext, stats UserStats) string {
	statsJSON, _ := json.Marshal(stats)
	out, ok := c.complete(ctx, CompletionRequest{
		System:      systemMotivation,
		Prompt:      fmt.Sprintf(promptMotivation, mc, statsJSON),
		Model:       c.fastModel,
		Temperature: 0.9,
		MaxTokens:   100,
	})
	if ok {
		if msg := strings.Trim(out, "\" \n\t"); msg != "" {
			return msg
		}
		c.log.Warn("empty motivational message, using fallback")
	}
	return fallbackMessage(mc, stats)
}

// StudyQuestions returns practice questions for a topic.
func (c *Coach) StudyQuestions(ctx context.Context, req QuestionsRequest) StudyQuestions {
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}
	if req.Count <= 0 {
		req.Count = 5
	}
	out, ok := c.complete(ctx, CompletionRequest{
		System:      systemQuestions,
		Prompt:      fmt.Sprintf(promptQuestions, req.Count, req.Subject, req.Topic, req.Difficulty, req.Difficulty),
		Model:       c.model,
		Temperature: 0.8,
		MaxTokens:   800,
	})
	if ok {
		if doc, found := extractJSON(out); found {
			qs := stringList(doc.Get("questions"))
			if len(qs) > 0 {
				d := Difficulty(doc.Get("difficulty").String())
				if d == "" {
					d = req.Difficulty
				}
				return StudyQuestions{Questions: qs, Difficulty: d}
			}
		}
		c.log.Warn("unusable questions answer, using fallback")
	}
	return fallbackQuestions(req.Subject, req.Difficulty)
}

// PersonalizedTips returns study tips tailored to a profile.
func (c *Coach) PersonalizedTips(ctx context.Context, req TipsRequest) []string {
	out, ok := c.complete(ctx, CompletionRequest{
		System: systemTips,
		Prompt: fmt.Sprintf(promptTips,
			strings.Join(req.Subjects, ", "), strings.Join(req.Habits, ", "),
			strings.Join(req.Weaknesses, ", "), req.Level),
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   600,
	})
	if ok {
		if doc, found := extractJSON(out); found {
			list := doc
			if !doc.IsArray() {
				list = doc.Get("tips")
			}
			if tips := stringList(list); len(tips) > 0 {
				return tips
			}
		}
		c.log.Warn("unusable tips answer, using fallback")
	}
	return fallbackTips()
}

// AnalyzeMaterial gives feedback on described study material.
func (c *Coach) AnalyzeMaterial(ctx context.Context, req MaterialRequest) StudyAnalysis {
	out, ok := c.complete(ctx, CompletionRequest{
		System:      systemAnalysis,
		Prompt:      fmt.Sprintf(promptAnalysis, req.Subject, req.StudyType, req.Level, req.Description),
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if ok {
		if doc, found := extractJSON(out); found && doc.Get("feedback").String() != "" {
			a := StudyAnalysis{
				Feedback:      doc.Get("feedback").String(),
				Tips:          stringList(doc.Get("tips")),
				Strengths:     stringList(doc.Get("strengths")),
				Improvements:  stringList(doc.Get("improvements")),
				StudyPlan:     stringList(doc.Get("studyPlan")),
				Difficulty:    Difficulty(doc.Get("difficulty").String()),
				EstimatedTime: int(doc.Get("estimatedTime").Int()),
			}
			if a.Difficulty == "" {
				a.Difficulty = DifficultyMedium
			}
			return a
		}
		c.log.Warn("unusable analysis answer, using fallback")
	}
	return fallbackAnalysis(req.Subject)
}

// extractJSON finds the outermost JSON object or array in a model answer, which
// often comes wrapped in prose or a fenced code block.
func extractJSON(s string) (gjson.Result, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return gjson.Result{}, false
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return gjson.Result{}, false
	}
	raw := s[start : end+1]
	if !gjson.Valid(raw) {
		return gjson.Result{}, false
	}
	return gjson.Parse(raw), true
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
