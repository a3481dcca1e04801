package judgment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meetmate/pkg/gemini"
	pkgLog "meetmate/pkg/log"
)

// Provenance records whether a judgment came from the reasoning service or
// from the deterministic fallback.
type Provenance string

const (
	ProvenanceAI       Provenance = "ai"
	ProvenanceFallback Provenance = "fallback"
)

// Generator is the narrow slice of the reasoning service the judge needs.
type Generator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// Config holds judge-wide generation settings.
type Config struct {
	Timeout         time.Duration // per-call timeout, single attempt, no retry
	Temperature     float64
	MaxOutputTokens int
}

// Judge issues schema-validated judgment calls against the reasoning service.
// It is stateless and safe for concurrent use.
type Judge struct {
	llm Generator
	l   pkgLog.Logger
	cfg Config
}

// New creates a Judge with the given reasoning client and logger.
func New(llm Generator, l pkgLog.Logger, cfg Config) *Judge {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.2
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 2048
	}
	return &Judge{llm: llm, l: l, cfg: cfg}
}

// Spec describes one judgment: a name for logging, the task instructions
// including the expected JSON schema, and the context payload serialized into
// the user message.
type Spec struct {
	Name         string
	Instructions string
	Context      map[string]any
}

// Result carries the judged value and its provenance. Reason is set only when
// the fallback path was taken.
type Result[T any] struct {
	Value      T
	Provenance Provenance
	Reason     string
}

// Ask performs one judgment call: send the spec to the reasoning service,
// parse and validate the JSON response, and on any failure whatsoever
// (transport error, timeout, malformed output, validation error) return the
// deterministic fallback instead. Ask never returns an error; this is the one
// boundary where reasoning-service uncertainty is absorbed.
//
// Ask is a package-level function because Go methods cannot take type
// parameters.
func Ask[T any](ctx context.Context, j *Judge, spec Spec, validate func(*T) error, fallback func() T) Result[T] {
	value, err := generate[T](ctx, j, spec, validate)
	if err != nil {
		j.l.Warnf(ctx, "judgment %s: provenance=fallback reason=%v", spec.Name, err)
		return Result[T]{
			Value:      fallback(),
			Provenance: ProvenanceFallback,
			Reason:     err.Error(),
		}
	}

	j.l.Infof(ctx, "judgment %s: provenance=ai", spec.Name)
	return Result[T]{Value: value, Provenance: ProvenanceAI}
}

func generate[T any](ctx context.Context, j *Judge, spec Spec, validate func(*T) error) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, j.cfg.Timeout)
	defer cancel()

	contextJSON, err := json.MarshalIndent(spec.Context, "", "  ")
	if err != nil {
		return zero, fmt.Errorf("failed to marshal context: %w", err)
	}

	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: spec.Instructions}},
		},
		Contents: []gemini.Content{
			{
				Role: "user",
				Parts: []gemini.Part{
					{Text: "CONTEXT:\n" + string(contextJSON) + "\n\nReturn ONLY a valid JSON object matching the schema. No markdown, no code blocks, no explanation text."},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     j.cfg.Temperature,
			MaxOutputTokens: j.cfg.MaxOutputTokens,
		},
	}

	resp, err := j.llm.GenerateContent(ctx, req)
	if err != nil {
		return zero, fmt.Errorf("reasoning service call failed: %w", err)
	}

	responseText := resp.Text()
	if responseText == "" {
		return zero, fmt.Errorf("empty response from reasoning service")
	}

	cleaned := sanitizeJSONResponse(responseText)

	var value T
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return zero, fmt.Errorf("failed to parse judgment JSON: %w", err)
	}

	if validate != nil {
		if err := validate(&value); err != nil {
			return zero, fmt.Errorf("judgment failed validation: %w", err)
		}
	}

	return value, nil
}
