package answer

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/w-h-a/recall/generator"
	"github.com/w-h-a/recall/internal/service/retrieval"
)

type Template string

const (
	// Comparison asks the model to compare a current analysis against prior
	// analyses of the same problem.
	Comparison Template = "comparison"
	// Question asks the model to answer a question from retrieved content
	// alone.
	Question Template = "question"
)

const (
	comparisonInstruction = "I will provide you with a current medical report analysis and past medical report analyses of the same problem. " +
		"Your task is to compare them, identify any changes or consistencies, and provide a detailed yet concise summary of the findings. " +
		"Highlight any significant improvements, deteriorations, or unchanged aspects. " +
		"Ensure your response is medically accurate and formatted clearly for easy interpretation. " +
		"If the past analyses are missing or irrelevant, do not consider them and only return the analysis of the current report."

	questionInstruction = "You are an assistant that answers questions from retrieved content. " +
		"Check whether the retrieved content directly answers the question. " +
		"If it does, generate a clear and concise response based only on that content. " +
		"If the retrieved content is missing or irrelevant, disregard it and answer from the question alone."
)

type Service struct {
	generator generator.Generator
}

func (s *Service) Answer(ctx context.Context, queryText string, retrieved retrieval.Context, template Template) (string, error) {
	if len(strings.TrimSpace(queryText)) == 0 {
		return "", errors.New("query text is required")
	}

	prompt := buildPrompt(queryText, retrieved, template)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return Normalize(raw), nil
}

func buildPrompt(queryText string, retrieved retrieval.Context, template Template) string {
	var sb bytes.Buffer

	switch template {
	case Question:
		sb.WriteString(questionInstruction)
		sb.WriteString("\n\nQuestion:\n")
	default:
		sb.WriteString(comparisonInstruction)
		sb.WriteString("\n\nCurrent medical report analysis:\n")
	}

	sb.WriteString(strings.TrimSpace(queryText))

	if template == Question {
		sb.WriteString("\n\nRetrieved content:\n")
	} else {
		sb.WriteString("\n\nPast medical report analyses:\n")
	}

	if retrieved.Found {
		sb.WriteString(retrieved.Text)
	} else {
		sb.WriteString("none")
	}

	return sb.String()
}

// Normalize strips markdown emphasis markers and line-break control
// characters so the result is plain prose suitable for JSON transport.
func Normalize(raw string) string {
	replacer := strings.NewReplacer(
		"\r", "",
		"\n", "",
		"**", " ",
	)
	return strings.TrimSpace(replacer.Replace(raw))
}

func New(generator generator.Generator) *Service {
	if generator == nil {
		panic("generator is required")
	}

	return &Service{
		generator: generator,
	}
}
