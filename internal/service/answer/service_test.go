package answer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/recall/generator"
	"github.com/w-h-a/recall/internal/service/retrieval"
)

type fakeGenerator struct {
	prompt string
	reply  string
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestService_ComparisonPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "findings are consistent"}
	svc := New(gen)

	retrieved := retrieval.Context{Text: "mild caries tooth #14", Found: true}

	got, err := svc.Answer(context.Background(), "caries found in upper molar", retrieved, Comparison)
	require.NoError(t, err)

	assert.Equal(t, "findings are consistent", got)
	assert.Contains(t, gen.prompt, "caries found in upper molar")
	assert.Contains(t, gen.prompt, "mild caries tooth #14")
	assert.Contains(t, gen.prompt, "missing or irrelevant")
}

func TestService_AbsentContext(t *testing.T) {
	gen := &fakeGenerator{reply: "analysis of the current report"}
	svc := New(gen)

	_, err := svc.Answer(context.Background(), "caries found in upper molar", retrieval.Context{}, Comparison)
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "none")
	assert.NotContains(t, gen.prompt, "mild caries")
}

func TestService_QuestionPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: "the answer"}
	svc := New(gen)

	retrieved := retrieval.Context{Text: "retrieved knowledge", Found: true}

	_, err := svc.Answer(context.Background(), "what was found?", retrieved, Question)
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "Question:")
	assert.Contains(t, gen.prompt, "Retrieved content:")
	assert.Contains(t, gen.prompt, "retrieved knowledge")
}

func TestService_NormalizesReply(t *testing.T) {
	gen := &fakeGenerator{reply: "**Bold**\nline\r"}
	svc := New(gen)

	got, err := svc.Answer(context.Background(), "query", retrieval.Context{}, Comparison)
	require.NoError(t, err)

	assert.Equal(t, "Bold line", got)
}

func TestService_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{
		err: fmt.Errorf("%w: provider outage", generator.ErrFailed),
	}
	svc := New(gen)

	_, err := svc.Answer(context.Background(), "query", retrieval.Context{}, Comparison)

	assert.ErrorIs(t, err, generator.ErrFailed)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "plain prose", Normalize("plain prose"))
	assert.Equal(t, "ab", Normalize("a\r\nb"))
	assert.Equal(t, "emphasis  gone", Normalize("**emphasis** gone"))
}
