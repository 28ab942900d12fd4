package resourcegen

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"career-compass/internal/domain/matching"
)

type fakeContentGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeContentGenerator) GenerateContent(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testGemini(gen contentGenerator) *Gemini {
	return &Gemini{gen: gen, logger: log.New(os.Stderr, "", 0), backoff: time.Millisecond}
}

func TestGeminiGenerate_AllAttemptsFailFallsBack(t *testing.T) {
	fake := &fakeContentGenerator{err: errors.New("deadline exceeded")}
	g := testGemini(fake)

	gaps := []matching.SkillGap{gapFor("python", 0, 4)}
	resources := g.Generate(context.Background(), gaps, 5)

	if fake.calls != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, fake.calls)
	}
	if len(resources) == 0 {
		t.Fatalf("fallback must keep the result non-empty")
	}
	if resources[0].ID != "fallback_1" {
		t.Fatalf("expected fallback resource, got %+v", resources[0])
	}
}

func TestGeminiGenerate_ShortResponseFallsBack(t *testing.T) {
	fake := &fakeContentGenerator{response: "nope"}
	g := testGemini(fake)

	resources := g.Generate(context.Background(), []matching.SkillGap{gapFor("python", 0, 4)}, 5)
	if len(resources) == 0 || resources[0].ID != "fallback_1" {
		t.Fatalf("short response must fall back, got %+v", resources)
	}
}

func TestGeminiGenerate_ParsesResponse(t *testing.T) {
	fake := &fakeContentGenerator{response: strings.Join([]string{
		"1. Python for Data Analysis Course",
		"Available on Coursera, roughly 25 hours of material.",
		"",
		"2. Advanced SQL Training",
		"A hands-on program covering window functions and query tuning on Udemy.",
	}, "\n")}
	g := testGemini(fake)

	gaps := []matching.SkillGap{gapFor("python", 1, 4), gapFor("sql", 0, 3)}
	resources := g.Generate(context.Background(), gaps, 5)

	if len(resources) != 2 {
		t.Fatalf("expected 2 parsed resources, got %d: %+v", len(resources), resources)
	}
	if resources[0].Title != "Python for Data Analysis Course" {
		t.Fatalf("unexpected first title: %q", resources[0].Title)
	}
	if resources[0].URL != "https://www.coursera.org" || resources[0].Provider != "Coursera" {
		t.Fatalf("platform mention must set url/provider: %+v", resources[0])
	}
	if resources[1].Title != "Advanced SQL Training" {
		t.Fatalf("unexpected second title: %q", resources[1].Title)
	}
	for _, res := range resources {
		if len(res.Skills) != 2 {
			t.Fatalf("resources must carry the prompted skills: %+v", res)
		}
	}
}

func TestGeminiGenerate_TruncatesToMax(t *testing.T) {
	lines := []string{
		"1. First Useful Course about Go fundamentals and tooling",
		"2. Second Useful Course about testing practices in depth here",
		"3. Third Useful Course about profiling and optimization topics",
	}
	fake := &fakeContentGenerator{response: strings.Join(lines, "\n")}
	g := testGemini(fake)

	resources := g.Generate(context.Background(), []matching.SkillGap{gapFor("go", 0, 4)}, 2)
	if len(resources) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(resources))
	}
}

func TestGeminiGenerate_EmptyGaps(t *testing.T) {
	fake := &fakeContentGenerator{response: "anything"}
	g := testGemini(fake)

	resources := g.Generate(context.Background(), nil, 5)
	if fake.calls != 0 {
		t.Fatalf("no remote call expected for empty gaps")
	}
	if len(resources) != 0 {
		t.Fatalf("no gaps means no resources, got %d", len(resources))
	}
}

func TestBuildPrompt_CoversTopGapsOnly(t *testing.T) {
	gaps := []matching.SkillGap{
		gapFor("a", 0, 4), gapFor("b", 0, 4), gapFor("c", 0, 4), gapFor("d", 0, 4),
	}
	prompt := buildPrompt(gaps, 5)
	if strings.Contains(prompt, "- D:") {
		t.Fatalf("prompt must cover at most %d gaps: %q", promptGapLimit, prompt)
	}
	if !strings.Contains(prompt, "Provide 5 total resources") {
		t.Fatalf("prompt must state the resource budget: %q", prompt)
	}
}
