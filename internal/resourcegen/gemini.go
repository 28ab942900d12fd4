package resourcegen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
)

const (
	defaultModel = "gemini-2.5-flash"

	attemptTimeout = 30 * time.Second
	maxAttempts    = 3

	// responses shorter than this are treated as a failed generation
	minResponseLength = 50

	// the prompt covers at most this many gaps; more dilutes the answer
	promptGapLimit = 3
)

const systemPrompt = `You are a learning resource expert. Generate specific, actionable learning recommendations.

For each skill gap provided, suggest 1-2 high-quality resources with:
- Specific course/resource names (real ones when possible)
- Brief description of what it covers
- Estimated time commitment
- Platform/provider (Coursera, Udemy, etc.)

Keep responses concise and practical.`

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Gemini generates learning resources through the Gemini API and
// degrades to the deterministic fallback catalog on any failure. It
// never returns an error to callers.
type Gemini struct {
	gen     contentGenerator
	logger  *log.Logger
	backoff time.Duration
}

// geminiClient adapts the genai SDK to the contentGenerator interface.
type geminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGemini builds the remote strategy. The API key is required; the
// model defaults to a fast general-purpose one.
func NewGemini(ctx context.Context, apiKey, model string, logger *log.Logger) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Gemini{
		gen:     &geminiClient{client: client, modelName: model},
		logger:  logger,
		backoff: time.Second,
	}, nil
}

// Generate asks Gemini for resources covering the top gaps. Any
// failure along the way (transport, timeout, empty or unparsable
// response) falls back to the fixed catalog; the caller always gets a
// usable, non-empty list for a non-empty gap list.
func (g *Gemini) Generate(ctx context.Context, gaps []matching.SkillGap, maxResources int) []learning.Resource {
	maxResources = normalizeMax(maxResources)
	if len(gaps) == 0 {
		return fallbackResources(gaps, maxResources)
	}

	raw, err := g.generateWithRetry(ctx, buildPrompt(gaps, maxResources))
	if err != nil {
		g.logger.Printf("ResourceGen | remote generation failed, using fallback: %v", err)
		return fallbackResources(gaps, maxResources)
	}
	if len(strings.TrimSpace(raw)) < minResponseLength {
		g.logger.Printf("ResourceGen | remote response too short (%d chars), using fallback", len(raw))
		return fallbackResources(gaps, maxResources)
	}

	resources := parseResources(raw, promptedSkills(gaps))
	if len(resources) == 0 {
		g.logger.Printf("ResourceGen | no resources parsed from remote response, using fallback")
		return fallbackResources(gaps, maxResources)
	}

	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}
	return resources
}

// generateWithRetry runs up to maxAttempts calls with a 30s budget
// each and 2^attempt-seconds pauses between failures.
func (g *Gemini) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<attempt) * g.backoff
			g.logger.Printf("ResourceGen | attempt %d failed, retrying in %s: %v", attempt, backoff, lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		out, err := g.gen.GenerateContent(attemptCtx, prompt)
		cancel()
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("generate content after %d attempts: %w", maxAttempts, lastErr)
}

func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return out, nil
}

func buildPrompt(gaps []matching.SkillGap, maxResources int) string {
	if len(gaps) > promptGapLimit {
		gaps = gaps[:promptGapLimit]
	}

	var lines []string
	for _, gap := range gaps {
		lines = append(lines, fmt.Sprintf("- %s: Current level %d, need level %d (Priority: %s)",
			titleCase(gap.SkillName), gap.CurrentLevel, gap.RequiredLevel, gap.Priority))
	}

	return fmt.Sprintf("%s\n\nPlease recommend learning resources for these skill gaps:\n\n%s\n\nProvide %d total resources across these skills.",
		systemPrompt, strings.Join(lines, "\n"), maxResources)
}

func promptedSkills(gaps []matching.SkillGap) []string {
	if len(gaps) > promptGapLimit {
		gaps = gaps[:promptGapLimit]
	}
	skills := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		skills = append(skills, gap.SkillName)
	}
	return skills
}

var resourceKeywords = []string{"course", "training", "tutorial", "certification", "bootcamp", "specialization"}

var platformURLs = []struct {
	name string
	url  string
}{
	{"coursera", "https://www.coursera.org"},
	{"udemy", "https://www.udemy.com"},
	{"pluralsight", "https://www.pluralsight.com"},
	{"edx", "https://www.edx.org"},
	{"linkedin", "https://www.linkedin.com/learning"},
}

const parsedResourceLimit = 8

// parseResources reads free-form model output line by line: lines that
// mention a resource keyword start a new entry, platform mentions set
// the URL, longer lines become the description.
func parseResources(raw string, skills []string) []learning.Resource {
	var resources []learning.Resource
	var title, description, url string

	flush := func() {
		if title == "" || len(resources) >= parsedResourceLimit {
			return
		}
		if description == "" {
			description = "Learn " + strings.SplitN(title, ":", 2)[0]
		}
		if url == "" {
			url = "https://www.coursera.org"
		}
		resources = append(resources, learning.Resource{
			ID:          fmt.Sprintf("ai_%d", len(resources)+1),
			Title:       title,
			Type:        "course",
			Provider:    providerFromURL(url),
			Duration:    "20 hours",
			Skills:      skills,
			Level:       "intermediate",
			URL:         url,
			Description: description,
			IsInternal:  false,
		})
	}

	for _, line := range strings.Split(raw, "\n") {
		cleaned := stripListPrefix(strings.TrimSpace(line))
		if cleaned == "" {
			continue
		}
		lower := strings.ToLower(cleaned)

		// platform names embed resource keywords ("Coursera" contains
		// "course"), so mask them before deciding whether a line is a title
		if containsAny(stripPlatforms(lower), resourceKeywords) && looksLikeTitle(cleaned) {
			flush()
			title, description, url = cleaned, "", ""
			continue
		}

		if u, ok := platformURL(lower); ok {
			url = u
			if description == "" {
				description = cleaned
			}
			continue
		}

		if len(cleaned) > 20 && description == "" {
			description = cleaned
		}
	}
	flush()

	return resources
}

func stripListPrefix(line string) string {
	for _, prefix := range []string{"1.", "2.", "3.", "4.", "5.", "6.", "7.", "8.", "-", "*", "•"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return line
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// looksLikeTitle filters out prose sentences that merely mention a
// keyword: titles stay reasonably short.
func looksLikeTitle(line string) bool {
	return len(line) <= 120
}

func stripPlatforms(lower string) string {
	for _, p := range platformURLs {
		lower = strings.ReplaceAll(lower, p.name, "")
	}
	return lower
}

func platformURL(lower string) (string, bool) {
	for _, p := range platformURLs {
		if strings.Contains(lower, p.name) {
			return p.url, true
		}
	}
	return "", false
}

func providerFromURL(url string) string {
	for _, p := range platformURLs {
		if p.url == url {
			return strings.ToUpper(p.name[:1]) + p.name[1:]
		}
	}
	return "Online Platform"
}
