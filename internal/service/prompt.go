package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"article-generator/internal/domain"
)

// promptIdeaLimit bounds how much of the idea is embedded in the prompt.
const promptIdeaLimit = 1000

// DefaultSampling is sent with every generation request.
var DefaultSampling = domain.SamplingConfig{
	Temperature:     0.8,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

var typePrompts = map[domain.ArticleType]string{
	domain.ArticleTypeBreakingNews:      "Create a satirical breaking news article about the hospitality industry. Focus on fake industry announcements, satirical trends, or parody press releases.",
	domain.ArticleTypeGuestRelations:    "Create a satirical guest relations article about the hospitality industry. Focus on fictional customer complaints, satirical reviews, or \"overheard at the front desk\" scenarios.",
	domain.ArticleTypeIndustryDeepDives: "Create a satirical industry deep dive article about the hospitality industry. Focus on fake investigations, satirical profiles, or parody trend analyses.",
	domain.ArticleTypeTravelTourism:     "Create a satirical travel & tourism article. Focus on fake destination guides, satirical travel advisories, or parody announcements.",
}

const promptTemplate = `You are a professional satirical writer for "Hospitality FN," a humor publication about the hospitality industry.

Based on this user idea: "%s"

%s

Create a satirical article that:
- Uses the user's idea as the foundation for all content
- Is professional satire suitable for a public publication
- Contains NO profanity, violence, illegal content, or discriminatory language
- Does NOT reference real companies or people
- Uses hospitality industry terminology and SEO-friendly keywords
- Is at least 250 words, but no more than 350 words

Respond with a single JSON object containing:
{
  "headline": "A catchy, satirical headline based on the user's idea",
  "article": "The full article (350 words max) based on the user's idea",
  "excerpt": "A 50-word excerpt summarizing the article",
  "socialCaption": "A social media caption with relevant hashtags"
}

Keep the tone satirical but professional. Make it obviously fake/satirical while being entertaining.`

// BuildPrompt renders the generation prompt for a validated request.
func BuildPrompt(req domain.GenerationRequest) string {
	return fmt.Sprintf(promptTemplate, truncateRunes(req.Idea, promptIdeaLimit), typePrompts[req.ArticleType])
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var codeFence = regexp.MustCompile("(?i)```json\\n?|\\n?```")

// ParseArticle strips markdown code fences from a model response and decodes
// the article. A missing or blank field is an error; nothing partial is
// returned.
func ParseArticle(raw string) (*domain.GeneratedArticle, error) {
	cleaned := strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))

	var article domain.GeneratedArticle
	if err := json.Unmarshal([]byte(cleaned), &article); err != nil {
		return nil, fmt.Errorf("parse generated article JSON: %w", err)
	}

	if missing := article.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("parse generated article: missing required fields: %s", strings.Join(missing, ", "))
	}

	return &article, nil
}
