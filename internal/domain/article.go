package domain

import "strings"

// ArticleType is the editorial category a generated article is written for.
type ArticleType string

const (
	ArticleTypeBreakingNews      ArticleType = "breaking-news"
	ArticleTypeGuestRelations    ArticleType = "guest-relations"
	ArticleTypeIndustryDeepDives ArticleType = "industry-deep-dives"
	ArticleTypeTravelTourism     ArticleType = "travel-tourism"
)

// ValidArticleTypes contains all recognized article types.
var ValidArticleTypes = []ArticleType{
	ArticleTypeBreakingNews,
	ArticleTypeGuestRelations,
	ArticleTypeIndustryDeepDives,
	ArticleTypeTravelTourism,
}

// IsValidArticleType checks if an article type is recognized.
func IsValidArticleType(articleType string) bool {
	for _, t := range ValidArticleTypes {
		if string(t) == articleType {
			return true
		}
	}
	return false
}

const (
	// MinIdeaLength is the minimum idea length in characters.
	MinIdeaLength = 100
	// MaxIdeaLength is the maximum idea length in characters.
	MaxIdeaLength = 5000
)

// GenerationRequest is a validated request to generate an article.
type GenerationRequest struct {
	Idea        string      `json:"idea"`
	ArticleType ArticleType `json:"articleType"`
}

// GeneratedArticle is the structured article returned by the generation service.
type GeneratedArticle struct {
	Headline      string `json:"headline"`
	Article       string `json:"article"`
	Excerpt       string `json:"excerpt"`
	SocialCaption string `json:"socialCaption"`
}

// MissingFields returns the JSON names of empty or blank fields.
func (a *GeneratedArticle) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(a.Headline) == "" {
		missing = append(missing, "headline")
	}
	if strings.TrimSpace(a.Article) == "" {
		missing = append(missing, "article")
	}
	if strings.TrimSpace(a.Excerpt) == "" {
		missing = append(missing, "excerpt")
	}
	if strings.TrimSpace(a.SocialCaption) == "" {
		missing = append(missing, "socialCaption")
	}
	return missing
}

// SamplingConfig holds the sampling parameters sent to the generation service.
type SamplingConfig struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}
