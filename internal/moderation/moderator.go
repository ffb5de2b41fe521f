// Package moderation scans free text for disallowed lexical and structural
// patterns. It is regex based; it does not understand language.
package moderation

import (
	"fmt"
	"regexp"
	"strings"

	"article-generator/internal/domain"
)

// Policy selects how watch terms are treated.
type Policy string

const (
	// PolicyContextual flags terms only next to a qualifying word and lets
	// hospitality phrasing through. Bare watch terms become warnings.
	PolicyContextual Policy = "contextual"
	// PolicyStrict flags every listed term as a bare word.
	PolicyStrict Policy = "strict"
)

// ParsePolicy parses a policy name. Empty defaults to contextual.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyContextual:
		return PolicyContextual, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("unknown moderation policy %q", s)
	}
}

const (
	msgURL        = "URLs not allowed in content"
	msgCreditCard = "Credit card patterns not allowed"
	msgEmail      = "Email addresses not allowed"
)

var (
	creditCardPattern = regexp.MustCompile(`\b\d{4}[-\s]\d{4}[-\s]\d{4}[-\s]\d{4}\b`)
	emailPattern      = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)
)

type compiledCategory struct {
	name    string
	fatal   *regexp.Regexp
	context *regexp.Regexp
	watch   *regexp.Regexp
	allow   *regexp.Regexp
}

var compiled = compileCategories(categories)

func compileCategories(cats []category) []compiledCategory {
	out := make([]compiledCategory, 0, len(cats))
	for _, c := range cats {
		out = append(out, compiledCategory{
			name:    c.name,
			fatal:   wordsPattern(c.fatal),
			context: wordsPattern(c.context),
			watch:   wordsPattern(c.watch),
			allow:   wordsPattern(c.allow),
		})
	}
	return out
}

func wordsPattern(parts []string) *regexp.Regexp {
	if len(parts) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, `|`) + `)\b`)
}

// Moderator checks text against the rule table under one policy.
type Moderator struct {
	policy Policy
}

// NewModerator creates a Moderator.
func NewModerator(policy Policy) *Moderator {
	if policy == "" {
		policy = PolicyContextual
	}
	return &Moderator{policy: policy}
}

// Policy returns the active policy.
func (m *Moderator) Policy() Policy {
	return m.policy
}

// Check scans text. Each category reports at most one violation carrying
// only the matched fragment; structural violations never echo the match.
func (m *Moderator) Check(text string) domain.ModerationResult {
	var violations, warnings []string

	for _, c := range compiled {
		if match := find(c.fatal, text); match != "" {
			violations = append(violations, violation(c.name, match))
			continue
		}

		if m.policy == PolicyStrict {
			if match := find(c.context, text); match != "" {
				violations = append(violations, violation(c.name, match))
			} else if match := find(c.watch, text); match != "" {
				violations = append(violations, violation(c.name, match))
			}
			continue
		}

		if match := find(c.context, text); match != "" {
			violations = append(violations, violation(c.name, match))
			continue
		}
		if match := find(c.watch, mask(c.allow, text)); match != "" {
			warnings = append(warnings, fmt.Sprintf("Borderline term (%s): %s", c.name, match))
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") {
		violations = append(violations, msgURL)
	}
	if creditCardPattern.MatchString(text) {
		violations = append(violations, msgCreditCard)
	}
	if emailPattern.MatchString(text) {
		violations = append(violations, msgEmail)
	}

	return domain.ModerationResult{
		Appropriate: len(violations) == 0,
		Violations:  violations,
		Warnings:    warnings,
	}
}

func find(re *regexp.Regexp, text string) string {
	if re == nil {
		return ""
	}
	return re.FindString(text)
}

// mask blanks out allowed phrases so watch terms inside them are skipped.
func mask(allow *regexp.Regexp, text string) string {
	if allow == nil {
		return text
	}
	return allow.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
}

func violation(category, match string) string {
	return fmt.Sprintf("Inappropriate content detected (%s): %s", category, match)
}
