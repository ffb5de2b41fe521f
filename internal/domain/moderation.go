package domain

// ModerationResult is the outcome of a single content check.
type ModerationResult struct {
	Appropriate bool     `json:"appropriate"`
	Violations  []string `json:"violations"`
	// Warnings are borderline matches that are logged but never rejected.
	Warnings []string `json:"warnings,omitempty"`
}
