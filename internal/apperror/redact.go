package apperror

import "regexp"

const redacted = "[REDACTED]"

// Order matters: URLs go first so query-string credentials vanish with them,
// and paths run last so they never match inside a URL.
var redactions = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/=\-]+`), "Bearer " + redacted},
	{regexp.MustCompile(`(?i)\bhttps?://[^\s"'<>]+`), "[URL]"},
	{regexp.MustCompile(`(?i)\b(api[_-]?key|key|token|secret|password|authorization)\s*[=:]\s*"?[^\s"&,;]+`), "${1}=" + redacted},
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]*`), redacted},
	{regexp.MustCompile(`eyJ[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+`), redacted},
	{regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`), "[EMAIL]"},
	{regexp.MustCompile(`(?:[A-Za-z]:)?(?:/[\w.\-@]+)+\.(?:go|ts|js)(?::\d+)*`), "[PATH]"},
}

// Redact strips credentials, URLs, email addresses and source paths from an
// internal message before it is written to a log.
func Redact(s string) string {
	for _, r := range redactions {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// RedactErr is Redact over err.Error(). A nil error yields "".
func RedactErr(err error) string {
	if err == nil {
		return ""
	}
	return Redact(err.Error())
}
