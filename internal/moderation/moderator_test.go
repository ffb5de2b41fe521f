package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerator_Contextual(t *testing.T) {
	m := NewModerator(PolicyContextual)

	tests := []struct {
		name        string
		text        string
		appropriate bool
		contains    string
	}{
		{
			name:        "hospitality complaint is allowed",
			text:        "guests hate the new checkout kiosk",
			appropriate: true,
		},
		{
			name:        "idiom with a pronoun object is only a warning",
			text:        "The new mattress won't hurt you, but the invoice might.",
			appropriate: true,
		},
		{
			name:        "shot them a look is allowed",
			text:        "The concierge shot them a look when the pigeon checked in.",
			appropriate: true,
		},
		{
			name:        "threat against staff is flagged",
			text:        "He threatened to hurt the staff at reception.",
			appropriate: false,
			contains:    "violence",
		},
		{
			name:        "threat against guests is flagged",
			text:        "I will kill the guests",
			appropriate: false,
			contains:    "violence",
		},
		{
			name:        "killing it is not violence",
			text:        "The night manager is killing it at the front desk this season.",
			appropriate: true,
		},
		{
			name:        "hotel from hell is allowed",
			text:        "A satirical review of the hotel from hell and its broken ice machine.",
			appropriate: true,
		},
		{
			name:        "profanity is always flagged",
			text:        "This lobby music is shit.",
			appropriate: false,
			contains:    "profanity",
		},
		{
			name:        "hate speech against a group is flagged",
			text:        "The concierge said he hates all immigrants.",
			appropriate: false,
			contains:    "hate speech",
		},
		{
			name:        "hate speech survives the hospitality allowance",
			text:        "guests hate the immigrants who clean the rooms",
			appropriate: false,
			contains:    "hate speech",
		},
		{
			name:        "drug dealing is flagged",
			text:        "The bellhop was selling drugs from the luggage cart.",
			appropriate: false,
			contains:    "illegal drugs",
		},
		{
			name:        "self-harm is flagged",
			text:        "the intern wanted to hurt myself over the booking system",
			appropriate: false,
			contains:    "self-harm",
		},
		{
			name:        "account takeover is flagged",
			text:        "A tutorial on how to hack into the guest accounts of a resort.",
			appropriate: false,
			contains:    "fraud/security",
		},
		{
			name:        "URL is flagged",
			text:        "Read more at https://example.com",
			appropriate: false,
			contains:    msgURL,
		},
		{
			name:        "credit card is flagged",
			text:        "Charge it to 4111 1111 1111 1111 please",
			appropriate: false,
			contains:    msgCreditCard,
		},
		{
			name:        "email is flagged",
			text:        "Write to frontdesk@grandhotel.com for upgrades",
			appropriate: false,
			contains:    msgEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Check(tt.text)
			assert.Equal(t, tt.appropriate, result.Appropriate, "violations: %v", result.Violations)
			if tt.appropriate {
				assert.Empty(t, result.Violations)
				return
			}
			require.NotEmpty(t, result.Violations)
			joined := ""
			for _, v := range result.Violations {
				joined += v + "\n"
			}
			assert.Contains(t, joined, tt.contains)
		})
	}
}

func TestModerator_ContextualWarnings(t *testing.T) {
	m := NewModerator(PolicyContextual)

	result := m.Check("The new minibar prices are a crime against hell-bent travellers and an attack on wallets.")
	assert.True(t, result.Appropriate)
	assert.NotEmpty(t, result.Warnings, "bare watch terms should surface as warnings")

	result = m.Check("The new mattress won't hurt you, but the invoice might.")
	assert.True(t, result.Appropriate)
	assert.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "hurt")

	result = m.Check("guests hate the new checkout kiosk")
	assert.Empty(t, result.Warnings, "allowed phrasing should not warn")
}

func TestModerator_Strict(t *testing.T) {
	m := NewModerator(PolicyStrict)

	result := m.Check("guests hate the new checkout kiosk")
	assert.False(t, result.Appropriate)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "Inappropriate content detected (hate speech): hate", result.Violations[0])

	result = m.Check("A perfectly pleasant stay with fresh towels and a friendly concierge.")
	assert.True(t, result.Appropriate)
	assert.Empty(t, result.Warnings)
}

func TestModerator_URLUnderBothPolicies(t *testing.T) {
	for _, p := range []Policy{PolicyContextual, PolicyStrict} {
		t.Run(string(p), func(t *testing.T) {
			result := NewModerator(p).Check("The lovely resort, see https://example.com for details")
			assert.False(t, result.Appropriate)
			assert.Contains(t, result.Violations, msgURL)
		})
	}
}

func TestModerator_ViolationCarriesOnlyFragment(t *testing.T) {
	m := NewModerator(PolicyContextual)
	text := "At the gala the chef announced that he would poison the guests with his soup of the day."

	result := m.Check(text)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "Inappropriate content detected (violence): poison the guests", result.Violations[0])
	assert.NotContains(t, result.Violations[0], "gala")
}

func TestModerator_StructuralDoesNotEchoValue(t *testing.T) {
	m := NewModerator(PolicyContextual)

	result := m.Check("card 1234-5678-9012-3456 and mail me at a.b@example.org")
	require.Len(t, result.Violations, 2)
	for _, v := range result.Violations {
		assert.NotContains(t, v, "1234")
		assert.NotContains(t, v, "example.org")
	}
}

func TestModerator_CaseInsensitive(t *testing.T) {
	m := NewModerator(PolicyContextual)

	result := m.Check("I WILL KILL THE GUESTS")
	assert.False(t, result.Appropriate)
	assert.Equal(t, "Inappropriate content detected (violence): KILL THE GUESTS", result.Violations[0])
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyContextual, p)

	p, err = ParsePolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParsePolicy("lenient")
	assert.Error(t, err)
}
