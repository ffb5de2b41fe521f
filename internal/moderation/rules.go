package moderation

// category is one tagged group of lexical rules. Entries are regular
// expression fragments matched case-insensitively on word boundaries.
type category struct {
	name string
	// fatal terms are violations under every policy.
	fatal []string
	// context patterns pair a term with a qualifying neighbour word, e.g.
	// "kill" followed by "the guests".
	context []string
	// watch terms are violations under the strict policy and warnings under
	// the contextual one.
	watch []string
	// allow patterns mask hospitality phrasing before watch terms are
	// evaluated. They never suppress fatal or context matches.
	allow []string
}

// people lists noun targets only. Pronouns are left to the watch list so idioms
// such as "won't hurt you" or "shot them a look" stay warnings.
const (
	people  = `(?:the\s+|all\s+|some\s+|every\s+|those\s+|these\s+|our\s+|their\s+)?(?:people|person|someone|somebody|users?|guests?|customers?|staff|employees?|children|kids)`
	targets = `(?:all\s+|the\s+)?(?:women|men|jews|muslims|christians|blacks|whites|asians|mexicans|gays|immigrants|foreigners|minorities)`
	selves  = `(?:myself|yourself|himself|herself|themselves|ourselves)`
)

var categories = []category{
	{
		name:  "profanity",
		fatal: []string{`fuck\w*`, `motherfuck\w*`, `shit\w*`, `bitch\w*`, `bastards?`, `cunts?`, `cocks?`, `dicks?`},
		watch: []string{`damn`, `hell`, `ass`, `crap`},
		allow: []string{`(?:from|to|like)\s+hell`},
	},
	{
		name:  "violence",
		fatal: []string{`rap(?:e|es|ed|ing)`, `massacre\w*`, `behead\w*`},
		context: []string{
			`(?:kill(?:s|ed|ing)?|murder(?:s|ed|ing)?|hurt(?:s|ing)?|harm(?:s|ed|ing)?|attack(?:s|ed|ing)?|assault(?:s|ed|ing)?|stab(?:s|bed|bing)?|shoot(?:s|ing)?|shot|poison(?:s|ed|ing)?|strangl(?:e|es|ed|ing))\s+` + people,
			`bomb(?:s|ed|ing)?\s+(?:the\s+)?(?:hotel|airport|building|resort|plane|lobby|restaurant|station)`,
		},
		watch: []string{`kill`, `murder`, `death`, `violence`, `harm`, `hurt`, `attack`, `assault`},
	},
	{
		name:  "illegal drugs",
		fatal: []string{`cocaine`, `heroin`, `methamphetamine`, `fentanyl`},
		context: []string{
			`(?:buy(?:s|ing)?|sell(?:s|ing)?|sold|smok(?:e|es|ed|ing)|snort(?:s|ed|ing)?|inject(?:s|ed|ing)?|deal(?:s|ing)?)\s+(?:some\s+)?(?:drugs|weed|meth|crack|cannabis|marijuana|pills)`,
		},
		watch: []string{`illegal`, `drugs`, `marijuana`, `meth`, `crack`, `cannabis`},
	},
	{
		name:  "hate speech",
		fatal: []string{`nazis?`, `terrorists?`, `white\s+supremac\w*`, `ethnic\s+cleansing`, `racial\s+slurs?`},
		context: []string{
			`(?:hate|hates|hated|hating|despise|despises|exterminat(?:e|es|ed|ing))\s+` + targets,
		},
		watch: []string{`hate`, `racism`, `sexism`, `discrimination`, `bomb`},
		allow: []string{
			`(?:guests?|customers?|travell?ers?|tourists?|visitors?|diners?|staff|managers?|housekeepers?|concierges?|everyone|people|we|they|i)\s+(?:absolutely\s+|really\s+|secretly\s+|all\s+)?(?:hate|hates|hated)\s+(?:the|their|our|this|that|these|those|when|how|it|waiting|being|having)`,
			`love[\s-]hate`,
		},
	},
	{
		name:  "sexual content",
		fatal: []string{`porn\w*`, `xxx`, `nudes?`, `orgasm\w*`, `masturbat\w*`, `explicit\s+sex\w*`},
		context: []string{
			`(?:have|has|having|had)\s+sex`,
		},
		watch: []string{`sexual`, `sex`, `explicit`},
	},
	{
		name:  "self-harm",
		fatal: []string{`suicid\w*`, `self-harm\w*`, `overdos\w*`},
		context: []string{
			`(?:cut(?:s|ting)?|hurt(?:s|ing)?|harm(?:s|ed|ing)?|kill(?:s|ed|ing)?)\s+` + selves,
		},
		watch: []string{`cutting`},
	},
	{
		name:  "fraud/security",
		fatal: []string{`malware`, `ransomware`},
		context: []string{
			`(?:hack(?:s|ed|ing)?|exploit(?:s|ed|ing)?|phish(?:es|ed|ing)?|scam(?:s|med|ming)?|defraud(?:s|ed|ing)?|steal(?:s|ing)?|stole)\s+(?:into\s+)?(?:the\s+|a\s+|their\s+|our\s+)?(?:accounts?|users?|guests?|customers?|systems?|servers?|database|banks?|websites?|passwords?|credit\s+cards?|card\s+numbers?)`,
		},
		watch: []string{`scam`, `fraud`, `phishing`, `hack`, `exploit`},
	},
}
