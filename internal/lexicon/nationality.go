// SPDX-License-Identifier: Apache-2.0

package lexicon

import "strings"

// UnitedStatesVariants are scanned first when the desired nationality is
// "american": US option lists are the most common and the most irregular.
var UnitedStatesVariants = []string{
	"United States", "USA", "US", "United States of America", "America",
}

// NationalityQuickMap maps lowercased demonyms to the country-name and code
// variants an option list may carry. Covers the overwhelming majority of
// real forms; everything else falls through to the transform rules.
var NationalityQuickMap = map[string][]string{
	// Americas
	"american":     {"United States", "USA", "US", "United States of America", "America"},
	"canadian":     {"Canada", "Canadian", "CA"},
	"mexican":      {"Mexico", "Mexican", "MX"},
	"brazilian":    {"Brazil", "Brazilian", "BR", "Brasil"},
	"argentinian":  {"Argentina", "Argentinian", "Argentine", "AR"},

	// Europe
	"british":    {"United Kingdom", "UK", "British", "Great Britain", "GB", "England"},
	"french":     {"France", "French", "FR"},
	"german":     {"Germany", "German", "DE", "Deutschland"},
	"italian":    {"Italy", "Italian", "IT", "Italia"},
	"spanish":    {"Spain", "Spanish", "ES", "España"},
	"dutch":      {"Netherlands", "Dutch", "NL", "Holland", "The Netherlands"},
	"swiss":      {"Switzerland", "Swiss", "CH"},
	"swedish":    {"Sweden", "Swedish", "SE"},
	"norwegian":  {"Norway", "Norwegian", "NO"},
	"danish":     {"Denmark", "Danish", "DK"},
	"polish":     {"Poland", "Polish", "PL"},
	"irish":      {"Ireland", "Irish", "IE", "Republic of Ireland", "Eire"},
	"portuguese": {"Portugal", "Portuguese", "PT"},
	"belgian":    {"Belgium", "Belgian", "BE"},
	"austrian":   {"Austria", "Austrian", "AT"},
	"finnish":    {"Finland", "Finnish", "FI"},
	"greek":      {"Greece", "Greek", "GR"},
	"czech":      {"Czech Republic", "Czech", "CZ", "Czechia"},
	"hungarian":  {"Hungary", "Hungarian", "HU"},
	"romanian":   {"Romania", "Romanian", "RO"},
	"bulgarian":  {"Bulgaria", "Bulgarian", "BG"},
	"croatian":   {"Croatia", "Croatian", "HR"},
	"serbian":    {"Serbia", "Serbian", "RS"},
	"ukrainian":  {"Ukraine", "Ukrainian", "UA"},
	"russian":    {"Russia", "Russian", "RU", "Russian Federation"},

	// Asia-Pacific
	"chinese":       {"China", "Chinese", "CN", "People's Republic of China", "PRC"},
	"japanese":      {"Japan", "Japanese", "JP"},
	"korean":        {"South Korea", "Korean", "KR", "Korea", "Republic of Korea"},
	"indian":        {"India", "Indian", "IN"},
	"pakistani":     {"Pakistan", "Pakistani", "PK"},
	"bangladeshi":   {"Bangladesh", "Bangladeshi", "BD"},
	"indonesian":    {"Indonesia", "Indonesian", "ID"},
	"thai":          {"Thailand", "Thai", "TH"},
	"vietnamese":    {"Vietnam", "Vietnamese", "VN"},
	"filipino":      {"Philippines", "Filipino", "PH", "Philippine"},
	"malaysian":     {"Malaysia", "Malaysian", "MY"},
	"singaporean":   {"Singapore", "Singaporean", "SG"},
	"taiwanese":     {"Taiwan", "Taiwanese", "TW", "Chinese Taipei", "Republic of China"},
	"hong kong":     {"Hong Kong", "HK", "Hong Kong SAR", "Hongkonger"},
	"australian":    {"Australia", "Australian", "AU"},
	"new zealander": {"New Zealand", "New Zealander", "NZ", "Kiwi"},

	// Middle East & Africa
	"israeli":       {"Israel", "Israeli", "IL"},
	"saudi":         {"Saudi Arabia", "Saudi", "SA", "KSA", "Saudi Arabian"},
	"emirati":       {"United Arab Emirates", "UAE", "Emirati", "AE"},
	"turkish":       {"Turkey", "Turkish", "TR", "Türkiye"},
	"iranian":       {"Iran", "Iranian", "IR", "Persian"},
	"egyptian":      {"Egypt", "Egyptian", "EG"},
	"south african": {"South Africa", "South African", "ZA", "RSA"},
	"nigerian":      {"Nigeria", "Nigerian", "NG"},
	"kenyan":        {"Kenya", "Kenyan", "KE"},
	"moroccan":      {"Morocco", "Moroccan", "MA"},
	"ethiopian":     {"Ethiopia", "Ethiopian", "ET"},
}

// TransformRule converts a demonym to a country-name guess by stripping a
// suffix and consulting a stem exception table, falling back to appending a
// default ending. Rules are tried in declaration order; the first suffix
// that applies wins, so longer suffixes come first (-ian before -an).
type TransformRule struct {
	Suffix     string
	Exceptions map[string]string
	Append     string
}

var NationalityTransformRules = []TransformRule{
	{
		// Italian -> Italy, Canadian -> Canada
		Suffix: "ian",
		Exceptions: map[string]string{
			"brasil":   "Brazil",
			"argentin": "Argentina",
			"ital":     "Italy",
			"canad":    "Canada",
			"indian":   "India",
			"austral":  "Australia",
			"belg":     "Belgium",
			"hungar":   "Hungary",
			"roman":    "Romania",
			"bulgar":   "Bulgaria",
			"croat":    "Croatia",
			"serb":     "Serbia",
			"ukrain":   "Ukraine",
			"russ":     "Russia",
			"iran":     "Iran",
			"egypt":    "Egypt",
			"ethiop":   "Ethiopia",
			"niger":    "Nigeria",
			"kenya":    "Kenya",
		},
		Append: "ia",
	},
	{
		// Spanish -> Spain, Turkish -> Turkey
		Suffix: "ish",
		Exceptions: map[string]string{
			"span": "Spain",
			"brit": "United Kingdom",
			"ir":   "Ireland",
			"turk": "Turkey",
			"pol":  "Poland",
			"finn": "Finland",
			"dan":  "Denmark",
			"swed": "Sweden",
		},
		Append: "land",
	},
	{
		// Chinese -> China, Japanese -> Japan
		Suffix: "ese",
		Exceptions: map[string]string{
			"chin":    "China",
			"japan":   "Japan",
			"vietnam": "Vietnam",
			"portugu": "Portugal",
			"maltes":  "Malta",
			"sudan":   "Sudan",
			"taiwan":  "Taiwan",
			"nepal":   "Nepal",
			"burm":    "Myanmar",
			"leban":   "Lebanon",
			"senegal": "Senegal",
		},
	},
	{
		// American -> United States, Korean -> South Korea
		Suffix: "an",
		Exceptions: map[string]string{
			"americ": "United States",
			"mexic":  "Mexico",
			"kore":   "South Korea",
			"morocc": "Morocco",
			"germ":   "Germany",
			"austri": "Austria",
			"europe": "Europe",
			"afric":  "Africa",
			"asi":    "Asia",
		},
	},
	{
		// Saudi -> Saudi Arabia, Israeli -> Israel
		Suffix: "i",
		Exceptions: map[string]string{
			"saud":       "Saudi Arabia",
			"israel":     "Israel",
			"pakistan":   "Pakistan",
			"iraq":       "Iraq",
			"bangladesh": "Bangladesh",
			"emirat":     "United Arab Emirates",
			"kuwait":     "Kuwait",
			"bahrain":    "Bahrain",
			"oman":       "Oman",
			"yemen":      "Yemen",
			"somali":     "Somalia",
		},
	},
}

// Apply transforms a demonym into a country-name guess, or returns false
// when the demonym does not carry the rule's suffix.
func (r TransformRule) Apply(demonym string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(demonym))
	if !strings.HasSuffix(lower, r.Suffix) || len(lower) <= len(r.Suffix) {
		return "", false
	}
	stem := lower[:len(lower)-len(r.Suffix)]
	if country, ok := r.Exceptions[stem]; ok {
		return country, true
	}
	return stem + r.Append, true
}
