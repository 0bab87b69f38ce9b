// SPDX-License-Identifier: Apache-2.0

package lexicon

import "regexp"

// Challenge matches verification-challenge fields that must never be filled
// from a profile: security codes, captchas, one-time passwords and the like.
var Challenge = regexp.MustCompile(`\b(captcha|security code|verification code|one.?time (?:password|code|pin)|otp|2fa|access code|prove (?:you(?:'?re| are)? )?(?:not a robot|human))\b`)

// VerifyContext matches softer confirmation vocabulary. It does not exclude
// a field outright, but numeric and financial attributes are suppressed
// under it ("confirm your account number" is not asking for ours).
var VerifyContext = regexp.MustCompile(`\b(verify|verification|confirm|confirmation|re.?enter|retype)\b`)

// EducationContext matches institution vocabulary used to disambiguate
// "city" (the campus city, not the home city) from "university".
var EducationContext = regexp.MustCompile(`\b(college|university|school|institution|education)\b`)

// Compound-name vocabularies. Each detects a request for a specific name
// variant; any of them also suppresses the generic full-name attribute.
var (
	PreferredName = regexp.MustCompile(`\b(preferred\s?name|display\s?name)\b`)
	MiddleName    = regexp.MustCompile(`\b(middle\s?name|middle\s?initial|mi)\b`)
	MaidenName    = regexp.MustCompile(`\b(maiden\s?name)\b`)
	Nickname      = regexp.MustCompile(`\b(nick\s?name)\b`)

	CompoundName = regexp.MustCompile(`\b(middle|preferred|maiden|nickname|nick name)\b`)
)

// Birth-date component vocabulary used to refine a birthday match into its
// day, month and year subcomponents.
var (
	DayVocab   = regexp.MustCompile(`\b(day|dd)\b`)
	MonthVocab = regexp.MustCompile(`\b(month|mm)\b`)
	YearVocab  = regexp.MustCompile(`\b(year|yyyy|yy)\b`)
	BirthVocab = regexp.MustCompile(`\b(birth|dob|born)\b`)
	GradVocab  = regexp.MustCompile(`\b(grad|graduation|complete|completion)\b`)
	DateVocab  = regexp.MustCompile(`\b(day|month|year|dd|mm|yyyy)\b`)
)

// numericKeyVocab marks profile keys whose values are numeric or financial;
// these are zeroed under verification context.
var numericKeyVocab = regexp.MustCompile(`(gpa|salary|amount|account|year|experience|score|age|number)`)

// IsNumericKey reports whether a lowercased profile key names a numeric or
// financial attribute.
func IsNumericKey(key string) bool {
	return numericKeyVocab.MatchString(key)
}
