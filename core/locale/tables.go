package locale

// supportedLanguages is the closed set of language codes the application ships
// translations for, in display order.
var supportedLanguages = []LanguageCode{
	"en", "tr", "de", "fr", "es", "it", "pt", "ru", "ja", "ko",
	"zh", "ar", "hi", "nl", "sv", "no", "da", "fi", "pl", "el",
}

var supportedSet = func() map[LanguageCode]struct{} {
	s := make(map[LanguageCode]struct{}, len(supportedLanguages))
	for _, l := range supportedLanguages {
		s[l] = struct{}{}
	}
	return s
}()

// rtlLanguages lists right-to-left scripts. Only "ar" is in the supported set
// today; the rest are kept so the table survives a set extension.
var rtlLanguages = map[LanguageCode]struct{}{
	"ar": {}, // Arabic
	"he": {}, // Hebrew
	"fa": {}, // Persian
	"ur": {}, // Urdu
}

// countryLanguage maps countries to the supported language most of their
// visitors expect. Countries without a row fall back to DefaultLanguage.
var countryLanguage = map[CountryCode]LanguageCode{
	// English
	"US": "en", "GB": "en", "CA": "en", "AU": "en", "NZ": "en", "IE": "en",
	"ZA": "en", "SG": "en", "PH": "en", "MY": "en", "HK": "en", "PK": "en",
	"NG": "en", "KE": "en", "GH": "en", "ZW": "en", "UG": "en", "TZ": "en",
	// Turkish
	"TR": "tr",
	// German
	"DE": "de", "AT": "de", "CH": "de", "LI": "de",
	// French
	"FR": "fr", "BE": "fr", "LU": "fr", "MC": "fr", "CD": "fr", "CI": "fr",
	"CM": "fr", "SN": "fr", "ML": "fr", "NE": "fr", "BF": "fr", "MG": "fr",
	"BJ": "fr", "TG": "fr", "GN": "fr", "RW": "fr", "BI": "fr", "HT": "fr",
	"GA": "fr", "CG": "fr",
	// Spanish
	"ES": "es", "MX": "es", "AR": "es", "CL": "es", "CO": "es", "PE": "es",
	"VE": "es", "UY": "es", "EC": "es", "BO": "es", "PY": "es", "GT": "es",
	"DO": "es", "HN": "es", "SV": "es", "NI": "es", "CR": "es", "PA": "es",
	"CU": "es", "PR": "es", "GQ": "es",
	// Italian
	"IT": "it", "SM": "it", "VA": "it",
	// Portuguese
	"PT": "pt", "BR": "pt", "AO": "pt", "MZ": "pt", "CV": "pt", "GW": "pt",
	"ST": "pt", "TL": "pt",
	// Dutch
	"NL": "nl", "SR": "nl",
	// Russian
	"RU": "ru", "BY": "ru", "KZ": "ru", "KG": "ru", "TJ": "ru", "UZ": "ru",
	"TM": "ru", "MD": "ru", "UA": "ru", "AM": "ru", "AZ": "ru", "GE": "ru",
	// Polish
	"PL": "pl",
	// Greek
	"GR": "el", "CY": "el",
	// Japanese
	"JP": "ja",
	// Korean
	"KR": "ko", "KP": "ko",
	// Chinese
	"CN": "zh", "TW": "zh", "MO": "zh",
	// Hindi
	"IN": "hi", "NP": "hi",
	// Arabic
	"AE": "ar", "SA": "ar", "EG": "ar", "DZ": "ar", "BH": "ar", "TD": "ar",
	"KM": "ar", "DJ": "ar", "IQ": "ar", "JO": "ar", "KW": "ar", "LB": "ar",
	"LY": "ar", "MR": "ar", "MA": "ar", "OM": "ar", "PS": "ar", "QA": "ar",
	"SD": "ar", "SO": "ar", "SY": "ar", "TN": "ar", "YE": "ar",
	// Swedish
	"SE": "sv", "AX": "sv",
	// Norwegian
	"NO": "no", "BV": "no", "SJ": "no",
	// Danish
	"DK": "da", "FO": "da", "GL": "da",
	// Finnish
	"FI": "fi",
	// Markets served in English for lack of a local translation
	"CZ": "en", "SK": "en", "HU": "en", "RO": "en", "HR": "en", "SI": "en",
	"BG": "en", "LT": "en", "LV": "en", "EE": "en", "IS": "en", "MT": "en",
	"TH": "en", "VN": "en", "ID": "en", "IL": "en",
}

// languageCountry maps each supported language to its canonical country,
// used to keep the informational country field plausible when language is
// picked directly.
var languageCountry = map[LanguageCode]CountryCode{
	"en": "US",
	"tr": "TR",
	"de": "DE",
	"fr": "FR",
	"es": "ES",
	"it": "IT",
	"pt": "PT",
	"ru": "RU",
	"ja": "JP",
	"ko": "KR",
	"zh": "CN",
	"ar": "SA",
	"hi": "IN",
	"nl": "NL",
	"sv": "SE",
	"no": "NO",
	"da": "DK",
	"fi": "FI",
	"pl": "PL",
	"el": "GR",
}

// Languages returns the supported language codes in display order.
// The returned slice is a copy and safe to modify.
func Languages() []LanguageCode {
	out := make([]LanguageCode, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsSupported reports whether the language code belongs to the supported set.
func IsSupported(code LanguageCode) bool {
	_, ok := supportedSet[code]
	return ok
}

// IsRTL reports whether the language is written right to left.
func IsRTL(code LanguageCode) bool {
	_, ok := rtlLanguages[code]
	return ok
}

// LanguageForCountry returns the supported language spoken in the given
// country. It is total: unmapped countries resolve to DefaultLanguage.
func LanguageForCountry(country CountryCode) LanguageCode {
	if lang, ok := countryLanguage[country]; ok {
		return lang
	}
	return DefaultLanguage
}

// CountryForLanguage returns the canonical country for a supported language.
// Unsupported codes resolve to DefaultCountry.
func CountryForLanguage(lang LanguageCode) CountryCode {
	if country, ok := languageCountry[lang]; ok {
		return country
	}
	return DefaultCountry
}

// PairForCountry builds a consistent pair from a country alone.
func PairForCountry(country CountryCode) Pair {
	return Pair{Country: country, Language: LanguageForCountry(country)}
}

// PairForLanguage builds a consistent pair from a language alone.
func PairForLanguage(lang LanguageCode) Pair {
	return Pair{Country: CountryForLanguage(lang), Language: lang}
}
