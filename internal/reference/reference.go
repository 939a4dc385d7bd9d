package reference

// Consonant is one row of the pronunciation reference table.
type Consonant struct {
	Letter  string `json:"letter"`
	Name    string `json:"name"`
	Sound   string `json:"sound"`
	Example string `json:"example"`
}

// Vowel is one row of the vowel reference table.
type Vowel struct {
	Mark    string `json:"mark"`
	Name    string `json:"name"`
	Sound   string `json:"sound"`
	Example string `json:"example"`
	Hint    string `json:"hint"`
}

// ModeColors assigns each drill mode its dashboard color key.
var ModeColors = map[string]string{
	"consonants": "rose",
	"letters":    "indigo",
	"syllables":  "violet",
	"phrases":    "sky",
	"prayer":     "amber",
	"siddur":     "teal",
}

// Consonants is the static consonant pronunciation table.
var Consonants = []Consonant{
	{"א", "Alef", "Silent / glottal stop", "אָב (av)"},
	{"בּ", "Bet", "b (as in boy)", "בַּיִת (bayit)"},
	{"ב", "Vet", "v (as in vine)", "כָּתַב (katav)"},
	{"גּ", "Gimel", "g (as in go)", "גַּן (gan)"},
	{"דּ", "Dalet", "d (as in dog)", "דֶּלֶת (delet)"},
	{"ה", "He", "h (as in hat)", "הַר (har)"},
	{"ו", "Vav", "v (as in vine)", "וָרֹד (varod)"},
	{"ז", "Zayin", "z (as in zoo)", "זְמַן (zman)"},
	{"ח", "Chet", "ch (guttural)", "חַם (cham)"},
	{"ט", "Tet", "t (as in top)", "טוֹב (tov)"},
	{"י", "Yod", "y (as in yes)", "יַד (yad)"},
	{"כּ", "Kaf", "k (as in kite)", "כֶּלֶב (kelev)"},
	{"כ/ך", "Chaf", "ch (guttural)", "לֶחֶם (lechem)"},
	{"ל", "Lamed", "l (as in lamp)", "לֵב (lev)"},
	{"מ/ם", "Mem", "m (as in mom)", "מַיִם (mayim)"},
	{"נ/ן", "Nun", "n (as in no)", "נֵר (ner)"},
	{"ס", "Samech", "s (as in sun)", "סֵפֶר (sefer)"},
	{"ע", "Ayin", "Silent / glottal", "עַיִן (ayin)"},
	{"פּ", "Pe", "p (as in pen)", "פֶּה (pe)"},
	{"פ/ף", "Fe", "f (as in fan)", "כָּף (kaf)"},
	{"צ/ץ", "Tsadi", "ts (as in cats)", "צָהֳרַיִם (tsohorayim)"},
	{"ק", "Qof", "k (as in kite)", "קוֹל (kol)"},
	{"ר", "Resh", "r (uvular, like French r)", "רֹאשׁ (rosh)"},
	{"שׁ", "Shin", "sh (as in ship)", "שָׁלוֹם (shalom)"},
	{"שׂ", "Sin", "s (as in sun)", "שָׂדֶה (sade)"},
	{"תּ/ת", "Tav", "t (as in top)", "תּוֹרָה (Torah)"},
}

// Vowels is the static vowel (niqqud) reference table.
var Vowels = []Vowel{
	{"בָ", "Kamatz", "ah", "שָׁלוֹם", "fāther"},
	{"בַ", "Patach", "ah", "יַד", "fāther"},
	{"בֶ", "Segol", "eh", "מֶלֶךְ", "bĕd"},
	{"בֵ", "Tsere", "ay", "בֵּית", "sāy"},
	{"בִ", "Hiriq", "ee", "מִי", "sēe"},
	{"בֹ", "Holam", "oh", "תּוֹרָה", "gō"},
	{"בוּ", "Shuruq", "oo", "שׁוּב", "mōn"},
	{"בֻ", "Qibbuts", "oo", "כֻּלָּם", "mōn"},
	{"בְ", "Shva", "e / silent", "בְּרֵאשִׁית", "abōut"},
	{"בֱ", "Hataf Segol", "eh", "אֱלֹהִים", "bĕd"},
	{"בֲ", "Hataf Patach", "ah", "חֲנֻכָּה", "fāther"},
	{"בֳ", "Hataf Kamatz", "oh", "עׇבְדָה", "gō"},
}
