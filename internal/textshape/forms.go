package textshape

// glyphForms holds the presentation forms of a letter: isolated, final, initial, medial.
// Letters that only join to the previous letter have no initial or medial form.
type glyphForms [4]rune

const (
	formIsolated = iota
	formFinal
	formInitial
	formMedial
)

func (g glyphForms) joinsNext() bool {
	return g[formInitial] != 0
}

func (g glyphForms) joinsPrev() bool {
	return g[formFinal] != 0
}

const tatweel = 'ـ'

var letterForms = map[rune]glyphForms{
	'ء':     {0xFE80, 0, 0, 0},                // hamza
	'آ':     {0xFE81, 0xFE82, 0, 0},           // alef with madda
	'أ':     {0xFE83, 0xFE84, 0, 0},           // alef with hamza above
	'ؤ':     {0xFE85, 0xFE86, 0, 0},           // waw with hamza
	'إ':     {0xFE87, 0xFE88, 0, 0},           // alef with hamza below
	'ئ':     {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}, // yeh with hamza
	'ا':     {0xFE8D, 0xFE8E, 0, 0},           // alef
	'ب':     {0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // beh
	'ة':     {0xFE93, 0xFE94, 0, 0},           // teh marbuta
	'ت':     {0xFE95, 0xFE96, 0xFE97, 0xFE98}, // teh
	'ث':     {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}, // theh
	'ج':     {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // jeem
	'ح':     {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}, // hah
	'خ':     {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}, // khah
	'د':     {0xFEA9, 0xFEAA, 0, 0},           // dal
	'ذ':     {0xFEAB, 0xFEAC, 0, 0},           // thal
	'ر':     {0xFEAD, 0xFEAE, 0, 0},           // reh
	'ز':     {0xFEAF, 0xFEB0, 0, 0},           // zain
	'س':     {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // seen
	'ش':     {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}, // sheen
	'ص':     {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}, // sad
	'ض':     {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}, // dad
	'ط':     {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}, // tah
	'ظ':     {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}, // zah
	'ع':     {0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // ain
	'غ':     {0xFECD, 0xFECE, 0xFECF, 0xFED0}, // ghain
	'ف':     {0xFED1, 0xFED2, 0xFED3, 0xFED4}, // feh
	'ق':     {0xFED5, 0xFED6, 0xFED7, 0xFED8}, // qaf
	'ك':     {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}, // kaf
	'ل':     {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, // lam
	'م':     {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // meem
	'ن':     {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // noon
	'ه':     {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // heh
	'و':     {0xFEED, 0xFEEE, 0, 0},           // waw
	'ى':     {0xFEEF, 0xFEF0, 0, 0},           // alef maksura
	'ي':     {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}, // yeh
	tatweel: {tatweel, tatweel, tatweel, tatweel},
}

const lam = 'ل'

// lamAlef maps the alef following a lam to the isolated and final ligature.
var lamAlef = map[rune][2]rune{
	'آ': {0xFEF5, 0xFEF6},
	'أ': {0xFEF7, 0xFEF8},
	'إ': {0xFEF9, 0xFEFA},
	'ا': {0xFEFB, 0xFEFC},
}
