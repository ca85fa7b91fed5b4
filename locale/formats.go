package locale

var (
	three      = []int{3}
	threeTwo   = []int{3, 2}
	nbsp       = "\u00a0"
	narrowNbsp = "\u202f"
)

// builtinFormats lists the number formats known without configuration.
// Locales that are not listed fall back to the closest listed one.
var builtinFormats = []struct {
	tag    string
	format NumberFormat
}{
	{"en-US", NumberFormat{",", ".", three, "-", 0}},
	{"en-GB", NumberFormat{",", ".", three, "-", 0}},
	{"en-CA", NumberFormat{",", ".", three, "-", 0}},
	{"en-AU", NumberFormat{",", ".", three, "-", 0}},
	{"en-IN", NumberFormat{",", ".", threeTwo, "-", 0}},
	{"de-DE", NumberFormat{".", ",", three, "-", 3}},
	{"de-CH", NumberFormat{"’", ".", three, "-", 2}},
	{"fr-FR", NumberFormat{narrowNbsp, ",", three, "-", 3}},
	{"fr-CA", NumberFormat{nbsp, ",", three, "-", 3}},
	{"es-ES", NumberFormat{".", ",", three, "-", 3}},
	{"es-MX", NumberFormat{",", ".", three, "-", 0}},
	{"it-IT", NumberFormat{".", ",", three, "-", 3}},
	{"nl-NL", NumberFormat{".", ",", three, "-", 2}},
	{"pt-BR", NumberFormat{".", ",", three, "-", 2}},
	{"pl-PL", NumberFormat{nbsp, ",", three, "-", 3}},
	{"ru-RU", NumberFormat{nbsp, ",", three, "-", 3}},
	{"sv-SE", NumberFormat{nbsp, ",", three, "-", 3}},
	{"tr-TR", NumberFormat{".", ",", three, "-", 0}},
	{"ja-JP", NumberFormat{",", ".", three, "-", 0}},
	{"ko-KR", NumberFormat{",", ".", three, "-", 0}},
	{"zh-CN", NumberFormat{",", ".", three, "-", 0}},
}
