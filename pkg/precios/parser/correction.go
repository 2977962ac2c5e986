package parser

import "strings"

// Sector labels produced by the correction rules.
const (
	SectorAceites    = "ACEITES VEGETALES Y ACEITUNA DE MESA"
	SectorSemillas   = "SEMILLAS OLEAGINOSAS, PROTEICOS Y TORTAS"
	SectorHortalizas = "HORTALIZAS"
	SectorFrutas     = "FRUTAS"
	SectorAves       = "AVES, HUEVOS, CAZA"
	SectorBovino     = "BOVINO"
	SectorPorcino    = "PORCINO"
	SectorOvino      = "OVINO"
	SectorLacteos    = "LÁCTEOS"
	SectorCereales   = "CEREALES"
	SectorArroz      = "ARROZ"
	SectorVino       = "VINO"
	SectorAceite     = "ACEITE"
)

// Candidate is the raw (sector, product, especificación) triple under review.
type Candidate struct {
	Sector  string
	Product string
	Spec    string

	folded string
}

// NewCandidate prepares a candidate for rule evaluation.
func NewCandidate(sector, product, spec string) Candidate {
	return Candidate{Sector: sector, Product: product, Spec: spec, folded: Fold(product)}
}

// Has reports whether the folded product name contains any keyword.
func (c Candidate) Has(keywords ...string) bool {
	return containsAny(c.folded, keywords...)
}

// In reports whether the raw sector is one of sectors.
func (c Candidate) In(sectors ...string) bool {
	for _, s := range sectors {
		if c.Sector == s {
			return true
		}
	}
	return false
}

// Rule maps candidates satisfying Match to Sector.
type Rule struct {
	Name   string
	Match  func(Candidate) bool
	Sector string
}

// Keyword lists, already folded.
var (
	exactOilProducts = []string{
		"Aceite de girasol refinado convencional (€/100kg)",
		"Aceite de girasol refinado alto oleico (€/100kg)",
		"Aceite refinado de soja (€/100kg)",
	}
	oilKeywords       = []string{"aceite", "aceituna"}
	oilseedKeywords   = []string{"colza", "garbanzo", "lenteja", "habas secas", "guisantes secos", "pipa de girasol", "torta de girasol", "torta de soja", "alfalfa"}
	cabbageKeywords   = []string{"col-repollo", "col repollo"}
	eggKeywords       = []string{"huevo"}
	wineLeakKeywords  = []string{"colza", "girasol", "soja", "guisante", "lenteja", "haba", "garbanzo", "alfalfa", "torta", "semilla", "proteico"}
	fruitKeywords     = []string{"manzana", "pera", "platano", "naranja", "mandarina", "limon", "melocoton", "nectarina", "uva", "melon", "sandia", "cereza", "ciruela", "fresa", "aguacate", "clementina", "satsuma", "caqui", "granada", "nispero", "albaricoque", "higo", "breva"}
	vegetableKeywords = []string{"tomate", "patata", "cebolla", "ajo", "pimiento", "calabacin", "judia", "berenjena", "zanahoria", "lechuga", "escarola", "espinaca", "alcachofa", "coliflor", "brocoli", "col", "repollo", "pepino", "puerro", "champinon", "esparrago", "haba verde", "acelga"}
	leafyKeywords     = []string{"tomate", "lechuga", "escarola", "espinaca", "alcachofa", "coliflor", "brocoli", "col", "pepino", "pimiento"}
	poultryKeywords   = []string{"pollo", "gallina", "huevo", "aves", "conejo"}
	cattleKeywords    = []string{"bovino", "vacuno", "ternera", "animales 8-12 meses", "machos 12-24 meses"}
	pigKeywords       = []string{"cerdo", "porcino", "lechon"}
	sheepKeywords     = []string{"cordero", "ovino", "oveja"}
	dairyKeywords     = []string{"leche", "queso", "mantequilla", "nata", "yogur"}
	creamKeywords     = []string{"mantequilla", "nata"}
	cerealKeywords    = []string{"trigo", "cebada", "maiz", "avena", "centeno", "sorgo"}
	fallbackOilseeds  = []string{"garbanzo", "lenteja", "habas secas", "pipa de girasol", "torta de girasol", "torta de soja"}
)

// DefaultRules is the ordered correction table. The lamb keyword overrides
// everything, exact product overrides come next, then generic keyword categories, then repairs keyed on the raw
// sector, then the fallbacks for rows with no sector.
var DefaultRules = []Rule{
	{"lamb", func(c Candidate) bool { return c.Has("cordero") }, SectorOvino},
	{"sector-typo", func(c Candidate) bool { return c.Sector == "ACEIE" }, SectorAceite},
	{"exact-oil-product", func(c Candidate) bool { return isOneOf(strings.TrimSpace(c.Product), exactOilProducts) }, SectorAceites},

	{"oil", func(c Candidate) bool { return c.Has(oilKeywords...) }, SectorAceites},
	{"oilseed", func(c Candidate) bool { return c.Has(oilseedKeywords...) }, SectorSemillas},
	{"cabbage", func(c Candidate) bool { return c.Has(cabbageKeywords...) }, SectorHortalizas},
	{"red-wine-no-pdo", func(c Candidate) bool { return c.Has("vino tinto sin dop") }, SectorVino},
	{"egg", func(c Candidate) bool { return c.Has(eggKeywords...) }, SectorAves},

	{"wine-leak-oilseed", func(c Candidate) bool { return c.In(SectorVino) && c.Has(wineLeakKeywords...) }, SectorSemillas},
	{"leafy-vegetable", func(c Candidate) bool { return c.In(SectorFrutas) && c.Has(leafyKeywords...) }, SectorHortalizas},
	{"vegetable", func(c Candidate) bool { return !c.In(SectorFrutas, SectorHortalizas) && c.Has(vegetableKeywords...) }, SectorHortalizas},
	{"fruit", func(c Candidate) bool { return !c.In(SectorFrutas, SectorHortalizas) && c.Has(fruitKeywords...) }, SectorFrutas},
	{"poultry", func(c Candidate) bool { return !c.In(SectorAves) && c.Has(poultryKeywords...) }, SectorAves},
	{"cattle", func(c Candidate) bool { return !c.In(SectorBovino) && c.Has(cattleKeywords...) }, SectorBovino},
	{"pig", func(c Candidate) bool { return !c.In(SectorPorcino) && c.Has(pigKeywords...) }, SectorPorcino},
	{"sheep", func(c Candidate) bool { return !c.In(SectorOvino) && c.Has(sheepKeywords...) }, SectorOvino},
	{"dairy", func(c Candidate) bool { return !c.In(SectorLacteos) && c.Has(dairyKeywords...) }, SectorLacteos},
	{"butter-cream", func(c Candidate) bool { return c.Has(creamKeywords...) }, SectorLacteos},
	{"cereal", func(c Candidate) bool { return !c.In(SectorCereales) && c.Has(cerealKeywords...) }, SectorCereales},
	{"rice", func(c Candidate) bool { return !c.In(SectorArroz) && c.Has("arroz") }, SectorArroz},
	{"wine", func(c Candidate) bool { return !c.In(SectorVino) && isWineName(c.folded) }, SectorVino},

	{"unset-oilseed", func(c Candidate) bool { return c.unset() && c.Has(fallbackOilseeds...) }, SectorSemillas},
	{"unset-oil", func(c Candidate) bool { return c.unset() && c.Has("aceite") }, SectorAceites},
	{"unset-default", Candidate.unset, SectorSemillas},
}

// Corrector evaluates an ordered rule table; the first matching rule wins.
type Corrector struct {
	rules []Rule
}

// NewCorrector returns a corrector over rules, or DefaultRules when nil.
func NewCorrector(rules []Rule) *Corrector {
	if rules == nil {
		rules = DefaultRules
	}
	return &Corrector{rules: rules}
}

// Correct returns the authoritative sector and the name of the rule that
// produced it. When no rule fires the raw sector is returned with an empty name.
func (c *Corrector) Correct(sector, product, spec string) (string, string) {
	cand := NewCandidate(sector, product, spec)
	for _, r := range c.rules {
		if r.Match(cand) {
			return r.Sector, r.Name
		}
	}
	return sector, ""
}

// CorrectSector applies DefaultRules.
func CorrectSector(sector, product, spec string) string {
	s, _ := defaultCorrector.Correct(sector, product, spec)
	return s
}

var defaultCorrector = NewCorrector(nil)

func (c Candidate) unset() bool {
	return strings.TrimSpace(c.Sector) == ""
}

func isWineName(folded string) bool {
	return strings.HasPrefix(folded, "vino") ||
		strings.Contains(folded, "vino tinto") ||
		strings.Contains(folded, "vino blanco")
}

func isOneOf(s string, list []string) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}
