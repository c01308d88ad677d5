package geo

// Static gazetteer of Ghanaian administrative geography. Lookup tables are ordered
// slices, not maps: place resolution takes the first entry whose town name appears
// in the free-text location, so iteration order is part of the scoring contract.

// region lists a named region with its representative towns.
type region struct {
	name  string
	towns []string
}

// regions covers the 17 regions used for proximity scoring.
var regions = []region{
	{"greater accra", []string{"accra", "tema", "ashaiman", "madina", "adenta", "dodowa", "prampram", "ningo", "ada"}},
	{"ashanti", []string{"kumasi", "obuasi", "konongo", "ejisu", "mampong", "bekwai", "offinso", "afigya-kwabre"}},
	{"western", []string{"takoradi", "sekondi", "tarkwa", "prestea", "bogoso", "axim", "elubo", "half assini"}},
	{"central", []string{"cape coast", "saltpond", "winneba", "agona swedru", "dunkwa", "assin fosu", "mankessim"}},
	{"eastern", []string{"koforidua", "nsawam", "suhum", "akropong", "aburi", "mamfe", "akim oda", "kibi"}},
	{"volta", []string{"ho", "keta", "akatsi", "hohoe", "kpeve", "anloga", "ave", "kadjebi"}},
	{"northern", []string{"tamale", "yendi", "savelugu", "bimbilla", "damongo", "salaga", "buipe", "saboba"}},
	{"upper east", []string{"bolgatanga", "navrongo", "bawku", "zebilla", "binduri", "garu", "tempane"}},
	{"upper west", []string{"wa", "tumu", "lawra", "jirapa", "nandom", "hamile", "funsi"}},
	{"bono", []string{"sunyani", "techiman", "wenchi", "bechem", "duayaw nkwanta", "nkrankwanta", "sampa"}},
	{"bono east", []string{"techiman", "kintampo", "nkoranza", "ahenkro", "prang", "yeji", "kwame danso"}},
	{"ahafo", []string{"goaso", "duayaw nkwanta", "kenyasi", "hwidiem", "kukuom", "bechem"}},
	{"western north", []string{"sefwi wiawso", "bibiani", "enchi", "juaboso", "akontombra", "bodi"}},
	{"savannah", []string{"damongo", "buipe", "salaga", "sawla", "fulfulso", "larabanga"}},
	{"north east", []string{"nalerigu", "gambaga", "walewale", "bunkpurugu", "nakpanduri", "chereponi"}},
	{"oti", []string{"dambai", "krachi", "nkwanta", "kadjebi", "worawora", "jasikan"}},
	{"ono", []string{"agona swedru", "mankessim", "asamankese", "akim oda", "kibi", "akropong"}},
}

// majorCity maps a principal city to its region.
type majorCity struct {
	city   string
	region string
}

// majorCities covers the principal cities checked after the region pass.
var majorCities = []majorCity{
	{"accra", "greater accra"},
	{"kumasi", "ashanti"},
	{"tamale", "northern"},
	{"takoradi", "western"},
	{"cape coast", "central"},
	{"koforidua", "eastern"},
	{"ho", "volta"},
	{"sunyani", "bono"},
	{"bolgatanga", "upper east"},
	{"wa", "upper west"},
	{"tema", "greater accra"},
	{"obuasi", "ashanti"},
	{"tarkwa", "western"},
	{"winneba", "central"},
	{"nsawam", "eastern"},
	{"keta", "volta"},
	{"yendi", "northern"},
	{"navrongo", "upper east"},
	{"tumu", "upper west"},
	{"techiman", "bono"},
}

// adjacentRegions lists geographically neighboring regions.
var adjacentRegions = map[string][]string{
	"greater accra": {"central", "eastern"},
	"ashanti":       {"bono", "eastern", "bono east"},
	"western":       {"central", "western north"},
	"central":       {"greater accra", "western", "eastern"},
	"eastern":       {"greater accra", "central", "ashanti", "volta"},
	"volta":         {"eastern", "oti"},
	"northern":      {"savannah", "north east", "upper east"},
	"upper east":    {"northern", "upper west", "north east"},
	"upper west":    {"upper east", "savannah"},
	"bono":          {"ashanti", "bono east", "ahafo"},
	"bono east":     {"ashanti", "bono", "oti"},
	"ahafo":         {"bono", "ashanti"},
	"western north": {"western", "bono"},
	"savannah":      {"northern", "upper west"},
	"north east":    {"northern", "upper east"},
	"oti":           {"volta", "bono east"},
	"ono":           {"central", "eastern"},
}
