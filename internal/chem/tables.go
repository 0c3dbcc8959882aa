package chem

import "strings"

// Element is a named chemical element.
type Element struct {
	Name   string
	Symbol string
}

// Compound is a named compound and its formula.
type Compound struct {
	Name    string
	Formula string
}

// PeriodicInfo is the periodic-table position of an element.
type PeriodicInfo struct {
	Group  int
	Period int
	Block  string
}

// The tables below are built once and never modified.

// Elements recognized in text, in scan order.
var Elements = []Element{
	{"Hydrogen", "H"}, {"Helium", "He"}, {"Lithium", "Li"}, {"Beryllium", "Be"},
	{"Boron", "B"}, {"Carbon", "C"}, {"Nitrogen", "N"}, {"Oxygen", "O"},
	{"Fluorine", "F"}, {"Neon", "Ne"}, {"Sodium", "Na"}, {"Magnesium", "Mg"},
	{"Aluminum", "Al"}, {"Silicon", "Si"}, {"Phosphorus", "P"}, {"Sulfur", "S"},
	{"Chlorine", "Cl"}, {"Argon", "Ar"}, {"Potassium", "K"}, {"Calcium", "Ca"},
}

// Compounds recognized in text, including common pharmaceuticals.
var Compounds = []Compound{
	{"Water", "H2O"},
	{"Carbon Dioxide", "CO2"},
	{"Methane", "CH4"},
	{"Ammonia", "NH3"},
	{"Glucose", "C6H12O6"},
	{"Sodium Chloride", "NaCl"},
	{"Sulfuric Acid", "H2SO4"},
	{"Nitric Acid", "HNO3"},
	{"Hydrochloric Acid", "HCl"},
	{"Sodium Hydroxide", "NaOH"},
	{"Aspirin", "C9H8O4"},
	{"Paracetamol", "C8H9NO2"},
	{"Ibuprofen", "C13H18O2"},
	{"Caffeine", "C8H10N4O2"},
	{"Penicillin", "C16H18N2O4S"},
	{"Morphine", "C17H19NO3"},
}

// Valencies of common elements by symbol.
var Valencies = map[string]int{
	"H": 1, "Li": 1, "Na": 1, "K": 1,
	"O": 2, "S": 2, "Ca": 2, "Mg": 2,
	"N": 3, "P": 3, "Al": 3,
	"C": 4, "Si": 4,
	"Cl": -1, "F": -1, "Br": -1, "I": -1,
}

// Periodic holds group, period and block for a few common elements.
var Periodic = map[string]PeriodicInfo{
	"H":  {1, 1, "s"},
	"He": {18, 1, "p"},
	"Li": {1, 2, "s"},
	"C":  {14, 2, "p"},
	"N":  {15, 2, "p"},
	"O":  {16, 2, "p"},
	"Na": {1, 3, "s"},
	"Cl": {17, 3, "p"},
}

// Geometries maps a formula to its VSEPR molecular geometry.
var Geometries = map[string]string{
	"H2O":  "bent",
	"NH3":  "trigonal pyramidal",
	"CH4":  "tetrahedral",
	"CO2":  "linear",
	"BF3":  "trigonal planar",
	"SF6":  "octahedral",
	"PCl5": "trigonal bipyramidal",
}

// Hybridizations maps a formula to the hybridization of its central atom.
var Hybridizations = map[string]string{
	"H2O": "sp3", "NH3": "sp3", "CH4": "sp3",
	"CO2": "sp", "BF3": "sp2", "C2H4": "sp2",
}

// IUPACNames maps a formula to its IUPAC (or accepted common) name.
var IUPACNames = map[string]string{
	"CH4": "methane", "C2H6": "ethane", "C3H8": "propane", "C2H5OH": "ethanol",
	"CH3COOH": "acetic acid", "CH3CHO": "acetaldehyde", "CH3COCH3": "acetone",
	"CH3NH2": "methylamine", "C2H4": "ethene", "C3H6": "propene",
	"C4H10": "butane", "C5H12": "pentane", "C6H14": "hexane", "C7H16": "heptane",
	"C8H18": "octane", "C9H20": "nonane", "C10H22": "decane",
	"H2O": "water", "CO2": "carbon dioxide", "CO": "carbon monoxide",
	"O2": "dioxygen", "N2": "dinitrogen", "NH3": "ammonia",
	"H2O2": "hydrogen peroxide", "HCl": "hydrogen chloride",
	"NaCl": "sodium chloride", "KCl": "potassium chloride",
	"NaOH": "sodium hydroxide", "KOH": "potassium hydroxide",
	"H2SO4": "sulfuric acid", "HNO3": "nitric acid", "H3PO4": "phosphoric acid",
	"H2CO3": "carbonic acid", "NaHCO3": "sodium bicarbonate",
	"CaCO3": "calcium carbonate", "Na2CO3": "sodium carbonate",
	"MgSO4": "magnesium sulfate", "CaSO4": "calcium sulfate",
	"Fe2O3": "iron(III) oxide", "FeO": "iron(II) oxide",
	"Al2O3": "aluminum oxide", "SiO2": "silicon dioxide",
	"CH2Cl2": "dichloromethane", "CHCl3": "chloroform", "CCl4": "carbon tetrachloride",
	"C6H6": "benzene", "C6H5OH": "phenol", "C6H5NH2": "aniline",
	"C6H5CHO": "benzaldehyde", "C6H5COOH": "benzoic acid",
	"CH3OCH3": "dimethyl ether", "C2H5OCH3": "methoxyethane",
	"CH3CN": "acetonitrile", "C2H2": "ethyne", "C3H4": "propyne",
	"C2H5Cl": "chloroethane", "C3H7OH": "propanol", "C4H9OH": "butanol",
}

// SaltNames maps a formula to the name of the ionic compound.
var SaltNames = map[string]string{
	"NaCl":   "sodium chloride",
	"KBr":    "potassium bromide",
	"CaCO3":  "calcium carbonate",
	"MgSO4":  "magnesium sulfate",
	"NH4NO3": "ammonium nitrate",
}

// FunctionalGroups maps organic functional group names to their notation.
var FunctionalGroups = map[string]string{
	"Alcohol":         "-OH",
	"Aldehyde":        "-CHO",
	"Ketone":          "-CO-",
	"Carboxylic Acid": "-COOH",
	"Ester":           "-COO-",
	"Amine":           "-NH2",
	"Amide":           "-CONH2",
	"Ether":           "-O-",
}

// periodicSymbols is every symbol of the periodic table.
var periodicSymbols = func() map[string]bool {
	const all = `H He Li Be B C N O F Ne Na Mg Al Si P S Cl Ar K Ca Sc Ti V Cr Mn Fe Co Ni Cu Zn
Ga Ge As Se Br Kr Rb Sr Y Zr Nb Mo Tc Ru Rh Pd Ag Cd In Sn Sb Te I Xe Cs Ba La Ce Pr Nd Pm Sm
Eu Gd Tb Dy Ho Er Tm Yb Lu Hf Ta W Re Os Ir Pt Au Hg Tl Pb Bi Po At Rn Fr Ra Ac Th Pa U Np Pu
Am Cm Bk Cf Es Fm Md No Lr Rf Db Sg Bh Hs Mt Ds Rg Cn Nh Fl Mc Lv Ts Og`
	m := make(map[string]bool, 118)
	for _, s := range strings.Fields(all) {
		m[s] = true
	}
	return m
}()

var (
	elementBySymbol = func() map[string]string {
		m := make(map[string]string, len(Elements))
		for _, e := range Elements {
			m[e.Symbol] = e.Name
		}
		return m
	}()
	compoundByFormula = func() map[string]string {
		m := make(map[string]string, len(Compounds))
		for _, c := range Compounds {
			m[c.Formula] = c.Name
		}
		return m
	}()
)

// ElementName returns the element name for symbol, or the symbol itself.
func ElementName(symbol string) string {
	if name, ok := elementBySymbol[symbol]; ok {
		return name
	}
	return symbol
}

// CompoundName returns the known name of formula or a descriptive fallback.
func CompoundName(formula string) string {
	if name, ok := compoundByFormula[formula]; ok {
		return name
	}
	return "the compound with the formula " + formula
}
