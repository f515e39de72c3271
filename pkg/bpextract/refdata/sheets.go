// Package refdata holds the static reference tables used during extraction.
//
// Every table is an ordered slice rather than a map: the antimicrobial
// lookup falls back to "first substring match wins", so iteration order is
// part of the behavior.
package refdata

// SheetGroup maps a worksheet name to its canonical organism group.
type SheetGroup struct {
	Sheet string `yaml:"sheet"`
	Group string `yaml:"group"`
}

// SheetMapping is an ordered list of worksheets to process.
type SheetMapping []SheetGroup

// Lookup returns the organism group configured for sheet.
func (m SheetMapping) Lookup(sheet string) (string, bool) {
	for _, sg := range m {
		if sg.Sheet == sheet {
			return sg.Group, true
		}
	}
	return "", false
}

// DefaultSheets is the EUCAST v16.0 worksheet layout. Note the trailing
// space in "B.melitensis ", which matches the workbook's sheet name.
func DefaultSheets() SheetMapping {
	return SheetMapping{
		{"Enterobacterales", "Enterobacterales"},
		{"Pseudomonas", "Pseudomonas aeruginosa"},
		{"S.maltophilia", "Stenotrophomonas maltophilia"},
		{"Acinetobacter", "Acinetobacter spp."},
		{"Staphylococcus", "Staphylococcus spp."},
		{"Enterococcus", "Enterococcus spp."},
		{"Streptococcus A,B,C,G", "Streptococcus groups A,B,C,G"},
		{"S.pneumoniae", "Streptococcus pneumoniae"},
		{"Viridans group streptococci", "Viridans group streptococci"},
		{"H.influenzae", "Haemophilus influenzae"},
		{"M.catarrhalis", "Moraxella catarrhalis"},
		{"N.gonorrhoeae", "Neisseria gonorrhoeae"},
		{"N.meningitidis", "Neisseria meningitidis"},
		{"Anaerobic bacteria", "Anaerobic bacteria"},
		{"H.pylori", "Helicobacter pylori"},
		{"L.monocytogenes", "Listeria monocytogenes"},
		{"Pasteurella", "Pasteurella spp."},
		{"C.jejuni_C.coli", "Campylobacter jejuni/coli"},
		{"Corynebacterium", "Corynebacterium spp."},
		{"C.diphtheriae_C.ulcerans", "Corynebacterium diphtheriae/ulcerans"},
		{"A.sanguinicola_A.urinae", "Aerococcus sanguinicola/urinae"},
		{"K.kingae", "Kingella kingae"},
		{"Aeromonas", "Aeromonas spp."},
		{"A.xylosoxidans", "Achromobacter xylosoxidans"},
		{"Vibrio", "Vibrio spp."},
		{"Bacillus", "Bacillus spp."},
		{"B.anthracis", "Bacillus anthracis"},
		{"B.melitensis ", "Brucella melitensis"},
		{"B.pseudomallei", "Burkholderia pseudomallei"},
		{"B.cepacia", "Burkholderia cepacia"},
		{"L.pneumophila", "Legionella pneumophila"},
		{"M.tuberculosis", "Mycobacterium tuberculosis"},
	}
}
