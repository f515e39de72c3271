package refdata

// CodeEntry pairs a lower-case antimicrobial name with its short code.
type CodeEntry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// CodeTable is an ordered antimicrobial name to code table.
type CodeTable []CodeEntry

// Exact returns the code for an exact name match.
func (t CodeTable) Exact(name string) (string, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Code, true
		}
	}
	return "", false
}

// DefaultCodes returns the built-in table. Order matters for the substring
// fallback: a single agent listed before its combinations wins for any name
// that contains it.
func DefaultCodes() CodeTable {
	return CodeTable{
		{"benzylpenicillin", "PEN"},
		{"ampicillin", "AMP"},
		{"amoxicillin", "AMX"},
		{"amoxicillin-clavulanic acid", "AMC"},
		{"ampicillin-sulbactam", "SAM"},
		{"piperacillin", "PIP"},
		{"piperacillin-tazobactam", "TZP"},
		{"ticarcillin-clavulanic acid", "TCC"},
		{"temocillin", "TEM"},
		{"mecillinam", "MEC"},
		{"cefaclor", "CEC"},
		{"cefalexin", "LEX"},
		{"cefadroxil", "CFR"},
		{"cefazolin", "CZO"},
		{"cefuroxime", "CXM"},
		{"cefotaxime", "CTX"},
		{"ceftriaxone", "CRO"},
		{"ceftazidime", "CAZ"},
		{"ceftazidime-avibactam", "CZA"},
		{"cefepime", "FEP"},
		{"cefoxitin", "FOX"},
		{"ceftaroline", "CPT"},
		{"ceftobiprole", "BPR"},
		{"cefiderocol", "FDC"},
		{"ceftolozane-tazobactam", "C/T"},
		{"cefixime", "CFM"},
		{"cefpodoxime", "CPD"},
		{"ceftibuten", "CTB"},
		{"aztreonam", "ATM"},
		{"meropenem", "MEM"},
		{"imipenem", "IPM"},
		{"ertapenem", "ETP"},
		{"doripenem", "DOR"},
		{"meropenem-vaborbactam", "MVB"},
		{"imipenem-relebactam", "IMR"},
		{"gentamicin", "GEN"},
		{"tobramycin", "TOB"},
		{"amikacin", "AMK"},
		{"netilmicin", "NET"},
		{"ciprofloxacin", "CIP"},
		{"levofloxacin", "LVX"},
		{"moxifloxacin", "MXF"},
		{"ofloxacin", "OFX"},
		{"norfloxacin", "NOR"},
		{"nalidixic acid", "NAL"},
		{"erythromycin", "ERY"},
		{"azithromycin", "AZM"},
		{"clarithromycin", "CLR"},
		{"clindamycin", "CLI"},
		{"tetracycline", "TCY"},
		{"doxycycline", "DOX"},
		{"minocycline", "MNO"},
		{"tigecycline", "TGC"},
		{"eravacycline", "ERV"},
		{"chloramphenicol", "CHL"},
		{"fosfomycin", "FOS"},
		{"fusidic acid", "FUS"},
		{"linezolid", "LZD"},
		{"tedizolid", "TZD"},
		{"rifampicin", "RIF"},
		{"trimethoprim", "TMP"},
		{"trimethoprim-sulfamethoxazole", "SXT"},
		{"sulfamethoxazole", "SMX"},
		{"nitrofurantoin", "NIT"},
		{"metronidazole", "MTZ"},
		{"vancomycin", "VAN"},
		{"teicoplanin", "TEC"},
		{"daptomycin", "DAP"},
		{"colistin", "COL"},
		{"polymyxin b", "PLB"},
		{"mupirocin", "MUP"},
		{"quinupristin-dalfopristin", "QDA"},
	}
}
