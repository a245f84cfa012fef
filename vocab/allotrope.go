package vocab

// Allotrope result terms. The ontology names its terms by number; the
// comment on each constant names the record field it carries.
const (
	AFR0000413 = AlloRes + "AFR_0000413" // peak
	AFR0000432 = AlloRes + "AFR_0000432" // peak list
	AFR0000917 = AlloRes + "AFR_0000917" // data cube identifier
	AFR0000948 = AlloRes + "AFR_0000948" // peak height
	AFR0000949 = AlloRes + "AFR_0000949" // relative peak height
	AFR0001073 = AlloRes + "AFR_0001073" // peak area
	AFR0001089 = AlloRes + "AFR_0001089" // retention time
	AFR0001116 = AlloRes + "AFR_0001116" // analyst
	AFR0001118 = AlloRes + "AFR_0001118" // sample identifier
	AFR0001119 = AlloRes + "AFR_0001119" // equipment serial number
	AFR0001121 = AlloRes + "AFR_0001121" // measurement identifier
	AFR0001164 = AlloRes + "AFR_0001164" // peak identifier
	AFR0001165 = AlloRes + "AFR_0001165" // relative peak area
	AFR0001178 = AlloRes + "AFR_0001178" // peak start
	AFR0001179 = AlloRes + "AFR_0001179" // peak value at start
	AFR0001180 = AlloRes + "AFR_0001180" // peak end
	AFR0001181 = AlloRes + "AFR_0001181" // peak value at end
	AFR0001258 = AlloRes + "AFR_0001258" // product manufacturer
	AFR0001259 = AlloRes + "AFR_0001259" // firmware version
	AFR0001267 = AlloRes + "AFR_0001267" // autosampler injection volume setting
	AFR0001606 = AlloRes + "AFR_0001606" // method name
	AFR0001723 = AlloRes + "AFR_0001723" // equipment name
	AFR0001952 = AlloRes + "AFR_0001952" // molecular formula
	AFR0001976 = AlloRes + "AFR_0001976" // asset management identifier
	AFR0002018 = AlloRes + "AFR_0002018" // device identifier
	AFR0002036 = AlloRes + "AFR_0002036" // concentration
	AFR0002083 = AlloRes + "AFR_0002083" // sample document
	AFR0002240 = AlloRes + "AFR_0002240" // well position
	AFR0002292 = AlloRes + "AFR_0002292" // chemical name
	AFR0002294 = AlloRes + "AFR_0002294" // molecular mass
	AFR0002295 = AlloRes + "AFR_0002295" // smiles
	AFR0002296 = AlloRes + "AFR_0002296" // InChI
	AFR0002374 = AlloRes + "AFR_0002374" // measurement document
	AFR0002375 = AlloRes + "AFR_0002375" // measurement document class
	AFR0002423 = AlloRes + "AFR_0002423" // ending time
	AFR0002464 = AlloRes + "AFR_0002464" // vial identifier
	AFR0002524 = AlloRes + "AFR_0002524" // liquid chromatography aggregate document
	AFR0002525 = AlloRes + "AFR_0002525" // liquid chromatography document
	AFR0002526 = AlloRes + "AFR_0002526" // device system document
	AFR0002529 = AlloRes + "AFR_0002529" // injection document
	AFR0002534 = AlloRes + "AFR_0002534" // detection type
	AFR0002535 = AlloRes + "AFR_0002535" // injection identifier
	AFR0002536 = AlloRes + "AFR_0002536" // injection time
	AFR0002550 = AlloRes + "AFR_0002550" // chromatogram data cube
	AFR0002551 = AlloRes + "AFR_0002551" // three-dimensional ultraviolet spectrum data cube
	AFR0002567 = AlloRes + "AFR_0002567" // device document class
	AFR0002568 = AlloRes + "AFR_0002568" // device type
	AFR0002659 = AlloRes + "AFR_0002659" // processed data document
	AFR0002722 = AlloRes + "AFR_0002722" // device document
	AFR0002764 = AlloRes + "AFR_0002764" // campaign reference
	AFR0002878 = AlloRes + "AFR_0002878" // three-dimensional mass spectrum data cube
	AFX0000622 = AlloRes + "AFX_0000622" // start time
)

// Other Allotrope namespaces.
const (
	AFP0002677  = AlloProc + "AFP_0002677"  // pressure measurement
	AFX0000060  = AlloProp + "AFX_0000060"  // temperature
	AFQ0000111  = AlloQual + "AFQ_0000111"  // physical state, dispense state
	AFC0000090  = AlloCom + "AFC_0000090"   // objective condition
	AFRL0000157 = AlloRole + "AFRL_0000157" // measure role

	HDFHardLink         = AlloHDF + "HardLink"
	DCComponentDataType = AlloDC + "componentDataType"
	PurlIdentifier      = Purl + "identifier"
)
