package vocab

// W3C and community vocabulary terms.
const (
	RDFType   = RDF + "type"
	RDFSLabel = RDFS + "label"

	XSDString   = XSD + "string"
	XSDDateTime = XSD + "dateTime"
	XSDDouble   = XSD + "double"
	XSDBoolean  = XSD + "boolean"

	SchemaName        = Schema + "name"
	SchemaDescription = Schema + "description"
	SchemaKeywords    = Schema + "keywords"

	QUDTUnit     = QUDT + "unit"
	QUDTValue    = QUDT + "value"
	QUDTQuantity = QUDT + "quantity"

	QBStructure = QB + "structure"

	SHConforms         = SH + "conforms"
	SHValidationReport = SH + "ValidationReport"
	SHResult           = SH + "result"
	SHResultSeverity   = SH + "resultSeverity"
	SHViolation        = SH + "Violation"
	SHWarning          = SH + "Warning"
	SHInfo             = SH + "Info"
)

// OBO terms.
const (
	CHEBI25367  = OBO + "CHEBI_25367"  // molecular entity
	IAO0000005  = OBO + "IAO_0000005"  // objective specification
	IAO0000009  = OBO + "IAO_0000009"  // datum label
	IAO0000017  = OBO + "IAO_0000017"  // model number
	IAO0000590  = OBO + "IAO_0000590"  // written name
	PATO0001019 = OBO + "PATO_0001019" // mass density
)
