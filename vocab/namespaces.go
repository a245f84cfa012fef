package vocab

// Namespace base IRIs. Every prefix below is written to the Turtle header and
// the JSON-LD @context of every serialized graph.
const (
	RDF         = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS        = "http://www.w3.org/2000/01/rdf-schema#"
	XSD         = "http://www.w3.org/2001/XMLSchema#"
	Cat         = "http://example.org/cat#"
	Schema      = "https://schema.org/"
	Unit        = "http://qudt.org/vocab/unit/"
	QUDT        = "http://qudt.org/schema/qudt/"
	QUDTExt     = "http://purl.allotrope.org/ontology/qudt-ext/unit#"
	AlloRes     = "http://purl.allotrope.org/ontologies/result#"
	AlloRole    = "http://purl.allotrope.org/ontologies/role#"
	AlloProc    = "http://purl.allotrope.org/ontologies/process#"
	AlloProp    = "http://purl.allotrope.org/ontologies/property#"
	AlloCom     = "http://purl.allotrope.org/ontologies/common#"
	AlloHDF     = "http://purl.allotrope.org/ontologies/hdf5/1.8#"
	AlloHDFCube = "http://purl.allotrope.org/ontologies/datacube-hdf-map#"
	AlloQual    = "http://purl.allotrope.org/ontologies/quality#"
	AlloDC      = "http://purl.allotrope.org/ontologies/datacube#"
	QB          = "http://purl.org/linked-data/cube#"
	OBO         = "http://purl.obolibrary.org/obo/"
	Purl        = "http://purl.allotrope.org/ontologies/"

	// SH is the SHACL namespace. It is only used to read validation reports
	// and is not part of the output prefix table.
	SH = "http://www.w3.org/ns/shacl#"
)

// Prefix pairs a short label with its namespace IRI.
type Prefix struct {
	Label string
	IRI   string
}

var prefixTable = []Prefix{
	{"rdf", RDF},
	{"xsd", XSD},
	{"rdfs", RDFS},
	{"cat", Cat},
	{"schema", Schema},
	{"unit", Unit},
	{"allores", AlloRes},
	{"allorole", AlloRole},
	{"alloproc", AlloProc},
	{"alloprop", AlloProp},
	{"allocom", AlloCom},
	{"allohdf", AlloHDF},
	{"allohdfcube", AlloHDFCube},
	{"qb", QB},
	{"qudt", QUDT},
	{"qudtext", QUDTExt},
	{"alloqual", AlloQual},
	{"allodc", AlloDC},
	{"purl", Purl},
	{"obo", OBO},
}

// Table returns the prefix table in registration order.
func Table() []Prefix {
	out := make([]Prefix, len(prefixTable))
	copy(out, prefixTable)
	return out
}

// Prefixes returns the prefix table as a label to IRI map. The map is a
// fresh copy on every call.
func Prefixes() map[string]string {
	out := make(map[string]string, len(prefixTable))
	for _, p := range prefixTable {
		out[p.Label] = p.IRI
	}
	return out
}

// Expand resolves a prefixed name such as "cat:Batch" against the prefix
// table. It reports false when the prefix is unknown.
func Expand(qname string) (string, bool) {
	for i := 0; i < len(qname); i++ {
		if qname[i] != ':' {
			continue
		}
		label, local := qname[:i], qname[i+1:]
		for _, p := range prefixTable {
			if p.Label == label {
				return p.IRI + local, true
			}
		}
		return "", false
	}
	return "", false
}
