package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixesIsACopy(t *testing.T) {
	p := Prefixes()
	p["cat"] = "http://changed.example/"
	assert.Equal(t, Cat, Prefixes()["cat"])
}

func TestPrefixTableOrderAndUniqueness(t *testing.T) {
	table := Table()
	require.NotEmpty(t, table)
	assert.Equal(t, "rdf", table[0].Label)
	assert.Equal(t, "obo", table[len(table)-1].Label)

	labels := map[string]bool{}
	iris := map[string]bool{}
	for _, p := range table {
		assert.False(t, labels[p.Label], "duplicate label %s", p.Label)
		assert.False(t, iris[p.IRI], "duplicate namespace %s", p.IRI)
		labels[p.Label] = true
		iris[p.IRI] = true
		last := p.IRI[len(p.IRI)-1]
		assert.Contains(t, "/#", string(last), "namespace %s must end in / or #", p.IRI)
	}
	assert.Len(t, Prefixes(), len(table))
	assert.NotContains(t, Prefixes(), "sh")
}

func TestExpand(t *testing.T) {
	iri, ok := Expand("cat:Batch")
	require.True(t, ok)
	assert.Equal(t, CatBatch, iri)

	iri, ok = Expand("allores:AFX_0000622")
	require.True(t, ok)
	assert.Equal(t, AFX0000622, iri)

	_, ok = Expand("nope:Batch")
	assert.False(t, ok)
	_, ok = Expand("Batch")
	assert.False(t, ok)
}

func TestTermsUseTheirNamespace(t *testing.T) {
	assert.True(t, strings.HasPrefix(CatFiltrateAction, Cat))
	assert.Equal(t, "http://purl.allotrope.org/ontologies/result#AFR_0001723", AFR0001723)
	assert.Equal(t, "http://purl.allotrope.org/ontologies/identifier", PurlIdentifier)
	assert.Equal(t, "https://schema.org/name", SchemaName)
	assert.Equal(t, "http://www.w3.org/ns/shacl#conforms", SHConforms)
}
