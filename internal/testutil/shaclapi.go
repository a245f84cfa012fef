// Package testutil provides test doubles shared across packages.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// ConformingReport is a report whose data conforms.
const ConformingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

_:report a sh:ValidationReport ;
    sh:conforms "true"^^xsd:boolean .
`

// ViolatingReport is a report with one violation and one warning.
const ViolatingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

_:report a sh:ValidationReport ;
    sh:conforms "false"^^xsd:boolean ;
    sh:result _:r1 , _:r2 .

_:r1 a sh:ValidationResult ;
    sh:resultSeverity sh:Violation ;
    sh:resultMessage "Less than 1 values on cat:hasBatch" .

_:r2 a sh:ValidationResult ;
    sh:resultSeverity sh:Warning ;
    sh:resultMessage "Value is not of datatype xsd:dateTime" .
`

// EngineViolatingReport is ViolatingReport in the syntax shacl-api writes:
// bare booleans, one labelled result and one anonymous result.
const EngineViolatingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .

[] a sh:ValidationReport ;
    sh:conforms false ;
    sh:result _:b1 , [
        a sh:ValidationResult ;
        sh:resultSeverity sh:Warning ;
        sh:resultMessage "Value is not of datatype xsd:dateTime"
    ] .

_:b1 a sh:ValidationResult ;
    sh:resultSeverity sh:Violation ;
    sh:resultMessage "Less than 1 values on cat:hasBatch" .
`

// EngineConformingReport is ConformingReport with a bare boolean.
const EngineConformingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .

[] a sh:ValidationReport ;
    sh:conforms true .
`

// ValidateRequest is what the fake engine received on one /validate call.
type ValidateRequest struct {
	Accept    string
	Data      string
	DataType  string
	Shapes    string
	HasShapes bool
}

// FakeEngine is an in-process stand-in for a shacl-api server.
type FakeEngine struct {
	Server *httptest.Server

	mu       sync.Mutex
	status   int
	report   string
	requests []ValidateRequest
}

// NewFakeEngine starts a fake engine answering ConformingReport. The server
// is closed when the test ends.
func NewFakeEngine(t testing.TB) *FakeEngine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &FakeEngine{status: http.StatusOK, report: ConformingReport}
	r := gin.New()
	r.GET("/", f.handleRoot)
	r.POST("/validate", f.handleValidate)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the server base URL.
func (f *FakeEngine) URL() string { return f.Server.URL }

// Respond sets the status and body of later /validate responses.
func (f *FakeEngine) Respond(status int, report string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.report = report
}

// Requests returns the /validate calls received so far.
func (f *FakeEngine) Requests() []ValidateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ValidateRequest(nil), f.requests...)
}

func (f *FakeEngine) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "shacl-api")
}

func (f *FakeEngine) handleValidate(c *gin.Context) {
	req := ValidateRequest{Accept: c.GetHeader("Accept")}

	data, err := c.FormFile("data")
	if err != nil {
		c.String(http.StatusUnprocessableEntity, "missing data part")
		return
	}
	req.DataType = data.Header.Get("Content-Type")
	if req.Data, err = readFile(c, "data"); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if _, err := c.FormFile("shapes"); err == nil {
		req.HasShapes = true
		if req.Shapes, err = readFile(c, "shapes"); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	status, report := f.status, f.report
	f.mu.Unlock()

	c.Data(status, "text/turtle", []byte(report))
}

func readFile(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	return string(data), err
}
