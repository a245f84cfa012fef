// Package validation checks graphs against SHACL shapes through an external
// engine.
//
// Engine failures are returned as *EngineError and never turn into a
// conforming Report.
package validation
