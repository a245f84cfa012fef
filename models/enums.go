package models

import (
	"encoding/json"
	"fmt"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Unit is a unit of measure. In JSON it is written as its symbol ("°C",
// "mg", "mAU.s"); in RDF it is a QUDT unit IRI.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitBar
	UnitDegC
	UnitMilliGM
	UnitGMPerMilliL
	UnitGMPerMol
	UnitMolPerL
	UnitRevPerMin
	UnitMilliM3
	UnitNanoM
	UnitSecond
	UnitMinute
	UnitPercent
	UnitUnitless
	UnitCountsPerSecond
	UnitMilliAbsorbance
	UnitMilliAbsorbanceSecond
)

type unitInfo struct {
	symbol  string
	name    string
	ns      string
	aliases []string
}

var unitTable = [...]unitInfo{
	UnitBar:                   {symbol: "bar", name: "Bar", ns: vocab.Unit},
	UnitDegC:                  {symbol: "°C", name: "DEG-C", ns: vocab.Unit},
	UnitMilliGM:               {symbol: "mg", name: "MilliGM", ns: vocab.Unit},
	UnitGMPerMilliL:           {symbol: "g/mL", name: "GM-PER-MilliL", ns: vocab.Unit},
	UnitGMPerMol:              {symbol: "g/mol", name: "GM-PER-MOL", ns: vocab.Unit},
	UnitMolPerL:               {symbol: "mol/L", name: "MOL-PER-L", ns: vocab.Unit},
	UnitRevPerMin:             {symbol: "rpm", name: "REV-PER-MIN", ns: vocab.Unit},
	UnitMilliM3:               {symbol: "mm^3", name: "MilliM3", ns: vocab.Unit},
	UnitNanoM:                 {symbol: "nM", name: "NanoM", ns: vocab.Unit},
	UnitSecond:                {symbol: "s", name: "SEC", ns: vocab.Unit},
	UnitMinute:                {symbol: "min", name: "MIN", ns: vocab.Unit},
	UnitPercent:               {symbol: "%", name: "PERCENT", ns: vocab.Unit},
	UnitUnitless:              {symbol: "UNITLESS", name: "UNITLESS", ns: vocab.Unit, aliases: []string{"unitless", "(unitless)"}},
	UnitCountsPerSecond:       {symbol: "Counts.s", name: "NUM-PER-SEC", ns: vocab.Unit},
	UnitMilliAbsorbance:       {symbol: "mAU", name: "MilliAbsorbanceUnit", ns: vocab.QUDTExt},
	UnitMilliAbsorbanceSecond: {symbol: "mAU.s", name: "MilliAbsorbanceUnitTimesSecond", ns: vocab.QUDTExt},
}

var (
	unitBySymbol = map[string]Unit{}
	unitSymbols  []string
)

func init() {
	for u := UnitBar; int(u) < len(unitTable); u++ {
		info := unitTable[u]
		unitBySymbol[info.symbol] = u
		unitSymbols = append(unitSymbols, info.symbol)
		for _, alias := range info.aliases {
			unitBySymbol[alias] = u
		}
	}
}

// ParseUnit maps a JSON unit symbol to a Unit. Unknown symbols give an
// *EnumError carrying the closest known symbol.
func ParseUnit(symbol string) (Unit, error) {
	if u, ok := unitBySymbol[symbol]; ok {
		return u, nil
	}
	return UnitUnknown, &EnumError{Kind: "unit", Value: symbol, Suggestion: suggest(symbol, unitSymbols)}
}

func (u Unit) valid() bool {
	return u > UnitUnknown && int(u) < len(unitTable)
}

// IRI returns the unit's QUDT IRI, or "" for UnitUnknown.
func (u Unit) IRI() string {
	if !u.valid() {
		return ""
	}
	return unitTable[u].ns + unitTable[u].name
}

// String returns the JSON symbol.
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitTable[u].symbol
}

func (u *Unit) UnmarshalJSON(data []byte) error {
	var symbol string
	if err := json.Unmarshal(data, &symbol); err != nil {
		return fmt.Errorf("models: unit must be a string: %w", err)
	}
	parsed, err := ParseUnit(symbol)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u Unit) MarshalJSON() ([]byte, error) {
	if !u.valid() {
		return nil, missing("unit")
	}
	return json.Marshal(unitTable[u].symbol)
}

// InsertInto panics: a unit is a leaf term.
func (u Unit) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.Ref(u.IRI()).InsertInto(b, subject)
}

// AttachInto links the unit IRI. A zero Unit (absent from the JSON) is an
// ErrMissingValue.
func (u Unit) AttachInto(b *graph.Builder, link graph.Link) error {
	if !u.valid() {
		return missing("unit")
	}
	return graph.Ref(u.IRI()).AttachInto(b, link)
}

// ActionName is the "actionName" of a lab-automation action. It selects the
// action's ontology class.
type ActionName string

const (
	ActionAdd            ActionName = "AddAction"
	ActionSetTemperature ActionName = "setTemperatureAction"
	ActionFiltrate       ActionName = "filtrateAction"
	ActionShake          ActionName = "shakeAction"
	ActionSetVacuum      ActionName = "setVacuumAction"
	ActionSetPressure    ActionName = "setPressureAction"
)

var actionClasses = map[ActionName]string{
	ActionAdd:            vocab.CatAddAction,
	ActionSetTemperature: vocab.CatSetTemperatureAction,
	ActionFiltrate:       vocab.CatFiltrateAction,
	ActionShake:          vocab.CatShakeAction,
	ActionSetVacuum:      vocab.CatSetVacuumAction,
	ActionSetPressure:    vocab.CatSetPressureAction,
}

var actionNames = []string{
	string(ActionAdd),
	string(ActionSetTemperature),
	string(ActionFiltrate),
	string(ActionShake),
	string(ActionSetVacuum),
	string(ActionSetPressure),
}

// ParseActionName validates name against the known actions.
func ParseActionName(name string) (ActionName, error) {
	if _, ok := actionClasses[ActionName(name)]; ok {
		return ActionName(name), nil
	}
	return "", &EnumError{Kind: "action name", Value: name, Suggestion: suggest(name, actionNames)}
}

// IRI returns the action class, or "" for an unknown name.
func (a ActionName) IRI() string { return actionClasses[a] }

func (a *ActionName) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("models: action name must be a string: %w", err)
	}
	parsed, err := ParseActionName(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// InsertInto panics: an action name is a leaf term.
func (a ActionName) InsertInto(b *graph.Builder, subject rdf.Term) error {
	return graph.Ref(a.IRI()).InsertInto(b, subject)
}

func (a ActionName) AttachInto(b *graph.Builder, link graph.Link) error {
	if a.IRI() == "" {
		return missing("actionName")
	}
	return graph.Ref(a.IRI()).AttachInto(b, link)
}
