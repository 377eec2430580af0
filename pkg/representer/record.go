package representer

import (
	"fmt"
	"reflect"
)

// Record is a persisted model with a stable identifier.
type Record interface {
	ID() any
}

// ParamRecord is optionally implemented by records with a custom URL
// parameter representation.
type ParamRecord interface {
	ToParam() string
}

// RecordRepresenter wraps a representer around a record-backed model, adding
// identifier delegation and DOM id derivation.
type RecordRepresenter struct {
	*Representer
	record Record
}

// NewRecord builds a representer for a record-backed model.
func NewRecord(def *Definition, model Record, ctx any) (*RecordRepresenter, error) {
	base, err := New(def, model, ctx)
	if err != nil {
		return nil, err
	}
	return &RecordRepresenter{Representer: base, record: model}, nil
}

// ID delegates to the record.
func (r *RecordRepresenter) ID() any {
	return r.record.ID()
}

// ToParam returns the record's URL parameter: its own ToParam when
// implemented, otherwise the identifier formatted as a string.
func (r *RecordRepresenter) ToParam() string {
	return recordParam(r.record)
}

// DOMID derives the record's DOM element identifier.
func (r *RecordRepresenter) DOMID() string {
	return DOMID(r.record)
}

// DOMID derives a stable DOM element identifier from the record's type and
// identifier: "book_42" for a persisted Book, "new_book" for one without an
// id yet.
func DOMID(record Record) string {
	if record == nil {
		return ""
	}

	name := recordName(record)
	if isZeroID(record.ID()) {
		return "new_" + name
	}
	return name + "_" + recordParam(record)
}

func recordParam(record Record) string {
	if p, ok := record.(ParamRecord); ok {
		return p.ToParam()
	}
	id := record.ID()
	if id == nil {
		return ""
	}
	return fmt.Sprint(id)
}

func recordName(record Record) string {
	t := reflect.TypeOf(record)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return underscore(t.Name())
}

func isZeroID(id any) bool {
	if id == nil {
		return true
	}
	v := reflect.ValueOf(id)
	return v.IsZero()
}
