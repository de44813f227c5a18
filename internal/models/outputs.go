package models

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// OutputRevision is a time-bounded planned or actual quantity of an output.
type OutputRevision struct {
	ID              int
	Effective       DateRange
	TypeMeasure     OutputTypeMeasure
	Value           decimal.Decimal
	ObservationType ObservationType
}

func (r OutputRevision) effective() DateRange { return r.Effective }

func (r OutputRevision) withEffective(e DateRange) OutputRevision {
	r.Effective = e
	return r
}

type outputSlot struct {
	typeMeasure     OutputTypeMeasure
	observationType ObservationType
}

func outputSlotOf(r OutputRevision) outputSlot {
	return outputSlot{typeMeasure: r.TypeMeasure, observationType: r.ObservationType}
}

// OutputValue is the current planned value of one output type and measure.
type OutputValue struct {
	TypeMeasure OutputTypeMeasure
	Planned     *decimal.Decimal
}

// SchemeOutputs holds the output revisions of a scheme.
type SchemeOutputs struct {
	outputRevisions []OutputRevision
}

// NewSchemeOutputs creates empty outputs.
func NewSchemeOutputs() *SchemeOutputs {
	return &SchemeOutputs{}
}

// OutputRevisions returns a copy of the revisions in insertion order.
func (o *SchemeOutputs) OutputRevisions() []OutputRevision {
	return append([]OutputRevision(nil), o.outputRevisions...)
}

// UpdateOutput appends a revision without closing the current one.
func (o *SchemeOutputs) UpdateOutput(revision OutputRevision) {
	o.outputRevisions = append(o.outputRevisions, revision)
}

// UpdateOutputs appends revisions in the order given.
func (o *SchemeOutputs) UpdateOutputs(revisions ...OutputRevision) {
	o.outputRevisions = append(o.outputRevisions, revisions...)
}

// SupersedeOutput closes the current revision for the same type, measure and observation type and appends the new one.
func (o *SchemeOutputs) SupersedeOutput(revision OutputRevision) error {
	updated, err := supersede(o.outputRevisions, revision, outputSlotOf)
	if err != nil {
		return err
	}
	o.outputRevisions = updated
	return nil
}

// CurrentOutputRevisions returns the open revisions in insertion order.
func (o *SchemeOutputs) CurrentOutputRevisions() []OutputRevision {
	return currentOf(o.outputRevisions)
}

// CurrentOutputs groups the current revisions by type and measure, ordered by type then measure name.
// The planned value of a group is the first planned revision seen for it.
func (o *SchemeOutputs) CurrentOutputs() []OutputValue {
	current := currentOf(o.outputRevisions)
	slices.SortStableFunc(current, func(a, b OutputRevision) int {
		if c := strings.Compare(string(a.TypeMeasure.Type()), string(b.TypeMeasure.Type())); c != 0 {
			return c
		}
		return strings.Compare(string(a.TypeMeasure.Measure()), string(b.TypeMeasure.Measure()))
	})

	var values []OutputValue
	for _, r := range current {
		if len(values) == 0 || values[len(values)-1].TypeMeasure != r.TypeMeasure {
			values = append(values, OutputValue{TypeMeasure: r.TypeMeasure})
		}
		group := &values[len(values)-1]
		if group.Planned == nil && r.ObservationType == Planned {
			v := r.Value
			group.Planned = &v
		}
	}
	return values
}
