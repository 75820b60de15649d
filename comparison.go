package dynoq

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

// Comparison ranks two entries attribute by attribute.
type Comparison struct {
	dq    *Dynoq
	a     model.EntryKey
	b     model.EntryKey
	attrs []model.Attribute
}

// Comparison builds a head-to-head query over the two referenced entries.
//
// Validation is eager and ordered: an empty or invalid attribute set fails
// before any catalog lookup, then the first reference resolves, then the
// second. It fails with ErrEmptyAttributeSet, *ErrInvalidAttribute,
// *ErrUnknownEntry or *ErrPositionOutOfRange.
func (dq *Dynoq) Comparison(a, b catalog.Ref, attrs ...model.Attribute) (*Comparison, error) {
	if len(attrs) == 0 {
		return nil, ErrEmptyAttributeSet
	}
	for _, attr := range attrs {
		if !attr.Valid() {
			return nil, &ErrInvalidAttribute{Name: attr.String()}
		}
	}

	keyA, err := dq.Resolve(a)
	if err != nil {
		return nil, err
	}
	keyB, err := dq.Resolve(b)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		dq:    dq,
		a:     keyA,
		b:     keyB,
		attrs: slices.Clone(attrs),
	}, nil
}

// Entries returns the two resolved entry keys in construction order.
func (q *Comparison) Entries() (model.EntryKey, model.EntryKey) {
	return q.a, q.b
}

// Attributes returns the attributes compared, in construction order.
func (q *Comparison) Attributes() []model.Attribute {
	return slices.Clone(q.attrs)
}

// Search returns one line per attribute naming the entry whose recorded
// maximum is higher, formatted as "<attribute>: <entry display name>".
// When the maxima are equal, the first entry wins.
//
// Search is pure; repeated calls return equal results. If either entry has
// no records for any requested attribute, Search fails with *ErrNoData and
// returns no partial results.
func (q *Comparison) Search() ([]string, error) {
	start := time.Now()

	lines := make([]string, 0, len(q.attrs))
	for _, attr := range q.attrs {
		pairA, err := q.dq.stats.Extremes(q.a, attr)
		if err != nil {
			err = translateError(err)
			q.dq.metrics.RecordCompare(len(q.attrs), time.Since(start), err)
			q.dq.logger.LogCompare(q.a, q.b, len(q.attrs), err)
			return nil, err
		}
		pairB, err := q.dq.stats.Extremes(q.b, attr)
		if err != nil {
			err = translateError(err)
			q.dq.metrics.RecordCompare(len(q.attrs), time.Since(start), err)
			q.dq.logger.LogCompare(q.a, q.b, len(q.attrs), err)
			return nil, err
		}

		// Ties keep the first entry.
		winner := q.a
		if pairB.Max.Value > pairA.Max.Value {
			winner = q.b
		}
		lines = append(lines, fmt.Sprintf("%s: %s", attr, winner.DisplayName()))
	}

	q.dq.metrics.RecordCompare(len(q.attrs), time.Since(start), nil)
	q.dq.logger.LogCompare(q.a, q.b, len(q.attrs), nil)

	return lines, nil
}
