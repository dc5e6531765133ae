package lookup

// RecordSource yields records in corpus order. It follows the bufio.Scanner
// convention: Next advances, Record returns the current record, and Err
// reports the first error once Next has returned false.
type RecordSource interface {
	Next() bool
	Record() Record
	Err() error
}

// Train consumes src completely and returns the frozen frequency table.
func Train(src RecordSource) (*Table, error) {
	acc := NewAccumulator()
	for src.Next() {
		r := src.Record()
		acc.Record(r.Form, r.Lemma)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return acc.Table(), nil
}

// Evaluate scores every record of src against m.
func Evaluate(m *Model, src RecordSource) (Outcomes, error) {
	ev := NewEvaluator(m)
	for src.Next() {
		r := src.Record()
		ev.Observe(r.Form, r.Lemma)
	}
	if err := src.Err(); err != nil {
		return Outcomes{}, err
	}
	return ev.Outcomes(), nil
}

// SliceSource serves records from memory.
type SliceSource struct {
	records []Record
	pos     int
}

// Records returns a RecordSource over recs.
func Records(recs ...Record) *SliceSource {
	return &SliceSource{records: recs, pos: -1}
}

// Next advances to the next record.
func (s *SliceSource) Next() bool {
	if s.pos+1 >= len(s.records) {
		s.pos = len(s.records)
		return false
	}
	s.pos++
	return true
}

// Record returns the current record.
func (s *SliceSource) Record() Record {
	return s.records[s.pos]
}

// Err always returns nil.
func (s *SliceSource) Err() error {
	return nil
}
