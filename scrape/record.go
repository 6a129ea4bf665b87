package scrape

import (
	"bytes"
	"encoding/json"
	"fmt"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

type field struct {
	key, val string
	lsNext   *field
}

// ListNext to implement intrusive singly linked list
func (f *field) ListNext() islist.Node { return f.lsNext }

// SetListNext to implement intrusive singly linked list
func (f *field) SetListNext(n islist.Node) {
	if n == nil {
		f.lsNext = nil
	} else {
		f.lsNext = n.(*field)
	}
}

// Record is an ordered key-value record. Fields keep their insertion order,
// setting an existing key again keeps its position. The zero value is ready
// for use.
type Record struct {
	fields *islist.List
	idx    map[string]*field
	last   *field
}

func NewRecord() *Record { return new(Record) }

// Add sets key to val. A new key is appended, an existing one keeps its
// position and gets the new value. The field becomes the target of
// Continue.
func (r *Record) Add(key, val string) {
	if f := r.idx[key]; f != nil {
		f.val = val
		r.last = f
		return
	}
	f := &field{key: key, val: val}
	if r.fields == nil {
		r.fields = islist.New(f)
	} else {
		r.fields.PushBack(f)
	}
	if r.idx == nil {
		r.idx = make(map[string]*field)
	}
	r.idx[key] = f
	r.last = f
}

// Continue appends val to the most recently added field's value, separated
// by a line break. It reports false when the record has no field yet.
func (r *Record) Continue(val string) bool {
	if r.last == nil {
		return false
	}
	r.last.val += "\n" + val
	return true
}

// Get returns the value of key and whether the record has it.
func (r *Record) Get(key string) (string, bool) {
	if f := r.idx[key]; f != nil {
		return f.val, true
	}
	return "", false
}

// Has reports whether the record has a field key.
func (r *Record) Has(key string) bool { return r.idx[key] != nil }

// Len returns the number of fields.
func (r *Record) Len() int {
	if r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns the field keys in insertion order.
func (r *Record) Keys() []string {
	res := make([]string, 0, r.Len())
	r.each(func(f *field) { res = append(res, f.key) })
	return res
}

func (r *Record) each(do func(*field)) {
	if r.Len() == 0 {
		return
	}
	f := r.fields.Front().(*field)
	for f != nil {
		do(f)
		f = f.lsNext
	}
}

// MarshalJSON encodes the record as a JSON object with the fields in
// insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	sep := false
	var err error
	r.each(func(f *field) {
		if err != nil {
			return
		}
		if sep {
			buf.WriteByte(',')
		}
		sep = true
		var b []byte
		if b, err = json.Marshal(f.key); err != nil {
			return
		}
		buf.Write(b)
		buf.WriteByte(':')
		if b, err = json.Marshal(f.val); err != nil {
			return
		}
		buf.Write(b)
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Collect folds a sequence of Pair items, as produced by running Gsub with
// the patterns of this package, into a Record. A Pair with the continuation
// key " " continues the value of the preceding field. Items that are no
// Pair, and continuations before the first field, are errors.
func Collect(items []any) (*Record, error) {
	rec := NewRecord()
	for i, it := range items {
		p, ok := it.(Pair)
		if !ok {
			return nil, fmt.Errorf("item %d: %T is not a scrape.Pair", i, it)
		}
		if p.Key == " " {
			if !rec.Continue(p.Val) {
				return nil, fmt.Errorf("item %d: continuation before any field", i)
			}
			continue
		}
		rec.Add(p.Key, p.Val)
	}
	return rec, nil
}
