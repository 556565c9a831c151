package helper

import "encoding/json"

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

// Get returns (value, present). A present field with nil value is an
// explicit null from the client.
func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// IsNull reports an explicit null.
func (p PatchField[T]) IsNull() bool { return p.Present && p.Value == nil }

// HasValue reports a present, non-null value.
func (p PatchField[T]) HasValue() bool { return p.Present && p.Value != nil }
