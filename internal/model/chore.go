package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Owner is the person responsible for a chore.
// The set is closed: adding someone means extending Owners and the switch below.
type Owner int

const (
	Linus Owner = iota
	Johannes
)

// Owners lists every owner in display order. The UI renders one section per entry.
func Owners() []Owner { return []Owner{Linus, Johannes} }

func (o Owner) String() string {
	switch o {
	case Linus:
		return "Linus"
	case Johannes:
		return "Johannes"
	}
	return fmt.Sprintf("Owner(%d)", int(o))
}

// ParseOwner is the inverse of String.
func ParseOwner(s string) (Owner, error) {
	for _, o := range Owners() {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown owner %q", s)
}

func (o Owner) MarshalText() ([]byte, error) {
	if _, err := ParseOwner(o.String()); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

func (o *Owner) UnmarshalText(b []byte) error {
	v, err := ParseOwner(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Chore is a single task record. Due is a free-text label, never parsed.
type Chore struct {
	Name  string `json:"name"`
	Due   string `json:"due"`
	Owner Owner  `json:"owner"`
}

var jsonNull = []byte("null")

// UnmarshalJSON fills fields absent from the input with their defaults,
// so records written before owner existed still load (as Linus).
// An explicit null, for the record or any field, is an error.
func (c *Chore) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return errors.New("chore: null record")
	}
	var raw struct {
		Name  json.RawMessage `json:"name"`
		Due   json.RawMessage `json:"due"`
		Owner json.RawMessage `json:"owner"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := Chore{Owner: Linus}
	if err := decodeField("name", raw.Name, &v.Name); err != nil {
		return err
	}
	if err := decodeField("due", raw.Due, &v.Due); err != nil {
		return err
	}
	if err := decodeField("owner", raw.Owner, &v.Owner); err != nil {
		return err
	}
	*c = v
	return nil
}

// decodeField leaves dst alone when the key was absent.
func decodeField(name string, raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return fmt.Errorf("chore: %s is null", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("chore: %s: %w", name, err)
	}
	return nil
}
