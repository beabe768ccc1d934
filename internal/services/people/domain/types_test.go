package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDate(1990, time.April, 12)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"1990-04-12"` {
		t.Fatalf("marshaled = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestDate_RejectsBadWireForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"not a string", `19900412`},
		{"wrong layout", `"12/04/1990"`},
		{"unpadded month", `"1990-4-12"`},
		{"impossible day", `"1990-02-31"`},
		{"empty", `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tc.in), &d); err == nil {
				t.Fatalf("accepted %s as %v", tc.in, d)
			}
		})
	}
}

func TestPerson_WireFieldNames(t *testing.T) {
	t.Parallel()

	p := Person{
		ID:       5,
		Nickname: "ana",
		Name:     "Ana Souza",
		Born:     NewDate(1985, time.September, 23),
		Stacks:   []string{"go", "postgres"},
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"id":5`, `"apelido":"ana"`, `"nome":"Ana Souza"`, `"nascimento":"1985-09-23"`, `"stack":["go","postgres"]`} {
		if !strings.Contains(s, key) {
			t.Fatalf("wire body %s missing %s", s, key)
		}
	}
}

func TestPerson_NilStacksSerializesAsNull(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Person{ID: 1, Nickname: "b", Name: "B", Born: NewDate(2000, 1, 1)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"stack":null`) {
		t.Fatalf("nil stacks should be null: %s", b)
	}
}
