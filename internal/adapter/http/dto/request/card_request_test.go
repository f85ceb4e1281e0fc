package request

import (
	"errors"
	"testing"

	"gera_wallet/internal/domain/entities"
)

func TestParseCardRecord_KeepsOrderAndRawValues(t *testing.T) {
	raw, err := ParseCardRecord([]byte(`{"type":"boleto","value":100,"cpf":null,"message":"Pague","value":"200"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := raw.Fields()
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	order := []string{"type", "value", "cpf", "message"}
	for i, f := range fields {
		if f.Key != order[i] {
			t.Fatalf("expected key %q at %d, got %q", order[i], i, f.Key)
		}
	}
	if v, _ := raw.Get("value"); string(v) != `"200"` {
		t.Fatalf("expected last duplicate value, got %s", v)
	}
	if !raw.Has("cpf") {
		t.Fatalf("expected null cpf to count as present")
	}
	if raw.Text("type") != "boleto" {
		t.Fatalf("unexpected type %q", raw.Text("type"))
	}
}

func TestParseCardRecord_Errors(t *testing.T) {
	for _, body := range []string{``, " \n\t", `[]`, `"card"`, `null`, `42`} {
		if _, err := ParseCardRecord([]byte(body)); !errors.Is(err, entities.ErrRecordNotObject) {
			t.Fatalf("body %s: expected ErrRecordNotObject, got %v", body, err)
		}
	}

	if _, err := ParseCardRecord([]byte(`{"type":`)); err == nil || errors.Is(err, entities.ErrRecordNotObject) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}
