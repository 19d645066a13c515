package settings

import "testing"

type codecConfig struct {
	Name  string `json:"name" yaml:"name"`
	Limit int    `json:"limit" yaml:"limit"`
}

func TestJSONCodec(t *testing.T) {
	var cfg codecConfig
	err := JSONCodec{}.Unmarshal([]byte(`{"name":"relay","limit":8}`), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "relay" || cfg.Limit != 8 {
		t.Errorf("decoded %+v, want {relay 8}", cfg)
	}
	if got := (JSONCodec{}).ContentType(); got != "application/json" {
		t.Errorf("ContentType() = %q", got)
	}

	if err := (JSONCodec{}).Unmarshal([]byte(`{not json`), &cfg); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestYAMLCodec(t *testing.T) {
	var cfg codecConfig
	err := YAMLCodec{}.Unmarshal([]byte("name: relay\nlimit: 8\n"), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "relay" || cfg.Limit != 8 {
		t.Errorf("decoded %+v, want {relay 8}", cfg)
	}
	if got := (YAMLCodec{}).ContentType(); got != "application/x-yaml" {
		t.Errorf("ContentType() = %q", got)
	}

	if err := (YAMLCodec{}).Unmarshal([]byte("name: [unclosed"), &cfg); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
