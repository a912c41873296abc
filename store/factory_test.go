package store

import (
	"path/filepath"
	"testing"
)

func TestNewStoreFactory(t *testing.T) {
	cases := []struct {
		name    string
		kind    string
		path    string
		wantErr bool
	}{
		{"memory", "memory", "", false},
		{"mem alias", "mem", "", false},
		{"file", "file", filepath.Join(t.TempDir(), "factory_store.json"), false},
		{"file without path", "file", "", true},
		{"unknown", "redis", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := NewStore(tc.kind, tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for kind %q", tc.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStore %s failed: %v", tc.kind, err)
			}
			if st == nil {
				t.Fatal("expected non-nil store")
			}
		})
	}
}
