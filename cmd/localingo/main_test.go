package main

import "testing"

func TestMainWiring(t *testing.T) {
	origSetVersion := setVersionInfo
	origExecute := executeCmd
	t.Cleanup(func() {
		setVersionInfo = origSetVersion
		executeCmd = origExecute
	})

	calls := struct {
		version bool
		exec    bool
	}{}

	setVersionInfo = func(v, c, d string) {
		calls.version = true
		if v == "" || c == "" || d == "" {
			t.Fatalf("expected version info to be set")
		}
	}
	executeCmd = func() {
		if !calls.version {
			t.Fatal("expected version info before execute")
		}
		calls.exec = true
	}

	main()

	if !calls.version || !calls.exec {
		t.Fatalf("expected main to set version and execute, got %+v", calls)
	}
}
