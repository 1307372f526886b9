package commands

import (
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := NewRootCommand()

	want := []string{"restore", "glossary", "interlink", "mindmap", "serve", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRestoreCommandFlags(t *testing.T) {
	cmd := newRestoreCommand()

	for _, flag := range []string{
		"csv", "out", "scheme", "compare",
		"include-related", "include-topconceptof", "include-equivalentto",
		"literal-diff-limit",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("restore: missing flag --%s", flag)
		}
	}

	if got := cmd.Flags().Lookup("csv").DefValue; got != "SoilVoc.csv" {
		t.Errorf("restore --csv default = %q, want SoilVoc.csv", got)
	}
}

func TestInterlinkCommandAcceptsArgs(t *testing.T) {
	cmd := newInterlinkCommand()
	if err := cmd.ParseFlags([]string{"--in", "v.ttl", "--out", "linked.ttl"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if got, _ := cmd.Flags().GetString("in"); got != "v.ttl" {
		t.Errorf("--in = %q, want v.ttl", got)
	}
}
