package cmd

import (
	"testing"

	"github.com/Iron-Ham/sheetbook/internal/config"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"list":  false,
		"add":   false,
		"rm":    false,
		"stats": false,
	}

	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRunList_RejectsInvalidSort(t *testing.T) {
	config.SetDefaults()
	t.Cleanup(func() { listSort = "" })

	listSort = "sideways"
	if err := runList(listCmd, nil); err == nil {
		t.Error("expected error for invalid --sort value")
	}
}

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "sheetbook" {
		t.Errorf("root Use = %q, want sheetbook", rootCmd.Use)
	}
	if rootCmd.RunE == nil {
		t.Error("root command must launch the TUI")
	}
}
