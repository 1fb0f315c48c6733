package main

import "testing"

func TestRootHelpListsCommands(t *testing.T) {
	out, err := runCLI(t, nil, []string{"--help"})
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, name := range []string{"ask", "chat", "models", "config"} {
		requireContains(t, out, name)
	}
}
