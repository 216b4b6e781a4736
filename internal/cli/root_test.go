package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func findCommandByPath(root *cobra.Command, path string) (*cobra.Command, bool) {
	cmd := root
	for _, part := range strings.Fields(path) {
		var next *cobra.Command
		for _, sub := range cmd.Commands() {
			if sub.Name() == part {
				next = sub
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cmd = next
	}
	return cmd, true
}

func commandFlags(cmd *cobra.Command) map[string]struct{} {
	flags := make(map[string]struct{})
	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Name == "help" {
			return
		}
		flags[flag.Name] = struct{}{}
	})
	return flags
}

func TestCascadeDeletesRequireForceFlag(t *testing.T) {
	for _, path := range []string{"group rm", "page rm"} {
		cmd, ok := findCommandByPath(rootCmd, path)
		if !ok {
			t.Fatalf("command %q missing from CLI tree", path)
		}
		if _, ok := commandFlags(cmd)["force"]; !ok {
			t.Errorf("command %q has no --force flag", path)
		}
	}
}

func TestMoveCommandsDefineTargetFlags(t *testing.T) {
	tests := []struct {
		path  string
		flags []string
	}{
		{"group mv", []string{"onto"}},
		{"object mv", []string{"onto", "into"}},
		{"todo mv", []string{"onto"}},
	}
	for _, tc := range tests {
		cmd, ok := findCommandByPath(rootCmd, tc.path)
		if !ok {
			t.Fatalf("command %q missing from CLI tree", tc.path)
		}
		defined := commandFlags(cmd)
		for _, name := range tc.flags {
			if _, ok := defined[name]; !ok {
				t.Errorf("command %q has no --%s flag", tc.path, name)
			}
		}
	}
}
