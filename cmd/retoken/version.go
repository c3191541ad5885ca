// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/retoken/cmd/retoken/opts"
)

// BuildInfo describes the binary and the replacement table compiled into it
type BuildInfo struct {
	Version   string
	Revision  string
	Time      string
	Modified  bool
	GoVersion string
	Platform  string
	Table     string
	Rules     int
}

// readBuildInfo fills in what the Go toolchain stamped into the binary
func readBuildInfo() *BuildInfo {
	info := &BuildInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	return info
}

// String renders the version block printed by "retoken version"
func (b *BuildInfo) String() string {
	var sb strings.Builder

	sb.WriteString("retoken " + b.Version)
	switch {
	case b.Revision != "" && b.Modified:
		fmt.Fprintf(&sb, " (%s, modified)", b.Revision)
	case b.Revision != "":
		fmt.Fprintf(&sb, " (%s)", b.Revision)
	case b.Modified:
		sb.WriteString(" (modified)")
	}
	sb.WriteString("\n")

	sb.WriteString("built")
	if b.Time != "" {
		sb.WriteString(" " + b.Time)
	}
	fmt.Fprintf(&sb, " with %s for %s\n", b.GoVersion, b.Platform)

	fmt.Fprintf(&sb, "table %s, %d rules\n", b.Table, b.Rules)
	return sb.String()
}

func newVersionCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information and the compiled-in table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := readBuildInfo()
			info.Table = o.Config.Table.Name
			info.Rules = o.Config.Table.Len()

			_, err := fmt.Fprint(cmd.OutOrStdout(), info)
			return err
		},
	}
}
