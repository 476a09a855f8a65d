// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command diningset is an interactive 3D configurator for dining sets:
// a stone table and its chairs, with live pricing.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/diningset/app"
	"cogentcore.org/diningset/config"
)

func main() {
	opts := cli.DefaultOptions("diningset", "An interactive 3D configurator for dining sets.")
	opts.DefaultFiles = []string{"diningset.toml"}
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{
		Func: app.Run,
		Name: "run",
		Doc:  "Run opens the configurator window.",
		Root: true,
	})
}
