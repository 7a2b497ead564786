// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/lvlens/internal/cli"

func main() {
	cli.Execute()
}
