// SPDX-License-Identifier: MIT

// Command multinomial draws categorical samples from a JSON probability
// tensor.
//
//	echo '[[0.2,0.8],[0.5,0.5]]' | multinomial sample --samples 4 --seed 7
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := Command().ExecuteContext(context.Background()); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", color.RedString("error: %s", err))
	os.Exit(1)
}
