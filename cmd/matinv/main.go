// SPDX-License-Identifier: MIT

// matinv inverts a square matrix with the Schulz or LUP method and writes the
// result together with the algorithm trace.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := NewCmdMatinv(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
