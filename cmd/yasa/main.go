// SPDX-License-Identifier: MIT
// Command yasa aligns two texts sentence-by-sentence, per spec.md.
//
//	go get github.com/corvidnlp/yasa/cmd/yasa
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
