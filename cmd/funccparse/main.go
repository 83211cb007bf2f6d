// Copyright © 2020 The Pea Authors under an MIT-style license.

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dvoyni/funcc/ast"
	"github.com/eaburns/pretty"
)

var verbose = flag.Bool("v", false, "enable verbose timing output")

func main() {
	pretty.Indent = "    "
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		parse("", os.Stdin)
		return
	}
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			die(err)
		}
		parse(path, f)
		f.Close()
	}
}

func parse(path string, r *os.File) {
	start := time.Now()
	file, err := ast.Parse(path, r)
	vprintf("parsed %s in %v\n", displayPath(path), time.Since(start))
	if err != nil {
		die(err)
	}
	pretty.Print(file)
	fmt.Println("")
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func vprintf(f string, vs ...interface{}) {
	if *verbose {
		fmt.Fprintf(os.Stderr, f, vs...)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(out, "%s [flags] [file ...]\n", os.Args[0])
	flag.PrintDefaults()
}

func die(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
