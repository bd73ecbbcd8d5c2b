// Command ringlist runs a line oriented script against a ring list of strings.
//
//	insert I V     push V       get I        set I V
//	remove I       indexof S V  len          clear
//	dump           stats        hash ALG V   (ALG is bkdr, djb, sip or xx)
//
// Lines starting with # are ignored.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	file := flag.String("f", "", "script file, stdin if empty")
	maxlen := flag.Int("maxlen", 0, "maximum list length, 0 for unlimited")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ringlist [flags] [-f script]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			glog.Errorf("open script: %v", err)
			glog.Flush()
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	r := newRunner(os.Stdout, *maxlen)
	if err := r.Run(in); err != nil {
		glog.Errorf("%v", errors.Wrap(err, "ringlist"))
		glog.Flush()
		os.Exit(1)
	}
}
