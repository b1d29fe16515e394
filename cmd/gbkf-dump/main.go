package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bpowers/gbkf"
)

func values(e *gbkf.Entry) any {
	switch e.Type.Kind() {
	case gbkf.KindSigned:
		return e.Ints
	case gbkf.KindUnsigned:
		return e.Uints
	case gbkf.KindFloat:
		return e.Floats
	default:
		return nil
	}
}

func dump(w io.Writer, r *gbkf.Reader, showValues bool) error {
	h := r.Header()
	fmt.Fprintf(w, "format version:        %d\n", h.FormatVersion)
	fmt.Fprintf(w, "specification id:      %d\n", h.SpecificationID)
	fmt.Fprintf(w, "specification version: %d\n", h.SpecificationVersion)
	fmt.Fprintf(w, "key width:             %d\n", h.KeyWidth)
	fmt.Fprintf(w, "entry count:           %d\n", h.EntryCount)
	fmt.Fprintf(w, "integrity:             %t\n", r.VerifyIntegrity())
	fmt.Fprintf(w, "fingerprint:           %016x\n", r.Fingerprint())

	keyed, err := r.KeyedValues()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, e := range keyed[k] {
			fmt.Fprintf(w, "%q\t%d\t%s\t%d", e.Key, e.InstanceID, e.Type, e.Len())
			if showValues {
				fmt.Fprintf(w, "\t%v", values(&e))
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func main() {
	useMmap := flag.Bool("mmap", false, "memory-map the file instead of reading it")
	showValues := flag.Bool("values", false, "print entry values")
	strict := flag.Bool("strict", false, "exit non-zero if the digest doesn't match")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: gbkf-dump [flags] FILE\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	var opts []gbkf.ReaderOption
	if *verbose {
		opts = append(opts, gbkf.WithReaderLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	open := gbkf.Open
	if *useMmap {
		open = gbkf.OpenMapped
	}
	r, err := open(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	defer func() { _ = r.Close() }()

	out := bufio.NewWriter(os.Stdout)
	err = dump(out, r, *showValues)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		os.Exit(1)
	}

	if *strict && !r.VerifyIntegrity() {
		fmt.Fprintf(os.Stderr, "%s: digest mismatch\n", path)
		os.Exit(1)
	}
}
