package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/bpowers/gbkf"
)

var supportedTypes = []gbkf.ValueType{
	gbkf.Int8, gbkf.Int16, gbkf.Int32, gbkf.Int64,
	gbkf.Uint8, gbkf.Uint16, gbkf.Uint32, gbkf.Uint64,
	gbkf.Float32, gbkf.Float64,
}

const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomKey(rng *rand.Rand, width int) string {
	key := make([]byte, width)
	for i := range key {
		key[i] = keyAlphabet[rng.Intn(len(keyAlphabet))]
	}
	return string(key)
}

func signedBounds(t gbkf.ValueType) (int64, int64) {
	switch t {
	case gbkf.Int8:
		return math.MinInt8, math.MaxInt8
	case gbkf.Int16:
		return math.MinInt16, math.MaxInt16
	case gbkf.Int32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func unsignedMax(t gbkf.ValueType) uint64 {
	switch t {
	case gbkf.Uint8:
		return math.MaxUint8
	case gbkf.Uint16:
		return math.MaxUint16
	case gbkf.Uint32:
		return math.MaxUint32
	default:
		return math.MaxUint64
	}
}

func randomEntry(rng *rand.Rand, key string, id uint32, nValues int) gbkf.Entry {
	t := supportedTypes[rng.Intn(len(supportedTypes))]
	e := gbkf.Entry{Key: key, InstanceID: id, Type: t}
	switch t.Kind() {
	case gbkf.KindSigned:
		lo, hi := signedBounds(t)
		for i := 0; i < nValues; i++ {
			v := int64(rng.Uint64())
			if v < lo || v > hi {
				// fold into range while keeping the sign
				v = v % (hi + 1)
			}
			e.Ints = append(e.Ints, v)
		}
	case gbkf.KindUnsigned:
		max := unsignedMax(t)
		for i := 0; i < nValues; i++ {
			v := rng.Uint64()
			if max != math.MaxUint64 {
				v %= max + 1
			}
			e.Uints = append(e.Uints, v)
		}
	case gbkf.KindFloat:
		for i := 0; i < nValues; i++ {
			e.Floats = append(e.Floats, (rng.Float64()-0.5)*1e6)
		}
	}
	return e
}

func main() {
	out := flag.String("out", "testdata.gbkf", "output path")
	nEntries := flag.Int("entries", 1000, "number of entries")
	nValues := flag.Int("values", 16, "values per entry")
	nKeys := flag.Int("keys", 32, "number of distinct keys")
	keyWidth := flag.Int("key-width", 4, "key width in bytes (1-255)")
	seed := flag.Int64("seed", 1, "random seed")
	verbose := flag.Bool("v", false, "log progress")
	flag.Parse()

	if *keyWidth < 1 || *keyWidth > 255 {
		fmt.Fprintf(os.Stderr, "key-width must be in [1, 255]\n")
		os.Exit(2)
	}
	if *nKeys < 1 {
		fmt.Fprintf(os.Stderr, "keys must be positive\n")
		os.Exit(2)
	}

	var opts []gbkf.WriterOption
	if *verbose {
		opts = append(opts, gbkf.WithWriterLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	rng := rand.New(rand.NewSource(*seed))
	w := gbkf.NewWriter(opts...)
	if err := w.SetKeyWidth(uint8(*keyWidth)); err != nil {
		fmt.Fprintf(os.Stderr, "SetKeyWidth: %s\n", err)
		os.Exit(1)
	}

	keys := make([]string, *nKeys)
	for i := range keys {
		keys[i] = randomKey(rng, *keyWidth)
	}
	instances := make(map[string]uint32)

	for i := 0; i < *nEntries; i++ {
		key := keys[rng.Intn(len(keys))]
		id := instances[key]
		instances[key] = id + 1
		if err := w.AddEntry(randomEntry(rng, key, id, *nValues)); err != nil {
			fmt.Fprintf(os.Stderr, "AddEntry: %s\n", err)
			os.Exit(1)
		}
	}

	if err := w.WriteFile(*out, true); err != nil {
		fmt.Fprintf(os.Stderr, "WriteFile: %s\n", err)
		os.Exit(1)
	}
}
