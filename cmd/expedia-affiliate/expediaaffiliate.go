package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"
	"utrippin/internal/affiliate"

	"github.com/google/renameio"
)

// dataPath is relative to the repository root.
const dataPath = "src/data/utrippin_experiences.ts"

func patch1(fn string) error {
	// Replace the symlink target, not the symlink itself.
	fn, err := filepath.EvalSymlinks(fn)
	if err != nil {
		return err
	}
	fi, err := os.Stat(fn)
	if err != nil {
		return err
	}
	// The rename below only needs a writable directory, so check the file
	// itself is writable.
	f, err := os.OpenFile(fn, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	f.Close()

	source, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	if !utf8.Valid(source) {
		return fmt.Errorf("%s: content is not valid UTF-8", fn)
	}

	patched := affiliate.Patch(source)
	if bytes.Equal(patched, source) {
		return nil // nothing to update
	}

	out, err := renameio.TempFile("", fn)
	if err != nil {
		return err
	}
	defer out.Cleanup()
	if err := out.Chmod(fi.Mode().Perm()); err != nil {
		return err
	}
	if _, err := out.Write(patched); err != nil {
		return err
	}
	return out.CloseAtomicallyReplace()
}

func expediaaffiliate(stdout io.Writer) error {
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("syntax: %s (run from the repository root, takes no arguments)", filepath.Base(os.Args[0]))
	}

	if err := patch1(dataPath); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Updated all Expedia links with affiliate parameters")
	return nil
}

func main() {
	if err := expediaaffiliate(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
