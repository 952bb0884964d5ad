package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/matsen/bibconv/internal/diag"
	"github.com/matsen/bibconv/internal/fields"
)

// maxNameAttempts bounds the search for a free single-reference file name.
const maxNameAttempts = 60000

// Write converts b to the output charset and writes it with out. With
// SingleRefPerFile set each record goes to its own file in Params.Dir and w
// may be nil; records whose file cannot be created are skipped and reported
// in the returned error.
func Write(b *fields.Bibliography, w io.Writer, out OutputFormat, job *Job) error {
	if b == nil || out == nil || job == nil || job.Params == nil {
		return fmt.Errorf("write: missing bibliography, format or parameters: %w", diag.ErrBadInput)
	}
	if w == nil && !job.Params.SingleRefPerFile {
		return fmt.Errorf("write: missing output stream: %w", diag.ErrBadInput)
	}
	lp, err := job.Params.writeParams()
	if err != nil {
		return err
	}
	if err := fixCharsets(b, lp.In, lp.Out); err != nil {
		return err
	}
	if lp.SingleRefPerFile {
		return writeSingle(b, out, lp, job)
	}

	if h, ok := out.(Headerer); ok {
		if err := h.Header(w, lp); err != nil {
			return fmt.Errorf("writing %s header: %w", out.Name(), err)
		}
	}
	for i, ref := range b.All() {
		if err := out.Write(w, ref, lp, i); err != nil {
			return fmt.Errorf("writing reference %d: %w", i+1, err)
		}
	}
	if f, ok := out.(Footerer); ok {
		if err := f.Footer(w); err != nil {
			return fmt.Errorf("writing %s footer: %w", out.Name(), err)
		}
	}
	return nil
}

func writeSingle(b *fields.Bibliography, out OutputFormat, p *Params, job *Job) error {
	var errs []error
	for i, ref := range b.All() {
		if err := writeOne(ref, i, out, p, job); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func writeOne(ref *fields.Fields, i int, out OutputFormat, p *Params, job *Job) error {
	name, err := singleRefName(p.Dir, ref, i, out.Suffix())
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w: %w", name, diag.ErrCannotOpen, err)
	}
	defer f.Close()

	if h, ok := out.(Headerer); ok {
		if err := h.Header(f, p); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	// Each file holds one record, so it is always the first in its stream.
	if err := out.Write(f, ref, p, 0); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if ft, ok := out.(Footerer); ok {
		if err := ft.Footer(f); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	job.Logger.Debug("wrote reference", "file", name)
	return f.Close()
}

// singleRefName picks "<refnum>.<suffix>", adding "_<count>" until the name
// is free.
func singleRefName(dir string, ref *fields.Fields, i int, suffix string) (string, error) {
	base := strconv.Itoa(i)
	if n := ref.Find("REFNUM", fields.LevelMain); n != fields.NotFound {
		base = ref.Value(n)
	}
	name := filepath.Join(dir, base+"."+suffix)
	for count := 1; exists(name); count++ {
		if count == maxNameAttempts {
			return "", fmt.Errorf("no free file name for %q after %d attempts: %w", base, maxNameAttempts, diag.ErrCannotOpen)
		}
		name = filepath.Join(dir, base+"_"+strconv.Itoa(count)+"."+suffix)
	}
	return name, nil
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
