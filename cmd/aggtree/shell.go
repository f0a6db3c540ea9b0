package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/aggtree/feed"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errNotFound       = errors.New("key not found")
	errUsage          = errors.New("usage")
)

const helpText = `insert K V   insert a new key with value V
put K V      insert or replace a key
delete K     remove a key
search K     print the value of a key
rank K       print the 1-based position of a key, 0 if absent
select I     print the I-th smallest key
sum K1 K2    print the sum of values with K1 <= key <= K2
ceil K       print the smallest entry with key >= K
min, max     print the smallest or largest entry
len          print the number of entries
list         print all entries in key order
dot [FILE]   write the tree in Graphviz DOT format
check        verify the internal structure of the tree
help         print this text
quit         leave the shell`

// palette holds the colors used for display.
type palette struct {
	result *color.Color
	info   *color.Color
	err    *color.Color
}

func makePalette(noColor bool) palette {
	p := palette{
		result: color.New(color.FgGreen),
		info:   color.New(color.FgBlue),
		err:    color.New(color.FgRed),
	}
	if noColor {
		p.result.DisableColor()
		p.info.DisableColor()
		p.err.DisableColor()
	}
	return p
}

// shell interprets commands on an index of integers.
type shell struct {
	idx   *aggtree.Index[int64, int64]
	out   io.Writer
	pal   palette
	width int // line width for listings
}

func newShell(out io.Writer, noColor bool) *shell {
	sh := &shell{
		idx:   aggtree.NewSumIndex[int64, int64](),
		out:   out,
		pal:   makePalette(noColor),
		width: 80,
	}
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil && w > 20 {
			sh.width = w
		}
	}
	return sh
}

// run reads commands from in until end of input or 'quit'. Failing commands
// are reported, but do not stop the shell.
func (sh *shell) run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			sh.pal.info.Fprint(sh.out, "aggtree> ")
		}
		if !scanner.Scan() {
			break
		}
		quit, err := sh.exec(scanner.Text())
		if err != nil {
			sh.pal.err.Fprintf(sh.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec executes a single command line.
func (sh *shell) exec(line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	tracer().Debugf("shell: %s %v", cmd, args)
	switch cmd {
	case "insert", "put":
		k, v, err := keyValue(cmd, args)
		if err != nil {
			return false, err
		}
		if cmd == "insert" {
			if err := sh.idx.Insert(k, v); err != nil {
				return false, err
			}
			sh.result("ok")
		} else if sh.idx.Put(k, v) {
			sh.result("replaced")
		} else {
			sh.result("ok")
		}
	case "delete", "search", "rank", "ceil":
		k, err := oneInt(cmd, args, "K")
		if err != nil {
			return false, err
		}
		return false, sh.keyQuery(cmd, k)
	case "select":
		i, err := oneInt(cmd, args, "I")
		if err != nil {
			return false, err
		}
		k, ok := sh.idx.Select(int(i))
		if !ok {
			return false, fmt.Errorf("%w: %d", aggtree.ErrIndexOutOfBounds, i)
		}
		sh.result(k)
	case "sum":
		if len(args) != 2 {
			return false, fmt.Errorf("%w: sum K1 K2", errUsage)
		}
		lo, err1 := strconv.ParseInt(args[0], 10, 64)
		hi, err2 := strconv.ParseInt(args[1], 10, 64)
		if err := errors.Join(err1, err2); err != nil {
			return false, err
		}
		if s, ok := sh.idx.Sum(lo, hi); ok {
			sh.result(s)
		} else {
			sh.info("(empty)")
		}
	case "min", "max":
		var k, v int64
		var ok bool
		if cmd == "min" {
			k, v, ok = sh.idx.Min()
		} else {
			k, v, ok = sh.idx.Max()
		}
		sh.entry(k, v, ok)
	case "len":
		sh.result(sh.idx.Len())
	case "list":
		sh.list()
	case "dot":
		return false, sh.dot(args)
	case "check":
		if err := sh.idx.Check(); err != nil {
			return false, err
		}
		sh.result("ok")
	case "help":
		sh.info(helpText)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	return false, nil
}

func (sh *shell) keyQuery(cmd string, k int64) error {
	switch cmd {
	case "delete":
		if !sh.idx.Remove(k) {
			return fmt.Errorf("%w: %d", errNotFound, k)
		}
		sh.result("ok")
	case "search":
		v, ok := sh.idx.Get(k)
		if !ok {
			return fmt.Errorf("%w: %d", errNotFound, k)
		}
		sh.result(v)
	case "rank":
		sh.result(sh.idx.Rank(k))
	case "ceil":
		k, v, ok := sh.idx.Ceiling(k)
		sh.entry(k, v, ok)
	}
	return nil
}

func (sh *shell) list() {
	var b strings.Builder
	col := 0
	for k, v := range sh.idx.All() {
		item := fmt.Sprintf("%d:%d", k, v)
		if col > 0 && col+1+len(item) > sh.width {
			b.WriteByte('\n')
			col = 0
		} else if col > 0 {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(item)
		col += len(item)
	}
	if b.Len() == 0 {
		sh.info("(empty)")
		return
	}
	sh.result(b.String())
}

func (sh *shell) dot(args []string) error {
	switch len(args) {
	case 0:
		return sh.idx.Dot(sh.out)
	case 1:
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := sh.idx.Dot(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		sh.info("wrote " + args[0])
		return nil
	}
	return fmt.Errorf("%w: dot [FILE]", errUsage)
}

// report prints feed progress messages until the feed is done.
func (sh *shell) report(w io.Writer, ch <-chan interface{}) {
	for msg := range ch {
		switch m := msg.(type) {
		case feed.Progress:
			sh.pal.info.Fprintf(w, "%s: %d records\n", m.Name, m.Records)
		case feed.Done:
			if m.Err == nil {
				sh.pal.info.Fprintf(w, "%s: loaded %d records\n", m.Name, m.Records)
			}
			return
		}
	}
}

func (sh *shell) result(x interface{}) {
	sh.pal.result.Fprintln(sh.out, x)
}

func (sh *shell) info(s string) {
	sh.pal.info.Fprintln(sh.out, s)
}

func (sh *shell) entry(k, v int64, ok bool) {
	if !ok {
		sh.info("(none)")
		return
	}
	sh.pal.result.Fprintf(sh.out, "%d %d\n", k, v)
}

func keyValue(cmd string, args []string) (k, v int64, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: %s K V", errUsage, cmd)
	}
	if k, err = strconv.ParseInt(args[0], 10, 64); err != nil {
		return
	}
	v, err = strconv.ParseInt(args[1], 10, 64)
	return
}

func oneInt(cmd string, args []string, name string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s %s", errUsage, cmd, name)
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func tracer() tracing.Trace {
	return tracing.Select("aggtree")
}
