package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/aggtree"
)

// Some defaults for the reading pipeline
const (
	defaultPrefetch = 64
	defaultEvery    = 1000
)

// Progress is broadcast to observers every Every records.
type Progress struct {
	Name    string
	Records int
}

// Done is broadcast to observers after the last record has been handled.
// Err is nil if the feed has been consumed completely.
type Done struct {
	Name    string
	Records int
	Err     error
}

// Feed reads records from a text source. A Feed may be run only once.
type Feed[K, V any] struct {
	Name     string // name of the source, used for messages
	Every    int    // broadcast progress after this many records; 0 = default
	Prefetch int    // records parsed ahead of the consumer; 0 = default
	source   io.Reader
	parser   Parser[K, V]
	cast     *caster.Caster // broadcaster for progress messages
}

// New creates a feed reading records from r.
func New[K, V any](name string, r io.Reader, parser Parser[K, V]) *Feed[K, V] {
	return &Feed[K, V]{
		Name:   name,
		source: r,
		parser: parser,
		cast:   caster.New(nil),
	}
}

// Observe subscribes to progress messages of type Progress and Done.
// Observers have to subscribe before calling Run, and should read until
// they receive Done or cancel ctx. Messages are never waited for: an
// observer whose buffer is full misses them, Done included. The channel is
// closed after the feed has ended in either case.
func (f *Feed[K, V]) Observe(ctx context.Context) (<-chan interface{}, bool) {
	return f.cast.Sub(ctx, 16)
}

// Run reads all records and hands them to sink, one after the other, from
// the calling goroutine. Reading and parsing happen in the background.
// Run stops at the first malformed record, at the first error returned by
// sink, or if ctx is cancelled. It returns the number of records handed
// to sink without error.
func (f *Feed[K, V]) Run(ctx context.Context, sink func(Record[K, V]) error) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	prefetch, every := f.Prefetch, f.Every
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}
	if every <= 0 {
		every = defaultEvery
	}
	recs := make(chan Record[K, V], prefetch)
	errch := make(chan error, 1)
	go func() {
		defer close(recs)
		errch <- f.scan(ctx, recs)
	}()
	count := 0
	var err error
	for rec := range recs {
		if err = sink(rec); err != nil {
			err = fmt.Errorf("feed: line %d: %w", rec.Line, err)
			cancel()
			for range recs { // let the reader terminate
			}
			break
		}
		count++
		if count%every == 0 {
			tracer().Debugf("feed %s: %d records", f.Name, count)
			f.cast.TryPub(Progress{Name: f.Name, Records: count})
		}
	}
	if scanErr := <-errch; err == nil && scanErr != nil {
		err = scanErr
	}
	if err != nil {
		tracer().Errorf("feed %s: %v", f.Name, err)
	} else {
		tracer().Infof("feed %s: read %d records", f.Name, count)
	}
	if !f.cast.TryPub(Done{Name: f.Name, Records: count, Err: err}) {
		tracer().Infof("feed %s: an observer missed the end of feed", f.Name)
	}
	f.cast.Close()
	return count, err
}

// scan is the reading goroutine.
func (f *Feed[K, V]) scan(ctx context.Context, recs chan<- Record[K, V]) error {
	scanner := bufio.NewScanner(f.source)
	lineno := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineno++
		rec, skip, err := f.parser.parseLine(lineno, scanner.Text())
		if err != nil {
			return err
		}
		if skip {
			continue
		}
		select {
		case recs <- rec:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// LoadInto reads all records of f into idx. Records for keys already present
// replace the old value.
func LoadInto[K, V any](ctx context.Context, idx *aggtree.Index[K, V], f *Feed[K, V]) (int, error) {
	return f.Run(ctx, func(rec Record[K, V]) error {
		idx.Put(rec.Key, rec.Value)
		return nil
	})
}

// Load reads a file, which must be a text file of records, into idx.
// Opening the file is always done synchronously.
func Load[K, V any](ctx context.Context, name string, idx *aggtree.Index[K, V], parser Parser[K, V]) (int, error) {
	file, err := Open(name)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return LoadInto(ctx, idx, New(name, file, parser))
}

// Open opens an OS file of records for reading. It fails for anything
// other than a regular file.
func Open(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("feed: %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}
