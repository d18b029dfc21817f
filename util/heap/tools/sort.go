package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/navijation/njheap/util/heap/tools/config"
)

func sortLines(_ context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var inputs []io.Reader
	if cmd.Args().Len() == 0 {
		inputs = append(inputs, os.Stdin)
	}
	for _, path := range cmd.Args().Slice() {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", path)
		}
		defer file.Close()
		inputs = append(inputs, file)
	}

	return sortInputs(cfg, logger, inputs, os.Stdout)
}

func sortInputs(cfg config.ConfigFile, logger *slog.Logger, inputs []io.Reader, out io.Writer) error {
	sorter, err := newLineSorter(cfg)
	if err != nil {
		return err
	}

	for i, input := range inputs {
		scanner := bufio.NewScanner(input)
		for lineNumber := 1; scanner.Scan(); lineNumber++ {
			if err := sorter.Add(scanner.Text()); err != nil {
				return errors.Wrapf(err, "input %d, line %d", i+1, lineNumber)
			}
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "failed to read input %d", i+1)
		}
	}

	size := sorter.Size()
	if err := sorter.Drain(out); err != nil {
		return err
	}
	logger.Info("Sorted lines", "count", size, "ordering", cfg.Ordering)

	return nil
}

type lineSorter interface {
	Add(line string) error
	Remove() (string, error)
	Drain(w io.Writer) error
	Size() int
	Capacity() int
	String() string
}

// lineFormat is how one ordering parses, compares and prints lines. Lines
// equal to absentToken stand for absent elements.
type lineFormat[T any] struct {
	order       heap.Comparator[T]
	parse       func(string) (T, error)
	format      func(T) string
	absentToken string
}

func newLineFormat[T any](
	cfg config.ConfigFile,
	order heap.Comparator[T],
	parse func(string) (T, error),
	format func(T) string,
) *lineFormat[T] {
	return &lineFormat[T]{
		order:       orient(order, cfg.Reverse),
		parse:       parse,
		format:      format,
		absentToken: cfg.AbsentToken,
	}
}

func (me *lineFormat[T]) parseLine(line string) (util.Optional[T], error) {
	if line == me.absentToken {
		return util.None[T](), nil
	}

	value, err := me.parse(line)
	if err != nil {
		return util.None[T](), err
	}
	return util.Some(value), nil
}

func (me *lineFormat[T]) render(item util.Optional[T]) string {
	if value, exists := item.Unpack(); exists {
		return me.format(value)
	}
	return me.absentToken
}

func (me *lineFormat[T]) NewSorter() lineSorter {
	return &lineHeap[T]{
		heap:   heap.NewWithComparator(me.order),
		format: me,
	}
}

func (me *lineFormat[T]) NewMerger(logger *slog.Logger) lineMerger {
	return newLineMux(me, logger)
}

// lineFormatter hides the element type chosen by the configured ordering.
type lineFormatter interface {
	NewSorter() lineSorter
	NewMerger(logger *slog.Logger) lineMerger
}

func newLineFormatter(cfg config.ConfigFile) (lineFormatter, error) {
	switch cfg.Ordering {
	case config.OrderingNatural:
		return newLineFormat(cfg, heap.Ordered[string](), parseString, formatString), nil
	case config.OrderingLength:
		return newLineFormat(cfg, heap.Strict(compareLength), parseString, formatString), nil
	case config.OrderingNumeric:
		return newLineFormat(cfg, heap.Ordered[float64](), parseNumber, formatNumber), nil
	case config.OrderingMixed:
		return newLineFormat(cfg, heap.NaturalOrder[any](), parseMixed, formatMixed), nil
	default:
		return nil, errors.Wrapf(config.ErrInvalidConfig, "unknown ordering %q", cfg.Ordering)
	}
}

func newLineSorter(cfg config.ConfigFile) (lineSorter, error) {
	formatter, err := newLineFormatter(cfg)
	if err != nil {
		return nil, err
	}
	return formatter.NewSorter(), nil
}

// lineHeap parses lines into T and writes them back in heap order.
type lineHeap[T any] struct {
	heap   *heap.MinHeap[T]
	format *lineFormat[T]
}

func (me *lineHeap[T]) Add(line string) error {
	item, err := me.format.parseLine(line)
	if err != nil {
		return err
	}
	return me.heap.Add(item)
}

func (me *lineHeap[T]) Remove() (string, error) {
	item, err := me.heap.Remove()
	if err != nil {
		return "", err
	}
	return me.format.render(item), nil
}

func (me *lineHeap[T]) Drain(w io.Writer) error {
	for item, err := range me.heap.Drain() {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, me.format.render(item)); err != nil {
			return err
		}
	}
	return nil
}

func (me *lineHeap[T]) Size() int {
	return me.heap.Size()
}

func (me *lineHeap[T]) Capacity() int {
	return me.heap.Capacity()
}

func (me *lineHeap[T]) String() string {
	return me.heap.String()
}

func orient[T any](order heap.Comparator[T], reverse bool) heap.Comparator[T] {
	if reverse {
		return heap.Reversed(order)
	}
	return order
}

// compareLength orders shorter lines first, then lexicographically.
func compareLength(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func parseString(line string) (string, error) {
	return line, nil
}

func formatString(value string) string {
	return value
}

func parseNumber(line string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%q is not a number", line)
	}
	return value, nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func parseMixed(line string) (any, error) {
	if value, err := strconv.ParseFloat(strings.TrimSpace(line), 64); err == nil {
		return value, nil
	}
	return line, nil
}

func formatMixed(value any) string {
	return fmt.Sprint(value)
}
