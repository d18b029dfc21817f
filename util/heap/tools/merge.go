package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/navijation/njheap/util/heap/tools/config"
)

func mergeFiles(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: merge src_path1 [src_path_2 ...]")
	}

	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var inputs []io.Reader
	for _, path := range cmd.Args().Slice() {
		file, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", path)
		}
		defer file.Close()
		inputs = append(inputs, file)
	}

	return mergeInputs(cfg, logger, inputs, os.Stdout)
}

// mergeInputs writes the lines of every input as one stream sorted by the
// configured ordering. Each input is expected to be sorted by it already.
func mergeInputs(cfg config.ConfigFile, logger *slog.Logger, inputs []io.Reader, out io.Writer) error {
	formatter, err := newLineFormatter(cfg)
	if err != nil {
		return err
	}

	mux := formatter.NewMerger(logger)
	for _, input := range inputs {
		if err := mux.AddInput(input); err != nil {
			return err
		}
	}

	var count int
	for {
		line, hasNext, err := mux.NextLine()
		if err != nil {
			return err
		}
		if !hasNext {
			break
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
		count++
	}

	logger.Info("Merged inputs", "inputs", len(inputs), "lines", count, "ordering", cfg.Ordering)
	return nil
}

type lineMerger interface {
	AddInput(input io.Reader) error
	NextLine() (line string, hasNext bool, _ error)
}

type lineCursor[T any] struct {
	text        string
	current     util.Optional[T]
	inputNumber int
	lineNumber  int
	scanner     *bufio.Scanner
}

type lineMux[T any] struct {
	heap       *heap.MinHeap[lineCursor[T]]
	format     *lineFormat[T]
	inputCount int
	logger     *slog.Logger
}

func newLineMux[T any](format *lineFormat[T], logger *slog.Logger) *lineMux[T] {
	order := format.order
	return &lineMux[T]{
		heap: heap.NewWithComparator(func(a, b util.Optional[lineCursor[T]]) (int, error) {
			aCursor, _ := a.Unpack()
			bCursor, _ := b.Unpack()

			// pick lower lines first, and upon ties pick the earlier inputs first
			c, err := order(aCursor.current, bCursor.current)
			if err != nil || c != 0 {
				return c, err
			}
			return aCursor.inputNumber - bCursor.inputNumber, nil
		}),
		format: format,
		logger: logger,
	}
}

func (me *lineMux[T]) AddInput(input io.Reader) error {
	inputNumber := me.inputCount
	me.inputCount++

	cursor := lineCursor[T]{
		inputNumber: inputNumber,
		scanner:     bufio.NewScanner(input),
	}
	hasNext, err := me.advance(&cursor)
	if err != nil || !hasNext {
		return err
	}

	if err := me.heap.Push(cursor); err != nil {
		return errors.Wrapf(err, "input %d, line %d", cursor.inputNumber+1, cursor.lineNumber)
	}
	return nil
}

func (me *lineMux[T]) NextLine() (line string, hasNext bool, _ error) {
	if me.heap.IsEmpty() {
		return "", false, nil
	}

	item, err := me.heap.Remove()
	if err != nil {
		return "", false, err
	}
	cursor, _ := item.Unpack()
	line = cursor.text
	previous := cursor.current

	hasNext, err = me.advance(&cursor)
	if err != nil {
		return line, true, err
	}
	if !hasNext {
		return line, true, nil
	}

	c, err := me.format.order(cursor.current, previous)
	if err != nil {
		return line, true, errors.Wrapf(err, "input %d, line %d", cursor.inputNumber+1, cursor.lineNumber)
	}
	if c < 0 {
		me.logger.Warn("Input is not sorted",
			"input", cursor.inputNumber+1,
			"line", cursor.text,
			"after", line,
		)
	}

	if err := me.heap.Push(cursor); err != nil {
		return line, true, errors.Wrapf(err, "input %d, line %d", cursor.inputNumber+1, cursor.lineNumber)
	}
	return line, true, nil
}

// advance reads and parses the next line of cursor's input.
func (me *lineMux[T]) advance(cursor *lineCursor[T]) (hasNext bool, _ error) {
	if !cursor.scanner.Scan() {
		if err := cursor.scanner.Err(); err != nil {
			return false, errors.Wrapf(err, "failed to read input %d", cursor.inputNumber+1)
		}
		return false, nil
	}

	cursor.lineNumber++
	cursor.text = cursor.scanner.Text()
	current, err := me.format.parseLine(cursor.text)
	if err != nil {
		return false, errors.Wrapf(err, "input %d, line %d", cursor.inputNumber+1, cursor.lineNumber)
	}
	cursor.current = current

	return true, nil
}
