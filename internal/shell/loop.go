package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
)

// defaultMaxLine bounds how much of a single input line is buffered.
const defaultMaxLine = 1 << 20

// Run reads commands from r until exit or end of input, executing each one
// to completion before reading the next. End of input behaves like exit. A
// line longer than the read limit is reported and skipped. Run returns an
// error only when reading fails.
func (s *Shell) Run(r io.Reader) error {
	reader := bufio.NewReader(r)

	for {
		s.write(s.out, s.prompt)
		line, err := s.readLine(reader)
		var tooLong bitserrors.LineTooLongError
		switch {
		case errors.Is(err, io.EOF):
			s.log.Debug("End of input")
			s.write(s.out, "\n")
			s.Render(s.Execute([]string{"exit"}))
			return nil
		case errors.As(err, &tooLong):
			s.log.WithField("limit", tooLong.Limit).Debug("Discarded long input line")
			s.Render(Result{}, err)
			continue
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := s.ExecuteLine(line)
		s.Render(res, err)
		if res.Exit {
			return nil
		}
	}
}

// readLine returns the next line without its line ending. A line over the
// limit is consumed in full and reported as a LineTooLongError. io.EOF is
// returned only when no more input remains.
func (s *Shell) readLine(r *bufio.Reader) (string, error) {
	var (
		buf     []byte
		read    bool
		tooLong bool
	)
	for {
		chunk, more, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > s.maxLine {
				tooLong = true
				buf = nil
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", bitserrors.LineTooLongError{Limit: s.maxLine}
	}
	return string(buf), nil
}
