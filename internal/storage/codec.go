package storage

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/task"
)

const (
	fieldID          = "id"
	fieldDescription = "description"
	fieldStatus      = "status"
)

// Encode renders tasks as the tasks.json document.
func Encode(tasks []task.Task) []byte {
	if len(tasks) == 0 {
		return []byte("[]\n")
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, t := range tasks {
		fmt.Fprintf(&buf, "  {\n    %q: %d,\n    %q: %s,\n    %q: %s\n  }",
			fieldID, t.ID,
			fieldDescription, quoteString(t.Description),
			fieldStatus, quoteString(string(t.Status)))
		if i < len(tasks)-1 {
			buf.WriteString(",\n")
		}
	}
	buf.WriteString("\n]\n")
	return buf.Bytes()
}

// quoteString wraps s in double quotes, escaping quotes, backslashes and
// control characters the way JSON does.
func quoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, c)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Decode parses a tasks.json document. It understands the layout Encode
// writes plus the usual hand edits: any whitespace, bare keys, bare values,
// trailing commas, unknown fields and lowercase or hyphenated statuses.
// Anything else, along with missing fields and duplicate ids, is reported as
// a CorruptFileError.
func Decode(data []byte) ([]task.Task, error) {
	src := strings.TrimPrefix(string(data), "\ufeff")
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	p := &parser{src: src}
	objects, err := p.document()
	if err != nil {
		return nil, bitserrors.CorruptFileError{Reason: err.Error()}
	}

	tasks := make([]task.Task, 0, len(objects))
	seen := make(map[int]bool, len(objects))
	for _, obj := range objects {
		t, err := obj.task()
		if err != nil {
			return nil, bitserrors.CorruptFileError{Reason: err.Error()}
		}
		if seen[t.ID] {
			dup := &parseError{line: obj.line, msg: fmt.Sprintf("duplicate id %d", t.ID)}
			return nil, bitserrors.CorruptFileError{Reason: dup.Error()}
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// object holds the fields of one {...} block and the line it started on.
type object struct {
	line   int
	fields map[string]string
}

func (o object) task() (task.Task, error) {
	fail := func(format string, args ...any) (task.Task, error) {
		return task.Task{}, &parseError{line: o.line, msg: fmt.Sprintf(format, args...)}
	}

	rawID, ok := o.fields[fieldID]
	if !ok {
		return fail("missing field %q", fieldID)
	}
	id, ok := parsePositiveInt(rawID)
	if !ok {
		return fail("invalid id %q", rawID)
	}

	desc, ok := o.fields[fieldDescription]
	if !ok {
		return fail("task %d: missing field %q", id, fieldDescription)
	}
	if strings.TrimSpace(desc) == "" {
		return fail("task %d: empty description", id)
	}

	rawStatus, ok := o.fields[fieldStatus]
	if !ok {
		return fail("task %d: missing field %q", id, fieldStatus)
	}
	status, ok := task.ParseStatus(rawStatus)
	if !ok {
		return fail("task %d: unknown status %q", id, rawStatus)
	}

	return task.Task{ID: id, Description: desc, Status: status}, nil
}

func parsePositiveInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parser is a cursor over a tasks.json document.
type parser struct {
	src string
	pos int
}

func (p *parser) document() ([]object, error) {
	p.skipSpace()
	if !p.consume('[') {
		return nil, p.errorf("expected '[' at start of document")
	}

	var objects []object
	for {
		p.skipSeparators()
		if p.eof() {
			return nil, p.errorf("missing closing ']'")
		}
		switch c := p.peek(); c {
		case ']':
			p.pos++
			p.skipSpace()
			if !p.eof() {
				return nil, p.errorf("unexpected content after closing ']'")
			}
			return objects, nil
		case '{':
			obj, err := p.object()
			if err != nil {
				return nil, err
			}
			objects = append(objects, obj)
		default:
			return nil, p.errorf("unexpected %q between tasks", c)
		}
	}
}

func (p *parser) object() (object, error) {
	obj := object{line: p.line(), fields: make(map[string]string)}
	p.pos++ // '{'

	for {
		p.skipSeparators()
		if p.eof() {
			return object{}, p.errorf("unterminated task object")
		}
		if p.peek() == '}' {
			p.pos++
			return obj, nil
		}

		key, err := p.key()
		if err != nil {
			return object{}, err
		}
		p.skipSpace()
		if !p.consume(':') {
			return object{}, p.errorf("expected ':' after field %q", key)
		}
		p.skipSpace()

		val, err := p.value()
		if err != nil {
			return object{}, err
		}
		if _, dup := obj.fields[key]; dup {
			return object{}, p.errorf("duplicate field %q", key)
		}
		obj.fields[key] = val

		p.skipSpace()
		if p.eof() {
			return object{}, p.errorf("unterminated task object")
		}
		if c := p.peek(); c != ',' && c != '}' {
			return object{}, p.errorf("unexpected %q after field %q", c, key)
		}
	}
}

func (p *parser) key() (string, error) {
	if p.peek() == '"' {
		k, err := p.quoted()
		return strings.ToLower(k), err
	}
	start := p.pos
	for !p.eof() && !strings.ContainsRune(":,{}[]\" \t\r\n", rune(p.peek())) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected field name, found %q", p.peek())
	}
	return strings.ToLower(p.src[start:p.pos]), nil
}

func (p *parser) value() (string, error) {
	if p.eof() {
		return "", p.errorf("missing value")
	}
	if p.peek() == '"' {
		return p.quoted()
	}

	start := p.pos
	for !p.eof() {
		c := p.peek()
		if c == ',' || c == '}' {
			break
		}
		if c == '{' || c == '[' || c == ']' {
			return "", p.errorf("nested values are not supported")
		}
		p.pos++
	}
	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return "", p.errorf("missing value")
	}
	return text, nil
}

// quoted reads a double-quoted string starting at the cursor and decodes
// its escapes. Unknown escapes are kept verbatim.
func (p *parser) quoted() (string, error) {
	start := p.pos
	p.pos++ // opening quote

	var sb strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			if p.pos+1 >= len(p.src) {
				p.pos = start
				return "", p.errorf("unterminated string")
			}
			p.pos++
			p.unescape(&sb)
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}

	p.pos = start
	return "", p.errorf("unterminated string")
}

// unescape decodes the escape whose letter is under the cursor and leaves
// the cursor after it.
func (p *parser) unescape(sb *strings.Builder) {
	e := p.src[p.pos]
	p.pos++
	switch e {
	case '"', '\\', '/':
		sb.WriteByte(e)
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'u':
		r, ok := p.hex4()
		if !ok {
			sb.WriteString(`\u`)
			return
		}
		if utf16.IsSurrogate(r) && strings.HasPrefix(p.src[p.pos:], `\u`) {
			save := p.pos
			p.pos += 2
			if low, ok := p.hex4(); ok {
				if pair := utf16.DecodeRune(r, low); pair != unicode.ReplacementChar {
					sb.WriteRune(pair)
					return
				}
			}
			p.pos = save
		}
		sb.WriteRune(r)
	default:
		sb.WriteByte('\\')
		sb.WriteByte(e)
	}
}

func (p *parser) hex4() (rune, bool) {
	if p.pos+4 > len(p.src) {
		return 0, false
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, false
	}
	p.pos += 4
	return rune(n), true
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) consume(c byte) bool {
	if p.eof() || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// skipSeparators skips whitespace and commas; stray or trailing commas are
// a common hand edit.
func (p *parser) skipSeparators() {
	for {
		p.skipSpace()
		if !p.consume(',') {
			return
		}
	}
}

func (p *parser) line() int {
	return strings.Count(p.src[:p.pos], "\n") + 1
}

func (p *parser) errorf(format string, args ...any) error {
	return &parseError{line: p.line(), msg: fmt.Sprintf(format, args...)}
}
