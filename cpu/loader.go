// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var reIdentifier = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)

// Loader reads instruction files into a Program.
//
// Loader syntax, beyond plain instruction lines:
//   - `;` and `#` start a comment that runs to the end of the line.
//   - Blank lines are skipped.
//   - `.equ NAME VALUE` defines NAME; later occurrences of NAME as a whole
//     word are replaced by VALUE.
//   - `$(expr)` is replaced by the decimal value of a compile-time integer
//     expression. Integer equates are in scope.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		i64, parse_err := strconv.ParseInt(str, 0, 64)
		if parse_err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(i64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand replaces each $(...) in line with its decimal value.
// Parentheses nest, so `$((1+2)*4)(R0)` expands to `12(R0)`.
func (ld *Loader) expand(line string) (text string, err error) {
	for {
		before, after, found := strings.Cut(line, "$(")
		if !found {
			text += line
			return
		}
		text += before

		depth := 1
		end := -1
		for n, c := range after {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth == 0 {
				end = n
				break
			}
		}
		if end < 0 {
			err = ErrParseExpression(after)
			return
		}

		var value int64
		value, err = ld.parenEval(after[:end])
		if err != nil {
			return
		}
		text += strconv.FormatInt(value, 10)
		line = after[end+1:]
	}
}

// parseLine expands a single line. An empty result means there is nothing
// to execute on this line.
func (ld *Loader) parseLine(line string, lineno int) (text string, err error) {
	// Set line number.
	ld.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line, err = ld.expand(line)
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || reIdentifier.FindString(words[1]) != words[1] {
			err = ErrEquateSyntax
			return
		}
		_, ok := ld.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		ld.Equate[words[1]] = words[2]
		return
	}

	// A branch label is a name, not an operand value.
	var label string
	if words[0] == OP_BEQ.String() && len(words) == 1+OP_BEQ.Operands() {
		at := strings.LastIndex(line, words[len(words)-1])
		line, label = line[:at], line[at:]
	}

	text = reIdentifier.ReplaceAllStringFunc(line, func(word string) string {
		equate, ok := ld.Equate[word]
		if ok {
			return equate
		}
		return word
	})
	text += label

	return
}

// Parse parses an input stream into a Program.
// Instructions are not decoded; see Program.Check.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = maps.Clone(sysEquate)
	for attr, val := range ld.predefine {
		ld.Equate[attr] = val
	}

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text, _, _ = strings.Cut(text, ";")
		text, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(text)

		text, err = ld.parseLine(line, lineno)
		if err != nil {
			prog = nil
			return
		}
		if len(text) == 0 {
			continue
		}

		prog.Lines = append(prog.Lines, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
