package memory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseAddress parses a hexadecimal address, with or without a 0x prefix.
func parseAddress(word string) (addr Address, err error) {
	hex := word
	if len(hex) > 2 && hex[0] == '0' && (hex[1] == 'x' || hex[1] == 'X') {
		hex = hex[2:]
	}

	u64, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		err = ErrImageAddress
		return
	}

	addr = Address(u64)
	return
}

// Unmarshal loads a memory image, adding to any existing content.
// Blank lines are ignored.
func (mem *Memory) Unmarshal(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		lineno++
		line = strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		words := strings.Fields(line)
		if len(words) != 2 {
			err = ErrImageLine
			return
		}

		var addr Address
		addr, err = parseAddress(words[0])
		if err != nil {
			return
		}

		var i64 int64
		i64, err = strconv.ParseInt(words[1], 10, 64)
		if err != nil {
			err = ErrImageValue
			return
		}

		if mem.Data == nil {
			mem.Data = make(map[Address]Word)
		}
		mem.Data[addr] = Word(i64)
	}

	err = scanner.Err()

	return
}

// Marshal writes the memory content as an image, in address order.
func (mem *Memory) Marshal(output io.Writer) (err error) {
	for addr, value := range mem.All() {
		_, err = fmt.Fprintf(output, "%x %d\n", uint64(addr), int64(value))
		if err != nil {
			return
		}
	}

	return
}
