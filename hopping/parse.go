// SPDX-License-Identifier: MIT

package hopping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tbribbon/matrix"
)

// Causes carried inside ParseError.Err.
var (
	errSingleInteger = errors.New("expected a single integer")
	errNotPositive   = errors.New("count must be >= 1")
	errOrbitalIndex  = errors.New("orbital index out of range")
	errTooLarge      = errors.New("record count overflows")
)

// recordFields names the seven tokens of one hopping record, in file order.
var recordFields = [7]string{"rx", "ry", "rz", "m", "n", "re", "im"}

// headerRecord marks ParseError.Record for header fields.
const headerRecord = -1

// Load opens path and parses it with Parse.
//
// Errors:
//   - ErrFileNotFound (also matching fs.ErrNotExist) when path does not exist.
//   - ErrParse (as *ParseError) for malformed content.
//   - other I/O errors wrapped with the path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("hopping: load %s: %w: %w", path, ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("hopping: load %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		// *ParseError already carries the package prefix
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// Parse reads a hopping file from r.
//
// Implementation:
//   - Stage 1: skip the comment line, read the orbital and record counts
//     (one integer per line).
//   - Stage 2: read whole lines of degeneracy weights until the record count
//     is reached.
//   - Stage 3: treat the remainder as a token stream and pull seven tokens
//     per record, records × orbitals² times. Tokens after the last record
//     are ignored.
//   - Stage 4: keep rz == 0 records; block (rx, ry) gets entry (m-1, n-1).
//
// Errors: *ParseError (matching ErrParse) for any malformed or missing token.
//
// Complexity: O(records · orbitals²) time, O(displacements · orbitals²) memory.
func Parse(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	if _, err := readLine(br); err != nil {
		return nil, &ParseError{Field: "comment", Record: headerRecord, Err: err}
	}
	orbitals, err := readCount(br, "orbitals")
	if err != nil {
		return nil, err
	}
	records, err := readCount(br, "records")
	if err != nil {
		return nil, err
	}
	if orbitals > math.MaxInt/orbitals || records > math.MaxInt/(orbitals*orbitals) {
		return nil, &ParseError{Field: "records", Record: headerRecord, Err: errTooLarge}
	}

	degeneracies, err := readDegeneracies(br, records)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)

	var (
		total  = records * orbitals * orbitals
		blocks = make(map[Displacement]*matrix.CDense)
		tok    [7]string
		ints   [5]int
		re, im float64
	)
	for rec := 0; rec < total; rec++ {
		for i := range tok {
			if !sc.Scan() {
				cause := sc.Err()
				if cause == nil {
					cause = io.ErrUnexpectedEOF
				}
				return nil, &ParseError{Field: recordFields[i], Record: rec, Err: cause}
			}
			tok[i] = sc.Text()
		}
		for i := range ints {
			if ints[i], err = strconv.Atoi(tok[i]); err != nil {
				return nil, &ParseError{Field: recordFields[i], Token: tok[i], Record: rec, Err: err}
			}
		}
		if re, err = strconv.ParseFloat(tok[5], 64); err != nil {
			return nil, &ParseError{Field: "re", Token: tok[5], Record: rec, Err: err}
		}
		if im, err = strconv.ParseFloat(tok[6], 64); err != nil {
			return nil, &ParseError{Field: "im", Token: tok[6], Record: rec, Err: err}
		}
		for i := 3; i <= 4; i++ {
			if ints[i] < 1 || ints[i] > orbitals {
				return nil, &ParseError{Field: recordFields[i], Token: tok[i], Record: rec, Err: errOrbitalIndex}
			}
		}

		// out-of-plane terms belong to stacking, not to a single layer
		if ints[2] != 0 {
			continue
		}
		key := Displacement{DX: ints[0], DY: ints[1]}
		blk, ok := blocks[key]
		if !ok {
			if blk, err = matrix.NewCDense(orbitals, orbitals); err != nil {
				return nil, &ParseError{Field: "m", Record: rec, Err: err}
			}
			blocks[key] = blk
		}
		if err = blk.Set(ints[3]-1, ints[4]-1, complex(re, im)); err != nil {
			return nil, &ParseError{Field: "re", Token: tok[5] + " " + tok[6], Record: rec, Err: err}
		}
	}

	return newModel(orbitals, degeneracies, blocks), nil
}

// readLine returns the next line without its terminator.
// A final line lacking '\n' is accepted; an exhausted reader yields
// io.ErrUnexpectedEOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", io.ErrUnexpectedEOF
			}
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readCount reads a line holding exactly one positive integer.
func readCount(br *bufio.Reader, field string) (int, error) {
	line, err := readLine(br)
	if err != nil {
		return 0, &ParseError{Field: field, Record: headerRecord, Err: err}
	}
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, &ParseError{Field: field, Token: strings.TrimSpace(line), Record: headerRecord, Err: errSingleInteger}
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, &ParseError{Field: field, Token: fields[0], Record: headerRecord, Err: err}
	}
	if v < 1 {
		return 0, &ParseError{Field: field, Token: fields[0], Record: headerRecord, Err: errNotPositive}
	}

	return v, nil
}

// readDegeneracies concatenates integer tokens across whole lines until n
// weights are read. Surplus weights on the last line are validated and
// dropped; the record stream starts on the next line.
func readDegeneracies(br *bufio.Reader, n int) ([]int, error) {
	out := make([]int, 0, min(n, 4096))
	for len(out) < n {
		line, err := readLine(br)
		if err != nil {
			return nil, &ParseError{Field: "degeneracies", Record: headerRecord, Err: err}
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Field: "degeneracies", Token: tok, Record: headerRecord, Err: err}
			}
			if len(out) < n {
				out = append(out, v)
			}
		}
	}

	return out, nil
}
