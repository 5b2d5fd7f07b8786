// internal/measure/decode.go
package measure

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedBody is wrapped by every decoding failure.
var ErrMalformedBody = errors.New("malformed result body")

// Record holds one value per algorithm, indexed by Algorithm.
type Record [NumAlgorithms]int64

// Value returns the value recorded for a.
func (r Record) Value(a Algorithm) int64 { return r[a] }

// Decoder turns one result file body into a Record.
type Decoder interface {
	Decode(body []byte) (Record, error)
}

// DecoderFor returns the decoder matching the layout of files of kind k.
func DecoderFor(k MetricKind) Decoder {
	if k == Memory {
		return MemoryDecoder{}
	}
	return TimeDecoder{}
}

// Samples returns the data lines of body: every non-blank line that is not
// an algorithm marker, in file order. A line the scanner cannot read is a
// malformed body.
func Samples(body []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || IsMarker(line) {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBody, len(out)+1, err)
	}
	return out, nil
}

var (
	plainCount     = regexp.MustCompile(`^\d+$`)
	separatedCount = regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)
)

// parseCount reads an unsigned decimal count. With separators, commas are
// accepted only between groups of three digits.
func parseCount(line string, separators bool) (int64, error) {
	s := line
	switch {
	case plainCount.MatchString(s):
	case separators && separatedCount.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	default:
		return 0, fmt.Errorf("%w: %q is not an unsigned count", ErrMalformedBody, line)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedBody, line, err)
	}
	return v, nil
}

// MemoryDecoder reads files holding exactly one thousands-separated value
// per algorithm, in the order dfs, bfs, rtf.
type MemoryDecoder struct{}

func (MemoryDecoder) Decode(body []byte) (Record, error) {
	var rec Record
	samples, err := Samples(body)
	if err != nil {
		return rec, err
	}
	if len(samples) != NumAlgorithms {
		return rec, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedBody, NumAlgorithms, len(samples))
	}
	for i, line := range samples {
		v, err := parseCount(line, true)
		if err != nil {
			return rec, err
		}
		rec[i] = v
	}
	return rec, nil
}

// TimeDecoder reads files holding k trials per algorithm laid out as
// [dfs trials][bfs trials][rtf trials] and keeps the trial median of each
// block.
type TimeDecoder struct{}

func (TimeDecoder) Decode(body []byte) (Record, error) {
	var rec Record
	samples, err := Samples(body)
	if err != nil {
		return rec, err
	}
	if len(samples) == 0 || len(samples)%NumAlgorithms != 0 {
		return rec, fmt.Errorf("%w: %d values do not split into %d equal blocks", ErrMalformedBody, len(samples), NumAlgorithms)
	}
	values := make([]int64, len(samples))
	for i, line := range samples {
		v, err := parseCount(line, false)
		if err != nil {
			return rec, err
		}
		values[i] = v
	}
	k := len(values) / NumAlgorithms
	for _, a := range Algorithms {
		rec[a] = TrialMedian(values[int(a)*k : (int(a)+1)*k])
	}
	return rec, nil
}

// TrialMedian returns the element at index len(values)/2 of the sorted
// values. For an even count that is the second of the two middle elements;
// the two are never averaged. values is not modified. An empty slice
// yields 0.
func TrialMedian(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	cp := slices.Clone(values)
	slices.Sort(cp)
	return cp[len(cp)/2]
}
