package sort_suite

import (
	"fmt"
	"io"
	"os"
	"strconv"
	str "strings"
)

// DefaultLimit caps how many tokens are read when the caller gives no limit.
const DefaultLimit = 10000

// ReadNumbers parses integers separated by whitespace, newlines or commas.
// Only the first limit tokens are considered. A token that is not an integer
// fails the whole read; nothing partial is returned.
func ReadNumbers(r io.Reader, limit int) ([]int, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	tokens := str.Fields(str.ReplaceAll(string(raw), ",", " "))
	if len(tokens) > limit {
		tokens = tokens[:limit]
	}

	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, token)
		}
		values = append(values, v)
	}
	return values, nil
}

func ReadNumbersFromFile(path string, limit int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open input %s: %w", path, err)
	}
	defer f.Close()

	values, err := ReadNumbers(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// WriteNumbers writes values space separated, ten to a line.
func WriteNumbers(w io.Writer, values []int) error {
	var sb str.Builder
	for i, v := range values {
		sb.WriteString(strconv.Itoa(v))
		if (i+1)%10 == 0 || i == len(values)-1 {
			sb.WriteRune('\n')
		} else {
			sb.WriteRune(' ')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatNumbers joins values with single spaces.
func FormatNumbers(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return str.Join(parts, " ")
}
