package code

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultWidth        = 6
	DefaultRandomLength = 10

	ClaimDateLayout = "0102"

	alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var (
	ErrInvalidCode   = errors.New("invalid code format")
	ErrSuffixOverrun = errors.New("numeric suffix exceeds configured width")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{4,32}$`)

type Kind int

const (
	// KindSequential codes are prefix + zero-padded counter.
	KindSequential Kind = iota
	// KindRandom codes are prefix + random characters, used when no natural
	// prefix scope exists.
	KindRandom
)

// Scope names the set of codes a new code must be unique within.
type Scope struct {
	Prefix string
	Kind   Kind
}

// ClaimScope prefixes codes with the business date, so the counter starts
// over each day. The prefix carries no year: the same date a year later
// continues after the highest code already issued under it.
func ClaimScope(now time.Time, loc *time.Location) Scope {
	if loc == nil {
		loc = time.UTC
	}
	return Scope{Prefix: now.In(loc).Format(ClaimDateLayout), Kind: KindSequential}
}

func StaticScope(prefix string) Scope {
	return Scope{Prefix: strings.ToUpper(prefix), Kind: KindSequential}
}

func RandomScope(prefix string) Scope {
	return Scope{Prefix: strings.ToUpper(prefix), Kind: KindRandom}
}

// Normalize upper-cases and trims user input before a lookup.
func Normalize(raw string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(c) {
		return "", ErrInvalidCode
	}
	return c, nil
}

// Format renders prefix + n zero-padded to width.
func Format(prefix string, n int64, width int) (string, error) {
	s := strconv.FormatInt(n, 10)
	if len(s) > width {
		return "", ErrSuffixOverrun
	}
	return prefix + strings.Repeat("0", width-len(s)) + s, nil
}

// ParseSuffix extracts the trailing counter of a code in the given prefix.
// An empty latest means the scope has no codes yet.
func ParseSuffix(prefix, latest string) (int64, error) {
	if latest == "" {
		return 0, nil
	}
	if !strings.HasPrefix(latest, prefix) {
		return 0, fmt.Errorf("%w: %q does not start with %q", ErrInvalidCode, latest, prefix)
	}
	tail := strings.TrimPrefix(latest, prefix)
	n, err := strconv.ParseInt(tail, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: non-numeric suffix %q", ErrInvalidCode, tail)
	}
	return n, nil
}

func Random(prefix string, length int) (string, error) {
	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	n := big.NewInt(int64(len(alphabet)))
	for range length {
		i, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[i.Int64()])
	}
	return b.String(), nil
}
