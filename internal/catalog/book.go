package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrIndexOutOfRange is returned when a slot index falls outside the store.
	ErrIndexOutOfRange = errors.New("slot index out of range")
	// ErrInvalidBook wraps every field validation failure.
	ErrInvalidBook = errors.New("invalid book")
)

// Book is a single catalog record. A book with an empty name marks an unused slot.
type Book struct {
	Name  string
	Pages int
	Price int
}

// IsEmpty reports whether the book occupies no slot.
func (b Book) IsEmpty() bool {
	return b.Name == ""
}

// Limits bounds the store size and every book field.
type Limits struct {
	Capacity int `yaml:"capacity"`
	MaxName  int `yaml:"max_name"`
	MaxPages int `yaml:"max_pages"`
	MaxPrice int `yaml:"max_price"`
}

const (
	DefaultCapacity = 300
	DefaultMaxName  = 49
	DefaultMaxPages = 1500
	DefaultMaxPrice = 100000

	// MinPages is the smallest page count a non-empty book may carry.
	MinPages = 1
	// MinPrice is the smallest price a non-empty book may carry.
	MinPrice = 0
	// MaxFieldValue is the largest number a numeric field can hold. Page,
	// price and slot limits may not exceed it.
	MaxFieldValue = 999_999_999
)

// DefaultLimits returns the stock catalog dimensions.
func DefaultLimits() Limits {
	return Limits{
		Capacity: DefaultCapacity,
		MaxName:  DefaultMaxName,
		MaxPages: DefaultMaxPages,
		MaxPrice: DefaultMaxPrice,
	}
}

// Validate ensures every limit is usable.
func (l Limits) Validate() error {
	if l.Capacity < 1 || l.Capacity-1 > MaxFieldValue {
		return fmt.Errorf("capacity must be in [1, %d] (got %d)", MaxFieldValue+1, l.Capacity)
	}
	if l.MaxName < 1 {
		return fmt.Errorf("max name length must be >= 1 (got %d)", l.MaxName)
	}
	if l.MaxPages < MinPages || l.MaxPages > MaxFieldValue {
		return fmt.Errorf("max pages must be in [%d, %d] (got %d)", MinPages, MaxFieldValue, l.MaxPages)
	}
	if l.MaxPrice < MinPrice || l.MaxPrice > MaxFieldValue {
		return fmt.Errorf("max price must be in [%d, %d] (got %d)", MinPrice, MaxFieldValue, l.MaxPrice)
	}
	return nil
}

// CheckIndex reports whether index addresses a slot.
func (l Limits) CheckIndex(index int) error {
	if index < 0 || index >= l.Capacity {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, l.Capacity-1)
	}
	return nil
}

// CheckBook validates a non-empty book against the limits.
func (l Limits) CheckBook(b Book) error {
	if b.IsEmpty() {
		return fmt.Errorf("%w: name is empty", ErrInvalidBook)
	}
	if n := utf8.RuneCountInString(b.Name); n > l.MaxName {
		return fmt.Errorf("%w: name has %d characters, limit is %d", ErrInvalidBook, n, l.MaxName)
	}
	if b.Pages < MinPages || b.Pages > l.MaxPages {
		return fmt.Errorf("%w: pages %d not in [%d, %d]", ErrInvalidBook, b.Pages, MinPages, l.MaxPages)
	}
	if b.Price < MinPrice || b.Price > l.MaxPrice {
		return fmt.Errorf("%w: price %d not in [%d, %d]", ErrInvalidBook, b.Price, MinPrice, l.MaxPrice)
	}
	return nil
}

// NormalizeName composes the name to NFC, drops surrounding whitespace and
// truncates it to max runes.
func NormalizeName(name string, max int) string {
	return TruncateName(strings.TrimSpace(norm.NFC.String(name)), max)
}

// TruncateName cuts name to at most max runes and otherwise leaves it as is.
func TruncateName(name string, max int) string {
	if max <= 0 || utf8.RuneCountInString(name) <= max {
		return name
	}
	return string([]rune(name)[:max])
}
