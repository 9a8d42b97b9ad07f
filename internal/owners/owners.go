// Package owners loads and checks the list of NFT owner addresses that feed a
// raffle.
package owners

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExpected is the size of the original owner snapshot.
const DefaultExpected = 47

var (
	ErrInvalidAddress = errors.New("invalid owner address")
	ErrLegacyNotFound = errors.New("owner array not found in legacy source")

	addressPattern = regexp.MustCompile(`^0x[0-9a-f]{1,64}$`)

	legacyArray   = regexp.MustCompile(`export const PERMANENT_NFT_OWNERS: string\[\] = \[([\s\S]*?)\];`)
	legacyAddress = regexp.MustCompile(`"(0x[a-fA-F0-9]+)"`)
)

// File is the on-disk owner list format.
type File struct {
	Owners []string `json:"owners"`
}

// Normalize trims and lowercases an address.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Validate checks a normalized address: 0x followed by 1 to 64 hex digits.
func Validate(addr string) error {
	if !addressPattern.MatchString(addr) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	return nil
}

// NormalizeAll normalizes and validates every address, keeping order.
func NormalizeAll(list []string) ([]string, error) {
	out := make([]string, 0, len(list))
	for _, a := range list {
		n := Normalize(a)
		if err := Validate(n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Dedupe keeps the first occurrence of each address and returns the removed
// duplicates in the order they were met.
func Dedupe(list []string) (unique, duplicates []string) {
	seen := make(map[string]struct{}, len(list))
	unique = make([]string, 0, len(list))
	for _, a := range list {
		if _, ok := seen[a]; ok {
			duplicates = append(duplicates, a)
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}
	return unique, duplicates
}

// Parse reads either {"owners": [...]} or a bare JSON array of strings.
func Parse(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read owner list: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decode owner array: %w", err)
		}
		return list, nil
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode owner file: %w", err)
	}
	return f.Owners, nil
}

// LoadFile reads an owner list from path. Files ending in .csv are read with
// ParseCSV, everything else as JSON.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open owner list: %w", err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(f)
	}
	return Parse(f)
}

// SaveFile writes owners to path in the File format.
func SaveFile(path string, list []string) error {
	if list == nil {
		list = []string{}
	}
	data, err := json.MarshalIndent(File{Owners: list}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ExtractLegacy pulls the PERMANENT_NFT_OWNERS array out of the old
// TypeScript constants file. Only for migrating to the JSON format.
func ExtractLegacy(src string) ([]string, error) {
	m := legacyArray.FindStringSubmatch(src)
	if m == nil {
		return nil, ErrLegacyNotFound
	}
	var out []string
	for _, part := range strings.Split(m[1], ",") {
		if am := legacyAddress.FindStringSubmatch(part); am != nil {
			out = append(out, am[1])
		}
	}
	return out, nil
}
