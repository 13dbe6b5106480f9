package enzyme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a single enzyme in the catalog file, by name and its catalog line.
type Entry struct {
	Name string
	Line string
}

// DB is a catalog file of enzymes, one catalog line per enzyme.
type DB struct {
	// path to the catalog file
	path string

	// lines is a map between an enzyme's name and its catalog line
	lines map[string]string

	// order of the enzymes in the file
	order []string
}

// NewDB loads the catalog at path. If there's no file at path yet, the DB
// starts from seed and the file is created on the first Set or Delete.
func NewDB(path, seed string) (*DB, error) {
	db := &DB{path: path, lines: make(map[string]string)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := db.load(strings.NewReader(seed)); err != nil {
			return nil, fmt.Errorf("failed to read default enzyme catalog: %w", err)
		}
		return db, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to open enzyme catalog: %w", err)
	}
	defer f.Close()

	if err := db.load(f); err != nil {
		return nil, fmt.Errorf("failed to read enzyme catalog %s: %w", path, err)
	}
	return db, nil
}

// load reads catalog lines, keyed by the first field. Later lines win.
func (db *DB) load(r io.Reader) error {
	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		db.put(strings.Fields(line)[0], line)
	}
	return scanner.Err()
}

func (db *DB) put(name, line string) {
	if _, exists := db.lines[name]; !exists {
		db.order = append(db.order, name)
	}
	db.lines[name] = line
}

// Path is the catalog file's location.
func (db *DB) Path() string { return db.path }

// Names returns the enzyme names in alphabetical order.
func (db *DB) Names() []string {
	names := make([]string, 0, len(db.lines))
	for name := range db.lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the catalog line of an enzyme.
func (db *DB) Get(name string) (line string, ok bool) {
	line, ok = db.lines[name]
	return
}

// Find returns enzymes that are similar in name to the one requested.
// An exact match is returned alone. Otherwise, if at least three enzyme names
// include the name, they're returned. Failing that, all names that include it or
// are within a levenshtein distance cutoff are returned.
func (db *DB) Find(name string) []Entry {
	if line, exists := db.lines[name]; exists {
		return []Entry{{Name: name, Line: line}}
	}

	ldCutoff := 2
	containing := []Entry{}
	lowDistance := []Entry{}
	for _, eName := range db.Names() {
		entry := Entry{Name: eName, Line: db.lines[eName]}
		if strings.Contains(strings.ToUpper(eName), strings.ToUpper(name)) {
			containing = append(containing, entry)
		} else if len(eName) > ldCutoff && ld(name, eName, true) <= ldCutoff {
			lowDistance = append(lowDistance, entry)
		}
	}

	if len(containing) < 3 {
		lowDistance = append(lowDistance, containing...)
		sort.Slice(lowDistance, func(i, j int) bool { return lowDistance[i].Name < lowDistance[j].Name })
		return lowDistance
	}
	return containing
}

// Enzymes parses every catalog line in file order.
func (db *DB) Enzymes() ([]Enzyme, []error) {
	return db.parse(db.order)
}

// Select parses the catalog lines of the named enzymes. Unknown names
// are returned as warnings along with any malformed lines.
func (db *DB) Select(names []string) ([]Enzyme, []error) {
	var known []string
	var warnings []error
	for _, name := range names {
		if _, exists := db.lines[name]; !exists {
			warnings = append(warnings, fmt.Errorf("failed to find %s in the enzyme catalog", name))
			continue
		}
		known = append(known, name)
	}

	enzymes, parseWarnings := db.parse(known)
	return enzymes, append(warnings, parseWarnings...)
}

func (db *DB) parse(names []string) (enzymes []Enzyme, warnings []error) {
	for i, name := range names {
		line := db.lines[name]
		parsed, err := ParseLine(line)
		if err != nil {
			warnings = append(warnings, &LineError{Line: i + 1, Content: line, Err: err})
			continue
		}
		enzymes = append(enzymes, parsed...)
	}
	return
}

// Set creates or updates an enzyme. site is the rest of its catalog line,
// ex: "G^AATTC" or "GACGT/C C/TGCAG (5/1)". It reports whether an
// existing enzyme was updated.
func (db *DB) Set(name, site string) (updated bool, err error) {
	line, err := validLine(name, site)
	if err != nil {
		return false, err
	}

	_, updated = db.lines[name]
	db.put(name, line)
	return updated, db.write()
}

// Import sets many catalog lines and writes the file once. Lines that
// don't validate are skipped and returned as warnings.
func (db *DB) Import(lines []string) (added int, warnings []error) {
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			warnings = append(warnings, &LineError{Line: i + 1, Content: line, Err: ErrMalformedLine})
			continue
		}
		valid, err := validLine(fields[0], strings.Join(fields[1:], " "))
		if err != nil {
			warnings = append(warnings, &LineError{Line: i + 1, Content: line, Err: err})
			continue
		}
		db.put(fields[0], valid)
		added++
	}

	if err := db.write(); err != nil {
		warnings = append(warnings, err)
	}
	return added, warnings
}

// Delete removes an enzyme. It reports whether the enzyme was in the catalog.
func (db *DB) Delete(name string) (deleted bool, err error) {
	if _, contained := db.lines[name]; !contained {
		return false, nil
	}

	delete(db.lines, name)
	for i, n := range db.order {
		if n == name {
			db.order = append(db.order[:i], db.order[i+1:]...)
			break
		}
	}
	return true, db.write()
}

// validLine builds a catalog line and checks it parses into valid enzymes.
func validLine(name, site string) (string, error) {
	if strings.ContainsAny(name, " \t") || name == "" {
		return "", fmt.Errorf("%w: enzyme name %q", ErrMalformedLine, name)
	}

	line := name + " " + strings.Join(strings.Fields(site), " ")
	enzymes, err := ParseLine(line)
	if err != nil {
		return "", err
	}
	for _, e := range enzymes {
		if i := InvalidBase(e.Recognition); i >= 0 {
			return "", fmt.Errorf("%w: invalid base %q in %s", ErrMalformedLine, e.Recognition[i], e.Recognition)
		}
	}
	return line, nil
}

// write the catalog back to its file.
func (db *DB) write() error {
	var output strings.Builder
	for _, name := range db.order {
		output.WriteString(db.lines[name] + "\n")
	}

	if err := os.MkdirAll(filepath.Dir(db.path), 0755); err != nil {
		return fmt.Errorf("failed to create enzyme catalog directory: %w", err)
	}
	if err := os.WriteFile(db.path, []byte(output.String()), 0644); err != nil {
		return fmt.Errorf("failed to write enzyme catalog: %w", err)
	}
	return nil
}

// ld computes the levenshtein distance between two strings.
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			min := d[i-1][j]
			if d[i][j-1] < min {
				min = d[i][j-1]
			}
			if d[i-1][j-1] < min {
				min = d[i-1][j-1]
			}
			d[i][j] = min + 1
		}
	}
	return d[len(s)][len(t)]
}
