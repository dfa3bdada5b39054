// Package redisinfo parses replies from the Redis INFO command into a flat
// field map with typed accessors. INFO is a line-oriented "field:value" format
// with "# Section" comment headers; sections carry no information the field
// names do not already encode, so they are skipped.
package redisinfo

import (
	"sort"
	"strconv"
	"strings"
)

// Info is a parsed INFO reply.
type Info map[string]string

// Parse converts a raw INFO reply into an Info map. Malformed lines are skipped.
func Parse(raw string) Info {
	info := make(Info)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		field, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		info[field] = value
	}
	return info
}

// Get returns the raw value of a field.
func (i Info) Get(field string) (string, bool) {
	v, ok := i[field]
	return v, ok
}

// Int returns a field parsed as an integer.
func (i Info) Int(field string) (int64, bool) {
	v, ok := i[field]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float returns a field parsed as a float.
func (i Info) Float(field string) (float64, bool) {
	v, ok := i[field]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Keyspace describes one database line from the INFO keyspace section,
// e.g. "db0:keys=421,expires=119,avg_ttl=3600".
type Keyspace struct {
	DB      string
	Keys    int64
	Expires int64
}

// Keyspaces returns the per-database key counts, ordered by database index.
func (i Info) Keyspaces() []Keyspace {
	var spaces []Keyspace
	indexes := make(map[string]int)
	for field, value := range i {
		if !strings.HasPrefix(field, "db") {
			continue
		}
		index, err := strconv.Atoi(field[2:])
		if err != nil {
			continue
		}
		indexes[field] = index
		ks := Keyspace{DB: field}
		for _, part := range strings.Split(value, ",") {
			name, num, ok := strings.Cut(part, "=")
			if !ok {
				continue
			}
			n, err := strconv.ParseInt(num, 10, 64)
			if err != nil {
				continue
			}
			switch name {
			case "keys":
				ks.Keys = n
			case "expires":
				ks.Expires = n
			}
		}
		spaces = append(spaces, ks)
	}
	sort.Slice(spaces, func(a, b int) bool { return indexes[spaces[a].DB] < indexes[spaces[b].DB] })
	return spaces
}
