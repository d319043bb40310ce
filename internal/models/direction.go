package models

import "fmt"

// Direction tells whether a transaction moves money in or out.
type Direction int

const (
	// Expense is the default direction: absence of any income marker in the
	// transcript means spending.
	Expense Direction = iota
	Income
)

// String returns the canonical lowercase name used in CSV output and logs.
func (d Direction) String() string {
	switch d {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a stored direction name back to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return Expense, fmt.Errorf("unknown direction: %q", s)
	}
}

// MarshalCSV implements gocsv marshalling for Direction columns.
func (d Direction) MarshalCSV() (string, error) {
	return d.String(), nil
}

// UnmarshalCSV implements gocsv unmarshalling for Direction columns.
func (d *Direction) UnmarshalCSV(csv string) error {
	parsed, err := ParseDirection(csv)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
