// Package calc contains the value types and error kinds shared by the
// calculator modules.
package calc

import "time"

// Source identifies which calculator module produced a calculation.
type Source string

const (
	SourceScientific Source = "scientific"
	SourceStandard   Source = "standard"
	SourceProgrammer Source = "programmer"
	SourceConverter  Source = "converter"
)

// Record is a single entry in the calculation history.
type Record struct {
	ID         string    `json:"id"`
	Source     Source    `json:"source"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}
