package fec

import "fmt"

// ValidationError describes one invariant violation in a built entry set.
type ValidationError struct {
	EcritureNum string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("écriture %s: %s", e.EcritureNum, e.Description)
}

// Validate checks the invariants every well-formed entry set must hold:
// each écriture balances to the cent, no row carries both a debit and a
// credit, and sequence numbers are contiguous from 000001 in row order. The builder produces conforming output by construction; this
// is a regression net for callers assembling entries themselves.
func Validate(entries []Entry) []ValidationError {
	var errs []ValidationError

	type totals struct {
		debit  int64
		credit int64
	}

	groups := make(map[string]*totals)

	var order []string

	for _, e := range entries {
		if e.Debit > 0 && e.Credit > 0 {
			errs = append(errs, ValidationError{
				EcritureNum: e.EcritureNum,
				Description: fmt.Sprintf("row on account %s must carry exactly one of debit and credit", e.CompteNum),
			})
		}

		if e.Debit < 0 || e.Credit < 0 {
			errs = append(errs, ValidationError{
				EcritureNum: e.EcritureNum,
				Description: fmt.Sprintf("row on account %s has a negative amount", e.CompteNum),
			})
		}

		g, seen := groups[e.EcritureNum]
		if !seen {
			g = &totals{}
			groups[e.EcritureNum] = g

			order = append(order, e.EcritureNum)
		}

		g.debit += e.Debit
		g.credit += e.Credit
	}

	for _, num := range order {
		g := groups[num]
		if g.debit != g.credit {
			errs = append(errs, ValidationError{
				EcritureNum: num,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", formatAmount(g.debit), formatAmount(g.credit)),
			})
		}
	}

	for i, num := range order {
		if want := formatSeq(i + 1); num != want {
			errs = append(errs, ValidationError{
				EcritureNum: num,
				Description: fmt.Sprintf("expected sequence %s at position %d", want, i+1),
			})
		}
	}

	return errs
}
