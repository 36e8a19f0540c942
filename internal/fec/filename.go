package fec

import "time"

// Filename derives the regulation-mandated export name,
// {SIREN}FEC{YYYYMMDD}.txt, from the company SIRET and the period end
// date. The SIREN is the first 9 characters of the SIRET; a SIRET
// shorter than that is used as-is rather than rejected.
func Filename(siret string, endDate time.Time) string {
	siren := siret
	if len(siren) > 9 {
		siren = siren[:9]
	}

	return siren + "FEC" + formatDate(endDate) + ".txt"
}
