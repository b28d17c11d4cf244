package utils

import "strings"

// The 11 municipalities of Occidental Mindoro. These are the only values
// accepted for the Municipality field on places and submissions.
const (
	AbraDeIlog = "Abra de Ilog"
	Calintaan  = "Calintaan"
	Looc       = "Looc"
	Lubang     = "Lubang"
	Magsaysay  = "Magsaysay"
	Mamburao   = "Mamburao"
	Paluan     = "Paluan"
	Rizal      = "Rizal"
	Sablayan   = "Sablayan"
	SanJose    = "San Jose"
	SantaCruz  = "Santa Cruz"
)

const (
	ProvinceName = "Occidental Mindoro"
	Region       = "MIMAROPA"
	Capital      = Mamburao
)

var Municipalities = []string{
	AbraDeIlog,
	Calintaan,
	Looc,
	Lubang,
	Magsaysay,
	Mamburao,
	Paluan,
	Rizal,
	Sablayan,
	SanJose,
	SantaCruz,
}

// IsValidMunicipality reports whether name matches one of the 11
// municipalities, ignoring case.
func IsValidMunicipality(name string) bool {
	for _, m := range Municipalities {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// CanonicalMunicipality returns the canonical spelling for name, or the
// empty string if name is not a municipality of the province.
func CanonicalMunicipality(name string) string {
	for _, m := range Municipalities {
		if strings.EqualFold(m, name) {
			return m
		}
	}
	return ""
}
