package domain

// Version represents the EPC QR protocol revision (row 2)
type Version string

const (
	VersionV001 Version = "001" // BIC mandatory
	VersionV002 Version = "002"
)

// IsValid reports whether v is one of the known protocol revisions
func (v Version) IsValid() bool {
	return v == VersionV001 || v == VersionV002
}

// LineFeed is the separator placed between serialized rows
type LineFeed string

const (
	LineFeedLF   LineFeed = "\n"
	LineFeedCRLF LineFeed = "\r\n"
)

// IsValid reports whether lf is LF or CRLF
func (lf LineFeed) IsValid() bool {
	return lf == LineFeedLF || lf == LineFeedCRLF
}

// CharacterEncoding is the digit written in row 3
type CharacterEncoding int

const (
	EncodingUTF8 CharacterEncoding = iota + 1
	EncodingISO8859_1
	EncodingISO8859_2
	EncodingISO8859_4
	EncodingISO8859_5
	EncodingISO8859_7
	EncodingISO8859_10
	EncodingISO8859_15
)

var charsetNames = map[CharacterEncoding]string{
	EncodingUTF8:       "UTF-8",
	EncodingISO8859_1:  "ISO-8859-1",
	EncodingISO8859_2:  "ISO-8859-2",
	EncodingISO8859_4:  "ISO-8859-4",
	EncodingISO8859_5:  "ISO-8859-5",
	EncodingISO8859_7:  "ISO-8859-7",
	EncodingISO8859_10: "ISO-8859-10",
	EncodingISO8859_15: "ISO-8859-15",
}

// IsValid reports whether the encoding digit is within 1..8
func (e CharacterEncoding) IsValid() bool {
	return e >= EncodingUTF8 && e <= EncodingISO8859_15
}

// Charset returns the IANA charset name, or "" for an unknown digit
func (e CharacterEncoding) Charset() string {
	return charsetNames[e]
}

// Fixed rows of every EPC payload
const (
	ServiceTag     = "BCD"
	IdentifierCode = "SCT" // SEPA Credit Transfer
	Currency       = "EUR"
)
