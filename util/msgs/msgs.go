// Package msgs defines test messages and their encodings for mutebase64 unit
// tests.
package msgs

// RFCText is the classic base64 example text (Thomas Hobbes, Leviathan).
const RFCText = "Man is distinguished, not only by his reason, but by this " +
	"singular passion from other animals, which is a lust of the mind, that " +
	"by a perseverance of delight in the continued and indefatigable " +
	"generation of knowledge, exceeds the short vehemence of any carnal " +
	"pleasure."

// RFCTextEncoded is the encoding of RFCText wrapped at 76 characters.
const RFCTextEncoded = `TWFuIGlzIGRpc3Rpbmd1aXNoZWQsIG5vdCBvbmx5IGJ5IGhpcyByZWFzb24sIGJ1dCBieSB0aGlz
IHNpbmd1bGFyIHBhc3Npb24gZnJvbSBvdGhlciBhbmltYWxzLCB3aGljaCBpcyBhIGx1c3Qgb2Yg
dGhlIG1pbmQsIHRoYXQgYnkgYSBwZXJzZXZlcmFuY2Ugb2YgZGVsaWdodCBpbiB0aGUgY29udGlu
dWVkIGFuZCBpbmRlZmF0aWdhYmxlIGdlbmVyYXRpb24gb2Yga25vd2xlZGdlLCBleGNlZWRzIHRo
ZSBzaG9ydCB2ZWhlbWVuY2Ugb2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=
`

// Vector is an input together with its expected encoding.
type Vector struct {
	Name   string
	Input  string
	Output string
}

// Vectors contains short inputs covering all padding cases.
var Vectors = []Vector{
	{"empty", "", ""},
	{"one byte", "M", "TQ==\n"},
	{"two bytes", "Ma", "TWE=\n"},
	{"three bytes", "Man", "TWFu\n"},
	{"zero bits", "\x00", "AA==\n"},
	{"high bits", "\xff\xff\xff", "////\n"},
	{"mixed", "\xfb\xff\xbf", "+/+/\n"},
	{"rfc text", RFCText, RFCTextEncoded},
}
