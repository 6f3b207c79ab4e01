package random

import "github.com/google/uuid"

// uuidTemplate lays out a version 4 UUID. Each x is a random hex digit and y
// is a random digit from {8, 9, a, b} carrying the RFC 4122 variant.
const uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"

// UUID returns a random RFC 4122 version 4 UUID string. Digits are drawn in
// template order through Int, so a seeded generator yields a fixed UUID.
func (r *Random) UUID() string {
	var id uuid.UUID
	nibble := 0
	for _, c := range uuidTemplate {
		var d byte
		switch c {
		case '-':
			continue
		case '4':
			d = 4
		case 'x':
			d = byte(r.Int(0, 15))
		case 'y':
			d = byte(r.Int(0, 15))&0x3 | 0x8
		}
		if nibble%2 == 0 {
			id[nibble/2] = d << 4
		} else {
			id[nibble/2] |= d
		}
		nibble++
	}
	return id.String()
}
