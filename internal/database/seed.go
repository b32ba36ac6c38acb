package database

import (
	_ "embed"
)

// SampleHotels is the bundled hotel catalog loaded by the seed command when
// no file is given.
//
//go:embed seeds/hotels.json
var SampleHotels []byte
