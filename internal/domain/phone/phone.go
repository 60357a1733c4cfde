// Package phone normaliza lo que el usuario tipea en un campo de teléfono
// brasileño: DDD (2) + número (9), mostrado como "(41) 99999-8888".
package phone

import (
	"fmt"
	"strings"
)

// Digits es la cantidad exacta de dígitos de un teléfono válido.
const Digits = 11

// Result es la salida del normalizador.
type Result struct {
	Digits  string `json:"digits"`
	Masked  string `json:"masked"`
	Valid   bool   `json:"valid"`
	Missing int    `json:"missing"`
	Message string `json:"message,omitempty"`
}

// Normalize es total: cualquier string produce un prefijo válido de la máscara.
func Normalize(raw string) Result {
	d := DigitsOf(raw)
	if len(d) > Digits {
		d = d[:Digits]
	}

	res := Result{
		Digits: d,
		Masked: Mask(d),
		Valid:  len(d) == Digits,
	}
	if n := len(d); n > 0 && n < Digits {
		res.Missing = Digits - n
		res.Message = fmt.Sprintf("Digite %d dígitos (%d/%d)", Digits, n, Digits)
	}
	return res
}

// DigitsOf descarta todo lo que no sea 0-9.
func DigitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Mask aplica "(DD) DDDDD-DDDD" sobre los dígitos que haya.
// Se espera d ya truncado; lo que exceda 11 cae en el último bloque.
func Mask(d string) string {
	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + d
	case n <= 7:
		return "(" + d[:2] + ") " + d[2:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// IsValid indica si raw, ya normalizado (truncado a 11), tiene los 11 dígitos.
func IsValid(raw string) bool {
	return Normalize(raw).Valid
}
