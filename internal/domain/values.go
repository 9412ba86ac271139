package domain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// As planilhas do back-office devolvem o mesmo campo ora como número, ora como
// string, ora vazio. Os tipos abaixo normalizam esses casos na leitura.

// ID é um identificador numérico de registro.
type ID int

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := unquote(data)
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}

	*id = ID(d.IntPart())
	return nil
}

func (id ID) String() string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(int(id))
}

// Text é um campo textual que aceita números e null.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Number é um valor numérico opcional (valores monetários, scores RFM).
type Number struct {
	Value decimal.Decimal
	Valid bool
}

func NewNumber(v decimal.Decimal) Number {
	return Number{Value: v, Valid: true}
}

func NumberFromInt(v int64) Number {
	return NewNumber(decimal.NewFromInt(v))
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.ReplaceAll(unquote(data), ",", "")
	if raw == "" || raw == "null" || raw == "NaN" {
		*n = Number{}
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}

	*n = NewNumber(d)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte(`""`), nil
	}
	return []byte(n.Value.String()), nil
}

func (n Number) String() string {
	if !n.Valid {
		return ""
	}
	return n.Value.String()
}

func unquote(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
