package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type seedUser struct {
	usuario string
	pass    string
}

// parseUsers lee filas usuario,pass. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
// Una primera fila "usuario,pass" se toma como encabezado.
func parseUsers(raw []byte) ([]seedUser, error) {
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var users []seedUser
	seen := map[string]bool{}
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		usuario := strings.TrimSpace(rec[0])
		if line == 1 && strings.EqualFold(usuario, "usuario") {
			continue
		}
		if usuario == "" || rec[1] == "" {
			return nil, fmt.Errorf("línea %d: usuario y pass son obligatorios", line)
		}
		if seen[usuario] {
			return nil, fmt.Errorf("línea %d: usuario %q duplicado", line, usuario)
		}
		seen[usuario] = true
		users = append(users, seedUser{usuario: usuario, pass: rec[1]})
	}
	return users, nil
}

func writeSeed(w io.Writer, users []seedUser, cost int) error {
	var b strings.Builder
	b.WriteString("-- Usuarios con contraseña bcrypt\n")
	b.WriteString("-- Generado por cmd/seed_users\n\n")
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.pass), cost)
		if err != nil {
			return fmt.Errorf("hash de %q: %w", u.usuario, err)
		}
		fmt.Fprintf(&b, "INSERT INTO usuarios (usuario, pass) VALUES ('%s', '%s');\n",
			escapeSQL(u.usuario), escapeSQL(string(hash)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
