package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseUsers_UTF8ConEncabezado(t *testing.T) {
	users, err := parseUsers([]byte("usuario,pass\nana,secreta\n  josé , \"clave,1\"\n"))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, seedUser{usuario: "ana", pass: "secreta"}, users[0])
	assert.Equal(t, "josé", users[1].usuario)
	assert.Equal(t, "clave,1", users[1].pass)
}

func TestParseUsers_Latin1(t *testing.T) {
	// "muñoz" en ISO-8859-1: ñ = 0xF1
	raw := []byte("mu\xf1oz,abc\n")
	users, err := parseUsers(raw)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "muñoz", users[0].usuario)
}

func TestParseUsers_Errores(t *testing.T) {
	_, err := parseUsers([]byte("ana,\n"))
	assert.Error(t, err, "pass vacío")

	_, err = parseUsers([]byte("ana,1\nana,2\n"))
	assert.ErrorContains(t, err, "duplicado")

	_, err = parseUsers([]byte("ana\n"))
	assert.Error(t, err, "faltan columnas")
}

func TestWriteSeed_HashesVerificables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, []seedUser{{usuario: "o'neil", pass: "secreta"}}, bcrypt.MinCost))

	out := buf.String()
	assert.Contains(t, out, "'o''neil'")
	assert.NotContains(t, out, "secreta")

	m := regexp.MustCompile(`'(\$2a\$[^']+)'`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(m[1]), []byte("secreta")))
	assert.Equal(t, 1, strings.Count(out, "INSERT INTO usuarios"))
}
