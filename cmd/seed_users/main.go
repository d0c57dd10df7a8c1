// seed_users genera un script SQL para poblar la tabla usuarios con contraseñas bcrypt
// a partir de un CSV "usuario,pass". Acepta archivos UTF-8 o ISO-8859-1.
//
// Uso: go run ./cmd/seed_users [usuarios.csv] [salida.sql]
// Por defecto lee usuarios.csv y escribe seed_usuarios.sql en el directorio actual.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	csvPath := "usuarios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := "seed_usuarios.sql"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	users, err := parseUsers(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar CSV: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, users, bcrypt.DefaultCost); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d usuarios\n", outPath, len(users))
}
